package linearhash

import "hash/maphash"

// HashFunc is a pure total function from a key to a machine word. The
// caller owns hash quality and distribution; Table only ever masks the
// result against capacity-1 to find a home slot.
type HashFunc[K comparable] func(K) uint64

// defaultHashFunc builds a HashFunc backed by hash/maphash, seeded once
// per Table so that hash values are stable for the Table's lifetime but
// not predictable across processes.
func defaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
