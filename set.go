package linearhash

// Set is a thin companion to Table, built on the same probing engine
// with V fixed to struct{} so membership costs nothing beyond the key
// itself. Ported from the teacher's set.go/map.go pairing: spec.md
// only names the map form, but the set form falls out of the same
// engine for free.
type Set[K comparable] struct {
	table Table[K, struct{}]
}

// NewSet constructs a Set. Options are the same as Table's, minus the
// value type.
func NewSet[K comparable](opts ...Option[K, struct{}]) *Set[K] {
	s := &Set[K]{}
	cfg := tableConfig[K, struct{}]{
		initialCapacity: defaultInitialCapacity,
		strategy:        StrategyRehash,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	s.table.init(cfg)

	return s
}

// Has reports whether key is a member.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.table.Get(key)

	return ok
}

// Put adds key to the set, reporting whether it was newly added.
func (s *Set[K]) Put(key K) bool {
	return s.table.Insert(key, struct{}{})
}

// Delete removes key from the set, reporting whether it was present.
func (s *Set[K]) Delete(key K) bool {
	return s.table.Erase(key)
}

// Clear empties the set, retaining its capacity.
func (s *Set[K]) Clear() {
	s.table.Clear()
}

// Size returns the number of members.
func (s *Set[K]) Size() int {
	return s.table.Size()
}

// Capacity returns the current number of slots.
func (s *Set[K]) Capacity() int {
	return s.table.Capacity()
}

// Stats reports the current occupancy snapshot.
func (s *Set[K]) Stats() Stats {
	return s.table.Stats()
}

// Compact evicts tombstones in place; see Table.Compact.
func (s *Set[K]) Compact() {
	s.table.Compact()
}

// Iterator returns a forward iterator over the set's members.
func (s *Set[K]) Iterator() *Iterator[K, struct{}] {
	return s.table.Iterator()
}
