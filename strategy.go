package linearhash

// DeletionStrategy selects how Table.Erase reclaims a slot. It is
// fixed for the Table's lifetime (see Option WithDeletionStrategy).
type DeletionStrategy uint8

const (
	// StrategyRehash repairs the probe chain in place on every erase
	// (backward-shift deletion, §4.3.1). It never leaves a tombstone
	// behind, at the cost of doing O(cluster length) work per erase.
	StrategyRehash DeletionStrategy = iota

	// StrategyTombstone marks an erased slot DELETED and leaves the
	// rest of the probe chain untouched (§4.3.2). Erase is O(1), but
	// lookups degrade as tombstones accumulate; call Compact to evict
	// them in place, or grow the table to clear them for free.
	StrategyTombstone
)

// deletionStrategy is the strategy abstraction from §4.3 and §9: a
// runtime variant (rather than a type parameter) so that Table's
// exported API does not need to carry the strategy as a third type
// parameter. Both implementations are zero-size and allocate nothing
// when boxed into the interface field.
type deletionStrategy[K comparable, V any] interface {
	// bitsPerSlot is the metadata field width: 1 for rehash, 2 for
	// tombstone (the extra bit encodes DELETED).
	bitsPerSlot() uint

	// insertable reports whether a slot in the given state may be
	// claimed by addNew's probe walk.
	insertable(state uint8) bool

	// erase performs the strategy-specific fixup for slot i after its
	// key and value have already been zeroed by the caller. Any home
	// slots needed for rehash's walk are recomputed from the keys.
	erase(t *Table[K, V], i uintptr)
}

type rehashStrategy[K comparable, V any] struct{}

func (rehashStrategy[K, V]) bitsPerSlot() uint { return 1 }

func (rehashStrategy[K, V]) insertable(state uint8) bool { return state == stateEmpty }

// erase implements §4.3.1's backward-shift deletion: slot i becomes
// EMPTY, then every following entry in the cluster that would not be
// reachable from its own home slot past the new hole is shifted back
// to fill it, walking the hole forward until a genuinely EMPTY slot is
// met.
func (rehashStrategy[K, V]) erase(t *Table[K, V], i uintptr) {
	mask := t.capacityMask
	t.setState(i, stateEmpty)

	j := (i + 1) & mask

	for {
		if t.getState(j) == stateEmpty {
			return
		}

		home := t.home(t.keys[j])

		var shiftable bool
		if i <= j {
			shiftable = !(i < home && home <= j)
		} else {
			shiftable = !(i < home || home <= j)
		}

		if !shiftable {
			j = (j + 1) & mask

			continue
		}

		t.keys[i] = t.keys[j]
		t.values[i] = t.values[j]
		t.setState(i, stateOccupied)
		t.setState(j, stateEmpty)

		var zeroKey K

		var zeroValue V

		t.keys[j] = zeroKey
		t.values[j] = zeroValue

		i = j
		j = (i + 1) & mask
	}
}

type tombstoneStrategy[K comparable, V any] struct{}

func (tombstoneStrategy[K, V]) bitsPerSlot() uint { return 2 }

func (tombstoneStrategy[K, V]) insertable(state uint8) bool {
	return state == stateEmpty || state == stateDeleted
}

// erase implements §4.3.2: mark the slot DELETED so the probe chain
// through it stays intact, and track the tombstone for Stats/Compact.
func (tombstoneStrategy[K, V]) erase(t *Table[K, V], i uintptr) {
	t.setState(i, stateDeleted)
	t.tombstones++
}
