package linearhash

// Stats is a snapshot of a Table's occupancy for diagnostics, ported
// from the teacher's table.Stats(). Under StrategyRehash, Tombstones
// is always 0 (section 4.3.1 never produces a DELETED state).
type Stats struct {
	Size                    int
	Capacity                int
	Tombstones              int
	TombstonesCapacityRatio float64
	TombstonesSizeRatio     float64
}

// Stats reports the current occupancy snapshot.
func (t *Table[K, V]) Stats() Stats {
	var tombstonesCapacityRatio, tombstonesSizeRatio float64

	if t.capacity > 0 {
		tombstonesCapacityRatio = float64(t.tombstones) / float64(t.capacity)
	}

	if t.size > 0 {
		tombstonesSizeRatio = float64(t.tombstones) / float64(t.size)
	}

	return Stats{
		Size:                    int(t.size),
		Capacity:                int(t.capacity),
		Tombstones:              int(t.tombstones),
		TombstonesCapacityRatio: tombstonesCapacityRatio,
		TombstonesSizeRatio:     tombstonesSizeRatio,
	}
}

// Compact evicts tombstones in place, without growing the table. It is
// a no-op under StrategyRehash (which never produces tombstones) and
// when there is nothing to compact.
//
// The algorithm is ported from the teacher's table.Compact(): every
// OCCUPIED slot is first marked with the DELETED bit pattern as a
// transient "needs rehoming" marker, and every real tombstone is
// dropped to EMPTY. Each transient entry is then reinserted by linear
// probing for the first slot that is not a finalized OCCUPIED entry;
// landing on another not-yet-placed entry swaps the two and continues
// from the same index so the displaced entry gets its own turn.
func (t *Table[K, V]) Compact() {
	if t.strategy != StrategyTombstone || t.tombstones == 0 {
		return
	}

	const needsRehome = stateDeleted

	for i := uintptr(0); i < t.capacity; i++ {
		switch t.getState(i) {
		case stateOccupied:
			t.setState(i, needsRehome)
		case stateDeleted:
			t.setState(i, stateEmpty)
		}
	}

	mask := t.capacityMask

	for j := uintptr(0); j < t.capacity; j++ {
		if t.getState(j) != needsRehome {
			continue
		}

		key := t.keys[j]
		value := t.values[j]
		home := t.home(key)

		target := home
		for t.getState(target) == stateOccupied {
			target = (target + 1) & mask
		}

		switch {
		case target == j:
			t.setState(j, stateOccupied)
		case t.getState(target) == stateEmpty:
			t.keys[target] = key
			t.values[target] = value
			t.setState(target, stateOccupied)
			t.setState(j, stateEmpty)

			var zeroKey K

			var zeroValue V

			t.keys[j] = zeroKey
			t.values[j] = zeroValue
		default:
			// target also holds a not-yet-placed entry: swap and
			// re-examine j, which now holds that displaced entry.
			t.keys[j], t.keys[target] = t.keys[target], t.keys[j]
			t.values[j], t.values[target] = t.values[target], t.values[j]
			t.setState(target, stateOccupied)

			j--
		}
	}

	t.tombstones = 0
}
