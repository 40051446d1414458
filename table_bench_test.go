package linearhash

import "testing"

func setupBenchKeys(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range n {
		keys[i] = uint64(i * 1234567)
	}

	return keys
}

func BenchmarkTable_Get(b *testing.B) {
	const capacity = 8192

	keys := setupBenchKeys(capacity / 2)
	tbl := New[uint64, uint64](WithInitialCapacity[uint64, uint64](capacity))

	for _, k := range keys {
		tbl.Insert(k, k)
	}

	for i := 0; b.Loop(); i++ {
		tbl.Get(uint64(i))
	}
}

func BenchmarkStdMap_Get(b *testing.B) {
	const capacity = 8192

	keys := setupBenchKeys(capacity / 2)
	m := make(map[uint64]uint64, capacity)

	for _, k := range keys {
		m[k] = k
	}

	for i := 0; b.Loop(); i++ {
		_ = m[uint64(i)]
	}
}

func BenchmarkTable_Insert(b *testing.B) {
	const capacity = 8192

	keys := setupBenchKeys(capacity)
	tbl := New[uint64, uint64](WithInitialCapacity[uint64, uint64](capacity))

	for i := 0; b.Loop(); i++ {
		if 2*tbl.Size() >= tbl.Capacity() {
			b.StopTimer()
			tbl.Clear()
			b.StartTimer()
		}

		tbl.Insert(keys[i%len(keys)], keys[i%len(keys)])
	}
}

func BenchmarkStdMap_Insert(b *testing.B) {
	const capacity = 8192

	keys := setupBenchKeys(capacity)
	m := make(map[uint64]uint64, capacity)

	for i := 0; b.Loop(); i++ {
		if len(m) >= capacity*3/4 {
			b.StopTimer()

			for k := range m {
				delete(m, k)
			}

			b.StartTimer()
		}

		m[keys[i%len(keys)]] = keys[i%len(keys)]
	}
}

func BenchmarkTable_EraseRehash(b *testing.B) {
	const capacity = 8192

	keys := setupBenchKeys(capacity / 2)
	tbl := New[uint64, uint64](WithInitialCapacity[uint64, uint64](capacity))

	for _, k := range keys {
		tbl.Insert(k, k)
	}

	for i := 0; b.Loop(); i++ {
		k := keys[i%len(keys)]

		if !tbl.Erase(k) {
			tbl.Insert(k, k)
		} else {
			tbl.Insert(k, k)
		}
	}
}

func BenchmarkTable_EraseTombstone(b *testing.B) {
	const capacity = 8192

	keys := setupBenchKeys(capacity / 2)
	tbl := New[uint64, uint64](
		WithInitialCapacity[uint64, uint64](capacity),
		WithDeletionStrategy[uint64, uint64](StrategyTombstone),
	)

	for _, k := range keys {
		tbl.Insert(k, k)
	}

	for i := 0; b.Loop(); i++ {
		k := keys[i%len(keys)]

		if !tbl.Erase(k) {
			tbl.Insert(k, k)
		} else {
			tbl.Insert(k, k)
		}

		if tbl.Stats().TombstonesCapacityRatio > 0.5 {
			b.StopTimer()
			tbl.Compact()
			b.StartTimer()
		}
	}
}
