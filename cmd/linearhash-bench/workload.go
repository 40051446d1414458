package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/homier/linearhash"
)

// opKind names the synthetic operation a workload step performs.
type opKind int

const (
	opInsert opKind = iota
	opErase
	opFind
	opIndex
)

// Report is the JSON-serialisable summary of a completed workload run.
type Report struct {
	Capacity      int           `json:"capacity"`
	Strategy      string        `json:"strategy"`
	Operations    int           `json:"operations"`
	Seed          int64         `json:"seed"`
	Inserts       int           `json:"inserts"`
	InsertHits    int           `json:"insert_hits"`    //nolint:tagliatelle // snake_case for report file
	Erases        int           `json:"erases"`
	EraseHits     int           `json:"erase_hits"`     //nolint:tagliatelle // snake_case for report file
	Finds         int           `json:"finds"`
	FindHits      int           `json:"find_hits"`      //nolint:tagliatelle // snake_case for report file
	Indexes       int           `json:"indexes"`
	IndexInserts  int           `json:"index_inserts"`  //nolint:tagliatelle // snake_case for report file
	FinalSize     int           `json:"final_size"`     //nolint:tagliatelle // snake_case for report file
	FinalCapacity int           `json:"final_capacity"` //nolint:tagliatelle // snake_case for report file
	Tombstones    int           `json:"tombstones"`
	Elapsed       time.Duration `json:"elapsed_ns"` //nolint:tagliatelle // snake_case for report file
}

// opPicker draws weighted operation kinds from a seeded source, the
// same weighted-selection idiom the pack's synthetic workload
// generators use for their operation mixes.
type opPicker struct {
	rng  *rand.Rand
	pool []opKind
}

func newOpPicker(rng *rand.Rand, cfg Config) opPicker {
	pool := make([]opKind, 0, cfg.InsertWeight+cfg.EraseWeight+cfg.FindWeight+cfg.IndexWeight)

	for range cfg.InsertWeight {
		pool = append(pool, opInsert)
	}

	for range cfg.EraseWeight {
		pool = append(pool, opErase)
	}

	for range cfg.FindWeight {
		pool = append(pool, opFind)
	}

	for range cfg.IndexWeight {
		pool = append(pool, opIndex)
	}

	return opPicker{rng: rng, pool: pool}
}

func (p opPicker) next() opKind {
	return p.pool[p.rng.Intn(len(p.pool))]
}

// RunWorkload drives a linearhash.Table through cfg.Operations
// synthetic operations, drawn from a deterministic math/rand source
// seeded by cfg.Seed, and returns a summary Report.
func RunWorkload(cfg Config) (Report, error) {
	var strategy linearhash.DeletionStrategy

	switch cfg.Strategy {
	case "tombstone":
		strategy = linearhash.StrategyTombstone
	case "rehash":
		strategy = linearhash.StrategyRehash
	default:
		return Report{}, fmt.Errorf("%w: unknown strategy %q", errInvalidConfig, cfg.Strategy)
	}

	tbl := linearhash.New[int, int](
		linearhash.WithInitialCapacity[int, int](cfg.Capacity),
		linearhash.WithDeletionStrategy[int, int](strategy),
	)

	rng := rand.New(rand.NewSource(cfg.Seed))
	picker := newOpPicker(rng, cfg)

	report := Report{
		Capacity:   cfg.Capacity,
		Strategy:   cfg.Strategy,
		Operations: cfg.Operations,
		Seed:       cfg.Seed,
	}

	start := time.Now()

	for i := 0; i < cfg.Operations; i++ {
		key := rng.Intn(cfg.KeySpace)

		switch picker.next() {
		case opInsert:
			report.Inserts++

			if tbl.Insert(key, i) {
				report.InsertHits++
			}
		case opErase:
			report.Erases++

			if tbl.Erase(key) {
				report.EraseHits++
			}
		case opFind:
			report.Finds++

			if _, ok := tbl.Get(key); ok {
				report.FindHits++
			}
		case opIndex:
			report.Indexes++

			if _, inserted := tbl.GetOrInsert(key); inserted {
				report.IndexInserts++
			}
		}
	}

	report.Elapsed = time.Since(start)
	report.FinalSize = tbl.Size()
	report.FinalCapacity = tbl.Capacity()
	report.Tombstones = tbl.Stats().Tombstones

	return report, nil
}
