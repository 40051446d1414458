// Package linearhash implements a generic open-addressed hash table
// with linear probing. Keys and values are stored in parallel arrays
// alongside a compact bitmap of per-slot states; a small table starts
// out using storage embedded in the Table value and migrates to the
// heap only once it outgrows that inline buffer.
//
// Two interchangeable deletion strategies are available: rehash-based
// backward-shift deletion (StrategyRehash), which never leaves
// tombstones behind, and tombstone-marker deletion (StrategyTombstone),
// which is cheaper per erase but degrades lookups as tombstones
// accumulate unless Compact is called.
//
// Table is not safe for concurrent use; callers that mutate a Table
// from more than one goroutine must provide their own synchronisation.
package linearhash
