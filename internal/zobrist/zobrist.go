// Package zobrist generates the read-only, process-wide Zobrist tables
// used to hash board positions. Tables are cached by size (the padded
// grid's vertex count) and built once, deterministically, from a fixed
// seed so hashes are reproducible across processes -- the same contract
// TheKrainBow-gomoku's zobrist.go gives its transposition-table hashing,
// adapted here to Go's three-color-plus-border board.
package zobrist

import "sync"

// baseSeed anchors every table's splitmix64 stream. It has no
// significance beyond being a fixed, odd 64-bit constant.
const baseSeed = 0x9E3779B97F4A7C15

// Table holds the per-(vertex, color) keys for one board size. Color 0
// is Black, color 1 is White; Empty and OffBoard contribute nothing to a
// hash and have no key.
type Table struct {
	n    int
	keys []uint64 // [n*2], indexed vertex*2+colorIndex
}

// Key returns the XOR key for placing colorIndex (0=Black, 1=White) at
// the given padded-grid vertex index.
func (t *Table) Key(vertex int, colorIndex int) uint64 {
	return t.keys[vertex*2+colorIndex]
}

type store struct {
	mu     sync.Mutex
	tables map[int]*Table
}

var global = &store{tables: make(map[int]*Table)}

// For returns the Zobrist table for a padded grid with n vertices,
// building and caching it on first use. Safe for concurrent use; once
// built, a Table is never mutated, so reads from multiple goroutines
// never race.
func For(n int) *Table {
	global.mu.Lock()
	defer global.mu.Unlock()
	if t, ok := global.tables[n]; ok {
		return t
	}
	rng := splitmix64{state: baseSeed ^ uint64(n)}
	t := &Table{n: n, keys: make([]uint64, n*2)}
	for i := range t.keys {
		t.keys[i] = rng.next()
	}
	global.tables[n] = t
	return t
}

// splitmix64 is a small, fast, fixed-seed generator well suited to
// building lookup tables once at startup; it is not used anywhere on a
// hot path.
type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
