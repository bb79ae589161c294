package board

// Clone returns a deep copy of b, independent of it under further play.
// Grounded on the teacher's multirobot.copyFrom, which kept one *robot per
// OS thread and refreshed each from the master by copying slices rather
// than reconstructing state; here it is the constructor half of that
// pattern, used by playout.Pool to hand each worker goroutine its own
// board instead of sharing the single-owner value spec 5 requires.
func (b *Board) Clone() *Board {
	c := &Board{cfg: b.cfg, size: b.size, stride: b.stride, total: b.total}
	// cfg.Komi is a *float64 the struct copy above just aliased with b's;
	// give c its own so SetKomi on one board never mutates the other's.
	komi := *b.cfg.Komi
	c.cfg.Komi = &komi
	c.dirOffset = b.dirOffset
	c.diagOffset = b.diagOffset
	c.zob = b.zob // process-wide read-only table, safe to share

	c.color = append([]Color(nil), b.color...)
	c.realVertices = append([]Vertex(nil), b.realVertices...)
	c.history = append([]uint64(nil), b.history...)

	c.chains = chainSet{
		parent:   append([]Vertex(nil), b.chains.parent...),
		ring:     append([]Vertex(nil), b.chains.ring...),
		size:     append([]int32(nil), b.chains.size...),
		libs:     append([]int32(nil), b.chains.libs...),
		libSum:   append([]int64(nil), b.chains.libSum...),
		libSumSq: append([]int64(nil), b.chains.libSumSq...),
		any:      append([]Vertex(nil), b.chains.any...),
	}
	c.scratch.init(c.total)

	c.hsh = b.hsh
	c.koVertex = b.koVertex
	c.toMove = b.toMove
	c.lastMove = b.lastMove
	c.consecutivePasses = b.consecutivePasses
	c.MovesPlayed = b.MovesPlayed
	c.Captures = b.Captures
	return c
}

// CopyFrom overwrites b in place with other's position, reusing b's
// existing slices instead of allocating new ones. Panics if the two
// boards were not constructed with the same size, matching the teacher's
// copyFrom precondition that source and destination robots share a
// boardSize. Intended for a worker that resets its cloned board to a new
// starting position every playout without re-allocating.
func (b *Board) CopyFrom(other *Board) {
	if b.total != other.total {
		panic("board: CopyFrom size mismatch")
	}
	copy(b.color, other.color)
	b.history = append(b.history[:0], other.history...)

	copy(b.chains.parent, other.chains.parent)
	copy(b.chains.ring, other.chains.ring)
	copy(b.chains.size, other.chains.size)
	copy(b.chains.libs, other.chains.libs)
	copy(b.chains.libSum, other.chains.libSum)
	copy(b.chains.libSumSq, other.chains.libSumSq)
	copy(b.chains.any, other.chains.any)

	b.hsh = other.hsh
	b.koVertex = other.koVertex
	b.toMove = other.toMove
	b.lastMove = other.lastMove
	b.consecutivePasses = other.consecutivePasses
	b.MovesPlayed = other.MovesPlayed
	b.Captures = other.Captures
}
