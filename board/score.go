package board

// scoreScratch holds the reusable, allocation-free buffers ScoreArea needs
// to flood-fill empty regions. Sized once at board creation (initGeometry)
// and never regrown; a stamp/epoch pair stands in for a visited set that
// would otherwise need clearing before every call, the same "generation
// counter instead of memset" trick the teacher's neighborCounts init loop
// avoids by filling the border once up front.
type scoreScratch struct {
	stack []Vertex
	stamp []int32
	epoch int32
}

func (s *scoreScratch) init(total int) {
	s.stack = make([]Vertex, 0, total)
	s.stamp = make([]int32, total)
	s.epoch = 0
}

// ScoreArea implements spec 4.3's score_area: stones count for their own
// color, and every maximal empty region counts for whichever color borders
// it exclusively. A region bordering both colors (or neither, which only
// happens on an empty board) is dame and scores zero for both. Unlike the
// teacher's getEasyScore -- which only inspects an empty point's own four
// neighbors and is correct only once every empty region has shrunk to a
// single point -- this flood-fills the whole region, so it is correct at
// any point in the game, not just at a played-out terminal position.
func (b *Board) ScoreArea() (black, white int) {
	b.scratch.epoch++
	epoch := b.scratch.epoch
	stamp := b.scratch.stamp
	stack := b.scratch.stack[:0]

	for _, start := range b.realVertices {
		switch b.color[start] {
		case Black:
			black++
			continue
		case White:
			white++
			continue
		}
		if stamp[start] == epoch {
			continue
		}

		stamp[start] = epoch
		stack = append(stack, start)
		regionSize := 0
		sawBlack, sawWhite := false, false

		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			regionSize++

			for _, n := range b.Neighbors(v) {
				switch b.color[n] {
				case Black:
					sawBlack = true
				case White:
					sawWhite = true
				case Empty:
					if stamp[n] != epoch {
						stamp[n] = epoch
						stack = append(stack, n)
					}
				}
			}
		}

		switch {
		case sawBlack && !sawWhite:
			black += regionSize
		case sawWhite && !sawBlack:
			white += regionSize
		}
		// both or neither: dame, contributes to neither total.
	}

	b.scratch.stack = stack[:0]
	return black, white
}

// Winner reports which player has the higher score after komi is applied
// to White, and the margin in that player's favor. A tie (possible only
// with an integer komi) reports WhitePlayer per spec 4.4's tie-break rule.
func (b *Board) Winner() (winner Player, margin float64) {
	black, white := b.ScoreArea()
	whiteScore := float64(white) + *b.cfg.Komi
	blackScore := float64(black)
	if blackScore > whiteScore {
		return BlackPlayer, blackScore - whiteScore
	}
	return WhitePlayer, whiteScore - blackScore
}
