package playout

import "goboard/board"

// PolicyConfig configures a Policy, mirroring the teacher's
// Config{Randomness} pattern of a small options struct with a sensible
// zero value.
type PolicyConfig struct {
	// DisablePatterns turns off the 3x3 pattern-response step. Left
	// false, patterns are enabled -- spec section 6's enable_patterns
	// default -- so PolicyConfig{} is already the recommended policy.
	DisablePatterns bool
}

// Policy implements the move-sampling policy from spec section 4.4:
// pattern response, then atari capture/escape, then uniform legal move,
// then pass. It holds no board-specific state, so one Policy value can be
// shared read-only across every worker in a Pool.
type Policy struct {
	cfg PolicyConfig
}

func NewPolicy(cfg PolicyConfig) Policy { return Policy{cfg: cfg} }

// SelectMove picks player's next move on b, using rng for every random
// decision. It never mutates b.
func (p Policy) SelectMove(b *board.Board, player board.Player, rng *RNG) board.Vertex {
	last := b.LastMove()

	if !p.cfg.DisablePatterns && last != board.Pass && last != board.Resign {
		if v, ok := p.patternResponse(b, player, last, rng); ok {
			return v
		}
	}

	if last != board.Pass && last != board.Resign {
		if v, ok := p.atariResponse(b, player, last); ok {
			return v
		}
	}

	if v, ok := p.uniformLegalMove(b, player, rng); ok {
		return v
	}
	return board.Pass
}

// patternResponse checks the up-to-eight vertices around the opponent's
// last move for a 3x3 pattern match, per spec section 4.4 step 1. The
// starting offset among the eight is randomized so the policy doesn't
// always prefer, say, the northern candidate when several match.
func (p Policy) patternResponse(b *board.Board, player board.Player, last board.Vertex, rng *RNG) (board.Vertex, bool) {
	candidates := b.EightNeighbors(last)
	start := rng.Intn(8)
	for i := 0; i < 8; i++ {
		v := candidates[(start+i)%8]
		if b.ColorAt(v) != board.Empty {
			continue
		}
		if _, ok := matchPattern(b, player, v); !ok {
			continue
		}
		if IsTrueEye(b, player, v) {
			continue
		}
		if b.IsLegal(player, v) {
			return v, true
		}
	}
	return board.Pass, false
}

// atariResponse implements spec section 4.4 step 2: capture an enemy
// chain the last move left in atari, or extend a friendly chain the last
// move just reduced to atari. Both cases only need to look at chains
// touching last, since that vertex is the only thing that just changed.
func (p Policy) atariResponse(b *board.Board, player board.Player, last board.Vertex) (board.Vertex, bool) {
	friendly := player.Color()
	enemy := player.Opponent().Color()

	var escapeVertex board.Vertex = board.NoKo
	haveEscape := false

	for _, n := range b.Neighbors(last) {
		root, ok := b.ChainAt(n)
		if !ok {
			continue
		}
		switch b.ColorAt(n) {
		case enemy:
			if lib, inAtari := b.AtariVertex(root); inAtari {
				if IsTrueEye(b, player, lib) {
					continue
				}
				if b.IsLegal(player, lib) {
					return lib, true // capturing takes priority over escaping
				}
			}
		case friendly:
			if lib, inAtari := b.AtariVertex(root); inAtari && !haveEscape {
				escapeVertex, haveEscape = lib, true
			}
		}
	}
	if haveEscape && !IsTrueEye(b, player, escapeVertex) && b.IsLegal(player, escapeVertex) {
		return escapeVertex, true
	}
	return board.Pass, false
}

// uniformLegalMove implements spec section 4.4 step 3: a random starting
// index into the vertex list, then a linear walk taking the first
// candidate that is legal and does not fill a true eye.
func (p Policy) uniformLegalMove(b *board.Board, player board.Player, rng *RNG) (board.Vertex, bool) {
	vertices := b.Vertices()
	n := len(vertices)
	start := rng.Intn(n)
	for i := 0; i < n; i++ {
		v := vertices[(start+i)%n]
		if b.ColorAt(v) != board.Empty {
			continue
		}
		if IsTrueEye(b, player, v) {
			continue
		}
		if b.IsLegal(player, v) {
			return v, true
		}
	}
	return board.Pass, false
}
