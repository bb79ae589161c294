package playout

import "goboard/board"

// pattern is a compiled 3x3 neighborhood test around a candidate vertex,
// stored in (N, NE, E, SE, S, SW, W, NW) order to match board.Board's
// EightNeighbors. Each slot holds one of the symbols below; 'friendly'
// and 'enemy' are resolved against the player to move when the pattern is
// matched, exactly like michi-go's X/O (own/opponent) pat3src table
// (other_examples/traveller42-michi-go__michi.go), adapted from michi's
// row-major 3x3 grid strings into the flat 8-neighbor order this engine
// uses everywhere else.
type patternSymbol byte

const (
	symAny         patternSymbol = '?' // don't care
	symEmpty       patternSymbol = '.'
	symFriendly    patternSymbol = 'X'
	symEnemy       patternSymbol = 'O'
	symNotFriendly patternSymbol = 'x' // enemy, empty, or off-board
	symNotEnemy    patternSymbol = 'o' // friendly, empty, or off-board
)

type pattern struct {
	name string
	// slots[i] tests EightNeighbors(v)[i].
	slots [8]patternSymbol
	// A pattern carries no separate reply: Policy.patternResponse plays
	// the matched candidate vertex itself, the empty center of the 3x3.
}

func (p pattern) matches(vals [8]board.Color, friendly, enemy board.Color) bool {
	for i, sym := range p.slots {
		c := vals[i]
		switch sym {
		case symAny:
			continue
		case symEmpty:
			if c != board.Empty {
				return false
			}
		case symFriendly:
			if c != friendly {
				return false
			}
		case symEnemy:
			if c != enemy {
				return false
			}
		case symNotFriendly:
			if c == friendly {
				return false
			}
		case symNotEnemy:
			if c == enemy {
				return false
			}
		}
	}
	return true
}

// compileMichi3x3 turns one of michi's row-major 3x3 pattern strings
// (top = NW,N,NE ; mid = W,center,E ; bottom = SW,S,SE, center unused
// since the candidate vertex is always the pattern's own empty center)
// into the (N,NE,E,SE,S,SW,W,NW) slot order used everywhere in this
// package.
func compileMichi3x3(name, top, mid, bottom string) pattern {
	sym := func(b byte) patternSymbol { return patternSymbol(b) }
	return pattern{
		name: name,
		slots: [8]patternSymbol{
			sym(top[1]),    // N
			sym(top[2]),    // NE
			sym(mid[2]),    // E
			sym(bottom[2]), // SE
			sym(bottom[1]), // S
			sym(bottom[0]), // SW
			sym(mid[0]),    // W
			sym(top[0]),    // NW
		},
	}
}

// patternTable is compiled once at package init from a subset of
// michi-go's pat3src hane/cut/attachment patterns -- the ones that need
// only the 3x3 neighborhood (michi's larger gridcular patterns require a
// trained probability table this module has no equivalent of, per spec
// section 4.4's "small fixed table" scope). Read-only after init, shared
// process-wide, per spec section 9's global-state rule.
var patternTable = []pattern{
	compileMichi3x3("hane-enclosing", "XOX", "...", "???"),
	compileMichi3x3("hane-noncutting", "XO.", "...", "?.?"),
	compileMichi3x3("attachment", ".O.", "X..", "..."),
	compileMichi3x3("cut-peeped", "XO?", "O.X", "???"),
	compileMichi3x3("cut2-de", "?X?", "O.O", "ooo"),
	compileMichi3x3("cut-keima", "OX?", "o.O", "???"),
}

// matchPattern returns the first table entry matching v's 3x3
// neighborhood for the player to move, and true, or the zero pattern and
// false if none match.
func matchPattern(b *board.Board, player board.Player, v board.Vertex) (pattern, bool) {
	friendly := player.Color()
	enemy := player.Opponent().Color()
	eight := b.EightNeighbors(v)
	var vals [8]board.Color
	for i, n := range eight {
		vals[i] = b.ColorAt(n)
	}
	for _, p := range patternTable {
		if p.matches(vals, friendly, enemy) {
			return p, true
		}
	}
	return pattern{}, false
}
