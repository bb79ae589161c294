package playout

import "goboard/board"

// IsTrueEye implements the eye rule from spec section 4.4, the same test
// the teacher's wouldFillEye runs before letting playRandomGame consider a
// candidate, generalized from the teacher's single-color-parity board to
// board.Board and cross-checked against michi-go's is_eyeish/is_eye
// (other_examples/traveller42-michi-go__michi.go), which score the same
// rule as "0 diagonal enemies allowed at the edge, 1 allowed in the
// center".
//
// v is a true eye for player iff every orthogonal neighbor is player's
// color or off-board, and among the (up to four) diagonal neighbors, the
// number of opponent stones plus (0 or 1, whether or not any diagonal is
// off-board at all) is at most 1: one opponent diagonal is tolerated
// away from the edge, none at the edge or in a corner.
func IsTrueEye(b *board.Board, player board.Player, v board.Vertex) bool {
	if v == board.Pass {
		return false
	}
	friendly := player.Color()
	enemy := player.Opponent().Color()

	if b.ColorAt(v) != board.Empty {
		return false
	}
	for _, n := range b.Neighbors(v) {
		c := b.ColorAt(n)
		if c != friendly && c != board.OffBoard {
			return false
		}
	}

	// haveEdge is a flag, not a count: one off-board diagonal tolerates
	// the same zero enemy diagonals as two or three would, matching the
	// teacher's wouldFillEye (it assigns haveEdge = 1, never increments).
	haveEdge := 0
	enemyDiagonals := 0
	for _, d := range b.DiagonalNeighbors(v) {
		switch b.ColorAt(d) {
		case enemy:
			enemyDiagonals++
		case board.OffBoard:
			haveEdge = 1
		}
	}
	return enemyDiagonals+haveEdge < 2
}
