package playout

import (
	"testing"

	"goboard/board"
)

func findPattern(name string) pattern {
	for _, p := range patternTable {
		if p.name == name {
			return p
		}
	}
	panic("no such pattern: " + name)
}

func TestHaneEnclosingPatternSlots(t *testing.T) {
	p := findPattern("hane-enclosing")
	// N=O, NE=X, E=., SE=?, S=?, SW=?, W=., NW=X
	vals := [8]board.Color{
		board.White, board.Black, board.Empty, board.Empty,
		board.Empty, board.Empty, board.Empty, board.Black,
	}
	if !p.matches(vals, board.Black, board.White) {
		t.Fatalf("expected hane-enclosing to match a textbook enclosing hane shape")
	}
	// Break it: NW is empty instead of friendly.
	vals[7] = board.Empty
	if p.matches(vals, board.Black, board.White) {
		t.Fatalf("pattern should not match once NW is no longer friendly")
	}
}

func TestAttachmentPatternSlots(t *testing.T) {
	p := findPattern("attachment")
	// .O. / X.. / ... -> N=O, NE=., E=., SE=., S=., SW=., W=X, NW=.
	vals := [8]board.Color{
		board.White, board.Empty, board.Empty, board.Empty,
		board.Empty, board.Empty, board.Black, board.Empty,
	}
	if !p.matches(vals, board.Black, board.White) {
		t.Fatalf("expected attachment pattern to match")
	}
}

func TestMatchPatternOnBoard(t *testing.T) {
	b := board.New(board.Config{Size: 9})
	center := b.VertexAt(4, 4)
	eight := b.EightNeighbors(center) // N, NE, E, SE, S, SW, W, NW

	b.Play(board.WhitePlayer, eight[0]) // N
	b.Play(board.BlackPlayer, eight[1]) // NE
	b.Play(board.BlackPlayer, eight[7]) // NW

	p, ok := matchPattern(b, board.BlackPlayer, center)
	if !ok {
		t.Fatalf("expected a pattern match at the candidate vertex")
	}
	if p.name != "hane-enclosing" {
		t.Fatalf("matched %q, want hane-enclosing", p.name)
	}
}
