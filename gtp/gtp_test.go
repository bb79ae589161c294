package gtp

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"goboard/board"
	"goboard/selector"
)

func TestParseVertexRoundTrip(t *testing.T) {
	b := board.New(board.Config{Size: 9})
	cases := []string{"A1", "A9", "J9", "J5", "PASS", "pass"}
	for _, s := range cases {
		v, err := ParseVertex(s, b)
		if err != nil {
			t.Fatalf("ParseVertex(%q): %v", s, err)
		}
		if v == board.Pass {
			continue
		}
		back := FormatVertex(v, b)
		if !strings.EqualFold(back, s) {
			t.Fatalf("ParseVertex(%q) -> %v -> FormatVertex = %q, want %q", s, v, back, s)
		}
	}
}

func TestParseVertexSkipsLetterI(t *testing.T) {
	b := board.New(board.Config{Size: 9})
	h, err := ParseVertex("H1", b)
	if err != nil {
		t.Fatalf("H1: %v", err)
	}
	j, err := ParseVertex("J1", b)
	if err != nil {
		t.Fatalf("J1: %v", err)
	}
	_, hCol := b.RowCol(h)
	_, jCol := b.RowCol(j)
	if jCol != hCol+1 {
		t.Fatalf("J should be the column immediately after H (skipping I): H col=%d J col=%d", hCol, jCol)
	}
	if _, err := ParseVertex("I1", b); err == nil {
		t.Fatalf("expected I1 to be rejected, GTP coordinates skip the letter I")
	}
}

func TestParseVertexRejectsOffBoard(t *testing.T) {
	b := board.New(board.Config{Size: 9})
	if _, err := ParseVertex("K1", b); err == nil {
		t.Fatalf("K1 is off a 9x9 board, expected an error")
	}
}

func TestParseColor(t *testing.T) {
	for _, s := range []string{"b", "B", "black", "Black"} {
		if p, err := ParseColor(s); err != nil || p != board.BlackPlayer {
			t.Fatalf("ParseColor(%q) = %v, %v; want BlackPlayer, nil", s, p, err)
		}
	}
	for _, s := range []string{"w", "white"} {
		if p, err := ParseColor(s); err != nil || p != board.WhitePlayer {
			t.Fatalf("ParseColor(%q) = %v, %v; want WhitePlayer, nil", s, p, err)
		}
	}
	if _, err := ParseColor("purple"); err == nil {
		t.Fatalf("expected an error for an unrecognized color")
	}
}

func runGTP(t *testing.T, engine *Engine, script string) []string {
	t.Helper()
	var out bytes.Buffer
	if err := Run(engine, strings.NewReader(script), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(out.String()))
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestProtocolVersionAndName(t *testing.T) {
	engine := NewEngine(EngineConfig{Board: board.Config{Size: 9}})
	lines := runGTP(t, engine, "protocol_version\nname\nquit\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 responses, got %d: %v", len(lines), lines)
	}
	if lines[0] != "= 2" {
		t.Fatalf("protocol_version response = %q, want \"= 2\"", lines[0])
	}
	if lines[1] != "= goboard" {
		t.Fatalf("name response = %q, want \"= goboard\"", lines[1])
	}
}

func TestKnownCommand(t *testing.T) {
	engine := NewEngine(EngineConfig{Board: board.Config{Size: 9}})
	lines := runGTP(t, engine, "known_command play\nknown_command bogus\nquit\n")
	if lines[0] != "= true" {
		t.Fatalf("known_command play = %q, want \"= true\"", lines[0])
	}
	if lines[1] != "= false" {
		t.Fatalf("known_command bogus = %q, want \"= false\"", lines[1])
	}
}

func TestPlayAndShowBoard(t *testing.T) {
	engine := NewEngine(EngineConfig{Board: board.Config{Size: 5}})
	script := "play black C3\nplay white D3\nshowboard\nquit\n"
	var out bytes.Buffer
	if err := Run(engine, strings.NewReader(script), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	rendered := out.String()
	if !strings.Contains(rendered, "@") || !strings.Contains(rendered, "O") {
		t.Fatalf("expected showboard output to contain both stones, got:\n%s", rendered)
	}
}

func TestPlayIllegalMoveReportsFailure(t *testing.T) {
	engine := NewEngine(EngineConfig{Board: board.Config{Size: 5}})
	lines := runGTP(t, engine, "play black C3\nplay white C3\nquit\n")
	if lines[0] != "= " {
		t.Fatalf("first play should succeed, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "?") {
		t.Fatalf("playing on an occupied point should fail, got %q", lines[1])
	}
}

func TestGenMoveReturnsAVertexAndPlaysIt(t *testing.T) {
	engine := NewEngine(EngineConfig{
		Board:    board.Config{Size: 5},
		Selector: selector.Config{Playouts: 32, Workers: 1, Seed: 7},
	})
	lines := runGTP(t, engine, "genmove black\nquit\n")
	if !strings.HasPrefix(lines[0], "=") {
		t.Fatalf("genmove response = %q, want a success response", lines[0])
	}
	played := strings.TrimSpace(strings.TrimPrefix(lines[0], "="))
	if played == "" {
		t.Fatalf("genmove returned an empty vertex")
	}
	if played != "pass" {
		v, err := ParseVertex(played, engine.Board())
		if err != nil {
			t.Fatalf("genmove returned an unparsable vertex %q: %v", played, err)
		}
		if engine.Board().ColorAt(v) != board.Black {
			t.Fatalf("genmove reported %q but did not play a black stone there", played)
		}
	}
}

func TestUnknownCommandFails(t *testing.T) {
	engine := NewEngine(EngineConfig{Board: board.Config{Size: 9}})
	lines := runGTP(t, engine, "frobnicate\nquit\n")
	if !strings.HasPrefix(lines[0], "?") {
		t.Fatalf("unknown command should fail, got %q", lines[0])
	}
}

func TestListCommandsIsSorted(t *testing.T) {
	engine := NewEngine(EngineConfig{Board: board.Config{Size: 9}})
	var out bytes.Buffer
	if err := Run(engine, strings.NewReader("list_commands\nquit\n"), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// The response block is everything up to the blank line that ends it.
	block := strings.SplitN(out.String(), "\n\n", 2)[0]
	body := strings.TrimPrefix(block, "= ")
	names := strings.Split(body, "\n")
	if len(names) < 5 {
		t.Fatalf("expected several known commands, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("list_commands not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
