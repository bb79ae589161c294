// Package board implements the single-owner, allocation-free board
// representation described for the core Go (Baduk) engine: occupancy,
// chains with pseudo-liberty accounting, Zobrist hashing, ko/super-ko,
// legality and area scoring. Nothing here blocks, allocates on the hot
// path (after New), or touches any shared mutable state; a *Board is a
// value owned by exactly one goroutine at a time, the same discipline
// the teacher's robot/board pair used for one-board-per-worker.
package board

import (
	"goboard/internal/zobrist"
)

const (
	// MinSize and MaxSize bound the board sizes this package supports.
	// 25 matches the largest size the GTP protocol itself ever specifies.
	MinSize = 1
	MaxSize = 25
)

// Config configures a new Board. The zero value is not usable directly;
// use DefaultConfig or New, which fills in zero fields the same way the
// teacher's gongo.Config treats a zero SampleCount/Log as "use default".
type Config struct {
	// Size is the board's side length. Supported: 1..25 (9, 13, 19 are
	// the sizes the rest of the engine is tuned for). Zero is never a
	// meaningful board size, so it doubles as "use the default".
	Size int
	// Komi is added to White's area score when comparing for a winner.
	// Unlike Size, zero komi is a legitimate Go-rules setting, so the
	// usual "zero field means use the default" idiom the rest of this
	// struct uses would silently reject it: Komi is a pointer so nil
	// (not 0) means "use the default". Use the Komi helper for a
	// concise literal, e.g. Config{Size: 19, Komi: board.Komi(7.5)}.
	Komi *float64
	// SuperKoWindow controls how many recent positions are checked for
	// positional super-ko:
	//   0  -- unbounded (check the whole retained game, the spec default)
	//   >0 -- check only the last SuperKoWindow positions
	//   <0 -- disable positional super-ko; only simple ko is enforced
	SuperKoWindow int
	// EnforceTurnOrder rejects a play_legal call whose player does not
	// match PlayerToMove with WrongTurn. Per spec section 7 this defaults
	// to off: most callers (GTP peers setting up a position, playouts
	// that already know whose turn it is) don't want it.
	EnforceTurnOrder bool
}

// Komi returns a pointer to v, for use in a Config literal. A small
// helper rather than requiring every caller to spell out a local
// variable just to take its address.
func Komi(v float64) *float64 { return &v }

// DefaultConfig returns the spec's default configuration for a 19x19 board.
func DefaultConfig() Config {
	return Config{Size: 19, Komi: Komi(7.5), SuperKoWindow: 0}
}

func (c Config) normalized() Config {
	if c.Size == 0 {
		c.Size = 19
	}
	// Copy the komi value into a pointer this Board owns outright: c.Komi
	// may point at a caller-owned float64 (or be shared across several
	// Config values), and Board.SetKomi mutates through this pointer, so
	// aliasing it would let one board's SetKomi silently change another's
	// komi.
	komi := 7.5
	if c.Komi != nil {
		komi = *c.Komi
	}
	c.Komi = &komi
	return c
}

// Board is the core engine state. See package doc for the ownership model.
type Board struct {
	cfg Config

	size   int
	stride int // size + 2, padded for an off-board border
	total  int // stride * stride

	color []Color
	// realVertices lists every in-bounds vertex once, used by scans that
	// must touch the whole board (clear, scoring) but never the hot path.
	realVertices []Vertex

	dirOffset  [4]Vertex // N, S, E, W
	diagOffset [4]Vertex // NE, NW, SE, SW

	chains chainSet

	zob *zobrist.Table
	hsh uint64

	koVertex Vertex

	// history holds the hash recorded after every move (including
	// passes), used for positional super-ko. Bounded by cfg.SuperKoWindow
	// when positive.
	history []uint64

	toMove         Player
	lastMove       Vertex
	consecutivePasses int

	// Performance counters, per spec section 4.5: plain fields mutated
	// by the core and read by external benchmarks.
	MovesPlayed int64
	Captures    int64

	// scratch holds reusable scoring-only buffers so ScoreArea never
	// allocates; see score.go.
	scratch scoreScratch
}

// New constructs an empty board per cfg. An invalid size is a programmer
// error (mirrors the teacher's clearBoard, which just returns false; we
// panic instead since size is a construction-time argument, not runtime
// input from a GTP peer -- GTP-level validation lives in package gtp).
func New(cfg Config) *Board {
	cfg = cfg.normalized()
	if cfg.Size < MinSize || cfg.Size > MaxSize {
		panic("board: size out of range")
	}
	b := &Board{cfg: cfg}
	b.initGeometry(cfg.Size)
	b.Clear()
	return b
}

func (b *Board) initGeometry(size int) {
	b.size = size
	b.stride = size + 2
	b.total = b.stride * b.stride

	b.dirOffset = [4]Vertex{
		Vertex(-b.stride), // N
		Vertex(b.stride),  // S
		Vertex(1),         // E
		Vertex(-1),        // W
	}
	b.diagOffset = [4]Vertex{
		Vertex(-b.stride + 1), // NE
		Vertex(-b.stride - 1), // NW
		Vertex(b.stride + 1),  // SE
		Vertex(b.stride - 1),  // SW
	}

	b.color = make([]Color, b.total)
	b.chains = newChainSet(b.total)
	b.realVertices = make([]Vertex, 0, size*size)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			b.realVertices = append(b.realVertices, b.VertexAt(row, col))
		}
	}

	b.zob = zobrist.For(b.total)
	b.scratch.init(b.total)
	b.history = make([]uint64, 0, size*size*3)
}

// VertexAt converts 0-indexed board coordinates to a Vertex.
func (b *Board) VertexAt(row, col int) Vertex {
	return Vertex((row+1)*b.stride + (col + 1))
}

// RowCol converts a real Vertex back to 0-indexed board coordinates.
func (b *Board) RowCol(v Vertex) (row, col int) {
	row = int(v)/b.stride - 1
	col = int(v)%b.stride - 1
	return
}

// Size returns the board's side length.
func (b *Board) Size() int { return b.size }

// Vertices returns every real (in-bounds) vertex, in row-major order. The
// returned slice is owned by the board and must not be modified; callers
// that need to shuffle or index into it (the playout policy's uniform
// sampling step) should copy or index by a separately-owned permutation.
func (b *Board) Vertices() []Vertex { return b.realVertices }

// Komi returns the configured komi.
func (b *Board) Komi() float64 { return *b.cfg.Komi }

// SetKomi changes the komi added to White's score by Winner/ScoreArea,
// without disturbing the current position. GTP peers send komi at any
// point in a session, including mid-game. b.cfg.Komi is always non-nil
// and board-owned after normalized(), so this never allocates or
// touches a pointer shared with the Config the caller passed to New.
func (b *Board) SetKomi(komi float64) { *b.cfg.Komi = komi }

// Clear resets the board to an empty starting position. Black moves first.
func (b *Board) Clear() {
	for i := range b.color {
		b.color[i] = OffBoard
	}
	for _, v := range b.realVertices {
		b.color[v] = Empty
	}
	b.chains.resetAll()
	b.hsh = 0
	b.koVertex = NoKo
	b.history = b.history[:0]
	b.toMove = BlackPlayer
	b.lastMove = Pass
	b.consecutivePasses = 0
	b.MovesPlayed = 0
	b.Captures = 0
}

// ColorAt returns the occupancy of v. Off-board and out-of-range vertices
// both report OffBoard, matching the padded-grid trick from spec 4.1.
func (b *Board) ColorAt(v Vertex) Color {
	if v < 0 || int(v) >= len(b.color) {
		return OffBoard
	}
	return b.color[v]
}

// Hash returns the current positional Zobrist hash.
func (b *Board) Hash() uint64 { return b.hsh }

// Ko returns the current simple-ko point, or NoKo if none is active.
func (b *Board) Ko() Vertex { return b.koVertex }

// LastMove returns the most recently played vertex (may be Pass).
func (b *Board) LastMove() Vertex { return b.lastMove }

// PlayerToMove returns whose turn it is.
func (b *Board) PlayerToMove() Player { return b.toMove }

// ConsecutivePasses returns how many passes have been played in a row.
func (b *Board) ConsecutivePasses() int { return b.consecutivePasses }

// Neighbors returns v's four orthogonal neighbors in (N, S, E, W) order.
// Off-board neighbors are included (as OffBoard vertices past the real
// grid); callers check ColorAt.
func (b *Board) Neighbors(v Vertex) [4]Vertex {
	return [4]Vertex{v + b.dirOffset[0], v + b.dirOffset[1], v + b.dirOffset[2], v + b.dirOffset[3]}
}

// DiagonalNeighbors returns v's four diagonal neighbors in (NE, NW, SE, SW) order.
func (b *Board) DiagonalNeighbors(v Vertex) [4]Vertex {
	return [4]Vertex{v + b.diagOffset[0], v + b.diagOffset[1], v + b.diagOffset[2], v + b.diagOffset[3]}
}

// EightNeighbors returns all eight neighbors of v in (N, NE, E, SE, S, SW, W, NW) order.
func (b *Board) EightNeighbors(v Vertex) [8]Vertex {
	n := b.Neighbors(v)
	d := b.DiagonalNeighbors(v)
	return [8]Vertex{n[0], d[0], n[2], d[2], n[1], d[3], n[3], d[1]}
}
