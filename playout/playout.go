// Package playout implements the Monte Carlo playout engine from spec
// section 4.4 on top of package board: it repeatedly samples a legal,
// non-eye-filling move for the side to move using Policy, until two
// consecutive passes or a move cap, then scores the result with
// board.Board.ScoreArea. It is the direct descendant of the teacher's
// robot.playRandomGame, generalized from a single hard-coded policy into
// the pattern/atari/uniform pipeline in policy.go and moved off the
// teacher's shared math/rand source onto a playout-owned RNG.
package playout

import "goboard/board"

// Config configures a Runner. The zero value already matches spec
// section 6's defaults: patterns enabled, move cap derived from the
// board size at Run time.
type Config struct {
	Policy PolicyConfig
	// MoveCap overrides spec section 6's default of 3*size*size when
	// positive.
	MoveCap int
}

// MoveRecord is one ply of a recorded playout: who moved and where.
// Produced by RunRecording for consumers (selector.Selector's all-moves-
// as-first scoring) that need the full move sequence, not just the
// outcome.
type MoveRecord struct {
	Player board.Player
	Vertex board.Vertex
}

// Result is what a completed playout reports: who won, by how much area,
// and how many moves (including passes) it took -- the fields
// bench.Benchmark and selector.Selector both read back. MoveList is nil
// unless the playout was run via RunRecording.
type Result struct {
	Winner     board.Player
	Margin     float64
	Moves      int
	Captures   int64
	Black      int
	White      int
	HitMoveCap bool
	MoveList   []MoveRecord
}

// Runner drives one playout at a time against a *board.Board it does not
// own (the caller, typically a Pool worker, owns the clone). A Runner
// holds no board-specific state itself, so it is cheap to construct per
// worker or reuse across many playouts on the same worker's board.
type Runner struct {
	cfg    Config
	policy Policy

	// PlayoutsCompleted is spec section 4.5's playouts_completed counter:
	// a plain integer field mutated by the core, incremented once per
	// finished Run/RunRecording call, and read by external benchmarks
	// the same way board.Board.MovesPlayed/Captures are. A Runner is
	// only ever driven by one goroutine at a time (see the type doc), so
	// this needs no synchronization -- Pool aggregates across workers
	// with its own atomically-updated counter instead.
	PlayoutsCompleted int64
}

func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg, policy: NewPolicy(cfg.Policy)}
}

// Run plays out b from its current position to termination, mutating it
// in place, and returns the result. b is left in a terminal state (two
// consecutive passes, unless the move cap was hit first).
func (r *Runner) Run(b *board.Board, rng *RNG) Result {
	result, _ := r.run(b, rng, nil)
	return result
}

// RunRecording behaves like Run but also appends every move played
// (including passes) to record, reusing its backing array the way a
// caller looping over many playouts would want (pass record[:0] each
// call). The returned Result's MoveList aliases the returned slice.
func (r *Runner) RunRecording(b *board.Board, rng *RNG, record []MoveRecord) (Result, []MoveRecord) {
	record = record[:0]
	if record == nil {
		// run only records into a non-nil slice.
		record = []MoveRecord{}
	}
	return r.run(b, rng, record)
}

func (r *Runner) run(b *board.Board, rng *RNG, record []MoveRecord) (Result, []MoveRecord) {
	moveCap := r.cfg.MoveCap
	if moveCap <= 0 {
		moveCap = 3 * b.Size() * b.Size()
	}

	capturesAtStart := b.Captures
	moves := 0
	for ; moves < moveCap; moves++ {
		if b.ConsecutivePasses() >= 2 {
			break
		}
		player := b.PlayerToMove()
		v := r.policy.SelectMove(b, player, rng)
		if record != nil {
			record = append(record, MoveRecord{Player: player, Vertex: v})
		}
		b.Play(player, v)
	}

	black, white := b.ScoreArea()
	winner, margin := b.Winner()
	result := Result{
		Winner:     winner,
		Margin:     margin,
		Moves:      moves,
		Captures:   b.Captures - capturesAtStart,
		Black:      black,
		White:      white,
		HitMoveCap: moves >= moveCap && b.ConsecutivePasses() < 2,
	}
	if record != nil {
		result.MoveList = record
	}
	r.PlayoutsCompleted++
	return result, record
}
