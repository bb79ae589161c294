// Package bench is the benchmark driver spec section 1 explicitly places
// outside the core ("external collaborator, not specified here") but
// section 6 still gives a contract for: Benchmark::run(n_playouts, seed)
// returning timing and move count. It is grounded on the teacher's own
// timing idiom in robot.GenMove (time.Now()/time.Since bracketing the
// work, then a *log.Logger.Printf reporting a rate) and on
// robot_bench_test.go's Benchmark9x9RandomGame/Benchmark19x19RandomGame,
// which reset a board and replay random games in a loop the same way
// Benchmark.Run replays playouts here.
package bench

import (
	"log"
	"os"
	"time"

	"goboard/board"
	"goboard/playout"
)

// Config configures a Benchmark, following the teacher's Config{Log}
// convention: a nil Log means "build the teacher's default stderr
// logger" rather than staying silent.
type Config struct {
	Board   board.Config
	Playout playout.Config
	Workers int
	Log     *log.Logger
}

func (c Config) normalized() Config {
	if c.Log == nil {
		c.Log = log.New(os.Stderr, "[goboard-bench] ", log.Ltime)
	}
	return c
}

// Result is what spec section 6's Benchmark::run contract promises:
// timing and move count, plus enough extra detail (captures, playouts
// that hit the move cap) that a caller can sanity-check the run without
// re-deriving it.
type Result struct {
	// Playouts is the number of playouts Run was asked to run.
	Playouts int
	// PlayoutsCompleted is spec section 4.5's playouts_completed counter,
	// read back from the pool that actually did the work rather than
	// echoing the requested count -- comparing it against Playouts is
	// how a caller would notice a run that stopped early.
	PlayoutsCompleted int64
	TotalMoves        int64
	TotalCaptures     int64
	CappedPlayouts    int
	Elapsed           time.Duration
}

// PlayoutsPerSecond is the headline throughput number the teacher's
// GenMove timing block logs.
func (r Result) PlayoutsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Playouts) / r.Elapsed.Seconds()
}

// MovesPerSecond reports raw board-move throughput, the number spec
// section 1's "millions of legal moves/sec" budget is actually about.
func (r Result) MovesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.TotalMoves) / r.Elapsed.Seconds()
}

// Benchmark runs nPlayouts full playouts from an empty board of the
// configured size and reports timing, using a playout.Pool sized to
// Workers (0 meaning runtime.NumCPU(), see playout.NewPool) --
// multirobot.go's one-robot-per-CPU idea, generalized to workers rather
// than physical cores.
type Benchmark struct {
	cfg Config
}

func New(cfg Config) *Benchmark {
	return &Benchmark{cfg: cfg.normalized()}
}

// Run plays nPlayouts independent playouts from an empty board, each
// seeded deterministically from seed, and reports aggregate timing.
func (bm *Benchmark) Run(nPlayouts int, seed uint64) Result {
	start := board.New(bm.cfg.Board)
	pool := playout.NewPool(bm.cfg.Workers, bm.cfg.Playout)

	jobs := make([]playout.Job, nPlayouts)
	for i := range jobs {
		jobs[i] = playout.Job{Start: start, Seed: seed + uint64(i)*0x9E3779B1}
	}

	startTime := time.Now()
	results := pool.Run(jobs)
	elapsed := time.Since(startTime)

	var totalMoves, totalCaptures int64
	capped := 0
	for _, res := range results {
		totalMoves += int64(res.Moves)
		totalCaptures += res.Captures
		if res.HitMoveCap {
			capped++
		}
	}
	result := Result{
		Playouts:          nPlayouts,
		PlayoutsCompleted: pool.PlayoutsCompleted(),
		TotalMoves:        totalMoves,
		TotalCaptures:     totalCaptures,
		CappedPlayouts:    capped,
		Elapsed:           elapsed,
	}
	bm.cfg.Log.Printf("playouts/sec: %.0f (moves/sec: %.0f, %d/%d hit the move cap)",
		result.PlayoutsPerSecond(), result.MovesPerSecond(), capped, nPlayouts)
	return result
}
