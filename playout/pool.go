package playout

import (
	"runtime"
	"sync"
	"sync/atomic"

	"goboard/board"
)

// Pool runs playouts concurrently, generalizing the teacher's multirobot
// (multirobot.go: one *robot per runtime.NumCPU(), each refreshed from the
// master via copyFrom before a move) into "one goroutine per worker, one
// board clone per goroutine". The board's single-owner-per-goroutine rule
// (spec section 5) rules out multirobot's original shape of sharing
// slave structs across calls from a single caller thread; a channel-fed
// worker pool gives the same "N independent boards processing playouts
// in parallel" result using Go's native concurrency primitives instead.
type Pool struct {
	workers int
	cfg     Config

	// completed is spec section 4.5's playouts_completed counter,
	// aggregated across every worker goroutine. Unlike Runner's own
	// per-worker field, this one is genuinely shared mutable state (many
	// worker goroutines increment it concurrently), so it is the one
	// counter in this module that needs sync/atomic -- board.Board and
	// Runner stay single-owner and atomic-free per spec section 5.
	completed int64
}

// NewPool creates a pool of workers goroutines, each running its own
// Runner built from cfg. workers <= 0 defaults to runtime.NumCPU(),
// matching multirobot's "one slave per CPU" sizing.
func NewPool(workers int, cfg Config) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers, cfg: cfg}
}

// PlayoutsCompleted reports how many playouts this pool has finished so
// far. Safe to call concurrently with Run, so a caller holding a *Pool
// across a long Run call can poll it for progress.
func (p *Pool) PlayoutsCompleted() int64 {
	return atomic.LoadInt64(&p.completed)
}

// Job is one playout to run: a starting position (read-only -- the
// worker clones or copies into its own board, Start is never mutated)
// and the seed for that playout's RNG. Setting Record asks the worker to
// also fill in Result.MoveList (see RunRecording).
type Job struct {
	Start  *board.Board
	Seed   uint64
	Record bool
}

// Run executes jobs across the pool's workers and returns one Result per
// job, aligned by index with the input slice. Blocks until every job has
// completed.
func (p *Pool) Run(jobs []Job) []Result {
	results := make([]Result, len(jobs))
	indices := make(chan int)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		runner := NewRunner(p.cfg)
		var scratch *board.Board
		var record []MoveRecord
		for idx := range indices {
			job := jobs[idx]
			if scratch == nil {
				scratch = job.Start.Clone()
			} else {
				scratch.CopyFrom(job.Start)
			}
			rng := NewRNG(job.Seed)
			if job.Record {
				var res Result
				res, record = runner.RunRecording(scratch, &rng, record)
				// record's backing array is reused by the next iteration;
				// copy out so results[idx].MoveList stays valid after Run
				// returns, the way multirobot copied hashes out of a
				// scratch board rather than aliasing it.
				res.MoveList = append([]MoveRecord(nil), record...)
				results[idx] = res
			} else {
				results[idx] = runner.Run(scratch, &rng)
			}
			atomic.AddInt64(&p.completed, 1)
		}
	}

	wg.Add(p.workers)
	for w := 0; w < p.workers; w++ {
		go worker()
	}
	for i := range jobs {
		indices <- i
	}
	close(indices)
	wg.Wait()
	return results
}
