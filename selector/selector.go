// Package selector is a reference Monte Carlo move-selector built on top
// of package board and package playout. It is a demonstration consumer
// of the core, not part of it (spec section 1 scopes MCTS/policy search
// out of the core itself); it exists to show the core's public contract
// is usable end to end, the way the teacher's robot.GenMove sat on top of
// its own board package.
package selector

import (
	"sort"

	"goboard/board"
	"goboard/playout"
)

// Config configures a Selector. The zero value already matches the
// teacher's robot defaults (Config{SampleCount: 1000}, defaultRandomness).
type Config struct {
	// Playouts is how many full random games to sample. Zero means 1000,
	// the teacher's default sampleCount.
	Playouts int
	// Workers sizes the playout.Pool; zero means runtime.NumCPU() (see
	// playout.NewPool).
	Workers int
	// MoveCap and Policy are forwarded to playout.Config.
	MoveCap int
	Policy  playout.PolicyConfig
	// Seed derives every playout's RNG seed; zero means a fixed
	// deterministic default so a Selector is reproducible unless the
	// caller asks otherwise, per spec section 8's playout-determinism law.
	Seed uint64
}

// Candidate is one scored move from a SelectMove call, useful for callers
// (a GTP frontend reporting its reasoning, or a test) that want more than
// just the winner.
type Candidate struct {
	Vertex board.Vertex
	Wins   int
	Hits   int
}

// WinRate returns Wins/Hits, or 0 if the candidate was never sampled.
func (c Candidate) WinRate() float64 {
	if c.Hits == 0 {
		return 0
	}
	return float64(c.Wins) / float64(c.Hits)
}

type Selector struct {
	cfg  Config
	pool *playout.Pool
}

func New(cfg Config) *Selector {
	if cfg.Playouts <= 0 {
		cfg.Playouts = 1000
	}
	pool := playout.NewPool(cfg.Workers, playout.Config{Policy: cfg.Policy, MoveCap: cfg.MoveCap})
	return &Selector{cfg: cfg, pool: pool}
}

// SelectMove assumes root.PlayerToMove() == player; unlike the teacher's
// robot.Play, it does not auto-pass the other side to fix a mismatch, so
// callers that let either color move out of turn (as GTP permits) must
// play an explicit Pass for the other side first.
//
// It runs cfg.Playouts full random games from root (root itself
// is never mutated -- every game runs on a pool-owned clone) and scores
// every vertex player played during any of those games by the "all moves
// as first" heuristic from the teacher's robot.findWins: a vertex's score
// is the fraction of games player went on to win, among every game in
// which player played that vertex at any point, not just as root's
// immediate next move. It then plays the empirically best move that is
// still legal and non-eye-filling on root right now, exactly the way
// robot.GenMove filters candidates by hits[pt]>0, !wouldFillEye, and
// checkLegalMove before choosing.
func (s *Selector) SelectMove(root *board.Board, player board.Player) (board.Vertex, []Candidate) {
	jobs := make([]playout.Job, s.cfg.Playouts)
	for i := range jobs {
		jobs[i] = playout.Job{Start: root, Seed: s.cfg.Seed + uint64(i)*0x9E3779B1, Record: true}
	}
	results := s.pool.Run(jobs)

	wins := make(map[board.Vertex]int)
	hits := make(map[board.Vertex]int)
	for _, res := range results {
		won := res.Winner == player
		for _, mv := range res.MoveList {
			if mv.Player != player || mv.Vertex == board.Pass {
				continue
			}
			hits[mv.Vertex]++
			if won {
				wins[mv.Vertex]++
			}
		}
	}

	var candidates []Candidate
	for _, v := range root.Vertices() {
		h := hits[v]
		if h == 0 {
			continue
		}
		if !root.IsLegal(player, v) || playout.IsTrueEye(root, player, v) {
			continue
		}
		candidates = append(candidates, Candidate{Vertex: v, Wins: wins[v], Hits: h})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].WinRate() > candidates[j].WinRate()
	})

	if len(candidates) == 0 {
		return board.Pass, candidates
	}
	return candidates[0].Vertex, candidates
}
