// Command goboard-bench is the CLI wrapper around package bench,
// grounded on the teacher's benchmark.go: same os.Args-driven usage
// (positional integer arguments, a UsageError that prints to stderr and
// exits 1), generalized from the teacher's fixed moveCount/gameCount
// pair to the playout count and RNG seed bench.Benchmark.Run expects.
package main

import (
	"fmt"
	"os"
	"strconv"

	"goboard/bench"
	"goboard/board"
)

func usageError() {
	fmt.Fprintf(os.Stderr, "Usage: %v [size] [playouts] [seed]\n\n", os.Args[0])
	os.Exit(1)
}

func main() {
	size := 9
	playouts := 100
	seed := uint64(1)

	args := os.Args[1:]
	if len(args) > 3 {
		usageError()
	}
	if len(args) >= 1 {
		val, err := strconv.Atoi(args[0])
		if err != nil {
			usageError()
		}
		size = val
	}
	if len(args) >= 2 {
		val, err := strconv.Atoi(args[1])
		if err != nil {
			usageError()
		}
		playouts = val
	}
	if len(args) >= 3 {
		val, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			usageError()
		}
		seed = val
	}

	bm := bench.New(bench.Config{Board: board.Config{Size: size, Komi: board.Komi(7.5)}})
	result := bm.Run(playouts, seed)
	fmt.Printf("playouts=%d completed=%d moves=%d captures=%d elapsed=%v playouts/sec=%.0f moves/sec=%.0f capped=%d\n",
		result.Playouts, result.PlayoutsCompleted, result.TotalMoves, result.TotalCaptures, result.Elapsed,
		result.PlayoutsPerSecond(), result.MovesPerSecond(), result.CappedPlayouts)
}
