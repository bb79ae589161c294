// Command goboard-gtp is the GTP server entry point, grounded on the
// teacher's main.go: build a robot from a Config, then run the protocol
// loop against stdin/stdout, reporting on EOF versus other errors the
// same way (with modern error values instead of the pre-Go1 os.Error).
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"goboard/board"
	"goboard/gtp"
	"goboard/selector"
)

func usageError() {
	fmt.Fprintf(os.Stderr, "Usage: %v [playouts]\n\n", os.Args[0])
	os.Exit(1)
}

func main() {
	playouts := 1000
	switch len(os.Args) {
	case 1:
	case 2:
		val, err := strconv.Atoi(os.Args[1])
		if err != nil {
			usageError()
		}
		playouts = val
	default:
		usageError()
	}

	engine := gtp.NewEngine(gtp.EngineConfig{
		Board:    board.Config{Size: 19, Komi: board.Komi(7.5)},
		Selector: selector.Config{Playouts: playouts},
	})

	err := gtp.Run(engine, os.Stdin, os.Stdout)
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(os.Stderr, "got EOF")
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "unexpected error: %v\n", err)
		os.Exit(1)
	}
}
