// Package gtp is a Go Text Protocol [1] front end for the core engine.
// It is adapted from the teacher's gongo.go/gongo_gtp.go command loop --
// same handler-map dispatch, same "= .../? ..." response framing -- but
// rebuilt on package board and package selector instead of the teacher's
// GoRobot interface and hand-rolled Vertex/Color types, and using modern
// Go idioms (error returns, no pre-Go1 syntax) throughout.
//
// GTP itself is named as an out-of-scope concern for the core (spec
// section 1's "external collaborator, not specified here"), so this
// package only imports the core's public API and lives in its own
// package/binary.
//
// [1] http://www.lysator.liu.se/~gunnar/gtp/gtp2-spec-draft2/gtp2-spec.html
package gtp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"goboard/board"
	"goboard/selector"
)

// MaxBoardSize matches the GTP protocol's own ceiling, independent of
// package board's MaxSize (which happens to agree today).
const MaxBoardSize = 25

// ParseVertex parses a GTP coordinate string ("A1", "Q16", "pass") into a
// board.Vertex for a board of the given size. GTP columns are letters
// starting at 'A' and skipping 'I' (to avoid confusion with '1'); rows
// count from 1 at the bottom of the board. Package board's own row index
// counts from 0 at the top, so row is flipped here.
func ParseVertex(input string, b *board.Board) (board.Vertex, error) {
	input = strings.ToUpper(strings.TrimSpace(input))
	if input == "PASS" {
		return board.Pass, nil
	}
	if input == "RESIGN" {
		return board.Resign, nil
	}
	if len(input) < 2 {
		return board.Pass, errors.Errorf("gtp: malformed vertex %q", input)
	}

	if input[0] == 'I' {
		return board.Pass, errors.Errorf("gtp: column I is not used, in %q", input)
	}
	col := int(input[0]) - int('A')
	if input[0] > 'I' {
		col--
	}
	if col < 0 || col >= MaxBoardSize {
		return board.Pass, errors.Errorf("gtp: column out of range in %q", input)
	}

	y, err := strconv.Atoi(input[1:])
	if err != nil || y < 1 || y > MaxBoardSize {
		return board.Pass, errors.Errorf("gtp: bad row in %q", input)
	}

	size := b.Size()
	if col >= size || y > size {
		return board.Pass, errors.Errorf("gtp: vertex %q is off a %dx%d board", input, size, size)
	}
	row := size - y
	return b.VertexAt(row, col), nil
}

// FormatVertex is ParseVertex's inverse.
func FormatVertex(v board.Vertex, b *board.Board) string {
	switch v {
	case board.Pass:
		return "pass"
	case board.Resign:
		return "resign"
	}
	row, col := b.RowCol(v)
	letter := byte(col) + 'A'
	if letter >= 'I' {
		letter++
	}
	y := b.Size() - row
	return fmt.Sprintf("%c%d", letter, y)
}

// ParseColor parses a GTP color argument ("b", "black", "w", "white").
func ParseColor(input string) (board.Player, error) {
	switch strings.ToLower(input) {
	case "b", "black":
		return board.BlackPlayer, nil
	case "w", "white":
		return board.WhitePlayer, nil
	}
	return board.BlackPlayer, errors.Errorf("gtp: unrecognized color %q", input)
}

// EngineConfig configures an Engine.
type EngineConfig struct {
	Board    board.Config
	Selector selector.Config
	Log      *log.Logger
}

func (c EngineConfig) normalized() EngineConfig {
	if c.Log == nil {
		c.Log = log.New(os.Stderr, "[goboard-gtp] ", log.Ltime)
	}
	return c
}

// Engine adapts a *board.Board and a *selector.Selector to the shape a
// GTP command loop needs: mutating board-size/komi/play operations plus
// a genmove that both picks and plays a move. It plays the role the
// teacher's *robot played behind the GoRobot interface, but is a
// concrete type rather than an interface -- nothing else in this module
// implements alternate engines, so the indirection bought nothing.
type Engine struct {
	cfg   EngineConfig
	board *board.Board
	sel   *selector.Selector
}

func NewEngine(cfg EngineConfig) *Engine {
	cfg = cfg.normalized()
	e := &Engine{cfg: cfg}
	e.board = board.New(cfg.Board)
	e.sel = selector.New(cfg.Selector)
	return e
}

// SetBoardSize rebuilds the board at the given size, preserving komi.
// GTP callers are expected to send clear_board immediately afterward;
// this matches the teacher's SetBoardSize/ClearBoard contract.
func (e *Engine) SetBoardSize(size int) error {
	if size < board.MinSize || size > board.MaxSize {
		return errors.Errorf("gtp: unacceptable size %d", size)
	}
	cfg := e.cfg.Board
	cfg.Size = size
	e.cfg.Board = cfg
	e.board = board.New(cfg)
	return nil
}

func (e *Engine) ClearBoard() { e.board.Clear() }

func (e *Engine) SetKomi(komi float64) {
	cfg := e.cfg.Board
	cfg.Komi = board.Komi(komi)
	e.cfg.Board = cfg
	e.board.SetKomi(komi)
}

// Play plays player's move at v, enforcing legality. GTP's play command
// otherwise permits either color to move regardless of whose turn
// package board thinks it is, so Play always calls the non-turn-checked
// path (EnforceTurnOrder defaults off, see package board).
func (e *Engine) Play(player board.Player, v board.Vertex) error {
	reason := e.board.PlayLegal(player, v)
	if !reason.Ok() {
		return errors.Wrapf(reason, "gtp: illegal move %v for %v", v, player)
	}
	return nil
}

// GenMove asks the selector for a move for player, plays it, and returns
// it. A Pass returned by the selector when no non-eye-filling legal move
// exists is played and reported like any other move; the caller decides
// whether to translate that into a GTP "resign" the way the teacher's
// handle_genmove did for GenMove's ok=false case (this engine never
// resigns on its own).
func (e *Engine) GenMove(player board.Player) board.Vertex {
	v, _ := e.sel.SelectMove(e.board, player)
	e.board.PlayLegal(player, v)
	return v
}

func (e *Engine) Board() *board.Board { return e.board }

// ShowBoard renders the position as ASCII, '@' for black, 'O' for white,
// '.' for empty, matching the teacher's handle_showboard.
func (e *Engine) ShowBoard() string {
	buf := &bytes.Buffer{}
	size := e.board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			switch e.board.ColorAt(e.board.VertexAt(row, col)) {
			case board.Empty:
				buf.WriteByte('.')
			case board.Black:
				buf.WriteByte('@')
			case board.White:
				buf.WriteByte('O')
			}
		}
		if row < size-1 {
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

// === protocol driver ===

type request struct {
	engine *Engine
	args   []string
}

type response struct {
	message string
	success bool
}

func success(message string) response { return response{message, true} }
func failure(message string) response { return response{message, false} }

func (r response) String() string {
	prefix := "="
	if !r.success {
		prefix = "?"
	}
	return prefix + " " + r.message + "\n\n"
}

type handlerFunc func(request) response

var handlers map[string]handlerFunc

func init() {
	handlers = map[string]handlerFunc{
		"protocol_version": func(request) response { return success("2") },
		"name":             func(request) response { return success("goboard") },
		"version":          func(request) response { return success("1.0") },
		"known_command":    handleKnownCommand,
		"list_commands":    handleListCommands,
		"boardsize":        handleBoardSize,
		"clear_board":      func(req request) response { req.engine.ClearBoard(); return success("") },
		"komi":             handleKomi,
		"play":             handlePlay,
		"genmove":          handleGenMove,
		"showboard":        handleShowBoard,
		"quit":             func(request) response { return success("") },
	}
}

func handleKnownCommand(req request) response {
	if len(req.args) != 1 {
		return failure("wrong number of arguments")
	}
	_, ok := handlers[req.args[0]]
	return success(fmt.Sprint(ok))
}

func handleListCommands(req request) response {
	if len(req.args) != 0 {
		return failure("wrong number of arguments")
	}
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return success(strings.Join(names, "\n"))
}

func handleBoardSize(req request) response {
	if len(req.args) != 1 {
		return failure("wrong number of arguments")
	}
	size, err := strconv.Atoi(req.args[0])
	if err != nil {
		return failure("unacceptable size")
	}
	if err := req.engine.SetBoardSize(size); err != nil {
		return failure("unacceptable size")
	}
	return success("")
}

func handleKomi(req request) response {
	if len(req.args) != 1 {
		return failure("wrong number of arguments")
	}
	komi, err := strconv.ParseFloat(req.args[0], 64)
	if err != nil {
		return failure("syntax error")
	}
	req.engine.SetKomi(komi)
	return success("")
}

func handlePlay(req request) response {
	if len(req.args) != 2 {
		return failure("wrong number of arguments")
	}
	player, err := ParseColor(req.args[0])
	if err != nil {
		return failure("syntax error")
	}
	v, err := ParseVertex(req.args[1], req.engine.board)
	if err != nil {
		return failure("syntax error")
	}
	if err := req.engine.Play(player, v); err != nil {
		return failure("illegal move")
	}
	return success("")
}

func handleGenMove(req request) response {
	if len(req.args) != 1 {
		return failure("wrong number of arguments")
	}
	player, err := ParseColor(req.args[0])
	if err != nil {
		return failure("syntax error")
	}
	v := req.engine.GenMove(player)
	return success(FormatVertex(v, req.engine.board))
}

func handleShowBoard(req request) response {
	if len(req.args) != 0 {
		return failure("wrong number of arguments")
	}
	return success(req.engine.ShowBoard())
}

// parseCommand reads one non-blank, non-comment line from in and splits
// it into a command word and its arguments.
func parseCommand(in *bufio.Reader) (cmd string, args []string, err error) {
	for {
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return "", nil, errors.Wrap(err, "gtp: reading command")
		}
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			if err != nil {
				return "", nil, errors.Wrap(err, "gtp: reading command")
			}
			continue
		}
		words := strings.Fields(line)
		return words[0], words[1:], nil
	}
}

// Run executes GTP commands read from input against engine, writing
// responses to out, until "quit" is handled or input ends. It returns
// io.EOF if the stream closed before "quit" was seen (letting a caller
// distinguish a clean shutdown from a controller that just hung up), or
// any other read error wrapped with context, matching the teacher's
// Run contract of returning nil only after "quit".
func Run(engine *Engine, input io.Reader, out io.Writer) error {
	in := bufio.NewReader(input)
	for {
		command, args, err := parseCommand(in)
		if err != nil {
			if errors.Cause(err) == io.EOF {
				return io.EOF
			}
			return err
		}

		next, ok := handlers[command]
		if !ok {
			fmt.Fprint(out, failure("unknown command"))
			continue
		}
		fmt.Fprint(out, next(request{engine, args}))

		if command == "quit" {
			return nil
		}
	}
}
