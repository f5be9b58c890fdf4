package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/batuchess/batu/pkg/common"
)

var (
	errUnknownCommand  = errors.New("command not found")
	errSearchRunning   = errors.New("search still run")
	errBadArguments    = errors.New("invalid arguments")
	errUnhandledOption = errors.New("unhandled option")
)

type Engine interface {
	Prepare()
	Clear()
	Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo
}

type Evaluator interface {
	Evaluate(b *common.Board) int
}

// NamedEvaluator is reported by the eval command.
type NamedEvaluator struct {
	Name      string
	Evaluator Evaluator
}

type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	evaluators   []NamedEvaluator
	tables       *common.Tables
	board        common.Board
	out          io.Writer
	thinking     bool
	engineOutput chan common.SearchInfo
	cancel       context.CancelFunc
}

func New(name, author, version string, engine Engine, options []Option) *Protocol {
	var tables = common.DefaultTables()
	var initBoard, err = common.NewBoardFromFEN(tables, common.InitialPositionFen)
	if err != nil {
		panic(err)
	}
	return &Protocol{
		name:    name,
		author:  author,
		version: version,
		engine:  engine,
		options: options,
		tables:  tables,
		board:   initBoard,
		out:     os.Stdout,
	}
}

func (uci *Protocol) SetEvaluators(evaluators ...NamedEvaluator) {
	uci.evaluators = evaluators
}

func (uci *Protocol) Run(logger zerolog.Logger) {
	uci.Serve(os.Stdin, os.Stdout, logger)
}

// Serve reads commands from in until quit or end of input. At end of input
// a running search is allowed to finish, quit stops it.
func (uci *Protocol) Serve(in io.Reader, out io.Writer, logger zerolog.Logger) {
	uci.out = out
	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(in, commands)
	}()

	var quitting = false
	var searchResult common.SearchInfo
	for {
		select {
		case si, ok := <-uci.engineOutput:
			if ok {
				fmt.Fprintln(uci.out, searchInfoToUci(si))
				searchResult = si
			} else {
				var bestMove = common.MoveEmpty
				if len(searchResult.MainLine) != 0 {
					bestMove = searchResult.MainLine[0]
				}
				fmt.Fprintf(uci.out, "bestmove %v\n", bestMove)
				logger.Debug().
					Int("depth", searchResult.Depth).
					Int64("nodes", searchResult.Nodes).
					Dur("time", searchResult.Time).
					Str("bestmove", bestMove.String()).
					Msg("search-finished")
				uci.thinking = false
				uci.cancel = nil
				uci.engineOutput = nil
				searchResult = common.SearchInfo{}
				if quitting {
					return
				}
			}
		case commandLine, ok := <-commands:
			if !ok || commandLine == "quit" {
				if uci.thinking {
					if ok {
						uci.cancel()
					}
					quitting = true
					commands = nil
					continue
				}
				return
			}
			logger.Debug().Str("command", commandLine).Msg("command-received")
			var err = uci.handle(commandLine)
			if err != nil {
				logger.Error().Err(err).Str("command", commandLine).Msg("command-failed")
			}
		}
	}
}

func readCommands(in io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine != "" {
			commands <- commandLine
		}
		if commandLine == "quit" {
			return
		}
	}
}

func (uci *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if uci.thinking {
		switch commandName {
		case "stop":
			uci.cancel()
			return nil
		case "isready":
			fmt.Fprintln(uci.out, "readyok")
			return nil
		}
		return errSearchRunning
	}

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "stop":
		h = func([]string) error { return nil }
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "eval":
		h = uci.evalCommand
	case "bench":
		h = uci.benchCommand
	case "perft":
		h = uci.perftCommand
	case "d":
		h = uci.displayCommand
	}

	if h == nil {
		return fmt.Errorf("%v: %w", commandName, errUnknownCommand)
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Fprintf(uci.out, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.out, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.out, option.UciString())
	}
	fmt.Fprintln(uci.out, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	var valueIndex = slices.Index(fields, "value")
	if len(fields) < 2 || fields[0] != "name" || valueIndex < 2 {
		return fmt.Errorf("setoption: %w", errBadArguments)
	}
	var name = strings.Join(fields[1:valueIndex], " ")
	var value = strings.Join(fields[valueIndex+1:], " ")
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return fmt.Errorf("%v: %w", name, errUnhandledOption)
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	uci.engine.Prepare()
	fmt.Fprintln(uci.out, "readyok")
	return nil
}

// positionCommand applies the moves up to the first illegal one and keeps
// the position reached so far.
func (uci *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("position: %w", errBadArguments)
	}
	var args = fields
	var token = args[0]
	var fen string
	var movesIndex = slices.Index(args, "moves")
	if token == "startpos" {
		fen = common.InitialPositionFen
	} else if token == "fen" {
		if movesIndex == -1 {
			fen = strings.Join(args[1:], " ")
		} else {
			fen = strings.Join(args[1:movesIndex], " ")
		}
	} else {
		return fmt.Errorf("position %v: %w", token, errBadArguments)
	}
	var b, err = common.NewBoardFromFEN(uci.tables, fen)
	if err != nil {
		return err
	}
	uci.board = b
	if movesIndex >= 0 {
		for _, smove := range args[movesIndex+1:] {
			if err := uci.board.MakeMoveLAN(smove); err != nil {
				return err
			}
		}
	}
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	var limits = parseLimits(fields)
	var ctx, cancel = context.WithCancel(context.Background())
	uci.cancel = cancel
	uci.thinking = true
	var output = make(chan common.SearchInfo, 3)
	uci.engineOutput = output
	var board = uci.board
	go func() {
		defer cancel()
		var searchResult = uci.engine.Search(ctx, common.SearchParams{
			Board:  board,
			Limits: limits,
			Progress: func(si common.SearchInfo) {
				// Serve drains output until it is closed
				output <- si
			},
		})
		output <- searchResult
		close(output)
	}()
	return nil
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	var b, err = common.NewBoardFromFEN(uci.tables, common.InitialPositionFen)
	if err != nil {
		return err
	}
	uci.board = b
	uci.engine.Clear()
	return nil
}

func (uci *Protocol) evalCommand(fields []string) error {
	var parts = make([]string, 0, len(uci.evaluators))
	for _, e := range uci.evaluators {
		parts = append(parts, fmt.Sprintf("%v: %d cp", e.Name, e.Evaluator.Evaluate(&uci.board)))
	}
	fmt.Fprintf(uci.out, "info string %v\n", strings.Join(parts, ", "))
	return nil
}

func (uci *Protocol) displayCommand(fields []string) error {
	fmt.Fprint(uci.out, uci.board.Diagram())
	return nil
}

func (uci *Protocol) perftCommand(fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("perft: %w", errBadArguments)
	}
	var depth, err = strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("perft %v: %w", fields[0], err)
	}
	var start = time.Now()
	divide, err := common.PerftDivideParallel(context.Background(), &uci.board, depth, runtime.NumCPU())
	if err != nil {
		return err
	}
	var moves = maps.Keys(divide)
	slices.Sort(moves)
	var total int64
	for _, m := range moves {
		fmt.Fprintf(uci.out, "%v: %v\n", m, divide[m])
		total += divide[m]
	}
	fmt.Fprintf(uci.out, "Nodes searched: %v\n", total)
	fmt.Fprintf(uci.out, "Time: %v ms\n", time.Since(start).Milliseconds())
	return nil
}

func searchInfoToUci(si common.SearchInfo) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v", si.Depth)
	if si.Score.Mate != 0 || si.Score.Mated {
		fmt.Fprintf(sb, " score mate %v", si.Score.Mate)
	} else {
		fmt.Fprintf(sb, " score cp %v", si.Score.Centipawns)
	}
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v time %v nps %v", si.Nodes, timeMs, nps)
	if len(si.MainLine) != 0 {
		fmt.Fprintf(sb, " pv")
		for _, move := range si.MainLine {
			sb.WriteString(" ")
			sb.WriteString(move.String())
		}
	}
	return sb.String()
}

func parseLimits(args []string) (result common.LimitsType) {
	var next = func(i int) int {
		if i+1 >= len(args) {
			return 0
		}
		var v, _ = strconv.Atoi(args[i+1])
		return v
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime":
			result.WhiteTime = next(i)
			i++
		case "btime":
			result.BlackTime = next(i)
			i++
		case "winc":
			result.WhiteIncrement = next(i)
			i++
		case "binc":
			result.BlackIncrement = next(i)
			i++
		case "movestogo":
			result.MovesToGo = next(i)
			i++
		case "depth":
			result.Depth = next(i)
			i++
		case "nodes":
			result.Nodes = next(i)
			i++
		case "movetime":
			result.MoveTime = next(i)
			i++
		case "infinite":
			result.Infinite = true
		}
	}
	return
}
