package uci

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/batuchess/batu/pkg/common"
	"github.com/batuchess/batu/pkg/engine"
	eval "github.com/batuchess/batu/pkg/eval/material"
)

func newTestProtocol() (*Protocol, *engine.Engine) {
	var evaluator = eval.NewEvaluationService()
	var e = engine.NewEngine(evaluator)
	e.Options.Hash = 1
	var options = []Option{
		&IntOption{Name: "Hash", Min: 1, Max: 1 << 16, Value: &e.Options.Hash},
		&BoolOption{Name: "NullMovePruning", Value: &e.Options.NullMovePruning},
	}
	var protocol = New("Batu", "Batu authors", "test", e, options)
	protocol.SetEvaluators(NamedEvaluator{"Static", evaluator})
	return protocol, e
}

func serve(t *testing.T, protocol *Protocol, commands ...string) string {
	t.Helper()
	var out bytes.Buffer
	protocol.Serve(strings.NewReader(strings.Join(commands, "\n")+"\n"), &out, zerolog.Nop())
	return out.String()
}

func bestMove(t *testing.T, output string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "bestmove ") {
			return strings.TrimPrefix(line, "bestmove ")
		}
	}
	t.Fatalf("no bestmove in %q", output)
	return ""
}

func TestHandshake(t *testing.T) {
	var protocol, _ = newTestProtocol()
	var output = serve(t, protocol, "uci", "isready", "quit")
	for _, want := range []string{
		"id name Batu test\n",
		"id author Batu authors\n",
		"option name Hash type spin default 1 min 1 max 65536\n",
		"option name NullMovePruning type check default true\n",
		"uciok\n",
		"readyok\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("missing %q in %q", want, output)
		}
	}
}

func TestGo(t *testing.T) {
	var protocol, _ = newTestProtocol()
	var output = serve(t, protocol, "position startpos moves e2e4", "go depth 2")
	if !strings.Contains(output, "info depth 1 score cp") ||
		!strings.Contains(output, "info depth 2 score cp") {
		t.Errorf("no progress in %q", output)
	}
	var b = protocol.board
	if _, err := b.ParseMove(bestMove(t, output)); err != nil {
		t.Error(err)
	}
}

func TestGoMate(t *testing.T) {
	var protocol, _ = newTestProtocol()
	var output = serve(t, protocol, "position fen 6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "go depth 3")
	if !strings.Contains(output, "score mate 1") {
		t.Errorf("no mate score in %q", output)
	}
	if got := bestMove(t, output); got != "a1a8" {
		t.Error(got)
	}
}

func TestGoReportsEveryDepth(t *testing.T) {
	var protocol, _ = newTestProtocol()
	var output = serve(t, protocol, "position fen 8/8/8/4k3/8/8/3PK3/8 w - - 0 1", "go depth 8")
	for depth := 1; depth <= 8; depth++ {
		var want = fmt.Sprintf("info depth %v score ", depth)
		if !strings.Contains(output, want) {
			t.Errorf("missing %q in %q", want, output)
		}
	}
	bestMove(t, output)
}

func TestGoWithoutLegalMoves(t *testing.T) {
	var tests = []struct {
		fen   string
		score string
	}{
		{"R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", "info depth 0 score mate 0 "},
		{"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", "info depth 0 score cp 0 "},
	}
	for _, test := range tests {
		var protocol, _ = newTestProtocol()
		var output = serve(t, protocol, "position fen "+test.fen, "go depth 3")
		if !strings.Contains(output, test.score) {
			t.Errorf("missing %q in %q", test.score, output)
		}
		if got := bestMove(t, output); got != "0000" {
			t.Error(got)
		}
	}
}

func TestQuitStopsSearch(t *testing.T) {
	var protocol, _ = newTestProtocol()
	var output = serve(t, protocol, "go infinite", "quit")
	if bestMove(t, output) == "0000" {
		t.Errorf("no move in %q", output)
	}
}

func TestPositionCommand(t *testing.T) {
	var protocol, _ = newTestProtocol()
	var err = protocol.handle("position startpos moves e2e4 e7e5 g1f3")
	if err != nil {
		t.Fatal(err)
	}
	const want = "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	if got := protocol.board.FEN(); got != want {
		t.Errorf("got %v", got)
	}

	err = protocol.handle("position startpos moves e2e4 e2e4 d7d5")
	if !errors.Is(err, common.ErrIllegalMove) {
		t.Errorf("err %v", err)
	}
	const afterE4 = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := protocol.board.FEN(); got != afterE4 {
		t.Errorf("got %v", got)
	}

	err = protocol.handle("position fen 8/8/8/8/8/8/8/K6k b - - 0 1")
	if err != nil || protocol.board.Side != common.Black {
		t.Errorf("fen position: %v", err)
	}

	if err = protocol.handle("position"); !errors.Is(err, errBadArguments) {
		t.Errorf("err %v", err)
	}

	if err = protocol.handle("ucinewgame"); err != nil {
		t.Fatal(err)
	}
	if got := protocol.board.FEN(); got != common.InitialPositionFen {
		t.Errorf("got %v", got)
	}
}

func TestSetOption(t *testing.T) {
	var protocol, e = newTestProtocol()
	if err := protocol.handle("setoption name Hash value 8"); err != nil {
		t.Fatal(err)
	}
	if e.Options.Hash != 8 {
		t.Error(e.Options.Hash)
	}
	if err := protocol.handle("setoption name hash value 0"); !errors.Is(err, errOutOfRange) {
		t.Errorf("err %v", err)
	}
	if err := protocol.handle("setoption name NullMovePruning value false"); err != nil {
		t.Fatal(err)
	}
	if e.Options.NullMovePruning {
		t.Error("option not set")
	}
	if err := protocol.handle("setoption name Contempt value 10"); !errors.Is(err, errUnhandledOption) {
		t.Errorf("err %v", err)
	}
	if err := protocol.handle("setoption Hash 8"); !errors.Is(err, errBadArguments) {
		t.Errorf("err %v", err)
	}
}

func TestStringOption(t *testing.T) {
	var value string
	var calls []string
	var opt = &StringOption{
		Name:  "Weights",
		Value: &value,
		OnChange: func(v string) error {
			calls = append(calls, v)
			if v == "missing.txt" {
				return errors.New("not found")
			}
			return nil
		},
	}
	if opt.UciString() != "option name Weights type string default <empty>" {
		t.Error(opt.UciString())
	}
	if err := opt.Set("/tmp/weights file.txt"); err != nil || value != "/tmp/weights file.txt" {
		t.Errorf("%v %q", err, value)
	}
	if err := opt.Set("missing.txt"); err == nil || value != "/tmp/weights file.txt" {
		t.Errorf("%v %q", err, value)
	}
	if len(calls) != 2 {
		t.Error(calls)
	}
}

func TestCommands(t *testing.T) {
	var protocol, _ = newTestProtocol()
	var output = serve(t, protocol, "eval", "d", "perft 2", "bogus")
	for _, want := range []string{
		"info string Static: 0 cp\n",
		" 8  r n b q k b n r\n",
		"Fen: " + common.InitialPositionFen,
		"e2e4: 20\n",
		"Nodes searched: 400\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("missing %q in %q", want, output)
		}
	}
	if err := protocol.handle("bogus"); !errors.Is(err, errUnknownCommand) {
		t.Errorf("err %v", err)
	}
}

func TestBench(t *testing.T) {
	var protocol, _ = newTestProtocol()
	var output = serve(t, protocol, "bench 1")
	if got := strings.Count(output, "Position: "); got != len(benchPositions) {
		t.Errorf("%v positions in %q", got, output)
	}
	if got := strings.Count(output, "Depth 1: "); got != len(benchPositions) {
		t.Errorf("%v searches in %q", got, output)
	}
	if !strings.Contains(output, "Total: ") {
		t.Errorf("no total in %q", output)
	}
}

func TestParseLimits(t *testing.T) {
	var tests = []struct {
		args string
		want common.LimitsType
	}{
		{"depth 7", common.LimitsType{Depth: 7}},
		{"movetime 1500", common.LimitsType{MoveTime: 1500}},
		{"infinite", common.LimitsType{Infinite: true}},
		{"nodes 10000", common.LimitsType{Nodes: 10000}},
		{"wtime 60000 btime 50000 winc 1000 binc 500 movestogo 20",
			common.LimitsType{WhiteTime: 60000, BlackTime: 50000,
				WhiteIncrement: 1000, BlackIncrement: 500, MovesToGo: 20}},
		{"depth", common.LimitsType{}},
	}
	for _, test := range tests {
		if got := parseLimits(strings.Fields(test.args)); got != test.want {
			t.Errorf("%v: got %+v", test.args, got)
		}
	}
}
