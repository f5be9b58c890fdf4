package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/batuchess/batu/pkg/common"
)

var (
	flgFen     string
	flgDepth   int
	flgThreads int
)

func main() {
	flag.StringVar(&flgFen, "fen", common.InitialPositionFen, "position")
	flag.IntVar(&flgDepth, "depth", 5, "perft depth")
	flag.IntVar(&flgThreads, "threads", runtime.NumCPU(), "parallel root moves")
	flag.Parse()

	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var b, err = common.NewBoardFromFEN(common.DefaultTables(), flgFen)
	if err != nil {
		logger.Fatal().Err(err).Str("fen", flgFen).Msg("bad-position")
	}
	fmt.Print(b.Diagram())

	var start = time.Now()
	divide, err := common.PerftDivideParallel(ctx, &b, flgDepth, flgThreads)
	if err != nil {
		logger.Fatal().Err(err).Msg("perft-interrupted")
	}
	var elapsed = time.Since(start)

	var moves = maps.Keys(divide)
	slices.Sort(moves)
	var total int64
	for _, m := range moves {
		fmt.Printf("%v: %v\n", m, divide[m])
		total += divide[m]
	}
	fmt.Printf("\nDepth: %v\nNodes: %v\nTime: %v\nNps: %.0f\n",
		flgDepth, total, elapsed, float64(total)/elapsed.Seconds())
	logger.Debug().Int("depth", flgDepth).Int64("nodes", total).Dur("elapsed", elapsed).Msg("perft-finished")
}
