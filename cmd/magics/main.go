package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/batuchess/batu/pkg/common"
)

var (
	flgSeed     uint
	flgAttempts int
	flgRandom   bool
	flgThreads  int
)

// frandSource draws candidates from the process wide ChaCha generator.
type frandSource struct{}

func (frandSource) Uint32() uint32 {
	return uint32(frand.Uint64n(1 << 32))
}

func main() {
	flag.UintVar(&flgSeed, "seed", uint(common.DefaultMagicSeed), "xorshift seed, offset by the square")
	flag.IntVar(&flgAttempts, "attempts", common.DefaultMagicAttempts, "candidates per square")
	flag.BoolVar(&flgRandom, "random", false, "use a non deterministic candidate source")
	flag.IntVar(&flgThreads, "threads", runtime.NumCPU(), "parallel squares")
	flag.Parse()

	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var start = time.Now()
	var bishopMagics, rookMagics [64]uint64
	var g errgroup.Group
	g.SetLimit(common.Max(1, flgThreads))
	for sq := 0; sq < 64; sq++ {
		var sq = sq
		g.Go(func() error {
			var rnd common.RandomSource
			if flgRandom {
				rnd = frandSource{}
			} else {
				rnd = common.NewXorShift32(uint32(flgSeed) + uint32(sq))
			}
			rookMagics[sq] = common.FindMagic(rnd, sq, common.Rook, flgAttempts)
			if rookMagics[sq] == 0 {
				return fmt.Errorf("rook %v: %w", common.SquareName(sq), common.ErrMagicNotFound)
			}
			bishopMagics[sq] = common.FindMagic(rnd, sq, common.Bishop, flgAttempts)
			if bishopMagics[sq] == 0 {
				return fmt.Errorf("bishop %v: %w", common.SquareName(sq), common.ErrMagicNotFound)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("magic-search-failed")
	}
	if _, err := common.NewTablesFromMagics(&bishopMagics, &rookMagics); err != nil {
		logger.Fatal().Err(err).Msg("magic-verification-failed")
	}
	logger.Info().Dur("elapsed", time.Since(start)).Msg("magics-found")

	fmt.Print(formatMagics("rookMagics", &rookMagics))
	fmt.Print(formatMagics("bishopMagics", &bishopMagics))
}

func formatMagics(name string, magics *[64]uint64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "var %v = [64]uint64{\n", name)
	for i, m := range magics {
		if i%4 == 0 {
			sb.WriteString("\t")
		}
		fmt.Fprintf(&sb, "0x%016X,", m)
		if i%4 == 3 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}
