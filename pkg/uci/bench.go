package uci

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/batuchess/batu/pkg/common"
)

type benchPosition struct {
	name   string
	fen    string
	depths []int
}

var benchPositions = []benchPosition{
	{"startpos", common.InitialPositionFen, []int{5, 6, 7}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []int{5, 6, 7}},
	{"mate-in-2-a", "1q4b1/8/N2n1NQ1/2P2p2/B1k2rRr/1p1Rp2p/4K3/B7 w - - 0 1", []int{4}},
	{"mate-in-3", "Q7/8/2K5/8/4N2R/3P4/3Pk3/8 w - - 0 1", []int{6}},
	{"mate-in-2-b", "7B/3B1p2/rP1p2R1/n2k1Pb1/N2Pp3/4P3/K2nN1r1/2R5 w - - 0 1", []int{4}},
	{"eval-test", "K1B5/P2r4/1p1r1n2/4k3/8/3PPP2/8/8 w - - 0 1", []int{5}},
}

// benchCommand searches the bench positions with an empty hash table, at
// their own depths or at the depth given as argument.
func (uci *Protocol) benchCommand(fields []string) error {
	var depth = 0
	if len(fields) != 0 {
		var err error
		depth, err = strconv.Atoi(fields[0])
		if err != nil || depth <= 0 {
			return fmt.Errorf("bench %v: %w", fields[0], errBadArguments)
		}
	}
	uci.engine.Prepare()
	var totalTime time.Duration
	var totalNodes int64
	for _, bp := range benchPositions {
		var b, err = common.NewBoardFromFEN(uci.tables, bp.fen)
		if err != nil {
			return err
		}
		var depths = bp.depths
		if depth != 0 {
			depths = []int{depth}
		}
		fmt.Fprintf(uci.out, "Position: %v\n", bp.name)
		for _, d := range depths {
			uci.engine.Clear()
			var si = uci.engine.Search(context.Background(), common.SearchParams{
				Board:  b,
				Limits: common.LimitsType{Depth: d},
			})
			var bestMove = common.MoveEmpty
			if len(si.MainLine) != 0 {
				bestMove = si.MainLine[0]
			}
			fmt.Fprintf(uci.out, "Depth %d: %d ms, %d nodes, Best: %v\n",
				d, si.Time.Milliseconds(), si.Nodes, bestMove)
			totalTime += si.Time
			totalNodes += si.Nodes
		}
	}
	var ms = totalTime.Milliseconds()
	fmt.Fprintf(uci.out, "Total: %d ms, %d nodes, %d nps\n",
		ms, totalNodes, totalNodes*1000/(ms+1))
	return nil
}
