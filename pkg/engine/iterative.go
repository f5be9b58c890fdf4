package engine

import (
	"strings"

	"golang.org/x/exp/slices"

	. "github.com/batuchess/batu/pkg/common"
)

const maxDepth = 100

func iterativeDeepening(e *Engine) {
	var rootMoves = e.board.GenerateLegalMoves()
	if len(rootMoves) == 0 {
		var score = valueDraw
		if e.board.InCheck() {
			score = lossIn(0)
		}
		e.mainLine = mainLine{score: score}
		e.Logger.Debug().Int("score", score).Msg("no-legal-moves")
		return
	}

	e.mainLine = mainLine{moves: []Move{rootMoves[0]}}
	for h := 0; h <= 2; h++ {
		e.stack[h].killer1 = MoveEmpty
		e.stack[h].killer2 = MoveEmpty
	}

	for depth := 1; depth <= maxDepth; depth++ {
		var score = e.searchRoot(depth)
		var moves = e.stack[0].pv.toSlice()
		if len(moves) == 0 || !slices.Contains(rootMoves, moves[0]) {
			moves = []Move{rootMoves[0]}
		}
		e.mainLine = mainLine{
			depth: depth,
			score: score,
			moves: moves,
		}
		e.rootMove = moves[0]
		e.timeManager.OnIterationComplete(e.mainLine, e.board.Nodes)
		e.Logger.Debug().
			Int("depth", depth).
			Int("score", score).
			Int64("nodes", e.board.Nodes).
			Int("seldepth", e.stats.selDepth).
			Int64("null-cutoffs", e.stats.nullCutoffs).
			Int64("lmr-researches", e.stats.lmrResearches).
			Int64("delta-prunes", e.stats.deltaPrunes).
			Str("pv", movesString(moves)).
			Msg("iteration-complete")
		if e.progress != nil {
			e.progress(e.currentSearchResult())
		}
		if len(rootMoves) == 1 && e.timeManager.softLimit != 0 {
			break
		}
		if e.timeManager.IsDone() {
			break
		}
	}
}

func movesString(moves []Move) string {
	var sb strings.Builder
	for i, m := range moves {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
