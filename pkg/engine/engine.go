package engine

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	. "github.com/batuchess/batu/pkg/common"
)

// Evaluator scores a position in centipawns from the side to move's point
// of view.
type Evaluator interface {
	Evaluate(b *Board) int
}

type Engine struct {
	Options     Options
	Logger      zerolog.Logger
	evaluator   Evaluator
	timeManager *timeManager
	transTable  *TransTable
	progress    func(SearchInfo)
	mainLine    mainLine
	rootMove    Move
	stats       searchStats
	start       time.Time
	board       Board
	stack       [stackSize]struct {
		undo    Board
		moves   MoveList
		pv      pv
		killer1 Move
		killer2 Move
	}
}

// searchStats counts pruning events of the current search. selDepth is the
// deepest height at which quiescence was entered.
type searchStats struct {
	selDepth      int
	nullCutoffs   int64
	lmrResearches int64
	deltaPrunes   int64
}

type pv struct {
	items [stackSize]Move
	size  int
}

type mainLine struct {
	moves []Move
	score int
	depth int
}

func NewEngine(evaluator Evaluator) *Engine {
	return &Engine{
		Options:   NewOptions(),
		Logger:    zerolog.Nop(),
		evaluator: evaluator,
	}
}

func (e *Engine) SetEvaluator(evaluator Evaluator) {
	e.evaluator = evaluator
}

// Evaluate returns the static evaluation of b.
func (e *Engine) Evaluate(b *Board) int {
	return e.evaluator.Evaluate(b)
}

func (e *Engine) Prepare() {
	if e.transTable == nil || e.transTable.Megabytes() != e.Options.Hash {
		if e.transTable != nil {
			e.transTable = nil
			runtime.GC()
		}
		e.transTable = NewTransTable(e.Options.Hash)
		e.Logger.Debug().
			Int("megabytes", e.Options.Hash).
			Int("entries", e.transTable.Size()).
			Msg("trans-table-allocated")
	}
}

func (e *Engine) Clear() {
	if e.transTable != nil {
		e.transTable.Clear()
	}
	for i := range e.stack {
		e.stack[i].killer1 = MoveEmpty
		e.stack[i].killer2 = MoveEmpty
	}
}

// Search runs iterative deepening on searchParams.Board until one of the
// limits or ctx stops it. Limits are only checked between iterations.
func (e *Engine) Search(ctx context.Context, searchParams SearchParams) SearchInfo {
	e.start = time.Now()
	e.Prepare()
	e.board = searchParams.Board
	e.board.Nodes = 0
	e.timeManager = newTimeManager(ctx, e.start, searchParams.Limits, e.board.Side)
	e.progress = searchParams.Progress
	e.mainLine = mainLine{}
	e.rootMove = MoveEmpty
	e.stats = searchStats{}
	iterativeDeepening(e)
	return e.currentSearchResult()
}

func (e *Engine) Hashfull() int {
	if e.transTable == nil {
		return 0
	}
	return e.transTable.Hashfull()
}

func (e *Engine) currentSearchResult() SearchInfo {
	return SearchInfo{
		Depth:    e.mainLine.depth,
		MainLine: e.mainLine.moves,
		Score:    newUciScore(e.mainLine.score),
		Nodes:    e.board.Nodes,
		Time:     time.Since(e.start),
	}
}

func (pv *pv) clear() {
	pv.size = 0
}

func (pv *pv) assign(m Move, child *pv) {
	pv.size = 1
	pv.items[0] = m
	if child.size > 0 {
		pv.size += child.size
		copy(pv.items[1:], child.items[:child.size])
	}
}

func (pv *pv) toSlice() []Move {
	var result = make([]Move, pv.size)
	copy(result, pv.items[:pv.size])
	return result
}
