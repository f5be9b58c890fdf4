package engine

import (
	. "github.com/batuchess/batu/pkg/common"
)

const (
	maxQuiescenceDepth = 8
	deltaMargin        = 200
)

func (e *Engine) searchRoot(depth int) int {
	return e.alphaBeta(-valueInfinity, valueInfinity, depth, 0, true)
}

// main search method
func (e *Engine) alphaBeta(alpha, beta, depth, height int, allowNull bool) int {
	e.clearPV(height)

	var rootNode = height == 0
	var b = &e.board
	var options = &e.Options
	var key uint64
	var ttMove Move
	if options.UseTransTable {
		key = b.Key()
		var ttScore int
		var ttHit bool
		ttMove, ttScore, ttHit = e.transTable.Probe(key, depth, height, alpha, beta)
		if ttHit && !rootNode {
			return ttScore
		}
	}

	if depth <= 0 {
		return e.quiescence(alpha, beta, height, 0)
	}
	if height >= maxHeight {
		return e.evaluate()
	}

	if rootNode && ttMove == MoveEmpty {
		ttMove = e.rootMove
	}

	var isCheck = b.InCheck()
	if height+2 <= maxHeight {
		e.stack[height+2].killer1 = MoveEmpty
		e.stack[height+2].killer2 = MoveEmpty
	}

	// null-move pruning
	if options.NullMovePruning && !rootNode && allowNull &&
		depth >= 3 && !isCheck && beta < valueWin &&
		b.HasNonPawnMaterial(b.Side) &&
		e.evaluate() >= beta {
		var reduction = 2 + depth/6
		e.makeNullMove(height)
		var score = -e.alphaBeta(-beta, -beta+1, depth-1-reduction, height+1, false)
		e.unmakeMove(height)
		if score >= beta {
			e.stats.nullCutoffs++
			return beta
		}
	}

	var ml = &e.stack[height].moves
	b.GenerateMoves(ml)
	e.scoreMoves(ml, ttMove, height)
	var killer1 = e.stack[height].killer1
	var killer2 = e.stack[height].killer2

	var oldAlpha = alpha
	var bestMove Move
	var legalMoves = 0

	for i := 0; i < ml.Count; i++ {
		ml.PickBest(i)
		var move = ml.Moves[i]
		if !e.makeMove(move, height) {
			continue
		}
		legalMoves++
		var isQuiet = !move.IsCaptureOrPromotion()

		var reduction = 0
		if options.LateMoveReduction && depth >= 3 && legalMoves > 3 &&
			!isCheck && isQuiet && !move.GivesCheck() &&
			move != killer1 && move != killer2 &&
			!b.InCheck() {
			reduction = Max(1, Min(depth-2, options.Lmr(depth, legalMoves)))
		}

		var score int
		if reduction > 0 {
			score = -e.alphaBeta(-(alpha + 1), -alpha, depth-1-reduction, height+1, true)
			if score > alpha {
				e.stats.lmrResearches++
				score = -e.alphaBeta(-beta, -alpha, depth-1, height+1, true)
			}
		} else {
			score = -e.alphaBeta(-beta, -alpha, depth-1, height+1, true)
		}

		e.unmakeMove(height)

		if rootNode {
			ml.Legal[i] = true
			ml.Scores[i] = score
		}

		if score >= beta {
			if isQuiet {
				e.updateKiller(move, height)
			}
			if options.UseTransTable {
				e.transTable.Store(key, beta, depth, height, boundLower, move)
			}
			return beta
		}
		if score > alpha {
			alpha = score
			bestMove = move
			e.assignPV(height, move)
		}
	}

	if legalMoves == 0 {
		if isCheck {
			return lossIn(height)
		}
		return valueDraw
	}

	if options.UseTransTable {
		var bound = boundUpper
		if alpha > oldAlpha {
			bound = boundExact
		}
		e.transTable.Store(key, alpha, depth, height, bound, bestMove)
	}

	return alpha
}

func (e *Engine) quiescence(alpha, beta, height, qdepth int) int {
	e.clearPV(height)
	if height > e.stats.selDepth {
		e.stats.selDepth = height
	}
	var standPat = e.evaluate()
	if qdepth >= maxQuiescenceDepth || height >= maxHeight {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var b = &e.board
	var deltaPruning = e.Options.DeltaPruning
	var ml = &e.stack[height].moves
	b.GenerateMoves(ml)
	e.scoreCaptures(ml)

	for i := 0; i < ml.Count; i++ {
		ml.PickBest(i)
		var move = ml.Moves[i]
		if !move.IsCapture() {
			// captures sort first
			break
		}
		if deltaPruning && standPat+captureGain(b, move)+deltaMargin <= alpha {
			e.stats.deltaPrunes++
			continue
		}
		if !e.makeCapture(move, height) {
			continue
		}
		var score = -e.quiescence(-beta, -alpha, height+1, qdepth+1)
		e.unmakeMove(height)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
			e.assignPV(height, move)
		}
	}
	return alpha
}

func (e *Engine) evaluate() int {
	return e.evaluator.Evaluate(&e.board)
}

func (e *Engine) makeMove(move Move, height int) bool {
	e.stack[height].undo = e.board
	if !e.board.MakeMove(move, false) {
		return false
	}
	e.board.Nodes++
	return true
}

func (e *Engine) makeCapture(move Move, height int) bool {
	e.stack[height].undo = e.board
	if !e.board.MakeMove(move, true) {
		return false
	}
	e.board.Nodes++
	return true
}

func (e *Engine) makeNullMove(height int) {
	e.stack[height].undo = e.board
	e.board.MakeNullMove()
	e.board.Nodes++
}

func (e *Engine) unmakeMove(height int) {
	e.board.Restore(&e.stack[height].undo)
}

func (e *Engine) updateKiller(move Move, height int) {
	var stack = &e.stack[height]
	if stack.killer1 != move {
		stack.killer2 = stack.killer1
		stack.killer1 = move
	}
}

func (e *Engine) clearPV(height int) {
	e.stack[height].pv.clear()
}

func (e *Engine) assignPV(height int, move Move) {
	e.stack[height].pv.assign(move, &e.stack[height+1].pv)
}
