package eval

import (
	"github.com/batuchess/batu/pkg/common"
)

// EvaluationService counts material only, kings excluded.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(b *common.Board) int {
	var eval = 0
	for pt := common.Pawn; pt < common.King; pt++ {
		var white = common.MakePiece(pt, common.White)
		var black = common.MakePiece(pt, common.Black)
		eval += common.PieceValue(white) *
			(common.PopCount(b.Pieces[white]) - common.PopCount(b.Pieces[black]))
	}
	if b.Side != common.White {
		eval = -eval
	}
	return eval
}
