package engine

import . "github.com/batuchess/batu/pkg/common"

const (
	sortTransMove = 1000000
	sortCapture   = 200000
	sortKiller1   = 90000
	sortKiller2   = 80000
)

// orderValue is the piece value used by the positional hints. The king
// scores nothing so a king walk is never preferred.
var orderValue = [...]int{100, 300, 320, 500, 1000, 0}

var centerSquares = SquareMask(SquareD4) | SquareMask(SquareD5) |
	SquareMask(SquareE4) | SquareMask(SquareE5)

var developSquares = [12]uint64{
	WhiteKnight: SquareMask(SquareC3) | SquareMask(SquareF3),
	WhiteBishop: SquareMask(SquareB2) | SquareMask(SquareG2),
	BlackKnight: SquareMask(SquareC6) | SquareMask(SquareF6),
	BlackBishop: SquareMask(SquareB7) | SquareMask(SquareG7),
}

func (e *Engine) scoreMoves(ml *MoveList, transMove Move, height int) {
	var b = &e.board
	var killer1 = e.stack[height].killer1
	var killer2 = e.stack[height].killer2
	for i := 0; i < ml.Count; i++ {
		var m = ml.Moves[i]
		var score int
		if m == transMove {
			score = sortTransMove
		} else {
			if m.IsCapture() {
				score = sortCapture + mvvlva(b, m)
			} else if m == killer1 {
				score = sortKiller1
			} else if m == killer2 {
				score = sortKiller2
			}
			if promoted := m.Promoted(); promoted != NoPiece {
				score += PieceValue(promoted)
			}
			score += positionalHint(m)
		}
		ml.Guesses[i] = score
	}
}

func (e *Engine) scoreCaptures(ml *MoveList) {
	var b = &e.board
	for i := 0; i < ml.Count; i++ {
		var m = ml.Moves[i]
		var score int
		if m.IsCapture() {
			score = sortCapture + mvvlva(b, m)
			if promoted := m.Promoted(); promoted != NoPiece {
				score += PieceValue(promoted)
			}
		}
		ml.Guesses[i] = score
	}
}

func mvvlva(b *Board, m Move) int {
	return 10*PieceValue(capturedPiece(b, m)) - PieceValue(m.Piece())
}

func capturedPiece(b *Board, m Move) int {
	if m.IsEnPassant() {
		return MakePiece(Pawn, b.Side^1)
	}
	return b.PieceAt(m.To())
}

// positionalHint rewards central landings, the classic minor piece
// development squares and moves flagged as giving check.
func positionalHint(m Move) int {
	var piece = m.Piece()
	var value = orderValue[PieceType(piece)]
	var to = SquareMask(m.To())
	var score = 0
	if centerSquares&to != 0 {
		score += value
	}
	if developSquares[piece]&to != 0 {
		score += value
	}
	if m.GivesCheck() {
		score += value / 10
	}
	return score
}

// captureGain is the material a capture can win at most, used by delta
// pruning.
func captureGain(b *Board, m Move) int {
	var gain = PieceValue(capturedPiece(b, m))
	if promoted := m.Promoted(); promoted != NoPiece {
		gain += PieceValue(promoted) - PieceValue(Pawn)
	}
	return gain
}
