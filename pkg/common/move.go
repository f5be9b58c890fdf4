package common

import "errors"

var ErrIllegalMove = errors.New("illegal move")

// Move packs a move into one integer:
//
//	bits 0-5   source square
//	bits 6-11  target square
//	bits 12-15 moving piece
//	bits 16-19 promoted piece, 0 when none
//	bit  20    capture
//	bit  21    double pawn push
//	bit  22    en passant
//	bit  23    castling
//	bit  24    gives check (ordering hint)
type Move int32

const MoveEmpty Move = 0

const (
	flagCapture Move = 1 << (20 + iota)
	flagDoublePush
	flagEnPassant
	flagCastling
	flagCheck
)

func makeMove(from, to, piece, promoted int) Move {
	var m = Move(from) | Move(to)<<6 | Move(piece)<<12
	if promoted != NoPiece {
		m |= Move(promoted) << 16
	}
	return m
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) Piece() int {
	return int((m >> 12) & 15)
}

// Promoted returns the piece a pawn turns into, NoPiece otherwise.
func (m Move) Promoted() int {
	var p = int((m >> 16) & 15)
	if p == 0 {
		return NoPiece
	}
	return p
}

func (m Move) IsCapture() bool {
	return m&flagCapture != 0
}

func (m Move) IsDoublePush() bool {
	return m&flagDoublePush != 0
}

func (m Move) IsEnPassant() bool {
	return m&flagEnPassant != 0
}

func (m Move) IsCastling() bool {
	return m&flagCastling != 0
}

func (m Move) GivesCheck() bool {
	return m&flagCheck != 0
}

func (m Move) IsCaptureOrPromotion() bool {
	return m.IsCapture() || m.Promoted() != NoPiece
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var s = SquareName(m.From()) + SquareName(m.To())
	if promoted := m.Promoted(); promoted != NoPiece {
		s += string("nbrq"[PieceType(promoted)-Knight])
	}
	return s
}

const MaxMoves = 256

// MoveList is a fixed size move buffer with the per move data the search
// keeps next to each move.
type MoveList struct {
	Moves   [MaxMoves]Move
	Guesses [MaxMoves]int
	Scores  [MaxMoves]int
	Legal   [MaxMoves]bool
	Count   int
}

func (ml *MoveList) Clear() {
	ml.Count = 0
}

func (ml *MoveList) Add(m Move) {
	ml.Moves[ml.Count] = m
	ml.Guesses[ml.Count] = 0
	ml.Scores[ml.Count] = 0
	ml.Legal[ml.Count] = false
	ml.Count++
}

func (ml *MoveList) Swap(i, j int) {
	ml.Moves[i], ml.Moves[j] = ml.Moves[j], ml.Moves[i]
	ml.Guesses[i], ml.Guesses[j] = ml.Guesses[j], ml.Guesses[i]
	ml.Scores[i], ml.Scores[j] = ml.Scores[j], ml.Scores[i]
	ml.Legal[i], ml.Legal[j] = ml.Legal[j], ml.Legal[i]
}

// PickBest moves the entry with the highest guess among start..Count-1 to
// start. Calling it for each index in turn is a lazy selection sort.
func (ml *MoveList) PickBest(start int) {
	var best = start
	for i := start + 1; i < ml.Count; i++ {
		if ml.Guesses[i] > ml.Guesses[best] {
			best = i
		}
	}
	if best != start {
		ml.Swap(start, best)
	}
}

func (ml *MoveList) Slice() []Move {
	var result = make([]Move, ml.Count)
	copy(result, ml.Moves[:ml.Count])
	return result
}
