package common

const (
	WhiteKingSide = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castleMask[sq] is AND-ed into the castling rights whenever a move starts
// or ends on sq.
var castleMask = [64]int{
	7, 15, 15, 15, 3, 15, 15, 11,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	13, 15, 15, 15, 12, 15, 15, 14,
}

// Board is the full game state. It is a plain value: assigning it copies
// everything, which is how the search takes snapshots.
type Board struct {
	Pieces    [12]uint64
	Occupancy [3]uint64
	Side      int
	EpSquare  int
	Castling  int
	Rule50    int
	FullMove  int
	// Nodes counts moves made during a search. It is not game state and
	// survives Restore.
	Nodes  int64
	tables *Tables
}

// NewBoard returns an empty board with white to move.
func NewBoard(t *Tables) Board {
	return Board{
		Side:     White,
		EpSquare: SquareNone,
		FullMove: 1,
		tables:   t,
	}
}

func (b *Board) Tables() *Tables {
	return b.tables
}

func (b *Board) Snapshot() Board {
	return *b
}

// Restore brings back a snapshot taken with Snapshot or plain assignment.
func (b *Board) Restore(s *Board) {
	var nodes = b.Nodes
	*b = *s
	b.Nodes = nodes
}

func (b *Board) updateOccupancies() {
	b.Occupancy[White] = b.Pieces[WhitePawn] | b.Pieces[WhiteKnight] | b.Pieces[WhiteBishop] |
		b.Pieces[WhiteRook] | b.Pieces[WhiteQueen] | b.Pieces[WhiteKing]
	b.Occupancy[Black] = b.Pieces[BlackPawn] | b.Pieces[BlackKnight] | b.Pieces[BlackBishop] |
		b.Pieces[BlackRook] | b.Pieces[BlackQueen] | b.Pieces[BlackKing]
	b.Occupancy[Both] = b.Occupancy[White] | b.Occupancy[Black]
}

func (b *Board) PieceAt(sq int) int {
	var mask = SquareMask(sq)
	if b.Occupancy[Both]&mask == 0 {
		return NoPiece
	}
	for piece := range b.Pieces {
		if b.Pieces[piece]&mask != 0 {
			return piece
		}
	}
	return NoPiece
}

func (b *Board) KingSquare(side int) int {
	var king = b.Pieces[MakePiece(King, side)]
	if king == 0 {
		return SquareNone
	}
	return FirstOne(king)
}

// IsSquareAttacked reports whether any piece of side attacks sq.
func (b *Board) IsSquareAttacked(sq, side int) bool {
	var t = b.tables
	var occ = b.Occupancy[Both]
	var first = MakePiece(Pawn, side)
	// a pawn of side attacks sq if a pawn of the other side on sq would attack it back
	if t.pawnAttacks[side^1][sq]&b.Pieces[first+Pawn] != 0 {
		return true
	}
	if t.knightAttacks[sq]&b.Pieces[first+Knight] != 0 {
		return true
	}
	if t.kingAttacks[sq]&b.Pieces[first+King] != 0 {
		return true
	}
	if t.BishopAttacks(sq, occ)&(b.Pieces[first+Bishop]|b.Pieces[first+Queen]) != 0 {
		return true
	}
	if t.RookAttacks(sq, occ)&(b.Pieces[first+Rook]|b.Pieces[first+Queen]) != 0 {
		return true
	}
	return false
}

func (b *Board) InCheck() bool {
	var king = b.KingSquare(b.Side)
	return king != SquareNone && b.IsSquareAttacked(king, b.Side^1)
}

// HasNonPawnMaterial reports whether side has a knight, bishop, rook or queen.
func (b *Board) HasNonPawnMaterial(side int) bool {
	var first = MakePiece(Pawn, side)
	return b.Pieces[first+Knight]|b.Pieces[first+Bishop]|
		b.Pieces[first+Rook]|b.Pieces[first+Queen] != 0
}

// MakeMove applies a pseudo-legal move in place. If the move leaves the
// mover's king attacked the board is restored and false is returned. With
// onlyCaptures a quiet move is rejected without touching the board.
func (b *Board) MakeMove(move Move, onlyCaptures bool) bool {
	if onlyCaptures && !move.IsCapture() {
		return false
	}
	var backup = *b

	var from, to = move.From(), move.To()
	var piece = move.Piece()
	var us, them = b.Side, b.Side ^ 1
	var fromTo = SquareMask(from) | SquareMask(to)

	b.Pieces[piece] ^= fromTo

	if move.IsCapture() {
		var toMask = SquareMask(to)
		for p := MakePiece(Pawn, them); p <= MakePiece(King, them); p++ {
			if b.Pieces[p]&toMask != 0 {
				b.Pieces[p] &^= toMask
				break
			}
		}
	}

	if promoted := move.Promoted(); promoted != NoPiece {
		b.Pieces[piece] &^= SquareMask(to)
		b.Pieces[promoted] |= SquareMask(to)
	}

	if move.IsEnPassant() {
		// the captured pawn sits behind the target square
		var victim = to + 8
		if us == Black {
			victim = to - 8
		}
		b.Pieces[MakePiece(Pawn, them)] &^= SquareMask(victim)
	}

	b.EpSquare = SquareNone
	if move.IsDoublePush() {
		b.EpSquare = (from + to) / 2
	}

	if move.IsCastling() {
		switch to {
		case SquareG1:
			b.Pieces[WhiteRook] ^= SquareMask(SquareH1) | SquareMask(SquareF1)
		case SquareC1:
			b.Pieces[WhiteRook] ^= SquareMask(SquareA1) | SquareMask(SquareD1)
		case SquareG8:
			b.Pieces[BlackRook] ^= SquareMask(SquareH8) | SquareMask(SquareF8)
		case SquareC8:
			b.Pieces[BlackRook] ^= SquareMask(SquareA8) | SquareMask(SquareD8)
		}
	}

	b.Castling &= castleMask[from] & castleMask[to]

	if PieceType(piece) == Pawn || move.IsCapture() {
		b.Rule50 = 0
	} else {
		b.Rule50++
	}
	if us == Black {
		b.FullMove++
	}

	b.updateOccupancies()
	b.Side = them

	var king = b.Pieces[MakePiece(King, us)]
	if king != 0 && b.IsSquareAttacked(FirstOne(king), them) {
		b.Restore(&backup)
		return false
	}
	return true
}

// MakeNullMove passes the turn to the opponent.
func (b *Board) MakeNullMove() {
	b.EpSquare = SquareNone
	b.Rule50++
	b.Side ^= 1
}
