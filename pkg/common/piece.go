package common

const (
	White = iota
	Black
	Both
)

// Piece types, independent of color.
const (
	Pawn = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece kinds: 6 types for each of the two colors.
const (
	WhitePawn = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

const NoPiece = -1

const pieceChars = "PNBRQKpnbrqk"

var pieceValues = [12]int{
	100, 300, 320, 500, 1000, 10000,
	100, 300, 320, 500, 1000, 10000,
}

func MakePiece(pieceType, side int) int {
	return side*6 + pieceType
}

func PieceType(piece int) int {
	return piece % 6
}

func PieceSide(piece int) int {
	return piece / 6
}

// PieceValue is the material value used by the default evaluator and move
// ordering. NoPiece is worth nothing.
func PieceValue(piece int) int {
	if piece == NoPiece {
		return 0
	}
	return pieceValues[piece]
}

func PieceChar(piece int) byte {
	if piece == NoPiece {
		return '.'
	}
	return pieceChars[piece]
}
