package common

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrEmptyFEN = errors.New("empty fen")

// NewBoardFromFEN parses a position string. Parsing is best effort:
// characters that mean nothing in their field are skipped and missing
// trailing fields take their defaults, so a malformed string yields a board
// that may not match the intent rather than an error. Only an empty string
// is rejected.
func NewBoardFromFEN(t *Tables, fen string) (Board, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) == 0 {
		return Board{}, ErrEmptyFEN
	}
	var b = NewBoard(t)

	var sq = 0
	for i := 0; i < len(tokens[0]) && sq < 64; i++ {
		var ch = tokens[0][i]
		if ch >= '1' && ch <= '8' {
			sq += int(ch - '0')
		} else if piece := parsePiece(ch); piece != NoPiece {
			b.Pieces[piece] |= SquareMask(sq)
			sq++
		}
	}

	if len(tokens) > 1 && tokens[1] == "b" {
		b.Side = Black
	}

	if len(tokens) > 2 {
		for _, ch := range tokens[2] {
			switch ch {
			case 'K':
				b.Castling |= WhiteKingSide
			case 'Q':
				b.Castling |= WhiteQueenSide
			case 'k':
				b.Castling |= BlackKingSide
			case 'q':
				b.Castling |= BlackQueenSide
			}
		}
	}

	if len(tokens) > 3 {
		b.EpSquare = ParseSquare(tokens[3])
	}

	if len(tokens) > 4 {
		if n, err := strconv.Atoi(tokens[4]); err == nil {
			b.Rule50 = n
		}
	}
	if len(tokens) > 5 {
		if n, err := strconv.Atoi(tokens[5]); err == nil && n > 0 {
			b.FullMove = n
		}
	}

	b.updateOccupancies()
	return b, nil
}

// FEN writes all six fields.
func (b *Board) FEN() string {
	var sb bytes.Buffer

	var emptyCount = 0
	for sq := 0; sq < 64; sq++ {
		var piece = b.PieceAt(sq)
		if piece == NoPiece {
			emptyCount++
		} else {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceChar(piece))
		}
		if File(sq) == FileH {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			if Rank(sq) != Rank1 {
				sb.WriteString("/")
			}
		}
	}
	sb.WriteString(" ")

	if b.Side == White {
		sb.WriteString("w")
	} else {
		sb.WriteString("b")
	}
	sb.WriteString(" ")

	if b.Castling == 0 {
		sb.WriteString("-")
	} else {
		if (b.Castling & WhiteKingSide) != 0 {
			sb.WriteString("K")
		}
		if (b.Castling & WhiteQueenSide) != 0 {
			sb.WriteString("Q")
		}
		if (b.Castling & BlackKingSide) != 0 {
			sb.WriteString("k")
		}
		if (b.Castling & BlackQueenSide) != 0 {
			sb.WriteString("q")
		}
	}
	sb.WriteString(" ")

	sb.WriteString(SquareName(b.EpSquare))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.Rule50))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.FullMove))

	return sb.String()
}

func (b *Board) String() string {
	return b.FEN()
}

// Diagram draws the board as text, rank 8 first.
func (b *Board) Diagram() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		fmt.Fprintf(&sb, " %d ", rank+1)
		for file := FileA; file <= FileH; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(PieceChar(b.PieceAt(MakeSquare(file, rank))))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n    a b c d e f g h\n\n")
	fmt.Fprintf(&sb, " Fen: %v\n", b.FEN())
	fmt.Fprintf(&sb, " Key: %016x\n", b.Key())
	return sb.String()
}
