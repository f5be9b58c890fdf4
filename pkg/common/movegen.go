package common

import (
	"fmt"
	"strings"
)

var promotionOrder = [4]int{Queen, Rook, Bishop, Knight}

type castleRule struct {
	right            int
	kingFrom, kingTo int
	rookFrom         int
	empty            uint64
	safe             [2]int
}

var castleRules = [2][2]castleRule{
	White: {
		{WhiteKingSide, SquareE1, SquareG1, SquareH1,
			SquareMask(SquareF1) | SquareMask(SquareG1), [2]int{SquareE1, SquareF1}},
		{WhiteQueenSide, SquareE1, SquareC1, SquareA1,
			SquareMask(SquareD1) | SquareMask(SquareC1) | SquareMask(SquareB1), [2]int{SquareE1, SquareD1}},
	},
	Black: {
		{BlackKingSide, SquareE8, SquareG8, SquareH8,
			SquareMask(SquareF8) | SquareMask(SquareG8), [2]int{SquareE8, SquareF8}},
		{BlackQueenSide, SquareE8, SquareC8, SquareA8,
			SquareMask(SquareD8) | SquareMask(SquareC8) | SquareMask(SquareB8), [2]int{SquareE8, SquareD8}},
	},
}

// GenerateMoves fills ml with the pseudo-legal moves of the side to move.
// Moves that leave the own king in check are rejected later by MakeMove.
//
// Every move is tagged with a check hint: the enemy king is attacked by a
// piece of the moved kind standing on the target square. Discovered checks
// are not detected.
func (b *Board) GenerateMoves(ml *MoveList) {
	ml.Clear()
	var t = b.tables
	var us, them = b.Side, b.Side ^ 1
	var own, enemy, occ = b.Occupancy[us], b.Occupancy[them], b.Occupancy[Both]
	var enemyKing = b.Pieces[MakePiece(King, them)]

	var add = func(from, to, piece, promoted int, flags Move) {
		var m = makeMove(from, to, piece, promoted) | flags
		var checker = piece
		if promoted != NoPiece {
			checker = promoted
		}
		if PieceType(piece) != King && t.Attacks(checker, to, occ)&enemyKing != 0 {
			m |= flagCheck
		}
		ml.Add(m)
	}

	// pawns
	var pawn = MakePiece(Pawn, us)
	var forward, startRank, lastRank = -8, Rank2Mask, Rank8Mask
	if us == Black {
		forward, startRank, lastRank = 8, Rank7Mask, Rank1Mask
	}
	for x := b.Pieces[pawn]; x != 0; x &= x - 1 {
		var from = FirstOne(x)
		var to = from + forward
		if !HasSquare(occ, to) {
			if HasSquare(lastRank, to) {
				for _, pt := range promotionOrder {
					add(from, to, pawn, MakePiece(pt, us), 0)
				}
			} else {
				add(from, to, pawn, NoPiece, 0)
				if HasSquare(startRank, from) && !HasSquare(occ, to+forward) {
					add(from, to+forward, pawn, NoPiece, flagDoublePush)
				}
			}
		}
		var attacks = t.pawnAttacks[us][from]
		for y := attacks & enemy; y != 0; y &= y - 1 {
			var to = FirstOne(y)
			if HasSquare(lastRank, to) {
				for _, pt := range promotionOrder {
					add(from, to, pawn, MakePiece(pt, us), flagCapture)
				}
			} else {
				add(from, to, pawn, NoPiece, flagCapture)
			}
		}
		if b.EpSquare != SquareNone && HasSquare(attacks, b.EpSquare) {
			add(from, b.EpSquare, pawn, NoPiece, flagCapture|flagEnPassant)
		}
	}

	// castling
	var king = MakePiece(King, us)
	for i := range castleRules[us] {
		var rule = &castleRules[us][i]
		if b.Castling&rule.right == 0 ||
			occ&rule.empty != 0 ||
			!HasSquare(b.Pieces[king], rule.kingFrom) ||
			!HasSquare(b.Pieces[MakePiece(Rook, us)], rule.rookFrom) {
			continue
		}
		if b.IsSquareAttacked(rule.safe[0], them) || b.IsSquareAttacked(rule.safe[1], them) {
			continue
		}
		add(rule.kingFrom, rule.kingTo, king, NoPiece, flagCastling)
	}

	// knights, sliders and king
	for pt := Knight; pt <= King; pt++ {
		var piece = MakePiece(pt, us)
		for x := b.Pieces[piece]; x != 0; x &= x - 1 {
			var from = FirstOne(x)
			for y := t.Attacks(piece, from, occ) &^ own; y != 0; y &= y - 1 {
				var to = FirstOne(y)
				var flags Move
				if HasSquare(enemy, to) {
					flags = flagCapture
				}
				add(from, to, piece, NoPiece, flags)
			}
		}
	}
}

// GenerateLegalMoves returns the legal moves of the side to move.
func (b *Board) GenerateLegalMoves() []Move {
	var ml MoveList
	b.GenerateMoves(&ml)
	var result = make([]Move, 0, ml.Count)
	for i := 0; i < ml.Count; i++ {
		var backup = *b
		if b.MakeMove(ml.Moves[i], false) {
			result = append(result, ml.Moves[i])
			b.Restore(&backup)
		}
	}
	return result
}

// ParseMove finds the legal move written in coordinate notation, for
// example e2e4 or e7e8q.
func (b *Board) ParseMove(s string) (Move, error) {
	s = strings.ToLower(s)
	for _, m := range b.GenerateLegalMoves() {
		if m.String() == s {
			return m, nil
		}
	}
	return MoveEmpty, fmt.Errorf("%v: %w", s, ErrIllegalMove)
}

// MakeMoveLAN applies a move given in coordinate notation.
func (b *Board) MakeMoveLAN(s string) error {
	var m, err = b.ParseMove(s)
	if err != nil {
		return err
	}
	b.MakeMove(m, false)
	return nil
}
