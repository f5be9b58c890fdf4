package common

import "strings"

func Min(l, r int) int {
	if l < r {
		return l
	}
	return r
}

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

// parsePiece maps a FEN letter to a piece kind, NoPiece for anything else.
func parsePiece(ch byte) int {
	var i = strings.IndexByte(pieceChars, ch)
	if i < 0 {
		return NoPiece
	}
	return i
}
