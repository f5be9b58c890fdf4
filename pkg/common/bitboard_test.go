package common

import "testing"

func TestSquareLayout(t *testing.T) {
	tests := []struct {
		name string
		sq   int
		want string
	}{
		{"a8", SquareA8, "a8"},
		{"h8", SquareH8, "h8"},
		{"a1", SquareA1, "a1"},
		{"h1", SquareH1, "h1"},
		{"e4", SquareE4, "e4"},
		{"d5", SquareD5, "d5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SquareName(tt.sq); got != tt.want {
				t.Errorf("SquareName(%v) = %v, want %v", tt.sq, got, tt.want)
			}
			if got := ParseSquare(tt.want); got != tt.sq {
				t.Errorf("ParseSquare(%v) = %v, want %v", tt.want, got, tt.sq)
			}
		})
	}
	if SquareA8 != 0 || SquareH1 != 63 {
		t.Error("squares must be numbered from the top-left corner")
	}
	if ParseSquare("-") != SquareNone || ParseSquare("z9") != SquareNone {
		t.Error("invalid squares must parse to SquareNone")
	}
}

func TestMasks(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  uint64
	}{
		{"not a file", notAFile, 18374403900871474942},
		{"not h file", notHFile, 9187201950435737471},
		{"not gh file", notGHFile, 4557430888798830399},
		{"not ab file", notABFile, 18229723555195321596},
		{"rank 8", Rank8Mask, 0xFF},
		{"rank 1", Rank1Mask, 0xFF << 56},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != tt.want {
				t.Errorf("mask = %v, want %v", tt.value, tt.want)
			}
		})
	}
}

func TestMoreThanOne(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"far one", 1 << 60, false},
		{"two ones", 3, true},
		{"three ones apart", 1<<6 | 1<<25 | 1<<36, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoreThanOne(tt.value); got != tt.want {
				t.Errorf("MoreThanOne() = %v, want %v", got, tt.want)
			}
		})
	}
}

func squares(names ...string) uint64 {
	var result uint64
	for _, name := range names {
		result |= SquareMask(ParseSquare(name))
	}
	return result
}

func TestLeaperAttacks(t *testing.T) {
	var tables = DefaultTables()
	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"white pawn e4", tables.PawnAttacks(SquareE4, White), squares("d5", "f5")},
		{"white pawn a2", tables.PawnAttacks(SquareA2, White), squares("b3")},
		{"white pawn h2", tables.PawnAttacks(SquareH2, White), squares("g3")},
		{"black pawn e5", tables.PawnAttacks(SquareE5, Black), squares("d4", "f4")},
		{"black pawn a7", tables.PawnAttacks(SquareA7, Black), squares("b6")},
		{"black pawn h7", tables.PawnAttacks(SquareH7, Black), squares("g6")},
		{"knight a1", tables.KnightAttacks(SquareA1), squares("b3", "c2")},
		{"knight h8", tables.KnightAttacks(SquareH8), squares("g6", "f7")},
		{"knight b7", tables.KnightAttacks(SquareB7), squares("d8", "d6", "a5", "c5")},
		{"knight g2", tables.KnightAttacks(SquareG2), squares("e1", "e3", "f4", "h4")},
		{"knight d4", tables.KnightAttacks(SquareD4), squares("c6", "e6", "f5", "f3", "e2", "c2", "b3", "b5")},
		{"king a8", tables.KingAttacks(SquareA8), squares("b8", "a7", "b7")},
		{"king h1", tables.KingAttacks(SquareH1), squares("g1", "g2", "h2")},
		{"king e4", tables.KingAttacks(SquareE4), squares("d3", "d4", "d5", "e3", "e5", "f3", "f4", "f5")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("attacks = %v, want %v", BitboardString(tt.got), BitboardString(tt.want))
			}
		})
	}
}
