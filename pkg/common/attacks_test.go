package common

import (
	"errors"
	"testing"
)

func TestSliderAttacksMatchRayTracing(t *testing.T) {
	var tables = DefaultTables()
	for sq := 0; sq < 64; sq++ {
		var bishopMask = bishopRelevantMask(sq)
		for index := 0; index < 1<<PopCount(bishopMask); index++ {
			var occ = magicify(bishopMask, index)
			if got, want := tables.BishopAttacks(sq, occ), bishopAttacksSlow(sq, occ); got != want {
				t.Fatalf("bishop %v occ %v: got %v want %v", SquareName(sq),
					BitboardString(occ), BitboardString(got), BitboardString(want))
			}
		}
		var rookMask = rookRelevantMask(sq)
		for index := 0; index < 1<<PopCount(rookMask); index++ {
			var occ = magicify(rookMask, index)
			if got, want := tables.RookAttacks(sq, occ), rookAttacksSlow(sq, occ); got != want {
				t.Fatalf("rook %v occ %v: got %v want %v", SquareName(sq),
					BitboardString(occ), BitboardString(got), BitboardString(want))
			}
		}
	}
}

func TestSliderAttacksIgnoreEdgeBlockers(t *testing.T) {
	var tables = DefaultTables()
	var occ = ^uint64(0) &^ SquareMask(SquareD4)
	var full = tables.RookAttacks(SquareD4, 0)
	if PopCount(full) != 14 {
		t.Errorf("empty board rook d4 attacks %v squares, want 14", PopCount(full))
	}
	if got, want := tables.QueenAttacks(SquareD4, occ), tables.KingAttacks(SquareD4); got != want {
		t.Errorf("queen boxed in on d4: got %v want %v", BitboardString(got), BitboardString(want))
	}
}

func TestRelevantBits(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"rook corner", PopCount(rookRelevantMask(SquareA8)), 12},
		{"rook edge", PopCount(rookRelevantMask(SquareD1)), 11},
		{"rook center", PopCount(rookRelevantMask(SquareE4)), 10},
		{"bishop corner", PopCount(bishopRelevantMask(SquareH1)), 6},
		{"bishop edge", PopCount(bishopRelevantMask(SquareA4)), 5},
		{"bishop center", PopCount(bishopRelevantMask(SquareD4)), 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("bits = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestFindMagicIsDeterministic(t *testing.T) {
	var m1 = FindMagic(NewXorShift32(DefaultMagicSeed), SquareE4, Bishop, 1_000_000)
	var m2 = FindMagic(NewXorShift32(DefaultMagicSeed), SquareE4, Bishop, 1_000_000)
	if m1 == 0 || m1 != m2 {
		t.Errorf("magic %x %x", m1, m2)
	}
}

func TestFindMagicBudgetExhausted(t *testing.T) {
	if m := FindMagic(NewXorShift32(DefaultMagicSeed), SquareA1, Rook, 0); m != 0 {
		t.Errorf("magic = %x, want 0", m)
	}
}

func TestNewTablesFromMagicsRejectsCollisions(t *testing.T) {
	var zero [64]uint64
	var _, err = NewTablesFromMagics(&zero, &zero)
	if !errors.Is(err, ErrMagicNotFound) {
		t.Errorf("err = %v, want ErrMagicNotFound", err)
	}
}

func TestFreshTablesMatchDefault(t *testing.T) {
	if testing.Short() {
		t.Skip("rebuilds all tables")
	}
	var fresh, err = NewTables()
	if err != nil {
		t.Fatal(err)
	}
	var def = DefaultTables()
	if fresh == def {
		t.Fatal("NewTables must not return the shared tables")
	}
	for sq := 0; sq < 64; sq++ {
		if fresh.RookMagic(sq) != def.RookMagic(sq) || fresh.BishopMagic(sq) != def.BishopMagic(sq) {
			t.Fatalf("%v: magics differ between builds", SquareName(sq))
		}
	}
	var b1, _ = NewBoardFromFEN(fresh, InitialPositionFen)
	var b2, _ = NewBoardFromFEN(def, InitialPositionFen)
	if b1.Key() != b2.Key() {
		t.Error("zobrist keys differ between builds")
	}
}
