package common

import (
	"fmt"
	"sync"
)

// Tables holds every precomputed lookup the board needs: leaper attacks,
// magic indexed slider attacks and the Zobrist keys. A Tables value is
// immutable once built and is shared by pointer.
type Tables struct {
	pawnAttacks   [2][64]uint64
	knightAttacks [64]uint64
	kingAttacks   [64]uint64

	bishopMasks  [64]uint64
	rookMasks    [64]uint64
	bishopMagics [64]uint64
	rookMagics   [64]uint64
	bishopShifts [64]uint
	rookShifts   [64]uint

	bishopAttacks [64][1 << 9]uint64
	rookAttacks   [64][1 << 12]uint64

	keys zobristKeys
}

var (
	defaultTables     *Tables
	defaultTablesErr  error
	defaultTablesOnce sync.Once
)

// DefaultTables builds the process wide tables on first use.
func DefaultTables() *Tables {
	defaultTablesOnce.Do(func() {
		defaultTables, defaultTablesErr = NewTables()
	})
	if defaultTablesErr != nil {
		panic(defaultTablesErr)
	}
	return defaultTables
}

// NewTables builds a fresh set of tables, discovering the magic numbers
// with the deterministic default generator.
func NewTables() (*Tables, error) {
	var rnd = NewXorShift32(DefaultMagicSeed)
	var bishopMagics, rookMagics [64]uint64
	for sq := 0; sq < 64; sq++ {
		rookMagics[sq] = FindMagic(rnd, sq, Rook, DefaultMagicAttempts)
		if rookMagics[sq] == 0 {
			return nil, fmt.Errorf("rook %v: %w", SquareName(sq), ErrMagicNotFound)
		}
	}
	for sq := 0; sq < 64; sq++ {
		bishopMagics[sq] = FindMagic(rnd, sq, Bishop, DefaultMagicAttempts)
		if bishopMagics[sq] == 0 {
			return nil, fmt.Errorf("bishop %v: %w", SquareName(sq), ErrMagicNotFound)
		}
	}
	return NewTablesFromMagics(&bishopMagics, &rookMagics)
}

// NewTablesFromMagics builds tables from known magic numbers. It fails if a
// magic number maps two occupancies with different attacks to one slot.
func NewTablesFromMagics(bishopMagics, rookMagics *[64]uint64) (*Tables, error) {
	var t = &Tables{}
	t.initLeapers()
	t.bishopMagics = *bishopMagics
	t.rookMagics = *rookMagics
	for sq := 0; sq < 64; sq++ {
		t.bishopMasks[sq] = bishopRelevantMask(sq)
		t.rookMasks[sq] = rookRelevantMask(sq)
		t.bishopShifts[sq] = uint(64 - PopCount(t.bishopMasks[sq]))
		t.rookShifts[sq] = uint(64 - PopCount(t.rookMasks[sq]))
		if !fillSlider(t.bishopAttacks[sq][:], sq, t.bishopMasks[sq], t.bishopMagics[sq], t.bishopShifts[sq], bishopAttacksSlow) {
			return nil, fmt.Errorf("bishop %v: %w", SquareName(sq), ErrMagicNotFound)
		}
		if !fillSlider(t.rookAttacks[sq][:], sq, t.rookMasks[sq], t.rookMagics[sq], t.rookShifts[sq], rookAttacksSlow) {
			return nil, fmt.Errorf("rook %v: %w", SquareName(sq), ErrMagicNotFound)
		}
	}
	t.keys = newZobristKeys()
	return t, nil
}

func fillSlider(table []uint64, sq int, mask, magic uint64, shift uint,
	slide func(sq int, occ uint64) uint64) bool {
	var filled = make([]bool, len(table))
	for index := 0; index < 1<<PopCount(mask); index++ {
		var occ = magicify(mask, index)
		var attacks = slide(sq, occ)
		var key = (occ * magic) >> shift
		if filled[key] && table[key] != attacks {
			return false
		}
		filled[key] = true
		table[key] = attacks
	}
	return true
}

func (t *Tables) initLeapers() {
	for sq := 0; sq < 64; sq++ {
		var b = SquareMask(sq)

		t.pawnAttacks[White][sq] = (b>>7)&notAFile | (b>>9)&notHFile
		t.pawnAttacks[Black][sq] = (b<<7)&notHFile | (b<<9)&notAFile

		t.knightAttacks[sq] = (b>>17)&notHFile | (b>>15)&notAFile |
			(b>>10)&notGHFile | (b>>6)&notABFile |
			(b<<17)&notAFile | (b<<15)&notHFile |
			(b<<10)&notABFile | (b<<6)&notGHFile

		t.kingAttacks[sq] = b>>8 | b<<8 |
			(b>>9)&notHFile | (b>>7)&notAFile | (b>>1)&notHFile |
			(b<<9)&notAFile | (b<<7)&notHFile | (b<<1)&notAFile
	}
}

func (t *Tables) PawnAttacks(sq, side int) uint64 {
	return t.pawnAttacks[side][sq]
}

func (t *Tables) KnightAttacks(sq int) uint64 {
	return t.knightAttacks[sq]
}

func (t *Tables) KingAttacks(sq int) uint64 {
	return t.kingAttacks[sq]
}

// https://www.chessprogramming.org/Magic_Bitboards
func (t *Tables) BishopAttacks(sq int, occ uint64) uint64 {
	return t.bishopAttacks[sq][((occ&t.bishopMasks[sq])*t.bishopMagics[sq])>>t.bishopShifts[sq]]
}

func (t *Tables) RookAttacks(sq int, occ uint64) uint64 {
	return t.rookAttacks[sq][((occ&t.rookMasks[sq])*t.rookMagics[sq])>>t.rookShifts[sq]]
}

func (t *Tables) QueenAttacks(sq int, occ uint64) uint64 {
	return t.BishopAttacks(sq, occ) | t.RookAttacks(sq, occ)
}

func (t *Tables) BishopMagic(sq int) uint64 {
	return t.bishopMagics[sq]
}

func (t *Tables) RookMagic(sq int) uint64 {
	return t.rookMagics[sq]
}

// Attacks returns the squares a piece of the given kind standing on sq
// attacks with occupancy occ.
func (t *Tables) Attacks(piece, sq int, occ uint64) uint64 {
	switch PieceType(piece) {
	case Pawn:
		return t.pawnAttacks[PieceSide(piece)][sq]
	case Knight:
		return t.knightAttacks[sq]
	case Bishop:
		return t.BishopAttacks(sq, occ)
	case Rook:
		return t.RookAttacks(sq, occ)
	case Queen:
		return t.QueenAttacks(sq, occ)
	default:
		return t.kingAttacks[sq]
	}
}

func bishopRelevantMask(sq int) uint64 {
	var result uint64
	var row, col = sq / 8, sq % 8
	for r, f := row+1, col+1; r <= 6 && f <= 6; r, f = r+1, f+1 {
		result |= SquareMask(r*8 + f)
	}
	for r, f := row-1, col+1; r >= 1 && f <= 6; r, f = r-1, f+1 {
		result |= SquareMask(r*8 + f)
	}
	for r, f := row+1, col-1; r <= 6 && f >= 1; r, f = r+1, f-1 {
		result |= SquareMask(r*8 + f)
	}
	for r, f := row-1, col-1; r >= 1 && f >= 1; r, f = r-1, f-1 {
		result |= SquareMask(r*8 + f)
	}
	return result
}

func rookRelevantMask(sq int) uint64 {
	var result uint64
	var row, col = sq / 8, sq % 8
	for r := row + 1; r <= 6; r++ {
		result |= SquareMask(r*8 + col)
	}
	for r := row - 1; r >= 1; r-- {
		result |= SquareMask(r*8 + col)
	}
	for f := col + 1; f <= 6; f++ {
		result |= SquareMask(row*8 + f)
	}
	for f := col - 1; f >= 1; f-- {
		result |= SquareMask(row*8 + f)
	}
	return result
}

var (
	bishopDirections = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	rookDirections   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

func bishopAttacksSlow(sq int, occ uint64) uint64 {
	return slideAttacks(sq, occ, &bishopDirections)
}

func rookAttacksSlow(sq int, occ uint64) uint64 {
	return slideAttacks(sq, occ, &rookDirections)
}

// slideAttacks walks each ray until it leaves the board or hits a piece;
// the blocking square itself is attacked.
func slideAttacks(sq int, occ uint64, directions *[4][2]int) uint64 {
	var result uint64
	var row, col = sq / 8, sq % 8
	for _, d := range directions {
		for r, f := row+d[0], col+d[1]; r >= 0 && r <= 7 && f >= 0 && f <= 7; r, f = r+d[0], f+d[1] {
			var b = SquareMask(r*8 + f)
			result |= b
			if occ&b != 0 {
				break
			}
		}
	}
	return result
}
