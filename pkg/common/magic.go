package common

import "errors"

var ErrMagicNotFound = errors.New("magic number not found")

// DefaultMagicSeed seeds the xorshift generator used to discover the magic
// numbers of the default tables.
const DefaultMagicSeed uint32 = 1804289383

// DefaultMagicAttempts bounds the number of candidates tried per square.
const DefaultMagicAttempts = 100_000_000

type RandomSource interface {
	Uint32() uint32
}

type XorShift32 struct {
	state uint32
}

func NewXorShift32(seed uint32) *XorShift32 {
	return &XorShift32{state: seed}
}

func (r *XorShift32) Uint32() uint32 {
	var x = r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func randomUint64(rnd RandomSource) uint64 {
	var n1 = uint64(rnd.Uint32()) & 0xFFFF
	var n2 = uint64(rnd.Uint32()) & 0xFFFF
	var n3 = uint64(rnd.Uint32()) & 0xFFFF
	var n4 = uint64(rnd.Uint32()) & 0xFFFF
	return n1 | n2<<16 | n3<<32 | n4<<48
}

// sparse candidates make good magics far more often
func magicCandidate(rnd RandomSource) uint64 {
	return randomUint64(rnd) & randomUint64(rnd) & randomUint64(rnd)
}

// FindMagic searches for a multiplier that maps every occupancy subset of
// the relevant mask of sq into a table of 2^bits entries without
// destructive collisions. slider is Bishop or Rook. Returns 0 when
// maxAttempts candidates were rejected.
func FindMagic(rnd RandomSource, sq, slider, maxAttempts int) uint64 {
	var mask uint64
	var slide func(sq int, occ uint64) uint64
	if slider == Bishop {
		mask, slide = bishopRelevantMask(sq), bishopAttacksSlow
	} else {
		mask, slide = rookRelevantMask(sq), rookAttacksSlow
	}
	var relevantBits = PopCount(mask)
	var size = 1 << relevantBits
	var shift = uint(64 - relevantBits)

	var occupancies = make([]uint64, size)
	var attacks = make([]uint64, size)
	for index := range occupancies {
		occupancies[index] = magicify(mask, index)
		attacks[index] = slide(sq, occupancies[index])
	}

	var used = make([]uint64, size)
	var epoch = make([]int, size)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var magic = magicCandidate(rnd)
		if PopCount((mask*magic)&0xFF00000000000000) < 6 {
			continue
		}
		var ok = true
		for i := 0; ok && i < size; i++ {
			var index = (occupancies[i] * magic) >> shift
			if epoch[index] != attempt {
				epoch[index] = attempt
				used[index] = attacks[i]
			} else if used[index] != attacks[i] {
				ok = false
			}
		}
		if ok {
			return magic
		}
	}
	return 0
}

// magicify spreads the bits of index over the set bits of mask. Walking
// index from 0 to 2^popcount(mask)-1 enumerates every subset of mask.
func magicify(mask uint64, index int) uint64 {
	var result uint64
	var count = PopCount(mask)
	for i, our := 0, mask; i < count; i++ {
		var their = ((our - 1) & our) ^ our
		our &= our - 1
		if (1<<uint(i))&index != 0 {
			result |= their
		}
	}
	return result
}
