package engine

import (
	"math"

	. "github.com/batuchess/batu/pkg/common"
)

type Options struct {
	Hash              int
	NullMovePruning   bool
	LateMoveReduction bool
	DeltaPruning      bool
	UseTransTable     bool
	reductions        [64][64]int
}

func NewOptions() Options {
	var result = Options{
		Hash:              32,
		NullMovePruning:   true,
		LateMoveReduction: true,
		DeltaPruning:      true,
		UseTransTable:     true,
	}
	result.InitLmr(LmrLog)
	return result
}

func (o *Options) Lmr(d, m int) int {
	return o.reductions[Min(d, 63)][Min(m, 63)]
}

func (o *Options) InitLmr(f func(d, m float64) float64) {
	initLmr(&o.reductions, f)
}

func initLmr(reductions *[64][64]int,
	f func(d, m float64) float64) {
	for d := 1; d < 64; d++ {
		for m := 1; m < 64; m++ {
			var r = f(float64(d), float64(m))
			reductions[d][m] = Max(0, int(r))
		}
	}
}

// LmrLog grows the reduction with the logarithms of depth and move number,
// from one ply at depth 3 move 4 to four plies at the far corner.
func LmrLog(d, m float64) float64 {
	return lirp(math.Log(d)*math.Log(m), math.Log(3)*math.Log(4), math.Log(63)*math.Log(63), 1, 4)
}

func lirp(x, x1, x2, y1, y2 float64) float64 {
	return y1 + (y2-y1)*(x-x1)/(x2-x1)
}
