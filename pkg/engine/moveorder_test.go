package engine

import (
	"testing"

	. "github.com/batuchess/batu/pkg/common"
)

func guessOf(t *testing.T, ml *MoveList, s string) int {
	t.Helper()
	for i := 0; i < ml.Count; i++ {
		if ml.Moves[i].String() == s {
			return ml.Guesses[i]
		}
	}
	t.Fatalf("move %v not generated", s)
	return 0
}

func TestScoreMoves(t *testing.T) {
	var e = newTestEngine()
	e.board = mustBoard(t, "4k3/8/2q1r3/3P4/8/8/4P1B1/1N2K2R w K - 0 1")
	var ml = &e.stack[0].moves
	e.board.GenerateMoves(ml)

	var transMove, err = e.board.ParseMove("e1f1")
	if err != nil {
		t.Fatal(err)
	}
	e.stack[0].killer1, _ = e.board.ParseMove("h1h4")
	e.stack[0].killer2, _ = e.board.ParseMove("h1h3")
	e.scoreMoves(ml, transMove, 0)

	var (
		tt          = guessOf(t, ml, "e1f1")
		pxq         = guessOf(t, ml, "d5c6")
		pxr         = guessOf(t, ml, "d5e6")
		killer1     = guessOf(t, ml, "h1h4")
		killer2     = guessOf(t, ml, "h1h3")
		develop     = guessOf(t, ml, "b1c3")
		knightQuiet = guessOf(t, ml, "b1a3")
		center      = guessOf(t, ml, "g2e4")
		castle      = guessOf(t, ml, "e1g1")
	)
	if !(tt > pxq && pxq > pxr && pxr > killer1 && killer1 > killer2 && killer2 > center) {
		t.Errorf("order tt %v pxq %v pxr %v k1 %v k2 %v", tt, pxq, pxr, killer1, killer2)
	}
	if !(develop > knightQuiet && center > 0) {
		t.Errorf("develop %v quiet %v center %v", develop, knightQuiet, center)
	}
	if castle != 0 {
		t.Errorf("castle %v", castle)
	}
}

func TestMvvLva(t *testing.T) {
	var b = mustBoard(t, "4k3/8/8/3q4/4P3/2N5/8/3QK3 w - - 0 1")
	var pxq, _ = b.ParseMove("e4d5")
	var qxq, _ = b.ParseMove("d1d5")
	var nxq, _ = b.ParseMove("c3d5")
	if !(mvvlva(&b, pxq) > mvvlva(&b, nxq) && mvvlva(&b, nxq) > mvvlva(&b, qxq)) {
		t.Error(mvvlva(&b, pxq), mvvlva(&b, nxq), mvvlva(&b, qxq))
	}
}

func TestCaptureGain(t *testing.T) {
	var b = mustBoard(t, "1r2k3/P7/8/3pP3/8/8/8/4K3 w - d6 0 1")
	var tests = []struct {
		move string
		gain int
	}{
		{"a7b8q", 500 + 900},
		{"e5d6", 100},
	}
	for _, test := range tests {
		var m, err = b.ParseMove(test.move)
		if err != nil {
			t.Fatal(err)
		}
		if got := captureGain(&b, m); got != test.gain {
			t.Errorf("%v: %v", test.move, got)
		}
	}
}

func TestLmr(t *testing.T) {
	var o = NewOptions()
	if o.Lmr(3, 4) != 1 {
		t.Error(o.Lmr(3, 4))
	}
	for d := 3; d < 64; d++ {
		for m := 4; m < 64; m++ {
			if o.Lmr(d, m) < o.Lmr(d, m-1) || o.Lmr(d, m) < o.Lmr(d-1, m) {
				t.Fatalf("not monotone at %v %v", d, m)
			}
		}
	}
	if o.Lmr(100, 100) != 4 {
		t.Error(o.Lmr(100, 100))
	}
}
