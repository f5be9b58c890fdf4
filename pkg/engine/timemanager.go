package engine

import (
	"context"
	"time"

	. "github.com/batuchess/batu/pkg/common"
)

const defaultDepth = 6

// timeManager decides between iterations whether another depth is started.
// A running iteration is never interrupted.
type timeManager struct {
	ctx       context.Context
	start     time.Time
	limits    LimitsType
	softLimit time.Duration
	hardLimit time.Duration
	scale     int
	lastMove  Move
	lastScore int
	stable    int
	done      bool
}

func newTimeManager(ctx context.Context, start time.Time,
	limits LimitsType, side int) *timeManager {

	var tm = &timeManager{
		ctx:    ctx,
		start:  start,
		limits: limits,
		scale:  100,
	}

	if limits.MoveTime > 0 {
		tm.hardLimit = time.Duration(limits.MoveTime) * time.Millisecond
		tm.softLimit = tm.hardLimit * 6 / 10
	} else if limits.WhiteTime > 0 || limits.BlackTime > 0 {
		var main, inc time.Duration
		if side == White {
			main = time.Duration(limits.WhiteTime) * time.Millisecond
			inc = time.Duration(limits.WhiteIncrement) * time.Millisecond
		} else {
			main = time.Duration(limits.BlackTime) * time.Millisecond
			inc = time.Duration(limits.BlackIncrement) * time.Millisecond
		}
		tm.softLimit, tm.hardLimit = calcLimits(main, inc, limits.MovesToGo)
	} else if !limits.Infinite && limits.Depth == 0 && limits.Nodes == 0 {
		tm.limits.Depth = defaultDepth
	}

	return tm
}

func (tm *timeManager) OnIterationComplete(line mainLine, nodes int64) {
	if len(line.moves) != 0 && line.depth > 1 {
		var move = line.moves[0]
		if move != tm.lastMove {
			tm.stable = 0
			tm.scale = 150
		} else {
			tm.stable++
			if tm.stable >= 3 {
				tm.scale = 70
			} else {
				tm.scale = 100
			}
		}
		if line.score < tm.lastScore-50 {
			tm.scale = tm.scale * 13 / 10
		}
	}
	if len(line.moves) != 0 {
		tm.lastMove = line.moves[0]
	}
	tm.lastScore = line.score

	if tm.limits.Infinite {
		return
	}
	if tm.limits.Depth != 0 && line.depth >= tm.limits.Depth {
		tm.done = true
		return
	}
	if tm.limits.Nodes != 0 && nodes >= int64(tm.limits.Nodes) {
		tm.done = true
		return
	}
	if line.score >= winIn(line.depth-5) ||
		line.score <= lossIn(line.depth-5) {
		tm.done = true
		return
	}
}

// IsDone reports whether the next iteration should not be started.
func (tm *timeManager) IsDone() bool {
	if tm.done || tm.ctx.Err() != nil {
		return true
	}
	if tm.limits.Infinite {
		return false
	}
	var elapsed = time.Since(tm.start)
	if tm.hardLimit != 0 && elapsed >= tm.hardLimit {
		return true
	}
	return tm.softLimit != 0 && elapsed >= tm.limit()
}

// limit is the soft limit scaled by the stability of the last iterations,
// never above the hard limit.
func (tm *timeManager) limit() time.Duration {
	var limit = tm.softLimit * time.Duration(tm.scale) / 100
	if tm.hardLimit != 0 && limit > tm.hardLimit {
		limit = tm.hardLimit
	}
	return limit
}

func calcLimits(main, inc time.Duration, moves int) (soft, hard time.Duration) {
	const (
		DefaultMovesToGo = 40
		MoveOverhead     = 50 * time.Millisecond
		MinTimeLimit     = 1 * time.Millisecond
	)

	var maxHard = main * 7 / 10

	main -= MoveOverhead
	if main < MinTimeLimit {
		main = MinTimeLimit
	}

	if moves == 0 {
		var ideal = main/35 + inc/2
		soft = ideal * 7 / 10
		hard = ideal * 21 / 10
	} else {
		moves = Min(moves, DefaultMovesToGo)
		soft = (main/time.Duration(moves+1) + inc) * 7 / 10
		hard = (main/time.Duration(moves+1) + inc) * 21 / 10
	}

	hard = limitDuration(hard, MinTimeLimit, minDuration(main, maxHard))
	soft = limitDuration(soft, MinTimeLimit, hard)

	return
}

func minDuration(l, r time.Duration) time.Duration {
	if l < r {
		return l
	}
	return r
}

func limitDuration(v, min, max time.Duration) time.Duration {
	if max < min {
		max = min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
