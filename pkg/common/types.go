package common

import "time"

type LimitsType struct {
	Infinite       bool
	WhiteTime      int
	BlackTime      int
	WhiteIncrement int
	BlackIncrement int
	MoveTime       int
	MovesToGo      int
	Depth          int
	Nodes          int
}

type SearchParams struct {
	Board    Board
	Limits   LimitsType
	Progress func(si SearchInfo)
}

type SearchInfo struct {
	Score    UciScore
	Depth    int
	Nodes    int64
	Time     time.Duration
	MainLine []Move
}

// UciScore is a search score in protocol terms. Mated marks a root that
// is already checkmated ("mate 0").
type UciScore struct {
	Centipawns int
	Mate       int
	Mated      bool
}
