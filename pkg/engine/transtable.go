package engine

import (
	. "github.com/batuchess/batu/pkg/common"
)

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

func roundPowerOfTwo(size int) int {
	var x = 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

// 16 bytes
type transEntry struct {
	key   uint64
	move  Move
	score int16
	depth int8
	bound uint8
}

// TransTable is a single-slot, always-replace hash of search results.
// An entry with bound 0 is empty.
type TransTable struct {
	megabytes int
	entries   []transEntry
	mask      uint64
}

func NewTransTable(megabytes int) *TransTable {
	var size = roundPowerOfTwo(1024 * 1024 * Max(1, megabytes) / 16)
	return &TransTable{
		megabytes: megabytes,
		entries:   make([]transEntry, size),
		mask:      uint64(size - 1),
	}
}

func (tt *TransTable) Megabytes() int {
	return tt.megabytes
}

func (tt *TransTable) Size() int {
	return len(tt.entries)
}

func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = transEntry{}
	}
}

// Probe returns the stored move whenever the key matches. ok is set only
// when the entry is deep enough and its bound decides the window: an exact
// score is returned as is, a lower bound at or above beta returns beta and
// an upper bound at or below alpha returns alpha.
func (tt *TransTable) Probe(key uint64, depth, height, alpha, beta int) (move Move, score int, ok bool) {
	var entry = &tt.entries[key&tt.mask]
	if entry.bound == 0 || entry.key != key {
		return MoveEmpty, 0, false
	}
	move = entry.move
	if int(entry.depth) < depth {
		return move, 0, false
	}
	score = valueFromTT(int(entry.score), height)
	switch entry.bound {
	case boundExact:
		return move, score, true
	case boundLower:
		if score >= beta {
			return move, beta, true
		}
	case boundUpper:
		if score <= alpha {
			return move, alpha, true
		}
	}
	return move, 0, false
}

// Store overwrites the slot unless it holds the same position searched
// deeper and the new result is not exact.
func (tt *TransTable) Store(key uint64, score, depth, height, bound int, move Move) {
	var entry = &tt.entries[key&tt.mask]
	var sameKey = entry.bound != 0 && entry.key == key
	if sameKey && depth < int(entry.depth) && bound != boundExact {
		return
	}
	if move == MoveEmpty && sameKey {
		move = entry.move
	}
	*entry = transEntry{
		key:   key,
		move:  move,
		score: int16(valueToTT(score, height)),
		depth: int8(Min(depth, maxHeight)),
		bound: uint8(bound),
	}
}

// Hashfull reports the permille of used entries in a sample of the table.
func (tt *TransTable) Hashfull() int {
	var n = Min(1000, len(tt.entries))
	var used = 0
	for i := 0; i < n; i++ {
		if tt.entries[i].bound != 0 {
			used++
		}
	}
	return used * 1000 / n
}
