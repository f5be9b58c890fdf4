package common

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

const zobristSeed = 1070372

type zobristKeys struct {
	pieces   [12][64]uint64
	epFile   [8]uint64
	castling [16]uint64
	side     uint64
}

// Keys come from a ChaCha stream with a fixed seed so that signatures are
// stable between runs.
func newZobristKeys() zobristKeys {
	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[:], zobristSeed)
	var rng = frand.NewCustom(seed[:], 1024, 12)
	var buf [8]byte
	var next = func() uint64 {
		rng.Read(buf[:])
		return binary.LittleEndian.Uint64(buf[:])
	}

	var keys zobristKeys
	for piece := range keys.pieces {
		for sq := range keys.pieces[piece] {
			keys.pieces[piece][sq] = next()
		}
	}
	for file := range keys.epFile {
		keys.epFile[file] = next()
	}
	for rights := range keys.castling {
		keys.castling[rights] = next()
	}
	keys.side = next()
	return keys
}

// Key computes the position signature from scratch.
func (b *Board) Key() uint64 {
	var keys = &b.tables.keys
	var result uint64
	for piece := range b.Pieces {
		for x := b.Pieces[piece]; x != 0; x &= x - 1 {
			result ^= keys.pieces[piece][FirstOne(x)]
		}
	}
	if b.EpSquare != SquareNone {
		result ^= keys.epFile[File(b.EpSquare)]
	}
	result ^= keys.castling[b.Castling]
	if b.Side == Black {
		result ^= keys.side
	}
	return result
}
