package common

import (
	"math/bits"
	"strings"
)

const (
	FileAMask uint64 = 0x0101010101010101 << iota
	FileBMask
	FileCMask
	FileDMask
	FileEMask
	FileFMask
	FileGMask
	FileHMask
)

const (
	Rank8Mask uint64 = 0xFF << (8 * iota)
	Rank7Mask
	Rank6Mask
	Rank5Mask
	Rank4Mask
	Rank3Mask
	Rank2Mask
	Rank1Mask
)

// Wraparound guards for shift based attack generation.
const (
	notAFile  = ^FileAMask
	notHFile  = ^FileHMask
	notABFile = ^(FileAMask | FileBMask)
	notGHFile = ^(FileGMask | FileHMask)
)

var FileMask = [8]uint64{
	FileAMask, FileBMask, FileCMask, FileDMask, FileEMask, FileFMask, FileGMask, FileHMask,
}

func SquareMask(sq int) uint64 {
	return uint64(1) << uint(sq)
}

func HasSquare(b uint64, sq int) bool {
	return b&SquareMask(sq) != 0
}

func PopCount(b uint64) int {
	return bits.OnesCount64(b)
}

func FirstOne(b uint64) int {
	return bits.TrailingZeros64(b)
}

func MoreThanOne(value uint64) bool {
	return value != 0 && ((value-1)&value) != 0
}

func BitboardString(b uint64) string {
	var sb strings.Builder
	sb.WriteString("(")
	for x := b; x != 0; x &= x - 1 {
		if sb.Len() > 1 {
			sb.WriteString(",")
		}
		sb.WriteString(SquareName(FirstOne(x)))
	}
	sb.WriteString(")")
	return sb.String()
}

// Up moves every square one rank towards the black side.
func Up(b uint64) uint64 {
	return b >> 8
}

func Down(b uint64) uint64 {
	return b << 8
}

func Right(b uint64) uint64 {
	return (b & notHFile) << 1
}

func Left(b uint64) uint64 {
	return (b & notAFile) >> 1
}

func UpRight(b uint64) uint64 {
	return Up(Right(b))
}

func UpLeft(b uint64) uint64 {
	return Up(Left(b))
}

func DownRight(b uint64) uint64 {
	return Down(Right(b))
}

func DownLeft(b uint64) uint64 {
	return Down(Left(b))
}
