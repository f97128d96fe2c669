// Copyright (c) 2024 chesscore contributors. MIT License.

package types

import "fmt"

// Square identifies one of the 64 board squares, 0..63, file-major within
// rank: i = rank*8 + file, rank 0 is White's back rank and file 0 is file A.
type Square int8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// SqLength is the number of addressable squares (0..63); SqNone is one past.
const SqLength = 64

// NewSquare validates file/rank and returns the packed square index.
func NewSquare(file, rank int) (Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqNone, false
	}
	return Square(rank*8 + file), true
}

// FileOf returns the 0..7 file component (0 = file A).
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the 0..7 rank component (0 = rank 1, White's back rank).
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqNone
}

// MirrorVertical reflects a square across the board's horizontal midline,
// i.e. A1<->A8, the mirror operation evaluation's PSQT lookup uses for Black.
func (sq Square) MirrorVertical() Square {
	return Square((7-int(sq.RankOf()))*8 + int(sq.FileOf()))
}

var squareNames = [SqLength]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String renders a square in algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return squareNames[sq]
}

// SquareFromString parses algebraic notation ("e4") into a Square.
func SquareFromString(s string) (Square, bool) {
	if len(s) != 2 {
		return SqNone, false
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return NewSquare(file, rank)
}

// File is a board column, 0 (A) .. 7 (H).
type File int8

// FileLength is the number of files.
const FileLength = 8

func (f File) String() string {
	return fmt.Sprintf("%c", 'a'+byte(f))
}

// Rank is a board row, 0 (rank 1) .. 7 (rank 8).
type Rank int8

// RankLength is the number of ranks.
const RankLength = 8

func (r Rank) String() string {
	return fmt.Sprintf("%c", '1'+byte(r))
}
