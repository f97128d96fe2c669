// Copyright (c) 2024 chesscore contributors. MIT License.

package types

import "strconv"

// Value is a centipawn evaluation score, side-to-move relative once it
// leaves Evaluate (negamax convention: higher is always better for the
// side to move).
type Value int32

// Score bounds used by the search. ValueCheckMate is the base mate
// score; an actual mate score is ValueCheckMate adjusted by ply so that
// shorter mates sort ahead of longer ones (see search package).
const (
	ValueDraw      Value = 0
	ValueInfinite  Value = 50000
	ValueCheckMate Value = 49000
)

func (v Value) String() string {
	return strconv.Itoa(int(v))
}
