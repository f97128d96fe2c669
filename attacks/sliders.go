// Copyright (c) 2024 chesscore contributors. MIT License.

package attacks

import . "github.com/kopf/chesscore/types"

var rookDirections = [4]Direction{North, South, East, West}
var bishopDirections = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}

// raySlide walks sq in each of the given directions, one square at a time,
// stopping as soon as it steps off the board or onto an occupied square
// (the occupied square itself is included, since a slider attacks the
// piece that blocks it). Used both to build the magic attack tables and,
// via the relevant-occupancy variant below, as the portable reference
// implementation magic lookups are checked against.
func raySlide(sq Square, occupied Bitboard, directions [4]Direction) Bitboard {
	var attacks Bitboard
	for _, d := range directions {
		from := sq
		for {
			to, crossed := stepOnce(from, d)
			if !crossed {
				break
			}
			attacks = attacks.SetBit(to)
			from = to
			if occupied.GetBit(to) {
				break
			}
		}
	}
	return attacks
}

// stepOnce moves one square in direction d from sq, reporting false if
// that step would wrap around a board edge.
func stepOnce(sq Square, d Direction) (Square, bool) {
	b := ShiftBitboard(SquareBb(sq), d)
	if b == BbZero {
		return SqNone, false
	}
	to, ok := b.LsbSquare()
	return to, ok
}

// slidingMask returns the relevant-occupancy mask for a slider on sq: the
// squares its rays pass over on an empty board, excluding the board edge
// in each ray's own direction (the edge square itself never needs to be
// part of the occupancy key, since the ray always stops there anyway).
func slidingMask(sq Square, directions [4]Direction) Bitboard {
	full := raySlide(sq, BbZero, directions)
	edges := (Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()
	edges |= (FileABb | FileHBb) &^ sq.FileOf().Bb()
	return full &^ edges
}

// bishopAttacksOnFly and rookAttacksOnFly are the portable, magic-free
// reference generators: correct by construction, used to populate the
// magic tables and to cross-check them in tests.
func bishopAttacksOnFly(sq Square, occupied Bitboard) Bitboard {
	return raySlide(sq, occupied, bishopDirections)
}

func rookAttacksOnFly(sq Square, occupied Bitboard) Bitboard {
	return raySlide(sq, occupied, rookDirections)
}
