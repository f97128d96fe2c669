// Copyright (c) 2024 chesscore contributors. MIT License.

package attacks

import (
	"github.com/kopf/chesscore/logging"
	. "github.com/kopf/chesscore/types"
)

var (
	pawnTable   [ColorLength][SqLength]Bitboard
	knightTable [SqLength]Bitboard
	kingTable   [SqLength]Bitboard
	rookMagics  [SqLength]magic
	bishopMagic [SqLength]magic

	built = false
	log   = logging.GetLog()
)

// Build populates every attack table. Idempotent and safe to call more
// than once; only the first call does work. Every other function in this
// package assumes Build has already run.
func Build() {
	if built {
		return
	}
	for sq := SqA1; sq <= SqH8; sq++ {
		pawnTable[White][sq] = pawnAttacksFrom(White, sq)
		pawnTable[Black][sq] = pawnAttacksFrom(Black, sq)
		knightTable[sq] = knightAttacksFrom(sq)
		kingTable[sq] = kingAttacksFrom(sq)
	}
	rookMagics = buildMagics(rookMagicNumbers, rookDirections)
	bishopMagic = buildMagics(bishopMagicNumbers, bishopDirections)
	built = true
	log.Debug("attack tables built")
}

// GetPawnAttacks returns the squares a color c pawn on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnTable[c][sq]
}

// GetKnightAttacks returns the squares a knight on sq attacks.
func GetKnightAttacks(sq Square) Bitboard {
	return knightTable[sq]
}

// GetKingAttacks returns the squares a king on sq attacks.
func GetKingAttacks(sq Square) Bitboard {
	return kingTable[sq]
}

// GetBishopAttacks returns the squares a bishop on sq attacks given the
// full board occupancy.
func GetBishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagic[sq]
	return m.table[m.index(occupied)]
}

// GetRookAttacks returns the squares a rook on sq attacks given the full
// board occupancy.
func GetRookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.table[m.index(occupied)]
}

// GetQueenAttacks returns the squares a queen on sq attacks: the union of
// its rook and bishop rays.
func GetQueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return GetRookAttacks(sq, occupied) | GetBishopAttacks(sq, occupied)
}

// AttacksFrom returns the squares a piece of type pt attacks from sq given
// the full board occupancy. King and knight ignore occupied.
func AttacksFrom(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return GetKnightAttacks(sq)
	case King:
		return GetKingAttacks(sq)
	case Bishop:
		return GetBishopAttacks(sq, occupied)
	case Rook:
		return GetRookAttacks(sq, occupied)
	case Queen:
		return GetQueenAttacks(sq, occupied)
	default:
		return BbZero
	}
}
