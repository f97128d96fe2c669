// Copyright (c) 2024 chesscore contributors. MIT License.

package evaluator

import (
	"github.com/kopf/chesscore/config"
	"github.com/kopf/chesscore/position"
	. "github.com/kopf/chesscore/types"
)

// pieceValues holds the material worth of each piece type in centipawns.
// King is given a large finite value rather than a sentinel so material
// sums stay ordinary arithmetic; it never actually enters the balance
// since a position with a captured king is illegal.
var pieceValues = [PieceTypeLength]Value{
	PtNone: 0,
	Pawn:   100,
	Knight: 300,
	Bishop: 350,
	Rook:   500,
	Queen:  1000,
	King:   10000,
}

// Evaluate scores pos from the perspective of the side to move: positive
// favors the mover. It sums material balance and each piece's
// piece-square bonus over the whole board, then adds a tempo bonus for
// having the move.
func Evaluate(pos *position.Position) Value {
	var score Value
	for pt := Pawn; pt <= King; pt++ {
		score += materialAndPosition(pos, White, pt)
		score -= materialAndPosition(pos, Black, pt)
	}
	if pos.SideToMove() == Black {
		score = -score
	}
	return score + Value(config.Settings.Eval.Tempo)
}

func materialAndPosition(pos *position.Position, c Color, pt PieceType) Value {
	var sum Value
	piece := MakePiece(c, pt)
	for bb := pos.PiecesBb(c, pt); bb != BbZero; {
		sq := bb.PopLsb()
		sum += pieceValues[pt] + pieceSquareValue(piece, sq)
	}
	return sum
}
