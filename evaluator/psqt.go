// Copyright (c) 2024 chesscore contributors. MIT License.

package evaluator

import . "github.com/kopf/chesscore/types"

// Piece-square tables, indexed a1..h8 (index 0 = a1), written from
// White's perspective (e.g. kingTable rewards the king sitting castled
// on rank 1). There is no queen table: lookups for Queen fall through
// pieceSquareValue's ok check to a zero bonus.
var pawnTable = [SqLength]Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -30, -30, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 30, 30, 0, 0, 0,
	5, 5, 10, 30, 30, 10, 5, 5,
	0, 5, 5, 5, 5, 5, 5, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [SqLength]Value{
	-50, -25, -20, -30, -30, -20, -25, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [SqLength]Value{
	-20, -10, -40, -10, -10, -40, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [SqLength]Value{
	-15, -10, 15, 15, 15, 15, -10, -15,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	10, 10, 10, 10, 10, 10, 10, 10,
	5, 5, 5, 5, 5, 5, 5, 5,
}

var kingTable = [SqLength]Value{
	20, 50, 0, -20, -20, 0, 50, 20,
	0, 0, -20, -20, -20, -20, 0, 0,
	-10, -20, -20, -30, -30, -30, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var psqTables = map[PieceType]*[SqLength]Value{
	Pawn:   &pawnTable,
	Knight: &knightTable,
	Bishop: &bishopTable,
	Rook:   &rookTable,
	King:   &kingTable,
}

// pieceSquareValue returns the PSQT bonus for piece standing on sq, or 0
// for piece types with no table (queen). The tables above are written
// from White's side of the board (e.g. kingTable rewards the king
// sitting castled on rank 1), so White indexes directly and Black
// indexes the vertical mirror.
func pieceSquareValue(piece Piece, sq Square) Value {
	table, ok := psqTables[piece.TypeOf()]
	if !ok {
		return 0
	}
	if piece.ColorOf() == White {
		return table[sq]
	}
	return table[sq.MirrorVertical()]
}
