// Copyright (c) 2024 chesscore contributors. MIT License.

package position

import (
	"strings"

	"github.com/kopf/chesscore/assert"
	"github.com/kopf/chesscore/attacks"
	. "github.com/kopf/chesscore/types"
)

// Position is the complete, self-contained state of a chess game: the
// board, whose move it is, castling rights, the en-passant target square
// and the two move counters. It holds no pointers or slices, so a plain
// value copy is a full, independent snapshot (see Copy).
type Position struct {
	board          [SqLength]Piece
	piecesBb       [ColorLength][PieceTypeLength]Bitboard
	occupiedBb     [ColorLength]Bitboard
	sideToMove     Color
	castling       CastlingRights
	enPassant      Square
	halfMoveClock  int
	fullMoveNumber int
}

// NewEmpty returns an empty board, White to move, no castling rights, no
// en-passant square, move one. Callers (typically package fen) populate
// it square by square with PutPiece before play begins.
func NewEmpty() Position {
	return Position{
		enPassant:      SqNone,
		sideToMove:     White,
		castling:       CastleNone,
		fullMoveNumber: 1,
	}
}

// Copy returns an independent snapshot of p. Since Position has no
// pointers or slices this is just a value copy; it exists as a named
// method so call sites read as "I am taking an undo snapshot here"
// rather than relying on implicit Go copy-on-assign semantics.
func (p Position) Copy() Position {
	return p
}

// PieceOn returns the piece occupying sq, or PieceNone.
func (p *Position) PieceOn(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the bitboard of color c's pieces of type pt.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedBb returns the bitboard of every square occupied by color c.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// OccupiedAll returns the bitboard of every occupied square.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// SideToMove returns whose turn it is.
func (p *Position) SideToMove() Color { return p.sideToMove }

// SetSideToMove is used by package fen during setup.
func (p *Position) SetSideToMove(c Color) { p.sideToMove = c }

// CastlingRights returns the currently held castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// SetCastlingRights is used by package fen during setup.
func (p *Position) SetCastlingRights(cr CastlingRights) { p.castling = cr }

// EnPassantSquare returns the current en-passant target square, or
// SqNone if none is available.
func (p *Position) EnPassantSquare() Square { return p.enPassant }

// SetEnPassantSquare is used by package fen during setup.
func (p *Position) SetEnPassantSquare(sq Square) { p.enPassant = sq }

// HalfMoveClock returns the number of halfmoves since the last capture
// or pawn move (the fifty-move-rule counter).
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// SetHalfMoveClock is used by package fen during setup.
func (p *Position) SetHalfMoveClock(n int) { p.halfMoveClock = n }

// FullMoveNumber returns the current full move number (starts at 1).
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// SetFullMoveNumber is used by package fen during setup.
func (p *Position) SetFullMoveNumber(n int) { p.fullMoveNumber = n }

// KingSquare returns the square color c's king sits on. Undefined if c
// has no king on the board (programmer error: every legal position has
// exactly one king per side).
func (p *Position) KingSquare(c Color) Square {
	sq, _ := p.piecesBb[c][King].LsbSquare()
	return sq
}

// PutPiece places piece on an empty square, updating the board array and
// the piece/occupancy bitboards. Used by package fen during setup and
// internally by MakeMove; callers elsewhere should prefer MakeMove.
func (p *Position) PutPiece(piece Piece, sq Square) {
	assert.Assert(piece != PieceNone, "PutPiece: piece must not be PieceNone")
	assert.Assert(p.board[sq] == PieceNone, "PutPiece: square %s already occupied", sq)
	c, pt := piece.ColorOf(), piece.TypeOf()
	p.board[sq] = piece
	p.piecesBb[c][pt] = p.piecesBb[c][pt].SetBit(sq)
	p.occupiedBb[c] = p.occupiedBb[c].SetBit(sq)
}

// RemovePiece clears sq and returns the piece that was there.
func (p *Position) RemovePiece(sq Square) Piece {
	piece := p.board[sq]
	assert.Assert(piece != PieceNone, "RemovePiece: square %s is already empty", sq)
	c, pt := piece.ColorOf(), piece.TypeOf()
	p.board[sq] = PieceNone
	p.piecesBb[c][pt] = p.piecesBb[c][pt].PopBit(sq)
	p.occupiedBb[c] = p.occupiedBb[c].PopBit(sq)
	return piece
}

func (p *Position) movePiece(from, to Square) {
	p.PutPiece(p.RemovePiece(from), to)
}

// castleRookSquares maps a king's castling destination square to the
// rook's (from, to) squares for that side.
var castleRookSquares = map[Square][2]Square{
	SqG1: {SqH1, SqF1},
	SqC1: {SqA1, SqD1},
	SqG8: {SqH8, SqF8},
	SqC8: {SqA8, SqD8},
}

// MakeMove applies mv and reports whether it was legal. mv is assumed
// pseudo-legal (as produced by package movegen); MakeMove additionally
// checks whether the move leaves the mover's own king in check. On an
// illegal move p is left exactly as it was found and MakeMove returns
// false; callers never need a separate check-and-discard step around it.
func (p *Position) MakeMove(mv Move) bool {
	assert.Assert(mv.IsValid(), "MakeMove: move must not be the zero move")
	moving := mv.MovingPiece()
	mover := moving.ColorOf()
	assert.Assert(mover == p.sideToMove, "MakeMove: %s does not belong to side to move", moving)

	before := *p
	p.applyMove(mv, moving, mover)

	if p.InCheck(mover) {
		*p = before
		return false
	}
	return true
}

// MakeCapture applies mv like MakeMove, but only if mv is a capture; it
// reports false without touching p otherwise.
func (p *Position) MakeCapture(mv Move) bool {
	if !mv.IsCapture() {
		return false
	}
	return p.MakeMove(mv)
}

// applyMove performs the raw board mutation for mv with no legality
// check; MakeMove is the only caller.
func (p *Position) applyMove(mv Move, moving Piece, mover Color) {
	from, to := mv.From(), mv.To()

	if mv.IsEnPassant() {
		capturedEnPassant := Square(int(to) - mover.PawnPushDirection())
		p.RemovePiece(capturedEnPassant)
	} else if mv.IsCapture() {
		p.RemovePiece(to)
	}

	p.movePiece(from, to)

	if mv.IsPromotion() {
		p.RemovePiece(to)
		p.PutPiece(mv.PromotedPiece(), to)
	}

	if mv.IsCastling() {
		rook := castleRookSquares[to]
		p.movePiece(rook[0], rook[1])
	}

	if mv.IsCapture() || moving.TypeOf() == Pawn {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if mv.IsDoublePush() {
		p.enPassant = Square(int(to) - mover.PawnPushDirection())
	} else {
		p.enPassant = SqNone
	}

	p.castling &= SquareCastleRightsMask(from) & SquareCastleRightsMask(to)

	if mover == Black {
		p.fullMoveNumber++
	}
	p.sideToMove = mover.Opposite()
}

// IsAttacked reports whether sq is attacked by any piece of color by, on
// the position as it currently stands. Implemented with the usual
// "reverse" trick: ask each piece type what it would attack if it stood
// on sq, and intersect with the actual pieces of that type.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occ := p.OccupiedAll()
	if attacks.GetPawnAttacks(by.Opposite(), sq)&p.piecesBb[by][Pawn] != 0 {
		return true
	}
	if attacks.GetKnightAttacks(sq)&p.piecesBb[by][Knight] != 0 {
		return true
	}
	if attacks.GetKingAttacks(sq)&p.piecesBb[by][King] != 0 {
		return true
	}
	if attacks.GetBishopAttacks(sq, occ)&(p.piecesBb[by][Bishop]|p.piecesBb[by][Queen]) != 0 {
		return true
	}
	if attacks.GetRookAttacks(sq, occ)&(p.piecesBb[by][Rook]|p.piecesBb[by][Queen]) != 0 {
		return true
	}
	return false
}

// InCheck reports whether color c's king is currently attacked.
func (p *Position) InCheck(c Color) bool {
	return p.IsAttacked(p.KingSquare(c), c.Opposite())
}

// String renders the board as an 8x8 grid (rank 8 on top) followed by
// the side to move, castling rights and en-passant square. Debug use
// only; never consulted by engine logic.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq, _ := NewSquare(file, rank)
			sb.WriteString(p.board[sq].String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("side to move: " + p.sideToMove.String())
	sb.WriteString(" castling: " + p.castling.String())
	sb.WriteString(" ep: " + p.enPassant.String())
	return sb.String()
}
