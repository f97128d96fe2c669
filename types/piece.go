// Copyright (c) 2024 chesscore contributors. MIT License.

package types

// PieceType is a kind of piece independent of color: Pawn..King, plus
// PtNone as a sentinel (used for "no promotion").
type PieceType uint8

const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeLength
)

var pieceTypeNames = [PieceTypeLength]string{"-", "p", "n", "b", "r", "q", "k"}

func (pt PieceType) String() string {
	if pt >= PieceTypeLength {
		return "?"
	}
	return pieceTypeNames[pt]
}

// Piece is one of the twelve concrete piece kinds, plus PieceNone.
// Encoded as (color, pieceType) so MakePiece/TypeOf/ColorOf are cheap.
type Piece uint8

const (
	PieceNone Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceLength
)

// MakePiece builds a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	if c == White {
		return Piece(pt)
	}
	return Piece(pt) + 6
}

// TypeOf returns the piece type of p (PtNone for PieceNone).
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtNone
	}
	if p > WhiteKing {
		return PieceType(p - 6)
	}
	return PieceType(p)
}

// ColorOf returns the color of p. Undefined (panics in debug builds via
// the caller) for PieceNone.
func (p Piece) ColorOf() Color {
	if p >= BlackPawn {
		return Black
	}
	return White
}

var pieceNames = [PieceLength]string{
	"-", "P", "N", "B", "R", "Q", "K", "p", "n", "b", "r", "q", "k",
}

func (p Piece) String() string {
	if p >= PieceLength {
		return "?"
	}
	return pieceNames[p]
}
