// Copyright (c) 2024 chesscore contributors. MIT License.

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kopf/chesscore/attacks"
	. "github.com/kopf/chesscore/types"
)

func TestMain(m *testing.M) {
	attacks.Build()
	m.Run()
}

func newStart() Position {
	p := NewEmpty()
	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		sq, _ := NewSquare(f, 0)
		p.PutPiece(MakePiece(White, back[f]), sq)
		sq, _ = NewSquare(f, 1)
		p.PutPiece(MakePiece(White, Pawn), sq)
		sq, _ = NewSquare(f, 6)
		p.PutPiece(MakePiece(Black, Pawn), sq)
		sq, _ = NewSquare(f, 7)
		p.PutPiece(MakePiece(Black, back[f]), sq)
	}
	p.SetCastlingRights(CastleWK | CastleWQ | CastleBK | CastleBQ)
	return p
}

func TestCopy_IsIndependentOfOriginal(t *testing.T) {
	p := newStart()
	cp := p.Copy()
	cp.RemovePiece(SqE1)
	assert.Equal(t, WhiteKing, p.PieceOn(SqE1), "mutating the copy must not affect the original")
}

func TestMakeMove_QuietPawnPushResetsHalfMoveClockAndSwitchesSide(t *testing.T) {
	p := newStart()
	mv := NewMove(SqA2, SqA3, WhitePawn, PieceNone, MoveFlags{})
	p.MakeMove(mv)
	assert.Equal(t, PieceNone, p.PieceOn(SqA2))
	assert.Equal(t, WhitePawn, p.PieceOn(SqA3))
	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, 0, p.HalfMoveClock())
}

func TestMakeMove_DoublePushSetsEnPassantSquare(t *testing.T) {
	p := newStart()
	mv := NewMove(SqE2, SqE4, WhitePawn, PieceNone, MoveFlags{DoublePush: true})
	p.MakeMove(mv)
	assert.Equal(t, SqE3, p.EnPassantSquare())
}

func TestMakeMove_EnPassantCaptureRemovesTheCapturedPawn(t *testing.T) {
	p := NewEmpty()
	p.PutPiece(WhiteKing, SqE1)
	p.PutPiece(BlackKing, SqE8)
	p.PutPiece(WhitePawn, SqE5)
	p.PutPiece(BlackPawn, SqD5)
	p.SetEnPassantSquare(SqD6)
	mv := NewMove(SqE5, SqD6, WhitePawn, PieceNone, MoveFlags{Capture: true, EnPassant: true})
	p.MakeMove(mv)
	assert.Equal(t, PieceNone, p.PieceOn(SqD5), "the captured pawn must be removed from its own square, not the target square")
	assert.Equal(t, WhitePawn, p.PieceOn(SqD6))
}

func TestMakeMove_PromotionReplacesThePawn(t *testing.T) {
	p := NewEmpty()
	p.PutPiece(WhiteKing, SqE1)
	p.PutPiece(BlackKing, SqE8)
	p.PutPiece(WhitePawn, SqA7)
	mv := NewMove(SqA7, SqA8, WhitePawn, WhiteQueen, MoveFlags{})
	p.MakeMove(mv)
	assert.Equal(t, WhiteQueen, p.PieceOn(SqA8))
}

func TestMakeMove_CastlingMovesTheRookToo(t *testing.T) {
	p := NewEmpty()
	p.PutPiece(WhiteKing, SqE1)
	p.PutPiece(WhiteRook, SqH1)
	p.PutPiece(BlackKing, SqE8)
	p.SetCastlingRights(CastleWK)
	mv := NewMove(SqE1, SqG1, WhiteKing, PieceNone, MoveFlags{Castling: true})
	p.MakeMove(mv)
	assert.Equal(t, WhiteKing, p.PieceOn(SqG1))
	assert.Equal(t, WhiteRook, p.PieceOn(SqF1))
	assert.Equal(t, PieceNone, p.PieceOn(SqH1))
}

func TestMakeMove_RookMoveClearsItsOwnCastlingRight(t *testing.T) {
	p := NewEmpty()
	p.PutPiece(WhiteKing, SqE1)
	p.PutPiece(WhiteRook, SqA1)
	p.PutPiece(BlackKing, SqE8)
	p.SetCastlingRights(CastleWK | CastleWQ)
	mv := NewMove(SqA1, SqA2, WhiteRook, PieceNone, MoveFlags{})
	p.MakeMove(mv)
	assert.Equal(t, CastleWK, p.CastlingRights(), "moving the queenside rook must clear only CastleWQ")
}

func TestMakeMove_CaptureOnRookSquareAlsoClearsCastlingRight(t *testing.T) {
	p := NewEmpty()
	p.PutPiece(WhiteKing, SqE1)
	p.PutPiece(WhiteRook, SqH1)
	p.PutPiece(BlackKing, SqE8)
	p.PutPiece(BlackBishop, SqG2)
	p.SetCastlingRights(CastleWK)
	mv := NewMove(SqG2, SqH1, BlackBishop, PieceNone, MoveFlags{Capture: true})
	p.MakeMove(mv)
	assert.Equal(t, CastleNone, p.CastlingRights())
}

func TestIsAttacked_DetectsRookAttackAlongItsRank(t *testing.T) {
	p := NewEmpty()
	p.PutPiece(WhiteKing, SqE1)
	p.PutPiece(BlackKing, SqE8)
	p.PutPiece(BlackRook, SqA4)
	assert.True(t, p.IsAttacked(SqH4, Black), "a rook sweeps its whole rank")
	assert.False(t, p.IsAttacked(SqH5, Black))
}

func TestInCheck_TrueWhenKingIsAttacked(t *testing.T) {
	p := NewEmpty()
	p.PutPiece(WhiteKing, SqE1)
	p.PutPiece(BlackKing, SqE8)
	p.PutPiece(BlackRook, SqE5)
	assert.True(t, p.InCheck(White))
	assert.False(t, p.InCheck(Black))
}

func TestMakeMove_LegalMoveLeavesTheMoverOutOfCheck(t *testing.T) {
	p := newStart()
	mv := NewMove(SqE2, SqE4, WhitePawn, PieceNone, MoveFlags{DoublePush: true})
	ok := p.MakeMove(mv)
	assert.True(t, ok)
	assert.False(t, p.InCheck(White), "a move MakeMove reports legal must not leave its own mover in check")
}

func TestMakeMove_MoveThatExposesOwnKingIsRejectedAndPositionUnchanged(t *testing.T) {
	p := NewEmpty()
	p.PutPiece(WhiteKing, SqE1)
	p.PutPiece(WhiteBishop, SqE2)
	p.PutPiece(BlackKing, SqE8)
	p.PutPiece(BlackRook, SqE5)
	before := p.Copy()

	mv := NewMove(SqE2, SqD3, WhiteBishop, PieceNone, MoveFlags{})
	ok := p.MakeMove(mv)

	assert.False(t, ok, "moving the pinned bishop off the e-file must expose the king to the rook")
	assert.Equal(t, before, p, "an illegal move must leave the position exactly as it was found")
}

func TestMakeMove_RoundTripRestoresTheOriginalPosition(t *testing.T) {
	p := newStart()
	snapshot := p.Copy()

	mv := NewMove(SqG1, SqF3, WhiteKnight, PieceNone, MoveFlags{})
	scratch := p.Copy()
	ok := scratch.MakeMove(mv)

	assert.True(t, ok)
	assert.Equal(t, snapshot, p, "MakeMove on a copy must never mutate the original")
}

func TestMakeCapture_RejectsNonCaptureMoveWithoutMutatingPosition(t *testing.T) {
	p := newStart()
	before := p.Copy()

	mv := NewMove(SqA2, SqA3, WhitePawn, PieceNone, MoveFlags{})
	ok := p.MakeCapture(mv)

	assert.False(t, ok)
	assert.Equal(t, before, p)
}

func TestMakeCapture_AppliesALegalCapture(t *testing.T) {
	p := NewEmpty()
	p.PutPiece(WhiteKing, SqE1)
	p.PutPiece(BlackKing, SqE8)
	p.PutPiece(WhiteRook, SqA1)
	p.PutPiece(BlackBishop, SqA8)
	mv := NewMove(SqA1, SqA8, WhiteRook, PieceNone, MoveFlags{Capture: true})

	ok := p.MakeCapture(mv)

	assert.True(t, ok)
	assert.Equal(t, WhiteRook, p.PieceOn(SqA8))
}
