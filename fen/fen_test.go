// Copyright (c) 2024 chesscore contributors. MIT License.

package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/kopf/chesscore/types"
)

func TestParse_StartPositionPlacesEveryPieceCorrectly(t *testing.T) {
	pos, err := Parse(StartFEN)
	require.NoError(t, err)
	assert.Equal(t, WhiteRook, pos.PieceOn(SqA1))
	assert.Equal(t, WhiteKing, pos.PieceOn(SqE1))
	assert.Equal(t, BlackQueen, pos.PieceOn(SqD8))
	assert.Equal(t, PieceNone, pos.PieceOn(SqE4))
	assert.Equal(t, White, pos.SideToMove())
	assert.Equal(t, CastleWK|CastleWQ|CastleBK|CastleBQ, pos.CastlingRights())
	assert.Equal(t, SqNone, pos.EnPassantSquare())
	assert.Equal(t, 0, pos.HalfMoveClock())
	assert.Equal(t, 1, pos.FullMoveNumber())
}

func TestParse_PartialCastlingRightsAndEnPassant(t *testing.T) {
	pos, err := Parse("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w Kq d6 0 3")
	require.NoError(t, err)
	assert.Equal(t, CastleWK|CastleBQ, pos.CastlingRights())
	assert.Equal(t, SqD6, pos.EnPassantSquare())
	assert.Equal(t, 3, pos.FullMoveNumber())
}

func TestParse_NoCastlingRightsIsDash(t *testing.T) {
	pos, err := Parse("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, CastleNone, pos.CastlingRights())
}

func TestParse_InvalidPieceCharacterIsAnError(t *testing.T) {
	_, err := Parse("xxxxxxxx/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err)
}

func TestParse_EmptyStringIsAnError(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)
}

func TestMustParse_PanicsOnInvalidFEN(t *testing.T) {
	assert.Panics(t, func() {
		MustParse("not a fen")
	})
}
