// Copyright (c) 2024 chesscore contributors. MIT License.

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopf/chesscore/attacks"
	"github.com/kopf/chesscore/fen"
	. "github.com/kopf/chesscore/types"
)

func TestMain(m *testing.M) {
	attacks.Build()
	m.Run()
}

func TestGenerateMoves_StartPositionHas20Moves(t *testing.T) {
	pos := fen.MustParse(fen.StartFEN)
	ml := GenerateMoves(&pos)
	assert.Len(t, ml, 20)
}

func TestGenerateMoves_EnPassantCapture(t *testing.T) {
	pos := fen.MustParse("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	ml := GenerateMoves(&pos)
	mv, ok := ParseUCI("e5d6", ml)
	require.True(t, ok, "e5d6 en passant capture must be generated")
	assert.True(t, mv.IsEnPassant())
	assert.True(t, mv.IsCapture())
}

func TestGenerateMoves_CastlingBothSidesWhenClear(t *testing.T) {
	pos := fen.MustParse("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	ml := GenerateMoves(&pos)
	mv, ok := ParseUCI("e1g1", ml)
	require.True(t, ok)
	assert.True(t, mv.IsCastling())
	mv, ok = ParseUCI("e1c1", ml)
	require.True(t, ok)
	assert.True(t, mv.IsCastling())
}

func TestGenerateMoves_CastlingBlockedByPieceBetween(t *testing.T) {
	pos := fen.MustParse("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/RN2K2R w KQkq - 0 1")
	ml := GenerateMoves(&pos)
	_, ok := ParseUCI("e1c1", ml)
	assert.False(t, ok, "queenside castling must be blocked by the knight on b1")
}

func TestGenerateMoves_CastlingAllowedWhenNothingAttacksTransitSquares(t *testing.T) {
	pos := fen.MustParse("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	ml := GenerateMoves(&pos)
	_, ok := ParseUCI("e1g1", ml)
	assert.True(t, ok)
}

func TestGenerateMoves_CastlingBlockedThroughAttackedTransitSquare(t *testing.T) {
	// Black rook on f2 attacks f1, the square the king crosses castling
	// kingside, so White must not be allowed to castle through it.
	pos := fen.MustParse("4k3/8/8/8/8/8/5r2/4K2R w K - 0 1")
	ml := GenerateMoves(&pos)
	_, ok := ParseUCI("e1g1", ml)
	assert.False(t, ok)
}

func TestGenerateMoves_PromotionGeneratesFourPieceTypes(t *testing.T) {
	pos := fen.MustParse("8/P6k/8/8/8/8/7p/7K w - - 0 1")
	ml := GenerateMoves(&pos)
	count := 0
	for _, mv := range ml {
		if mv.From() == SqA7 && mv.To() == SqA8 {
			count++
		}
	}
	assert.Equal(t, 4, count)
}

func TestGenerateLegalMoves_PinnedPieceCannotMove(t *testing.T) {
	// White king e1, white rook e3 pinned by black rook e8; rook must not
	// be able to move off the e-file.
	pos := fen.MustParse("4r3/8/8/8/8/4R3/8/4K3 w - - 0 1")
	ml := GenerateLegalMoves(&pos)
	for _, mv := range ml {
		if mv.From() == SqE3 {
			assert.Equal(t, File(4), mv.To().FileOf(), "pinned rook may only move along the e-file")
		}
	}
}

func TestGenerateLegalMoves_NoMovesWhenCheckmated(t *testing.T) {
	// Fool's mate final position, Black just delivered mate.
	pos := fen.MustParse("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	ml := GenerateLegalMoves(&pos)
	assert.Empty(t, ml)
	assert.True(t, pos.InCheck(White))
}
