// Copyright (c) 2024 chesscore contributors. MIT License.

// Package fen is a minimal Forsyth-Edwards Notation reader. It is
// deliberately kept separate from and outside package position's public
// contract: FEN parsing belongs at the protocol/front-end boundary, not
// inside the engine core. Tests, cmd/perft and any future protocol loop
// use this package only to obtain a position.Position that satisfies the
// core's input invariants; the core itself never imports fen.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kopf/chesscore/position"
	. "github.com/kopf/chesscore/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceFromChar = map[byte]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop, 'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop, 'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

var castleFromChar = map[byte]CastlingRights{
	'K': CastleWK, 'Q': CastleWQ, 'k': CastleBK, 'q': CastleBQ,
}

// Parse reads a FEN string into a fresh position.Position. Only the
// board field is mandatory; side to move, en-passant square, halfmove
// clock and move number fall back to their game-start defaults (White,
// none, 0, 1) when omitted. Omitted castling rights read as none, not as
// the game-start KQkq.
func Parse(s string) (position.Position, error) {
	pos := position.NewEmpty()
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return pos, fmt.Errorf("fen: empty string")
	}

	sq := SqA8
	for _, c := range fields[0] {
		switch {
		case c >= '1' && c <= '8':
			sq = Square(int(sq) + int(c-'0'))
		case c == '/':
			sq = sq - 16
		default:
			piece, ok := pieceFromChar[byte(c)]
			if !ok {
				return pos, fmt.Errorf("fen: invalid piece character %q", c)
			}
			pos.PutPiece(piece, sq)
			sq++
		}
	}

	pos.SetSideToMove(White)
	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			pos.SetSideToMove(White)
		case "b":
			pos.SetSideToMove(Black)
		default:
			return pos, fmt.Errorf("fen: invalid side to move %q", fields[1])
		}
	}

	castling := CastleNone
	if len(fields) >= 3 && fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			cr, ok := castleFromChar[fields[2][i]]
			if !ok {
				return pos, fmt.Errorf("fen: invalid castling rights %q", fields[2])
			}
			castling |= cr
		}
	}
	pos.SetCastlingRights(castling)

	pos.SetEnPassantSquare(SqNone)
	if len(fields) >= 4 && fields[3] != "-" {
		epSq, ok := SquareFromString(fields[3])
		if !ok {
			return pos, fmt.Errorf("fen: invalid en-passant square %q", fields[3])
		}
		pos.SetEnPassantSquare(epSq)
	}

	pos.SetHalfMoveClock(0)
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return pos, fmt.Errorf("fen: invalid halfmove clock %q", fields[4])
		}
		pos.SetHalfMoveClock(n)
	}

	pos.SetFullMoveNumber(1)
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return pos, fmt.Errorf("fen: invalid fullmove number %q", fields[5])
		}
		pos.SetFullMoveNumber(n)
	}

	return pos, nil
}

// MustParse is Parse but panics on error; convenient for tests and
// literal start-position setup where the FEN is known-good at compile time.
func MustParse(s string) position.Position {
	pos, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return pos
}
