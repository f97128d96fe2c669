// Copyright (c) 2024 chesscore contributors. MIT License.

package movegen

import (
	"github.com/kopf/chesscore/attacks"
	"github.com/kopf/chesscore/logging"
	"github.com/kopf/chesscore/position"
	. "github.com/kopf/chesscore/types"
)

var log = logging.GetLog()

// GenerateMoves returns every pseudo-legal move available to the side to
// move in pos: legal by piece-movement and castling-path rules, but
// possibly leaving the mover's own king in check. Use GenerateLegalMoves
// when that matters (e.g. negamax).
func GenerateMoves(pos *position.Position) MoveList {
	ml := NewMoveList()
	c := pos.SideToMove()
	genPawnMoves(pos, c, &ml)
	genLeaperMoves(pos, c, Knight, &ml)
	genSliderMoves(pos, c, Bishop, &ml)
	genSliderMoves(pos, c, Rook, &ml)
	genSliderMoves(pos, c, Queen, &ml)
	genKingMoves(pos, c, &ml)
	genCastling(pos, c, &ml)
	log.Debugf("generated %d pseudo-legal moves for %s", len(ml), c)
	return ml
}

// GenerateLegalMoves returns the subset of GenerateMoves(pos) that does
// not leave the mover's own king in check. Implemented by the whole-copy
// undo discipline: make the move on a scratch copy and keep it only if
// MakeMove reports it legal.
func GenerateLegalMoves(pos *position.Position) MoveList {
	pseudo := GenerateMoves(pos)
	legal := NewMoveList()
	for _, mv := range pseudo {
		scratch := pos.Copy()
		if scratch.MakeMove(mv) {
			legal = append(legal, mv)
		}
	}
	return legal
}

func addQuietOrCapture(pos *position.Position, from, to Square, moving Piece, ml *MoveList) {
	captured := pos.PieceOn(to)
	*ml = append(*ml, NewMove(from, to, moving, PieceNone, MoveFlags{Capture: captured != PieceNone}))
}

func genLeaperMoves(pos *position.Position, c Color, pt PieceType, ml *MoveList) {
	piece := MakePiece(c, pt)
	own := pos.OccupiedBb(c)
	for pieces := pos.PiecesBb(c, pt); pieces != BbZero; {
		from := pieces.PopLsb()
		targets := attacks.AttacksFrom(pt, from, BbZero) &^ own
		for targets != BbZero {
			to := targets.PopLsb()
			addQuietOrCapture(pos, from, to, piece, ml)
		}
	}
}

func genSliderMoves(pos *position.Position, c Color, pt PieceType, ml *MoveList) {
	piece := MakePiece(c, pt)
	own := pos.OccupiedBb(c)
	occ := pos.OccupiedAll()
	for pieces := pos.PiecesBb(c, pt); pieces != BbZero; {
		from := pieces.PopLsb()
		targets := attacks.AttacksFrom(pt, from, occ) &^ own
		for targets != BbZero {
			to := targets.PopLsb()
			addQuietOrCapture(pos, from, to, piece, ml)
		}
	}
}

func genKingMoves(pos *position.Position, c Color, ml *MoveList) {
	piece := MakePiece(c, King)
	own := pos.OccupiedBb(c)
	from := pos.KingSquare(c)
	targets := attacks.GetKingAttacks(from) &^ own
	for targets != BbZero {
		to := targets.PopLsb()
		addQuietOrCapture(pos, from, to, piece, ml)
	}
}

func genPawnMoves(pos *position.Position, c Color, ml *MoveList) {
	piece := MakePiece(c, Pawn)
	pawns := pos.PiecesBb(c, Pawn)
	occ := pos.OccupiedAll()
	oppPieces := pos.OccupiedBb(c.Opposite())
	pushDir := Direction(c.PawnPushDirection())
	promRank := c.PromotionRank()

	singlePush := ShiftBitboard(pawns, pushDir) &^ occ
	for targets := singlePush; targets != BbZero; {
		to := targets.PopLsb()
		from := Square(int(to) - int(pushDir))
		addPawnAdvance(from, to, piece, promRank, ml)
	}

	startRank := c.PawnStartRank()
	doublePush := ShiftBitboard(singlePush&afterPush(startRank, pushDir).Bb(), pushDir) &^ occ
	for targets := doublePush; targets != BbZero; {
		to := targets.PopLsb()
		from := Square(int(to) - 2*int(pushDir))
		*ml = append(*ml, NewMove(from, to, piece, PieceNone, MoveFlags{DoublePush: true}))
	}

	for _, capDir := range []Direction{pushDir + West, pushDir + East} {
		captures := ShiftBitboard(pawns, capDir) & oppPieces
		for targets := captures; targets != BbZero; {
			to := targets.PopLsb()
			from := Square(int(to) - int(capDir))
			addPawnCapture(from, to, piece, promRank, ml)
		}
	}

	if ep := pos.EnPassantSquare(); ep != SqNone {
		epBb := SquareBb(ep)
		for _, capDir := range []Direction{pushDir + West, pushDir + East} {
			attackers := ShiftBitboard(pawns, capDir) & epBb
			if attackers != BbZero {
				from := Square(int(ep) - int(capDir))
				*ml = append(*ml, NewMove(from, ep, piece, PieceNone, MoveFlags{Capture: true, EnPassant: true}))
			}
		}
	}
}

// afterPush returns the rank one push beyond r, the rank a pawn starting
// on r sits on after its first single push — used to gate double pushes
// to only those pawns that started on their home rank.
func afterPush(r Rank, pushDir Direction) Rank {
	if pushDir > 0 {
		return r + 1
	}
	return r - 1
}

func addPawnAdvance(from, to Square, piece Piece, promRank Rank, ml *MoveList) {
	if to.RankOf() == promRank {
		addPromotions(from, to, piece, MoveFlags{}, ml)
		return
	}
	*ml = append(*ml, NewMove(from, to, piece, PieceNone, MoveFlags{}))
}

func addPawnCapture(from, to Square, piece Piece, promRank Rank, ml *MoveList) {
	if to.RankOf() == promRank {
		addPromotions(from, to, piece, MoveFlags{Capture: true}, ml)
		return
	}
	*ml = append(*ml, NewMove(from, to, piece, PieceNone, MoveFlags{Capture: true}))
}

func addPromotions(from, to Square, piece Piece, flags MoveFlags, ml *MoveList) {
	c := piece.ColorOf()
	for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		*ml = append(*ml, NewMove(from, to, piece, MakePiece(c, pt), flags))
	}
}

type castleDef struct {
	right              CastlingRights
	kingFrom, kingTo   Square
	emptyMask          Bitboard
	kingTransitSquares [2]Square // squares the king sits on or crosses, checked for attack
}

var castleDefs = [4]castleDef{
	{CastleWK, SqE1, SqG1, SquareBb(SqF1) | SquareBb(SqG1), [2]Square{SqE1, SqF1}},
	{CastleWQ, SqE1, SqC1, SquareBb(SqB1) | SquareBb(SqC1) | SquareBb(SqD1), [2]Square{SqE1, SqD1}},
	{CastleBK, SqE8, SqG8, SquareBb(SqF8) | SquareBb(SqG8), [2]Square{SqE8, SqF8}},
	{CastleBQ, SqE8, SqC8, SquareBb(SqB8) | SquareBb(SqC8) | SquareBb(SqD8), [2]Square{SqE8, SqD8}},
}

func genCastling(pos *position.Position, c Color, ml *MoveList) {
	rights := pos.CastlingRights()
	if rights == CastleNone {
		return
	}
	occ := pos.OccupiedAll()
	opponent := c.Opposite()
	for _, def := range castleDefs {
		if (c == White && (def.right != CastleWK && def.right != CastleWQ)) ||
			(c == Black && (def.right != CastleBK && def.right != CastleBQ)) {
			continue
		}
		if !rights.Has(def.right) {
			continue
		}
		if def.emptyMask&occ != BbZero {
			continue
		}
		if pos.IsAttacked(def.kingTransitSquares[0], opponent) || pos.IsAttacked(def.kingTransitSquares[1], opponent) {
			continue
		}
		piece := MakePiece(c, King)
		*ml = append(*ml, NewMove(def.kingFrom, def.kingTo, piece, PieceNone, MoveFlags{Castling: true}))
	}
}
