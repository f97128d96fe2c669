// Copyright (c) 2024 chesscore contributors. MIT License.

package types

// Move is a 24-bit packed move:
//
//	bits  0.. 5  from square
//	bits  6..11  to square
//	bits 12..15  moving piece
//	bits 16..19  promoted piece (PieceNone if not a promotion)
//	bit  20      capture flag
//	bit  21      double-push flag
//	bit  22      en-passant flag
//	bit  23      castling flag
type Move uint32

// MoveNone is the zero value / "no move" sentinel.
const MoveNone Move = 0

const (
	moveFromShift  = 0
	moveToShift    = 6
	movePieceShift = 12
	movePromoShift = 16
	moveCaptureBit = 20
	moveDoubleBit  = 21
	moveEpBit      = 22
	moveCastleBit  = 23

	moveSquareMask = 0x3F
	movePieceMask  = 0xF
)

// MoveFlags bundles the boolean flags of a move for NewMove's call sites.
type MoveFlags struct {
	Capture    bool
	DoublePush bool
	EnPassant  bool
	Castling   bool
}

// NewMove packs a move. promoted should be PieceNone for a non-promotion.
func NewMove(from, to Square, moving, promoted Piece, flags MoveFlags) Move {
	m := Move(from)&moveSquareMask |
		(Move(to)&moveSquareMask)<<moveToShift |
		(Move(moving)&movePieceMask)<<movePieceShift |
		(Move(promoted)&movePieceMask)<<movePromoShift
	if flags.Capture {
		m |= 1 << moveCaptureBit
	}
	if flags.DoublePush {
		m |= 1 << moveDoubleBit
	}
	if flags.EnPassant {
		m |= 1 << moveEpBit
	}
	if flags.Castling {
		m |= 1 << moveCastleBit
	}
	return m
}

// From returns the source square.
func (m Move) From() Square { return Square((m >> moveFromShift) & moveSquareMask) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> moveToShift) & moveSquareMask) }

// MovingPiece returns the piece that is moving.
func (m Move) MovingPiece() Piece { return Piece((m >> movePieceShift) & movePieceMask) }

// PromotedPiece returns the promoted-to piece, or PieceNone.
func (m Move) PromotedPiece() Piece { return Piece((m >> movePromoShift) & movePieceMask) }

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool { return m.PromotedPiece() != PieceNone }

// IsCapture reports the capture flag (true for en-passant captures too).
func (m Move) IsCapture() bool { return m&(1<<moveCaptureBit) != 0 }

// IsDoublePush reports the double pawn push flag.
func (m Move) IsDoublePush() bool { return m&(1<<moveDoubleBit) != 0 }

// IsEnPassant reports the en-passant capture flag.
func (m Move) IsEnPassant() bool { return m&(1<<moveEpBit) != 0 }

// IsCastling reports the castling flag.
func (m Move) IsCastling() bool { return m&(1<<moveCastleBit) != 0 }

// IsValid reports whether m is anything other than the zero/none move.
func (m Move) IsValid() bool { return m != MoveNone }

var promoSuffix = map[PieceType]string{
	Knight: "n", Bishop: "b", Rook: "r", Queen: "q",
}

// String renders the move in UCI-style coordinate notation, e.g. "e2e4" or
// "a7a8q". Castling renders as the king's coordinate move.
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promoSuffix[m.PromotedPiece().TypeOf()]
	}
	return s
}

// ParseUCI parses a UCI-style move string against the legal alphabet of
// moves found in ml that match the same from/to/promotion squares. This is
// a convenience for drivers/tests; the core itself never parses move text,
// which belongs at the protocol boundary.
func ParseUCI(s string, ml MoveList) (Move, bool) {
	if len(s) < 4 {
		return MoveNone, false
	}
	from, ok := SquareFromString(s[0:2])
	if !ok {
		return MoveNone, false
	}
	to, ok := SquareFromString(s[2:4])
	if !ok {
		return MoveNone, false
	}
	var promo PieceType = PtNone
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return MoveNone, false
		}
	}
	for _, m := range ml {
		if m.From() == from && m.To() == to && m.PromotedPiece().TypeOf() == promo {
			return m, true
		}
	}
	return MoveNone, false
}
