// Copyright (c) 2024 chesscore contributors. MIT License.

// Package movegen generates moves for a position.Position. GenerateMoves
// produces every pseudo-legal move (a move that obeys each piece's
// movement rules and castling's path/occupancy requirements, but that
// may leave the mover's own king in check); GenerateLegalMoves filters
// that list down to moves that do not.
package movegen
