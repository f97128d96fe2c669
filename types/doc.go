// Copyright (c) 2024 chesscore contributors. MIT License.

// Package types holds the small value types shared by the rest of the
// engine core: Bitboard, Square, File, Rank, Color, Piece, PieceType,
// CastlingRights, Value and Move/MoveList. Beyond the standard library it
// imports only package assert. None of these types
// allocate or depend on engine state; they are the vocabulary the other
// packages (attacks, position, movegen, evaluator, search) are built from.
package types
