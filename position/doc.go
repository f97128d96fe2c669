// Copyright (c) 2024 chesscore contributors. MIT License.

// Package position holds the board representation and the make-move
// logic: a piece-centric array plus per-color/per-piece-type bitboards,
// kept in sync on every mutation, and pseudo-legal-to-legal filtering via
// MakeMove + InCheck.
//
// Position carries no pointers or slices, so copying the struct by value
// (Copy, or simple assignment) is a complete, independent snapshot. That
// is the undo discipline this package uses: a caller that wants to try a
// move and back out keeps a copy made before MakeMove and restores it
// wholesale rather than asking Position to maintain its own undo stack.
package position
