// Copyright (c) 2024 chesscore contributors. MIT License.

// Package attacks precomputes the attack sets every piece type can reach
// from every square and exposes them as simple table lookups. Leaper
// pieces (pawn, knight, king) get a flat 64-entry table per color/piece.
// Sliders (bishop, rook, queen) use fixed "fancy magic" tables: a
// precomputed magic multiplier per square maps the relevant occupancy
// bits to an index into a precomputed attack table, so a slider lookup
// at search time is a mask, a multiply and a shift rather than a ray walk.
//
// The magic numbers here are not discovered at runtime. A magic search
// (trying random candidates until one produces a collision-free index)
// is an offline concern; this package only ever consumes the fixed,
// known-good numbers.
package attacks
