// Copyright (c) 2024 chesscore contributors. MIT License.

// Package search implements fixed-depth negamax with fail-hard
// alpha-beta pruning over a position.Position. The search is
// single-threaded and synchronous: Search.Run walks the tree to the
// requested depth and returns, there are no timers, no cancellation, no
// iterative deepening.
package search
