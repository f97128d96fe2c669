// Copyright (c) 2024 chesscore contributors. MIT License.

// Package assert is a helper for programmer-error assertions: conditions
// that must never occur under the documented API contracts and that the
// core is allowed to abort the process on. Using it makes it
// clear an assertion is for debug-build diagnostics, not a recoverable
// error path. The actual Assert implementation lives in assert_debug.go /
// assert_release.go, selected by the "debug" build tag; DEBUG mirrors
// which one is active so call sites can skip evaluating arguments:
//
//	if assert.DEBUG {
//	    assert.Assert(!b.Empty(), "LsbSquare: called on empty bitboard")
//	}
package assert
