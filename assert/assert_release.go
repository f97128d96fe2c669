// +build !debug

// Copyright (c) 2024 chesscore contributors. MIT License.

package assert

// DEBUG is false in release builds; Assert below compiles to nothing.
const DEBUG = false

// Assert is a no-op in release builds. Go still evaluates the call's
// arguments, so hot call sites should additionally guard with
// "if assert.DEBUG { ... }" to avoid that cost entirely.
func Assert(test bool, msg string, a ...interface{}) {}
