// +build debug

// Copyright (c) 2024 chesscore contributors. MIT License.

package assert

import "fmt"

// DEBUG is true when built with "-tags debug"; Assert below panics on failure.
const DEBUG = true

// Assert panics with msg (fmt.Sprintf'd against a) if test is false.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
