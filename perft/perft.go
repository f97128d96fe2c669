// Copyright (c) 2024 chesscore contributors. MIT License.

// Package perft counts the leaf nodes of the legal-move tree rooted at a
// position, to a fixed depth — the standard correctness harness for a
// move generator. Published node counts for well-known positions (see
// the package tests) let a mismatch pinpoint a move-generation or
// make-move bug long before it would otherwise surface.
package perft

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kopf/chesscore/movegen"
	"github.com/kopf/chesscore/position"
)

var out = message.NewPrinter(language.English)

// Count walks the legal-move tree rooted at pos to depth plies and
// returns the number of leaf positions reached. depth 0 counts the root
// itself as a single leaf. pos is never mutated: each branch recurses
// over its own position.Position.Copy().
func Count(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, mv := range movegen.GenerateMoves(pos) {
		child := pos.Copy()
		if !child.MakeMove(mv) {
			continue
		}
		nodes += Count(&child, depth-1)
	}
	return nodes
}

// Result is the outcome of one Run call, formatted for a CLI driver.
type Result struct {
	Depth   int
	Nodes   uint64
	Elapsed time.Duration
}

// Run counts Count(&pos, depth) and times the run. pos is taken by value
// so the caller's position is left untouched.
func Run(pos position.Position, depth int) Result {
	start := time.Now()
	nodes := Count(&pos, depth)
	return Result{Depth: depth, Nodes: nodes, Elapsed: time.Since(start)}
}

func (r Result) String() string {
	nps := uint64(0)
	if r.Elapsed > 0 {
		nps = r.Nodes * uint64(time.Second) / uint64(r.Elapsed)
	}
	return out.Sprintf("depth %d: %d nodes in %d ms (%d nps)", r.Depth, r.Nodes, r.Elapsed.Milliseconds(), nps)
}
