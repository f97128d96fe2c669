// Copyright (c) 2024 chesscore contributors. MIT License.

package search

import (
	"time"

	. "github.com/kopf/chesscore/types"
)

// Result stores the outcome of one Search.Run call. If BestMove is
// MoveNone the searched position had no legal moves (mate or stalemate).
type Result struct {
	BestMove   Move
	BestValue  Value
	Depth      int
	Nodes      int64
	SearchTime time.Duration
}

func (r Result) String() string {
	return out.Sprintf("bestmove = %s, value = %s, depth = %d, nodes = %d, time = %d ms",
		r.BestMove, r.BestValue, r.Depth, r.Nodes, r.SearchTime.Milliseconds())
}
