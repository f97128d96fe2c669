// Copyright (c) 2024 chesscore contributors. MIT License.

package search

import (
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kopf/chesscore/config"
	"github.com/kopf/chesscore/evaluator"
	"github.com/kopf/chesscore/logging"
	"github.com/kopf/chesscore/movegen"
	"github.com/kopf/chesscore/position"
	. "github.com/kopf/chesscore/types"
)

var out = message.NewPrinter(language.English)
var log = logging.GetSearchLog()

// Search runs fixed-depth negamax with fail-hard alpha-beta pruning over
// a position.Position. A Search value is not safe for concurrent Run
// calls; isRunning guards against a second Run being issued on the same
// instance while one is in flight. The search itself is synchronous, but
// an embedding caller may still share one *Search across goroutines.
type Search struct {
	isRunning *semaphore.Weighted
	nodes     int64
	bestMove  [maxPly]Move
}

const maxPly = 128

// NewSearch returns a ready-to-use Search.
func NewSearch() *Search {
	return &Search{isRunning: semaphore.NewWeighted(1)}
}

// Run searches pos to depth plies and returns the best move found along
// with its score and node count. depth <= 0 falls back to
// config.Settings.Search.Depth. Run takes pos by value: the caller's
// position is never mutated.
func (s *Search) Run(pos position.Position, depth int) Result {
	if !s.isRunning.TryAcquire(1) {
		log.Error("search already running on this instance")
		return Result{}
	}
	defer s.isRunning.Release(1)

	if depth <= 0 {
		depth = config.Settings.Search.Depth
	}
	s.nodes = 0
	s.bestMove = [maxPly]Move{}
	start := time.Now()

	score := s.negamax(&pos, -ValueInfinite, ValueInfinite, depth, 0)

	result := Result{
		BestMove:   s.bestMove[0],
		BestValue:  score,
		Depth:      depth,
		Nodes:      s.nodes,
		SearchTime: time.Since(start),
	}
	log.Debug(out.Sprintf("search finished: %s", result.String()))
	return result
}

// negamax walks the game tree to depth plies, returning a score relative
// to the side to move. Each branch recurses over a child copy
// (position.Position.Copy) rather than an in-place undo; that keeps the
// recursion simple at the cost of one struct copy per node, which is
// cheap since Position holds no pointers or slices.
func (s *Search) negamax(pos *position.Position, alpha, beta Value, depth, ply int) Value {
	if depth == 0 {
		return evaluator.Evaluate(pos)
	}
	s.nodes++

	inCheck := pos.InCheck(pos.SideToMove())
	legal := 0

	for _, mv := range movegen.GenerateMoves(pos) {
		child := pos.Copy()
		if !child.MakeMove(mv) {
			continue
		}
		legal++

		score := -s.negamax(&child, -beta, -alpha, depth-1, ply+1)

		if score >= beta && config.Settings.Search.UseAlphaBeta {
			return beta
		}
		if score > alpha {
			alpha = score
			if ply < maxPly {
				s.bestMove[ply] = mv
			}
		}
	}

	if legal == 0 {
		if inCheck {
			return -ValueCheckMate + Value(ply)
		}
		return ValueDraw
	}
	return alpha
}
