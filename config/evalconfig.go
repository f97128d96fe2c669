// Copyright (c) 2024 chesscore contributors. MIT License.

package config

type evalConfiguration struct {
	// Tempo is a small centipawn bonus added for the side to move. It
	// reduces the evaluation swing between plies and so helps the
	// alpha-beta window converge slightly faster without changing
	// mate/stalemate results.
	Tempo int
}

func init() {
	Settings.Eval.Tempo = 10
}

func setupEval() {}
