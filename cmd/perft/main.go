// Copyright (c) 2024 chesscore contributors. MIT License.

package main

import (
	"flag"

	"github.com/pkg/profile"

	"github.com/kopf/chesscore/attacks"
	"github.com/kopf/chesscore/config"
	"github.com/kopf/chesscore/fen"
	"github.com/kopf/chesscore/logging"
	"github.com/kopf/chesscore/perft"
	"github.com/kopf/chesscore/search"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fenStr := flag.String("fen", fen.StartFEN, "FEN of the position to run against")
	depth := flag.Int("depth", 5, "perft depth; the driver also reports perft(1..depth)")
	searchDepth := flag.Int("searchdepth", 0, "if > 0, also run a fixed-depth search on the position and print the best move")
	cpuProfile := flag.Bool("cpuprofile", false, "wrap the run in a CPU profile (writes cpu.pprof to the working directory)")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	attacks.Build()

	log := logging.GetLog()
	pos := fen.MustParse(*fenStr)

	for d := 1; d <= *depth; d++ {
		result := perft.Run(pos, d)
		log.Notice(result.String())
	}

	if *searchDepth > 0 {
		s := search.NewSearch()
		result := s.Run(pos, *searchDepth)
		log.Notice(result.String())
	}
}
