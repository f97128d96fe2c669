// Copyright (c) 2024 chesscore contributors. MIT License.

// Package config holds globally available configuration variables, either
// left at their defaults or read from a TOML file via Setup.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/kopf/chesscore/util"
)

// ConfFile is the path Setup reads from (relative to the working directory
// of whatever binary calls Setup, e.g. cmd/perft).
var ConfFile = "./config.toml"

// globally available config values.
var (
	// LogLevel gates the standard logger (logging.GetLog).
	LogLevel = 3 // NOTICE

	// SearchLogLevel gates the search logger (logging.GetSearchLog).
	SearchLogLevel = 3

	// TestLogLevel gates the test logger (logging.GetTestLog).
	TestLogLevel = 3

	// Settings is the global configuration, populated by Setup.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads ConfFile and sets Settings from it, falling back to the
// defaults declared in each sub-config's init() when the file is absent or
// a field is unset. Safe to call more than once; only the first call acts.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Printf("config: %s not found, using defaults (%v)", ConfFile, err)
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Printf("config: %s not valid, using defaults (%v)", path, err)
	}
	setupLogLvl()
	setupSearch()
	setupEval()
	initialized = true
}
