// Copyright (c) 2024 chesscore contributors. MIT License.

package config

type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
	TestLogLvl   string
}

func init() {
	Settings.Log.LogLvl = "notice"
	Settings.Log.SearchLogLvl = "notice"
	Settings.Log.TestLogLvl = "notice"
}

func setupLogLvl() {
	if lvl, ok := LogLevels[Settings.Log.LogLvl]; ok {
		LogLevel = lvl
	}
	if lvl, ok := LogLevels[Settings.Log.SearchLogLvl]; ok {
		SearchLogLevel = lvl
	}
	if lvl, ok := LogLevels[Settings.Log.TestLogLvl]; ok {
		TestLogLevel = lvl
	}
}

// LogLevels maps the string levels accepted in config.toml to the
// numerical levels github.com/op/go-logging uses.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}
