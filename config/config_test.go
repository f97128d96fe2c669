// Copyright (c) 2024 chesscore contributors. MIT License.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup_DefaultsWithoutConfigFile(t *testing.T) {
	ConfFile = "./does-not-exist.toml"
	initialized = false
	Setup()
	assert.Equal(t, 4, Settings.Search.Depth)
	assert.True(t, Settings.Search.UseAlphaBeta)
	assert.Equal(t, 10, Settings.Eval.Tempo)
}

func TestSetup_OnlyRunsOnce(t *testing.T) {
	initialized = false
	Setup()
	Settings.Search.Depth = 99
	Setup()
	assert.Equal(t, 99, Settings.Search.Depth, "second Setup call must be a no-op")
}
