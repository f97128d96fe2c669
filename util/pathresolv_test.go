// Copyright (c) 2024 chesscore contributors. MIT License.

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFile_FindsFileRelativeToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "chesscore_test.toml")
	require.NoError(t, os.WriteFile(file, []byte("[Search]\n"), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	resolved, err := ResolveFile("chesscore_test.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(file), resolved)
}

func TestResolveFile_MissingFileIsAnError(t *testing.T) {
	_, err := ResolveFile("does-not-exist-anywhere.toml")
	assert.Error(t, err)
}
