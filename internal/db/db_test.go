package db

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv(envDBPath, "/tmp/custom.db")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", path)
}

func TestDefaultPath_HomeDirectory(t *testing.T) {
	t.Setenv(envDBPath, "")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join(".shiftboard", "shiftboard.db")),
		"expected path under ~/.shiftboard, got %s", path)
}
