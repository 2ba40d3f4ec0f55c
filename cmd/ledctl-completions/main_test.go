package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ledctl/internal/cli"
)

func TestWriteCompletions(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, writeCompletions(fs, "/out", cli.NewRootCmd()))

	for name := range completionFiles {
		data, err := afero.ReadFile(fs, filepath.Join("/out", name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "ledctl", name)
	}
}
