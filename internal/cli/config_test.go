package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadConfig(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		assert := assert.New(t)
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
		require.NoError(t, err)
		assert.Equal(DefaultConfig(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		assert := assert.New(t)
		path := filepath.Join(t.TempDir(), "lrgen.toml")
		require.NoError(t, os.WriteFile(path, []byte("discipline = \"LR1\"\ngrammar_path = \"g.txt\"\nshow_trace = true\n"), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal("LR1", cfg.Discipline)
		assert.Equal("g.txt", cfg.GrammarPath)
		assert.True(cfg.ShowTrace)
	})
}
