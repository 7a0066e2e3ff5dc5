package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDir_FlagWins(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	dir, err := ResolveConfigDir("/flag/config")
	require.NoError(t, err)
	assert.Equal(t, "/flag/config", dir)
}

func TestResolveConfigDir_EnvOverDefault(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	dir, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, "/env/config", dir)
}

func TestResolveDataDir_Precedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/env/data")

	dir, err := ResolveDataDir("/flag/data", "/config/data")
	require.NoError(t, err)
	assert.Equal(t, "/flag/data", dir)

	dir, err = ResolveDataDir("", "/config/data")
	require.NoError(t, err)
	assert.Equal(t, "/config/data", dir)

	dir, err = ResolveDataDir("", "")
	require.NoError(t, err)
	assert.Equal(t, "/env/data", dir)
}

func TestResolveDataDir_DefaultIsCWDRelative(t *testing.T) {
	t.Setenv(EnvDataDir, "")

	dir, err := ResolveDataDir("", "")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, DefaultDataDirName), dir)
}

func TestDefaultConfigDir_LinuxXDG(t *testing.T) {
	if os.Getenv("XDG_CONFIG_HOME") == "" {
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	}
	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.NotEmpty(t, dir)
	assert.Equal(t, "mealweek", filepath.Base(dir))
}
