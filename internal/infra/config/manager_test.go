package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focus-pulse/internal/domain"
)

func TestManager_ConfigInfo(t *testing.T) {
	dir := t.TempDir()
	m := NewManagerWithGlobalDir(dir)

	info := m.ConfigInfo()
	assert.Equal(t, filepath.Join(dir, domain.ConfigFileName), info.Path)
	assert.False(t, info.Exists)

	require.NoError(t, m.InitConfig(false))

	info = m.ConfigInfo()
	assert.True(t, info.Exists)
}

func TestManager_InitConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "focus-pulse")
	m := NewManagerWithGlobalDir(dir)
	path := filepath.Join(dir, domain.ConfigFileName)

	// Creates the directory and writes the template
	require.NoError(t, m.InitConfig(false))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ConfigTemplate(), string(content))

	// Refuses to overwrite without force
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o600))
	assert.ErrorIs(t, m.InitConfig(false), domain.ErrConfigExists)
	content, _ = os.ReadFile(path)
	assert.Contains(t, string(content), "debug")

	// Overwrites with force
	require.NoError(t, m.InitConfig(true))
	content, _ = os.ReadFile(path)
	assert.Equal(t, domain.ConfigTemplate(), string(content))
}

func TestManager_NoGlobalDir(t *testing.T) {
	m := NewManagerWithGlobalDir("")

	assert.Equal(t, domain.ConfigInfo{}, m.ConfigInfo())
	assert.Error(t, m.InitConfig(false))
}
