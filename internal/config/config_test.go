package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Store.Driver)
	assert.Equal(t, "data", cfg.Store.DataDir)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, 800, cfg.Autosave.DebounceMillis)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("INTAKE_STORE_DRIVER", "sqlite")
	t.Setenv("INTAKE_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestStoreConfig_DSN(t *testing.T) {
	file := StoreConfig{Driver: "file", DataDir: "data", DatabaseURL: "postgres://x"}
	assert.Equal(t, "data", file.DSN())

	pg := StoreConfig{Driver: "postgres", DataDir: "data", DatabaseURL: "postgres://x"}
	assert.Equal(t, "postgres://x", pg.DSN())
}

func TestInitLogger_BadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	assert.Error(t, err)
}
