package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/on-the-ground/likebox/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "likebox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
log:
  level: debug
data: users.yaml
store: memdb
`))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, config.LogFormatConsole, cfg.Log.Format)
	assert.Equal(t, "users.yaml", cfg.Data)
	assert.Equal(t, config.StoreMemDB, cfg.Store)
	assert.Equal(t, config.UpdateKeyID, cfg.UpdateKey)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(writeConfig(t, "update_key: name\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeConfig(t, "log: [\n"))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_SharedValidator(t *testing.T) {
	for range 3 {
		assert.NoError(t, config.Default().Validate())

		bad := config.Default()
		bad.Store = "redis"
		assert.ErrorIs(t, bad.Validate(), config.ErrInvalidConfig)
	}
}
