package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/zuid/pkg/zuid"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 1000, cfg.Batch.MaxCount)
	assert.Equal(t, "info", cfg.Log.Level)

	require.Contains(t, cfg.Entities, DefaultEntity)
	assert.Equal(t, zuid.Config{EntropySize: 16, Charset: zuid.Base62}, cfg.Entities[DefaultEntity].Factory())
}

func TestLoad_Entities(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 9000
  read_timeout: 5s
entities:
  user:
    prefix: usr_
    bytes: 16
  order:
    prefix: ord_
    bytes: 12
    timestamped: true
    charset: crockford32
  invite:
    chars: 10
    charset: ABCDEFGHJKLMNPQRSTUVWXYZ
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	require.Len(t, cfg.Entities, 3)

	order := cfg.Entities["order"].Factory()
	assert.Equal(t, "ord_", order.Prefix)
	assert.Equal(t, 12, order.EntropySize)
	assert.True(t, order.Timestamped)
	assert.Equal(t, zuid.Crockford32, order.Charset)

	invite := cfg.Entities["invite"].Factory()
	assert.Equal(t, 10, invite.Chars)
	assert.Equal(t, "ABCDEFGHJKLMNPQRSTUVWXYZ", invite.Charset)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("ZUID_BATCH_MAX_COUNT", "50")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 50, cfg.Batch.MaxCount)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative bytes", "entities:\n  user:\n    bytes: -1\n"},
		{"bytes above limit", "entities:\n  user:\n    bytes: 257\n"},
		{"chars above limit", "entities:\n  user:\n    chars: 257\n"},
		{"port out of range", "server:\n  port: 70000\n"},
		{"zero batch", "batch:\n  max_count: 0\n"},
		{"broken yaml", "entities: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
