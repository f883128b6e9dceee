package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetMasqrEnv removes every MASQR_* variable for the duration of the test.
// envconfig treats a set-but-empty variable as a value, so t.Setenv(k, "") is not enough.
func unsetMasqrEnv(t *testing.T) {
	t.Helper()

	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(key, "MASQR_") {
			continue
		}
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() { os.Setenv(key, value) })
	}
}

func TestInit(t *testing.T) {
	t.Run("uses defaults when nothing is set", func(t *testing.T) {
		unsetMasqrEnv(t)

		cfg, err := Init()
		require.NoError(t, err)

		assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
		assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("MASQR_LISTEN_ADDR", "0.0.0.0:9090")
		t.Setenv("MASQR_LOG_LEVEL", "debug")
		t.Setenv("MASQR_SHUTDOWN_TIMEOUT", "3s")

		cfg, err := Init()
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)

		lvl, err := cfg.Level()
		require.NoError(t, err)
		assert.Equal(t, zerolog.DebugLevel, lvl)
	})

	t.Run("rejects an unknown log level", func(t *testing.T) {
		t.Setenv("MASQR_LOG_LEVEL", "loud")

		_, err := Init()
		assert.Error(t, err)
	})

	t.Run("rejects a malformed duration", func(t *testing.T) {
		t.Setenv("MASQR_READ_TIMEOUT", "soon")

		_, err := Init()
		assert.Error(t, err)
	})
}

func TestProviders(t *testing.T) {
	t.Run("env provider distinguishes unset from empty", func(t *testing.T) {
		t.Setenv("MASQR_TEST_EMPTY", "")

		v, ok := EnvProvider{}.Get("MASQR_TEST_EMPTY")
		assert.True(t, ok)
		assert.Equal(t, "", v)

		_, ok = EnvProvider{}.Get("MASQR_TEST_NEVER_SET")
		assert.False(t, ok)
	})

	t.Run("map provider", func(t *testing.T) {
		p := MapProvider{AllowListKey: `["p1"]`}

		v, ok := p.Get(AllowListKey)
		assert.True(t, ok)
		assert.Equal(t, `["p1"]`, v)

		_, ok = p.Get("OTHER")
		assert.False(t, ok)
	})
}
