package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

const keyHex = "000102030405060708090a0b0c0d0e0f000102030405060708090a0b0c0d0e0f"

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENCRYPTION_KEY", keyHex)

	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Env)
	require.False(t, cfg.Production())
	require.Equal(t, "8080", cfg.HTTP.Port)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, 2000, cfg.Processor.Delay)
	require.InDelta(t, 0.9, cfg.Processor.SuccessRate, 0.0001)

	key, err := cfg.Crypto.Key()
	require.NoError(t, err)
	require.Len(t, key, 32)
}

func TestNewConfig_MissingSecretsFailStartup(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", keyHex)
	// t.Setenv registers the restore; the variable must be truly absent.
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	_, err := NewConfig()
	require.Error(t, err)
}

func TestNewConfig_BadEncryptionKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("not hex", func(t *testing.T) {
		t.Setenv("ENCRYPTION_KEY", "zzzz")
		_, err := NewConfig()
		require.Error(t, err)
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Setenv("ENCRYPTION_KEY", "0001020304")
		_, err := NewConfig()
		require.Error(t, err)
	})
}

func TestNewConfig_Production(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENCRYPTION_KEY", keyHex)
	t.Setenv("APP_ENV", "production")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.True(t, cfg.Production())
}
