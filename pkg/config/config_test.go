package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("PORT", "")
	t.Setenv("HOST", "")
	t.Setenv("ENV", "")
	t.Setenv("READY_TIMEOUT_SECONDS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.DiscordToken)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 30, cfg.ReadyTimeoutSeconds)
	assert.Equal(t, "127.0.0.1:8000", cfg.Addr())
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("PORT", "9000")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("ENV", "production")
	t.Setenv("READY_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 5, cfg.ReadyTimeoutSeconds)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{DiscordToken: "t", Port: "8000", ReadyTimeoutSeconds: 30},
		},
		{
			name:    "empty port",
			cfg:     Config{DiscordToken: "t", ReadyTimeoutSeconds: 30},
			wantErr: "PORT",
		},
		{
			name:    "non-positive ready timeout",
			cfg:     Config{DiscordToken: "t", Port: "8000"},
			wantErr: "READY_TIMEOUT_SECONDS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SOME_INT", "17")
	assert.Equal(t, 17, getEnvInt("SOME_INT", 3))

	t.Setenv("SOME_INT", "not-a-number")
	assert.Equal(t, 3, getEnvInt("SOME_INT", 3))

	t.Setenv("SOME_INT", "")
	assert.Equal(t, 3, getEnvInt("SOME_INT", 3))
}
