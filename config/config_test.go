package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
env:
  env: test
  serviceName: bizdesk
  log:
    level: debug
http:
  port: 8080
  rateLimit:
    requestsPerSecond: 20
    burst: 40
storage:
  driver: memory
secretKey:
  access: yaml-secret
auth:
  tokenTTL: 2h
`

func writeConfig(t *testing.T, body string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_YAMLAndEnvOverrides(t *testing.T) {
	writeConfig(t, sampleConfig)
	t.Setenv("SECRETKEY_ACCESS", "env-secret")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "bizdesk", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.InDelta(t, 20.0, cfg.HTTP.RateLimit.RequestsPerSecond, 0.001)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestNew_AppliesDefaults(t *testing.T) {
	writeConfig(t, sampleConfig)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Auth.EnforceOwnership)
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "memory driver without postgres",
			mutate: func(cfg *Config) { cfg.Storage.Driver = "Memory" },
		},
		{
			name:    "postgres driver requires postgres section",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = "" },
			wantErr: "postgres configuration is required",
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = "mongo" },
			wantErr: "unknown storage driver",
		},
		{
			name: "missing secret",
			mutate: func(cfg *Config) {
				cfg.Storage.Driver = StorageDriverMemory
				cfg.SecretKey.Access = " "
			},
			wantErr: "secretKey.access",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SecretKey: SecretKeyConfig{Access: "secret"}}
			tt.mutate(cfg)

			err := cfg.applyDefaults()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
		})
	}
}
