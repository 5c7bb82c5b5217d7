package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"backend_url": "http://backend.internal:8000",
		"client_filter": "CLIENT_0001",
		"request_timeout": 15,
		"strict": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://backend.internal:8000", cfg.BackendURL)
	assert.Equal(t, "CLIENT_0001", cfg.ClientFilter)
	assert.Equal(t, 15, cfg.RequestTimeout)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty config is valid", cfg: Config{}},
		{name: "valid backend url", cfg: Config{BackendURL: "http://localhost:8000"}},
		{name: "url without scheme", cfg: Config{BackendURL: "localhost:8000"}, wantErr: true},
		{name: "garbage url", cfg: Config{BackendURL: "://nope"}, wantErr: true},
		{name: "negative timeout", cfg: Config{RequestTimeout: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, DefaultRequestTimeout, (&Config{}).Timeout())
	assert.Equal(t, 15*time.Second, (&Config{RequestTimeout: 15}).Timeout())
}

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://env-backend:9000")

	cfg := Config{BackendURL: "http://file-backend:8000"}
	cfg.FromEnv()
	assert.Equal(t, "http://env-backend:9000", cfg.BackendURL)
}

func TestConfig_FromEnvUnsetLeavesValue(t *testing.T) {
	t.Setenv("BACKEND_URL", "")

	cfg := Config{BackendURL: "http://file-backend:8000"}
	cfg.FromEnv()
	assert.Equal(t, "http://file-backend:8000", cfg.BackendURL)
}

func TestConfig_MergeWithDefaults(t *testing.T) {
	cfg := Config{ClientFilter: "CLIENT_0002"}
	merged := cfg.MergeWithDefaults(Config{
		BackendURL:     "http://localhost:8000",
		ClientFilter:   "all",
		RequestTimeout: 30,
	})

	assert.Equal(t, "http://localhost:8000", merged.BackendURL)
	assert.Equal(t, "CLIENT_0002", merged.ClientFilter)
	assert.Equal(t, 30, merged.RequestTimeout)
}

func TestConfig_MergeWithDefaultsPreservesSetValues(t *testing.T) {
	cfg := Config{BackendURL: "http://mine:1234", RequestTimeout: 5, Strict: true}
	merged := cfg.MergeWithDefaults(Config{BackendURL: "http://default:8000", RequestTimeout: 30})

	assert.Equal(t, "http://mine:1234", merged.BackendURL)
	assert.Equal(t, 5, merged.RequestTimeout)
	assert.True(t, merged.Strict)
}
