package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvDataSource, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, SourceLocal, cfg.DataSourceType)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultDatabasePath, cfg.Database)
	assert.False(t, cfg.StrictStatusFlow)
	assert.False(t, cfg.Remote())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`
store_name: Demo Bistro
data_source_type: ALS
api_base_url: http://example.test/api
strict_status_flow: true
`), 0o600))
	t.Setenv(EnvDataSource, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Demo Bistro", cfg.StoreName)
	assert.Equal(t, SourceRemote, cfg.DataSourceType)
	assert.Equal(t, "http://example.test/api", cfg.APIBaseURL)
	assert.True(t, cfg.StrictStatusFlow)
	assert.True(t, cfg.Remote())
}

func TestLoadFindsFileInCwd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileNameAlt),
		[]byte("store_name: Found\n"), 0o600))
	chdir(t, dir)
	t.Setenv(EnvDataSource, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Found", cfg.StoreName)
}

func TestEnvOverride(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"remote token", "ALS", SourceRemote},
		{"local token", "LOCAL", SourceLocal},
		{"unrecognized token is ignored", "POSTGRES", SourceLocal},
		{"empty is ignored", "", SourceLocal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(EnvDataSource, tt.env)

			cfg, err := Load("")
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.DataSourceType)
		})
	}
}

func TestEnvOverrideBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("data_source_type: ALS\n"), 0o600))
	t.Setenv(EnvDataSource, "LOCAL")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, cfg.DataSourceType)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
