package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yrpconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, Validate(cfg))
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
database: ./history.db
output_suffix: .replay
format: json
verbose: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Database:     "./history.db",
		OutputSuffix: ".replay",
		Format:       "json",
		Verbose:      true,
	}, cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "database: h.db\n"))
	require.NoError(t, err)
	assert.Equal(t, "h.db", cfg.Database)
	assert.Equal(t, ".yrpb", cfg.OutputSuffix)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoad_FromEnv(t *testing.T) {
	path := writeConfig(t, "format: json\n")
	t.Setenv(EnvPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown format", "format: xml\n"},
		{"suffix without dot", "output_suffix: yrpb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			_, err := Load(path)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, path, ve.Path)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "format: [json\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
