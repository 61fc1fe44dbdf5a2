package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/influence/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.New(""))
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Network", cfg.Network, ""},
		{"Category", cfg.Category, "IN"},
		{"MaxDepth", cfg.MaxDepth, -1},
		{"MaxSteps", cfg.MaxSteps, -1},
		{"Tolerance", cfg.Tolerance, 1e-9},
		{"LogFormat", cfg.LogFormat, "text"},
		{"Verbose", cfg.Verbose, false},
		{"Trace", cfg.Trace, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INFLUENCE_CATEGORY", "SCC")
	t.Setenv("INFLUENCE_MAX_DEPTH", "12")
	t.Setenv("INFLUENCE_LOG_FORMAT", "json")

	cfg, err := config.Load(config.New(""))
	require.NoError(t, err)
	assert.Equal(t, "SCC", cfg.Category)
	assert.Equal(t, 12, cfg.MaxDepth)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".influence.yaml")
	body := "network: net.yaml\ncategory: OUT\ntolerance: 0.001\nverbose: true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load(config.New(path))
	require.NoError(t, err)
	assert.Equal(t, "net.yaml", cfg.Network)
	assert.Equal(t, "OUT", cfg.Category)
	assert.Equal(t, 0.001, cfg.Tolerance)
	assert.True(t, cfg.Verbose)

	// Env beats file.
	t.Setenv("INFLUENCE_CATEGORY", "TT")
	cfg, err = config.Load(config.New(path))
	require.NoError(t, err)
	assert.Equal(t, "TT", cfg.Category)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(config.New(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)

	t.Setenv("INFLUENCE_LOG_FORMAT", "xml")
	_, err = config.Load(config.New(""))
	assert.ErrorIs(t, err, config.ErrBadLogFormat)
}

func TestValidate_Tolerance(t *testing.T) {
	err := config.Config{LogFormat: "text", Tolerance: 0}.Validate()
	assert.ErrorIs(t, err, config.ErrBadTolerance)
}
