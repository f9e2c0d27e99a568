package optim_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/geomopt/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, optim.DefaultConfig().Validate())
}

func TestDecodeConfig_OverridesDefaults(t *testing.T) {
	cfg, err := optim.DecodeConfig(strings.NewReader("steps: 10\nseed: 7\nmin_dist: 0.5\n"))
	require.NoError(t, err)

	want := optim.DefaultConfig()
	want.Steps, want.Seed, want.MinDist = 10, 7, 0.5
	assert.Equal(t, want, cfg)

	empty, err := optim.DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, optim.DefaultConfig(), empty)
}

func TestDecodeConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "stepz: 3\n",
		"zero steps":    "steps: 0\n",
		"negative rate": "learning_rate: -1\n",
		"beta1 at 1":    "beta1: 1\n",
		"no restarts":   "restarts: 0\n",
		"negative dist": "min_dist: -0.1\n",
		"not a number":  "tolerance: tiny\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := optim.DecodeConfig(strings.NewReader(doc))
			assert.ErrorIs(t, err, optim.ErrInvalidConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "optim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("restarts: 2\ngoal_tolerance: 0.001\n"), 0o600))

	cfg, err := optim.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Restarts)
	assert.Equal(t, 0.001, cfg.GoalTolerance)

	_, err = optim.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, optim.ErrInvalidConfig)
}
