package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.Equal(t, 50, cfg.Graph.Resolution)
	require.Equal(t, "wave", cfg.Graph.Function)
	require.Equal(t, "cycle", cfg.Graph.Transition)
	require.Equal(t, 1.0, cfg.Graph.FunctionDuration)
	require.Equal(t, 60, cfg.Display.TPS)
	require.Equal(t, 120, cfg.Output.Frames)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeFile(t, "graph:\n  function: ripple\n  resolution: 80\noutput:\n  workers: 4\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "ripple", cfg.Graph.Function)
	require.Equal(t, 80, cfg.Graph.Resolution)
	require.Equal(t, 4, cfg.Output.Workers)
	// untouched keys keep their defaults
	require.Equal(t, "cycle", cfg.Graph.Transition)
	require.Equal(t, 320, cfg.Display.Width)
}

func TestResolutionIsClamped(t *testing.T) {
	cfg, err := Load(writeFile(t, "graph:\n  resolution: 3\n"))
	require.NoError(t, err)
	require.Equal(t, MinResolution, cfg.Graph.Resolution)

	cfg, err = Load(writeFile(t, "graph:\n  resolution: 5000\n"))
	require.NoError(t, err)
	require.Equal(t, MaxResolution, cfg.Graph.Resolution)

	require.Equal(t, 120, ClampResolution(120))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"function":   "graph:\n  function: torus\n",
		"transition": "graph:\n  transition: bounce\n",
		"duration":   "graph:\n  function_duration: 0\n",
		"time scale": "graph:\n  time_scale: -1\n",
		"display":    "display:\n  width: 0\n",
		"frames":     "output:\n  frames: -2\n",
	}
	for name, body := range cases {
		_, err := Load(writeFile(t, body))
		require.ErrorIs(t, err, ErrInvalid, name)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "graph: [unterminated\n"))
	require.Error(t, err)
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Graph.Function = "multiwave"
	cfg.Graph.Resolution = 120

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}
