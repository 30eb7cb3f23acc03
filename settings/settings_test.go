package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
oma:
  geometry:
    sensor_names: [a1, a2, a3]
signal_processing:
  sampling_frequency: 100
paths:
  input_data_dir: fixtures/raw
  use_relative_paths: false
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"a1", "a2", "a3"}, s.SensorNames)
	assert.Equal(t, 100.0, s.SamplingFrequency)
	assert.Equal(t, "fixtures/raw", s.InputDataDir)
	assert.False(t, s.UseRelativePaths)
}

func TestLoadPartialConfigUsesDefaults(t *testing.T) {
	path := writeConfig(t, `
signal_processing:
  sampling_frequency: 500
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500.0, s.SamplingFrequency)
	assert.Equal(t, Default().SensorNames, s.SensorNames)
	assert.Equal(t, Default().InputDataDir, s.InputDataDir)
	assert.True(t, s.UseRelativePaths)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestOutputDirExplicitWins(t *testing.T) {
	s := Default()

	dir, err := s.OutputDir("/tmp/explicit")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/explicit", dir)
}

func TestOutputDirAbsolutePolicy(t *testing.T) {
	s := Settings{InputDataDir: "/data/raw", UseRelativePaths: false}

	dir, err := s.OutputDir("")
	require.NoError(t, err)
	assert.Equal(t, "/data/raw", dir)
}

func TestOutputDirRelativePolicy(t *testing.T) {
	s := Settings{InputDataDir: "data/raw", UseRelativePaths: true}

	dir, err := s.OutputDir("")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "data/raw"), dir)
}
