// Package settings loads the pipeline configuration consumed by the fixture
// generator. Only the fields the generator reads are exposed; every one of
// them has a documented default, so a partial configuration file is valid.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Configuration keys, matching the monitoring pipeline's layout.
const (
	keySensorNames       = "oma.geometry.sensor_names"
	keySamplingFrequency = "signal_processing.sampling_frequency"
	keyInputDataDir      = "paths.input_data_dir"
	keyUseRelativePaths  = "paths.use_relative_paths"
)

// Settings holds the configuration fields the generator reads.
type Settings struct {
	SensorNames       []string // ordered channel names
	SamplingFrequency float64  // Hz
	InputDataDir      string   // where segment files are written
	UseRelativePaths  bool     // resolve InputDataDir against the working directory
}

// Default returns the documented defaults, used for any field the
// configuration file does not set.
func Default() Settings {
	return Settings{
		SensorNames:       []string{"sensor_1", "sensor_2", "sensor_3", "sensor_4"},
		SamplingFrequency: 250,
		InputDataDir:      "data/raw",
		UseRelativePaths:  true,
	}
}

// Load reads the configuration file at path. Missing optional fields fall
// back to Default; an unreadable or unparsable file is an error.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("settings: read %s: %w", path, err)
	}

	s := Default()

	if v.IsSet(keySensorNames) {
		s.SensorNames = v.GetStringSlice(keySensorNames)
	}

	if v.IsSet(keySamplingFrequency) {
		s.SamplingFrequency = v.GetFloat64(keySamplingFrequency)
	}

	if v.IsSet(keyInputDataDir) {
		s.InputDataDir = v.GetString(keyInputDataDir)
	}

	if v.IsSet(keyUseRelativePaths) {
		s.UseRelativePaths = v.GetBool(keyUseRelativePaths)
	}

	return s, nil
}

// OutputDir resolves the directory segment files are written to. An explicit
// override wins; otherwise InputDataDir is used, resolved against the
// working directory when UseRelativePaths is set.
func (s Settings) OutputDir(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if !s.UseRelativePaths {
		return s.InputDataDir, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("settings: resolve working directory: %w", err)
	}

	return filepath.Join(wd, s.InputDataDir), nil
}
