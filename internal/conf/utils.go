// conf/utils.go various util functions for configuration package
package conf

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/tphakala/vowelnet/internal/errors"
)

// OS name constants for runtime.GOOS comparisons.
const (
	osWindows = "windows"
	appName   = "vowelnet"
)

// GetDefaultConfigPaths returns the directories searched for config.yaml, in
// priority order: the working directory, then the per-user config directory.
func GetDefaultConfigPaths() ([]string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.New(err).
			Component("conf").
			Category(errors.CategorySystem).
			Context("operation", "get-home-directory").
			Build()
	}

	configPaths := []string{"."}
	switch runtime.GOOS {
	case osWindows:
		configPaths = append(configPaths, filepath.Join(homeDir, "AppData", "Roaming", appName))
	default:
		configPaths = append(configPaths, filepath.Join(homeDir, ".config", appName))
	}
	return configPaths, nil
}

// DataFilePath returns the full path of the configured default dataset file.
func (s *Settings) DataFilePath() string {
	return filepath.Join(s.Data.Dir, s.Data.File)
}
