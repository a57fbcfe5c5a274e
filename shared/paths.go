package shared

import (
	"os"
	"path/filepath"

	"github.com/Daskott/aidline/utils"
)

// ConfigDirectory returns the directory aidline keeps its config & data in,
// creating it if needed: '$HOME/aidline', or './dev' in dev mode.
func ConfigDirectory(devMode bool) (string, error) {
	configFolderName := "aidline"
	rootDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if devMode {
		configFolderName = "dev"
		rootDir, err = os.Getwd()
		if err != nil {
			return "", err
		}
	}

	configDir := filepath.Join(rootDir, configFolderName)

	err = utils.CreateDirIfNotExist(configDir)
	if err != nil {
		return "", err
	}

	return configDir, nil
}

// DataDirectory is where the db lives: 'aidline.dataDir' when set, else the
// config directory
func (c *Config) DataDirectory(devMode bool) (string, error) {
	if c.Aidline.DataDir != "" {
		return c.Aidline.DataDir, utils.CreateDirIfNotExist(c.Aidline.DataDir)
	}
	return ConfigDirectory(devMode)
}
