// Config loading for the mealweek CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/tasteops/mealweek/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir    = "data_dir"
	cfgKeyDBFile     = "db_file"
	cfgKeyAuthBcrypt = "auth.bcrypt"
	cfgKeyLogDev     = "log.dev"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# mealweek CLI configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Database file name inside the data directory
# db_file: marmita_data.db

auth:
  # Hash newly created accounts with bcrypt instead of the legacy scheme.
  bcrypt: false

log:
  # Human-readable console logging instead of JSON.
  dev: false
`

// cliConfig is the resolved config.yaml content.
type cliConfig struct {
	DataDir    string
	DBFile     string
	AuthBcrypt bool
	DevLogging bool
}

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (cliConfig, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return cliConfig{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return cliConfig{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDBFile, types.DefaultDBFileName)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cliConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	return cliConfig{
		DataDir:    v.GetString(cfgKeyDataDir),
		DBFile:     v.GetString(cfgKeyDBFile),
		AuthBcrypt: v.GetBool(cfgKeyAuthBcrypt),
		DevLogging: v.GetBool(cfgKeyLogDev),
	}, nil
}

// ensureDefaultConfigFile writes the commented default config.yaml if none
// exists yet.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
