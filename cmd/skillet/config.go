// Config loading for the skillet CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/skillet/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDriver   = "driver"
	cfgKeyHost     = "host"
	cfgKeyPort     = "port"
	cfgKeyDatabase = "database"
	cfgKeyUser     = "user"
	cfgKeyPassword = "password"

	defaultDriver = "sqlite"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Skillet CLI configuration

# Database driver: sqlite or pgx
driver: sqlite

# Database path (sqlite) or name (pgx); overridable by --database
# database:

# Server settings, used by the pgx driver only
# host:
# port:
# user:
# password:
`

// cliConfig carries the connection settings read from config.yaml.
type cliConfig struct {
	Driver   string
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run; a missing config.yaml is not an error.
func loadConfig(dirFlag string) (cliConfig, error) {
	configDir, err := paths.ResolveConfigDir(dirFlag)
	if err != nil {
		return cliConfig{}, fmt.Errorf("resolve config dir: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return cliConfig{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return cliConfig{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetDefault(cfgKeyDriver, defaultDriver)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return cliConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	return cliConfig{
		Driver:   v.GetString(cfgKeyDriver),
		Host:     v.GetString(cfgKeyHost),
		Port:     v.GetInt(cfgKeyPort),
		Database: v.GetString(cfgKeyDatabase),
		User:     v.GetString(cfgKeyUser),
		Password: v.GetString(cfgKeyPassword),
	}, nil
}

// ensureDefaultConfigFile writes a commented default config.yaml if none exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
