// Config loading for the refbook CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileFull = "config.yaml"

	// Config keys.
	cfgKeyDataDir    = "data_dir"
	cfgKeyDB         = "db"
	cfgKeyDBHost     = "database.host"
	cfgKeyDBPort     = "database.port"
	cfgKeyDBUser     = "database.user"
	cfgKeyDBPassword = "database.password"
	cfgKeyDBName     = "database.dbname"
)

// EnvDB is the environment variable naming a database path or URL, the
// equivalent of the --db flag.
const EnvDB = "REFBOOK_DB"

// defaultConfigYAML is written on first run. The database block ships with
// template placeholders; values starting with '<' are treated as absent and
// never trigger a connection attempt.
const defaultConfigYAML = `# Refbook configuration

# Data directory for the JSON files (optional; overridable by --data-dir)
# data_dir:

# Database path or postgres:// URL (optional; overridable by --db)
# db:

# Remote database credentials. Replace the placeholders with real values to
# enable the database backend; leave them as-is to keep using JSON files.
database:
  host: <your-host>
  port: 5432
  user: <your-user>
  password: <your-password>
  dbname: <your-database>
`

// loadConfig reads config.yaml from the config directory using Viper,
// creating the directory and a placeholder config on first run. The DB_*
// environment variables override the database block, matching the original
// precedence: flag > environment > config file.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	_ = v.BindEnv(cfgKeyDBHost, "DB_HOST")
	_ = v.BindEnv(cfgKeyDBPort, "DB_PORT")
	_ = v.BindEnv(cfgKeyDBUser, "DB_USER")
	_ = v.BindEnv(cfgKeyDBPassword, "DB_PASS")
	_ = v.BindEnv(cfgKeyDBName, "DB_NAME")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureDefaultConfigFile creates a placeholder config.yaml if none exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileFull)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// dbConfigFromViper extracts the credentials block.
func dbConfigFromViper(v *viper.Viper) types.DBConfig {
	return types.DBConfig{
		Host:     v.GetString(cfgKeyDBHost),
		Port:     v.GetInt(cfgKeyDBPort),
		User:     v.GetString(cfgKeyDBUser),
		Password: v.GetString(cfgKeyDBPassword),
		Name:     v.GetString(cfgKeyDBName),
	}
}
