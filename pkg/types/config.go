package types

import (
	"database/sql"
	"strings"
)

// DBConfig holds structured credentials for a remote database. A config file
// shipped with the repository contains only template placeholders; those must
// never trigger a connection attempt.
type DBConfig struct {
	Host     string `json:"host" yaml:"host" mapstructure:"host"`
	Port     int    `json:"port" yaml:"port" mapstructure:"port"`
	User     string `json:"user" yaml:"user" mapstructure:"user"`
	Password string `json:"password" yaml:"password" mapstructure:"password"`
	Name     string `json:"dbname" yaml:"dbname" mapstructure:"dbname"`
}

// IsPlaceholder reports whether the credentials are absent or still hold
// template values. A field counts as a placeholder when it is empty or
// starts with '<' (the style used in the generated config file, e.g.
// "<your-host>").
func (c DBConfig) IsPlaceholder() bool {
	for _, v := range []string{c.Host, c.User, c.Password, c.Name} {
		if v == "" || strings.HasPrefix(v, "<") {
			return true
		}
	}
	return false
}

// Config describes how the backend selector should open storage.
//
// At most one of Conn, DBPath, or a non-placeholder DB block is expected;
// they are consulted in that order. When none applies the selector runs in
// JSON-only mode.
type Config struct {
	// DataDir is the directory holding the per-season JSON files and the
	// combined snapshot. Empty means "data" under the current directory.
	DataDir string

	// DBPath is an explicit database location: a postgres:// URL or a local
	// SQLite file path.
	DBPath string

	// DB holds structured credentials for a remote database, typically
	// loaded from config.yaml or DB_* environment variables.
	DB DBConfig

	// Conn is a pre-built connection handed in by an embedding caller.
	// When set, schema creation is skipped and assumed done.
	Conn *sql.DB

	// ConnDriver names the engine behind Conn ("sqlite" or "pgx"/"postgres")
	// so the store can pick the right placeholder style. Defaults to SQLite.
	ConnDriver string
}

// WantsDatabase reports whether the configuration names a database at all,
// explicitly or through real (non-placeholder) credentials.
func (c Config) WantsDatabase() bool {
	return c.Conn != nil || c.DBPath != "" || !c.DB.IsPlaceholder()
}
