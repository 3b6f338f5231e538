// Package sqlstore implements the database-backed store over an embedded
// SQLite file or a remote Postgres server, behind database/sql. The two
// engines share one code path; only the driver, the DDL details, and the
// placeholder style differ.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

// connectTimeout bounds the connection probe so an unreachable server
// degrades to the JSON fallback instead of hanging.
const connectTimeout = 5 * time.Second

// dialect selects engine-specific SQL behavior.
type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store is the SQL-backed store. The games table carries a uniqueness
// constraint on (season, game_number); writes go through upsert so a
// repeated key updates the existing row instead of duplicating it.
type Store struct {
	db      *sql.DB
	dialect dialect
	owned   bool // whether Close should close db (false for injected conns)
	closed  bool
}

// Open resolves the configuration to a database connection, verifies it
// with a bounded ping, and ensures the schema. Resolution order:
//
//  1. cfg.Conn — pre-built connection from an embedding caller; schema
//     creation is skipped and assumed done.
//  2. cfg.DBPath with a postgres:// or postgresql:// scheme — remote server.
//  3. any other non-empty cfg.DBPath — local SQLite file.
//  4. non-placeholder cfg.DB credentials — remote server.
//
// Every failure wraps types.ErrBackendUnavailable so the selector can fall
// back to JSON-only mode without inspecting driver errors.
func Open(cfg types.Config) (*Store, error) {
	if cfg.Conn != nil {
		s := &Store{db: cfg.Conn, dialect: connDialect(cfg.ConnDriver), owned: false}
		if err := s.ping(); err != nil {
			return nil, err
		}
		return s, nil
	}

	var (
		db  *sql.DB
		d   dialect
		err error
	)
	switch {
	case strings.HasPrefix(cfg.DBPath, "postgres://") || strings.HasPrefix(cfg.DBPath, "postgresql://"):
		d = dialectPostgres
		db, err = sql.Open("pgx", cfg.DBPath)
	case cfg.DBPath != "":
		d = dialectSQLite
		db, err = sql.Open("sqlite", cfg.DBPath)
	case !cfg.DB.IsPlaceholder():
		d = dialectPostgres
		db, err = sql.Open("pgx", credentialsDSN(cfg.DB))
	default:
		return nil, fmt.Errorf("%w: no database configured", types.ErrBackendUnavailable)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrBackendUnavailable, err)
	}

	s := &Store{db: db, dialect: d, owned: true}
	if err := s.ping(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// credentialsDSN builds a keyword DSN from structured credentials.
func credentialsDSN(c types.DBConfig) string {
	port := c.Port
	if port == 0 {
		port = 5432
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		c.Host, port, c.User, c.Password, c.Name)
}

// connDialect maps the driver name an embedding caller declares for an
// injected connection. Unrecognized or empty names default to SQLite.
func connDialect(driver string) dialect {
	if driver == "pgx" || driver == "postgres" {
		return dialectPostgres
	}
	return dialectSQLite
}

// ping verifies the connection under the connect timeout. A slow or
// unreachable server reports ErrBackendUnavailable instead of hanging.
func (s *Store) ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", types.ErrBackendUnavailable, err)
	}
	return nil
}

// rebind converts '?' placeholders to the engine's style. SQLite queries
// pass through unchanged; Postgres gets $1..$n.
func (s *Store) rebind(query string) string {
	if s.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isConstraintErr reports whether err is a uniqueness violation from either
// engine.
func isConstraintErr(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Close releases the connection if this store opened it. Injected
// connections stay open for their owner. Close is idempotent.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.owned || s.db == nil {
		return nil
	}
	return s.db.Close()
}
