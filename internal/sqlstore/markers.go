package sqlstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

// Migration markers live next to the data they describe: a season row in
// migrated_seasons means that season's JSON file has been imported into
// this database and must never be read again.

// Migrated reports whether the season has completed the one-time import.
func (s *Store) Migrated(season string) (bool, error) {
	if s.closed {
		return false, types.ErrClosed
	}
	var one int
	err := s.db.QueryRow(
		s.rebind("SELECT 1 FROM migrated_seasons WHERE season = ?"), season,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking migration marker for %s: %w", season, err)
	}
	return true, nil
}

// MarkMigrated records the season as imported. Idempotent: marking an
// already-marked season keeps the original timestamp.
func (s *Store) MarkMigrated(season string) error {
	if s.closed {
		return types.ErrClosed
	}
	_, err := s.db.Exec(
		s.rebind("INSERT INTO migrated_seasons (season, migrated_at) VALUES (?, ?) ON CONFLICT (season) DO NOTHING"),
		season, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("marking season %s migrated: %w", season, err)
	}
	return nil
}
