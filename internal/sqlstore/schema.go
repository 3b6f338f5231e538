package sqlstore

// Schema DDL. The games table is keyed by (season, game_number) so the
// engine itself rejects duplicates; migrated_seasons records which seasons
// have completed the one-time JSON import. Both statements are portable
// across SQLite and Postgres and are no-ops when the tables already exist.
const (
	createGames = `CREATE TABLE IF NOT EXISTS games (
    season TEXT NOT NULL,
    game_number TEXT NOT NULL,
    game_id TEXT NOT NULL,
    date TEXT,
    location TEXT,
    transport DOUBLE PRECISION NOT NULL DEFAULT 0,
    food DOUBLE PRECISION NOT NULL DEFAULT 0,
    match_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
    paid_status TEXT NOT NULL DEFAULT 'unpaid',
    amount_paid DOUBLE PRECISION NOT NULL DEFAULT 0,
    notes TEXT,
    PRIMARY KEY (season, game_number)
);`

	createMigratedSeasons = `CREATE TABLE IF NOT EXISTS migrated_seasons (
    season TEXT PRIMARY KEY,
    migrated_at TEXT NOT NULL
);`
)

// ensureSchema creates the tables if the store is fresh. Safe to run on
// every open.
func (s *Store) ensureSchema() error {
	for _, stmt := range []string{createGames, createMigratedSeasons} {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
