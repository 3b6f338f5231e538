// Package backend selects the authoritative store at startup and presents
// the CRUD facade the presentation layer calls. The choice is made once in
// Open; every operation behaves identically regardless of which variant won,
// apart from where the bytes land.
package backend

import (
	"fmt"

	"github.com/mesh-intelligence/refbook/internal/jsonstore"
	"github.com/mesh-intelligence/refbook/internal/sqlstore"
	"github.com/mesh-intelligence/refbook/pkg/types"
)

// Backend names reported by Active.
const (
	BackendJSON = "json"
	BackendSQL  = "sql"
)

// Backend routes CRUD calls to the authoritative store and keeps the JSON
// mirror in sync after every mutation. In JSON-only mode the mirror write is
// the primary write.
type Backend struct {
	store   types.Store
	mirror  *jsonstore.Files
	active  string
	warning string
}

// Open builds the backend for the given configuration:
//
//   - A pre-built connection, explicit path/URL, or real credentials lead to
//     a database connection attempt. On success the one-time migration runs
//     and the SQL store becomes authoritative, with JSON as write-through
//     mirror.
//   - Placeholder-only credentials are treated as absent: no attempt, no
//     warning.
//   - A failed attempt for real configuration degrades to JSON-only mode
//     with a non-fatal warning, retrievable via Warning.
//
// Open never fails because of the database; the JSON store is the floor.
func Open(cfg types.Config) (*Backend, error) {
	jstore, err := jsonstore.NewStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	b := &Backend{
		store:  jstore,
		mirror: jstore.Files(),
		active: BackendJSON,
	}

	if cfg.WantsDatabase() {
		sqlStore, err := sqlstore.Open(cfg)
		if err != nil {
			b.warning = fmt.Sprintf("database unavailable, using JSON files: %v", err)
		} else if err := b.migrate(sqlStore); err != nil {
			sqlStore.Close()
			b.warning = fmt.Sprintf("database import failed, using JSON files: %v", err)
		} else {
			b.store = sqlStore
			b.active = BackendSQL
		}
	}

	// Make sure the combined export exists even when nothing was migrated.
	if err := b.refreshSnapshot(); err != nil {
		return nil, err
	}
	return b, nil
}

// Active reports which store is authoritative: BackendJSON or BackendSQL.
func (b *Backend) Active() string { return b.active }

// Warning returns the non-fatal startup warning, if any. The presentation
// layer shows it instead of an error dialog.
func (b *Backend) Warning() string { return b.warning }

// DataDir returns the directory holding the JSON files.
func (b *Backend) DataDir() string { return b.mirror.Dir() }

// ListGames returns the games for a season, or all games when season is empty.
func (b *Backend) ListGames(season string) ([]types.Game, error) {
	return b.store.List(season)
}

// GetGame returns the game for the given key, or types.ErrNotFound.
func (b *Backend) GetGame(season, number string) (types.Game, error) {
	return b.store.Get(season, number)
}

// AddGame validates and persists a game, then refreshes the mirror. Adding
// a key that already exists updates the existing record.
func (b *Backend) AddGame(game types.Game) error {
	if err := game.Validate(); err != nil {
		return err
	}
	if err := b.store.Upsert(game); err != nil {
		return err
	}
	return b.afterMutation(game.Season)
}

// UpdateGame replaces the record at (season, number) with the given fields.
// The key itself is immutable through this path; the stored game ID
// survives. Returns types.ErrNotFound if no such game exists.
func (b *Backend) UpdateGame(season, number string, game types.Game) error {
	game.Season = season
	game.Number = number
	if err := game.Validate(); err != nil {
		return err
	}
	existing, err := b.store.Get(season, number)
	if err != nil {
		return err
	}
	game.GameID = existing.GameID
	if err := b.store.Upsert(game); err != nil {
		return err
	}
	return b.afterMutation(season)
}

// DeleteGame removes the game for the given key and refreshes the mirror.
func (b *Backend) DeleteGame(season, number string) error {
	if err := b.store.Delete(season, number); err != nil {
		return err
	}
	return b.afterMutation(season)
}

// SearchGames returns the season's games matching the query by number,
// location, or date.
func (b *Backend) SearchGames(season, query string) ([]types.Game, error) {
	return b.store.Search(season, query)
}

// Seasons returns the distinct seasons in the authoritative store.
func (b *Backend) Seasons() ([]string, error) {
	return b.store.Seasons()
}

// Summary aggregates paid and outstanding totals for a season.
func (b *Backend) Summary(season string) (types.Summary, error) {
	games, err := b.store.List(season)
	if err != nil {
		return types.Summary{}, err
	}
	return types.Summarize(games), nil
}

// Close releases the authoritative store. Idempotent.
func (b *Backend) Close() error {
	return b.store.Close()
}

// afterMutation refreshes the JSON mirror for the mutated season and
// regenerates the combined snapshot. In JSON-only mode the season file is
// already current, so only the snapshot is rewritten. Mirror failures are
// recorded as a warning, not returned: the authoritative write has already
// committed.
func (b *Backend) afterMutation(season string) error {
	if b.active == BackendSQL {
		games, err := b.store.List(season)
		if err != nil {
			return err
		}
		if err := b.mirror.Save(season, games); err != nil {
			b.warning = fmt.Sprintf("mirror write failed: %v", err)
			return nil
		}
	}
	if err := b.refreshSnapshot(); err != nil {
		b.warning = fmt.Sprintf("snapshot write failed: %v", err)
	}
	return nil
}

// refreshSnapshot rewrites all_games.json from the authoritative store.
func (b *Backend) refreshSnapshot() error {
	all, err := b.store.List("")
	if err != nil {
		return err
	}
	return b.mirror.WriteSnapshot(all)
}
