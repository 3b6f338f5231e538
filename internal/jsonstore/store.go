package jsonstore

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store implements the CRUD contract over the season files alone. It is the
// authoritative store when no database is configured. The file layer never
// deduplicates, so Store enforces the (season, game number) uniqueness key
// here by replacing the matching record on upsert.
type Store struct {
	files  *Files
	closed bool
}

// NewStore returns a JSON-only store over the given data directory.
func NewStore(dir string) (*Store, error) {
	files, err := NewFiles(dir)
	if err != nil {
		return nil, err
	}
	return &Store{files: files}, nil
}

// Files exposes the underlying file layer for mirroring and snapshots.
func (s *Store) Files() *Files { return s.files }

func (s *Store) List(season string) ([]types.Game, error) {
	if s.closed {
		return nil, types.ErrClosed
	}
	if season == "" {
		return s.files.LoadAll()
	}
	return s.files.Load(season)
}

func (s *Store) Get(season, number string) (types.Game, error) {
	if s.closed {
		return types.Game{}, types.ErrClosed
	}
	games, err := s.files.Load(season)
	if err != nil {
		return types.Game{}, err
	}
	for _, g := range games {
		if g.Number == number {
			return g, nil
		}
	}
	return types.Game{}, types.ErrNotFound
}

// Upsert replaces the record matching the game's key, or appends it. The
// existing game ID survives an update; a new record gets a fresh UUID v7.
func (s *Store) Upsert(game types.Game) error {
	if s.closed {
		return types.ErrClosed
	}
	games, err := s.files.Load(game.Season)
	if err != nil {
		return err
	}
	replaced := false
	for i, g := range games {
		if g.Number == game.Number {
			// The stored ID wins on update, matching the SQL store.
			if g.GameID != "" {
				game.GameID = g.GameID
			}
			games[i] = game
			replaced = true
			break
		}
	}
	if !replaced {
		if game.GameID == "" {
			game.GameID = newGameID()
		}
		games = append(games, game)
	}
	return s.files.Save(game.Season, games)
}

func (s *Store) Delete(season, number string) error {
	if s.closed {
		return types.ErrClosed
	}
	games, err := s.files.Load(season)
	if err != nil {
		return err
	}
	kept := games[:0]
	for _, g := range games {
		if g.Number != number {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(games) {
		return types.ErrNotFound
	}
	return s.files.Save(season, kept)
}

func (s *Store) Seasons() ([]string, error) {
	if s.closed {
		return nil, types.ErrClosed
	}
	return s.files.Seasons()
}

func (s *Store) Search(season, query string) ([]types.Game, error) {
	if s.closed {
		return nil, types.ErrClosed
	}
	games, err := s.files.Load(season)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var hits []types.Game
	for _, g := range games {
		if strings.Contains(strings.ToLower(g.Number), q) ||
			strings.Contains(strings.ToLower(g.Location), q) ||
			strings.Contains(strings.ToLower(g.Date), q) {
			hits = append(hits, g)
		}
	}
	return hits, nil
}

// Close is idempotent. After Close, operations return ErrClosed.
func (s *Store) Close() error {
	s.closed = true
	return nil
}

// newGameID generates a UUID v7 for new records, falling back to v4 if v7
// generation fails.
func newGameID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
