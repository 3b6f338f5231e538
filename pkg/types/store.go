package types

// Store is the CRUD contract both storage variants implement. The backend
// selector holds exactly one Store behind this interface; callers never see
// which variant is active.
//
// Ordering of List and Search results is unspecified; sorting is a
// presentation concern.
type Store interface {
	// List returns the games for a season, or every game when season is
	// empty.
	List(season string) ([]Game, error)

	// Get returns the game for the given key, or ErrNotFound.
	Get(season, number string) (Game, error)

	// Upsert inserts or updates the game keyed by (Season, Number). Repeated
	// upserts of the same key leave exactly one record holding the most
	// recent values.
	Upsert(game Game) error

	// Delete removes the game for the given key. Deleting an absent key
	// returns ErrNotFound.
	Delete(season, number string) error

	// Seasons returns the distinct seasons present in the store.
	Seasons() ([]string, error)

	// Search returns the season's games whose number, location, or date
	// contains the query, case-insensitively.
	Search(season, query string) ([]Game, error)

	// Close releases store resources. Close is idempotent.
	Close() error
}
