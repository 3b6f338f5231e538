package backend

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/refbook/internal/sqlstore"
)

// migrate performs the one-time import of pre-existing season JSON files
// into a freshly available database. Each season is imported through upsert
// (records already present by key are updated, not duplicated) and then
// marked migrated; marked seasons are never read from JSON again, their
// files remaining on disk purely as offline backup.
//
// Running migrate twice is a no-op: the marker short-circuits each season
// and upsert makes a repeated import converge on the same rows.
func (b *Backend) migrate(store *sqlstore.Store) error {
	seasons, err := b.mirror.Seasons()
	if err != nil {
		return err
	}

	var skipped []string
	for _, fileSeason := range seasons {
		games, err := b.mirror.Load(fileSeason)
		if err != nil {
			return fmt.Errorf("reading season %s: %w", fileSeason, err)
		}

		// The season name derived from a file name is lossy: a literal '-'
		// is indistinguishable from an escaped '/'. The records inside the
		// file carry the real name, so the import is keyed on that; the
		// derived name is only a fallback for records without one.
		season := fileSeason
		for _, g := range games {
			if g.Season != "" {
				season = g.Season
				break
			}
		}

		done, err := store.Migrated(season)
		if err != nil {
			return err
		}
		if done {
			continue
		}

		seasonSkipped := false
		for _, g := range games {
			if g.Season == "" {
				g.Season = season
			}
			if err := g.Validate(); err != nil {
				// A malformed record must not block the season.
				skipped = append(skipped, fmt.Sprintf("%s/%s: %v", season, g.Number, err))
				seasonSkipped = true
				continue
			}
			if err := store.Upsert(g); err != nil {
				return fmt.Errorf("importing game %s/%s: %w", season, g.Number, err)
			}
		}
		if err := store.MarkMigrated(season); err != nil {
			return err
		}

		// Rewrite the season mirror from the database so the file reflects
		// the post-import state (dedup applied, game IDs assigned). When a
		// record was skipped the file is left untouched so the user can
		// repair it from the backup.
		if seasonSkipped {
			continue
		}
		imported, err := store.List(season)
		if err != nil {
			return err
		}
		if err := b.mirror.Save(season, imported); err != nil {
			return err
		}
	}

	if len(skipped) > 0 {
		b.warning = "skipped invalid records during import: " + strings.Join(skipped, "; ")
	}
	return nil
}
