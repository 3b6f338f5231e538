// Package jsonstore persists games to per-season JSON files plus a combined
// snapshot. The file layer is a faithful mirror of whatever it is given; it
// never deduplicates. Key uniqueness in JSON-only mode is enforced by Store.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

// SnapshotFile is the combined export regenerated after every mutation.
// It aggregates all seasons for external inspection and is never read back.
const SnapshotFile = "all_games.json"

const (
	seasonFilePrefix = "games_"
	seasonFileSuffix = ".json"
)

// Files reads and writes the JSON files under a data directory.
type Files struct {
	dir string
}

// NewFiles creates the data directory if needed and returns a file accessor
// for it.
func NewFiles(dir string) (*Files, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Files{dir: dir}, nil
}

// Dir returns the data directory.
func (f *Files) Dir() string { return f.dir }

// SeasonPath returns the file path for a season. Slashes in the season name
// map to dashes so "2024/2025" stores as games_2024-2025.json.
func (f *Files) SeasonPath(season string) string {
	name := seasonFilePrefix + strings.ReplaceAll(season, "/", "-") + seasonFileSuffix
	return filepath.Join(f.dir, name)
}

// Load reads a season file. A missing file loads as an empty season.
func (f *Files) Load(season string) ([]types.Game, error) {
	data, err := os.ReadFile(f.SeasonPath(season))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read season %s: %w", season, err)
	}
	var games []types.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("parse season %s: %w", season, err)
	}
	return games, nil
}

// Save overwrites a season file atomically: the new content is written to a
// temp file in the same directory, fsynced, then renamed over the target.
// A crash mid-write leaves the previous file intact.
func (f *Files) Save(season string, games []types.Game) error {
	if games == nil {
		games = []types.Game{}
	}
	return f.writeFile(f.SeasonPath(season), games)
}

// Seasons returns the seasons that have a file on disk, derived from the
// file names (dashes map back to slashes).
func (f *Files) Seasons() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("scan data dir: %w", err)
	}
	var seasons []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, seasonFilePrefix) || !strings.HasSuffix(name, seasonFileSuffix) {
			continue
		}
		raw := strings.TrimSuffix(strings.TrimPrefix(name, seasonFilePrefix), seasonFileSuffix)
		seasons = append(seasons, strings.ReplaceAll(raw, "-", "/"))
	}
	sort.Strings(seasons)
	return seasons, nil
}

// LoadAll reads every season file and returns the concatenated games.
func (f *Files) LoadAll() ([]types.Game, error) {
	seasons, err := f.Seasons()
	if err != nil {
		return nil, err
	}
	var all []types.Game
	for _, season := range seasons {
		games, err := f.Load(season)
		if err != nil {
			return nil, err
		}
		all = append(all, games...)
	}
	return all, nil
}

// WriteSnapshot regenerates all_games.json from the given games. Output is
// sorted by season then game number so successive snapshots diff cleanly.
func (f *Files) WriteSnapshot(games []types.Game) error {
	if games == nil {
		games = []types.Game{}
	}
	sorted := make([]types.Game, len(games))
	copy(sorted, games)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Season != sorted[j].Season {
			return sorted[i].Season < sorted[j].Season
		}
		return sorted[i].Number < sorted[j].Number
	})
	return f.writeFile(filepath.Join(f.dir, SnapshotFile), sorted)
}

// writeFile marshals games and atomically replaces path with the result
// using the temp-file, fsync, rename pattern.
func (f *Files) writeFile(path string, games []types.Game) error {
	data, err := json.MarshalIndent(games, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal games: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(f.dir, ".games-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing games: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
