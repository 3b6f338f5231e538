// Shared helpers for refbook CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/refbook/internal/backend"
	"github.com/mesh-intelligence/refbook/internal/paths"
	"github.com/mesh-intelligence/refbook/pkg/types"
)

// openStore resolves configuration and opens the backend facade. A database
// that cannot be reached degrades to JSON-only mode; the warning is printed
// to stderr instead of failing the command.
func openStore() error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	// --db flag > REFBOOK_DB env > config file db key.
	dbPath := flagDB
	if dbPath == "" {
		dbPath = os.Getenv(EnvDB)
	}
	if dbPath == "" {
		dbPath = v.GetString(cfgKeyDB)
	}

	cfg := types.Config{
		DataDir: dataDir,
		DBPath:  dbPath,
		DB:      dbConfigFromViper(v),
	}

	store, err = backend.Open(cfg)
	if err != nil {
		return fmt.Errorf("open backend: %w", err)
	}
	if w := store.Warning(); w != "" {
		fmt.Fprintln(os.Stderr, "Warning:", w)
	}
	return nil
}

// closeStore releases the facade if one was opened.
func closeStore() error {
	if store != nil {
		return store.Close()
	}
	return nil
}

// printJSON writes v as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// truncate shortens s to at most max runes, ending a shortened string with
// an ellipsis. Counting runes rather than bytes keeps multibyte locations
// from being cut mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// printGameTable prints games in a human-readable table, sorted by season
// then game number. Sorting happens here: the stores return unspecified
// order and display is a presentation concern.
func printGameTable(games []types.Game) {
	if len(games) == 0 {
		fmt.Println("No games found.")
		return
	}

	sorted := make([]types.Game, len(games))
	copy(sorted, games)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Season != sorted[j].Season {
			return sorted[i].Season < sorted[j].Season
		}
		return sorted[i].Number < sorted[j].Number
	})

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "SEASON\tNO\tDATE\tLOCATION\tFEE\tPAID\tLEFT\tSTATUS")
	fmt.Fprintln(w, "------\t--\t----\t--------\t---\t----\t----\t------")
	for _, g := range sorted {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%s\n",
			g.Season, g.Number, g.Date, truncate(g.Location, 30),
			g.Total(), g.Paid(), g.Left(), g.PaidStatus)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d game(s)\n", len(sorted))
}
