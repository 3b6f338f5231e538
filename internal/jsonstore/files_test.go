package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

func testGame(season, number string) types.Game {
	return types.Game{
		Season:     season,
		Number:     number,
		Date:       "2025-03-14",
		Location:   "City Arena",
		Payments:   types.Payments{Transport: 10, Food: 5, MatchFee: 50},
		PaidStatus: types.PaidStatusUnpaid,
	}
}

func TestFilesSaveLoadRoundTrip(t *testing.T) {
	files, err := NewFiles(t.TempDir())
	require.NoError(t, err)

	games := []types.Game{testGame("2024/2025", "1"), testGame("2024/2025", "2")}
	require.NoError(t, files.Save("2024/2025", games))

	got, err := files.Load("2024/2025")
	require.NoError(t, err)
	assert.Equal(t, games, got)
}

func TestFilesLoadMissingSeason(t *testing.T) {
	files, err := NewFiles(t.TempDir())
	require.NoError(t, err)

	got, err := files.Load("1999/2000")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilesSeasonPathMapsSlashes(t *testing.T) {
	dir := t.TempDir()
	files, err := NewFiles(dir)
	require.NoError(t, err)

	path := files.SeasonPath("2024/2025")
	assert.Equal(t, filepath.Join(dir, "games_2024-2025.json"), path)

	require.NoError(t, files.Save("2024/2025", []types.Game{testGame("2024/2025", "1")}))
	seasons, err := files.Seasons()
	require.NoError(t, err)
	assert.Equal(t, []string{"2024/2025"}, seasons)
}

func TestFilesSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	files, err := NewFiles(dir)
	require.NoError(t, err)

	require.NoError(t, files.Save("2024/2025", []types.Game{testGame("2024/2025", "1")}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file left behind: %s", e.Name())
	}
}

func TestFilesSaveOverwrites(t *testing.T) {
	files, err := NewFiles(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, files.Save("2024/2025", []types.Game{testGame("2024/2025", "1"), testGame("2024/2025", "2")}))
	require.NoError(t, files.Save("2024/2025", []types.Game{testGame("2024/2025", "3")}))

	got, err := files.Load("2024/2025")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].Number)
}

func TestWriteSnapshotUnionOfSeasons(t *testing.T) {
	dir := t.TempDir()
	files, err := NewFiles(dir)
	require.NoError(t, err)

	require.NoError(t, files.Save("2023/2024", []types.Game{testGame("2023/2024", "9")}))
	require.NoError(t, files.Save("2024/2025", []types.Game{testGame("2024/2025", "2"), testGame("2024/2025", "1")}))

	all, err := files.LoadAll()
	require.NoError(t, err)
	require.NoError(t, files.WriteSnapshot(all))

	data, err := os.ReadFile(filepath.Join(dir, SnapshotFile))
	require.NoError(t, err)

	var snapshot []types.Game
	require.NoError(t, json.Unmarshal(data, &snapshot))
	require.Len(t, snapshot, 3)

	// Sorted by season, then number.
	assert.Equal(t, "2023/2024", snapshot[0].Season)
	assert.Equal(t, "1", snapshot[1].Number)
	assert.Equal(t, "2", snapshot[2].Number)
}

func TestWriteSnapshotEmptyIsArray(t *testing.T) {
	dir := t.TempDir()
	files, err := NewFiles(dir)
	require.NoError(t, err)

	require.NoError(t, files.WriteSnapshot(nil))

	data, err := os.ReadFile(filepath.Join(dir, SnapshotFile))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
