package sqlstore

import (
	"database/sql"
	"path/filepath"
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

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.Config{DBPath: filepath.Join(t.TempDir(), "games.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenWithoutConfiguration(t *testing.T) {
	_, err := Open(types.Config{})
	assert.ErrorIs(t, err, types.ErrBackendUnavailable)
}

func TestOpenUnusablePath(t *testing.T) {
	// A directory is not a database file; the connection probe must fail
	// with the backend-unavailable sentinel rather than panic or hang.
	_, err := Open(types.Config{DBPath: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendUnavailable)
}

func TestSchemaIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.db")

	s, err := Open(types.Config{DBPath: path})
	require.NoError(t, err)
	require.NoError(t, s.Upsert(testGame("2024/2025", "1")))
	require.NoError(t, s.Close())

	// Reopening an existing database must keep the data intact.
	s, err = Open(types.Config{DBPath: path})
	require.NoError(t, err)
	defer s.Close()

	games, err := s.List("2024/2025")
	require.NoError(t, err)
	assert.Len(t, games, 1)
}

func TestUpsertDeduplicates(t *testing.T) {
	s := setupStore(t)

	g := testGame("2024/2025", "1")
	require.NoError(t, s.Upsert(g))

	g.Payments.MatchFee = 60
	require.NoError(t, s.Upsert(g))
	require.NoError(t, s.Upsert(g))

	games, err := s.List("2024/2025")
	require.NoError(t, err)
	require.Len(t, games, 1, "repeated upserts of one key must keep one row")
	assert.InDelta(t, 60, games[0].Payments.MatchFee, 1e-9)
}

func TestUpsertKeepsGameID(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.Upsert(testGame("2024/2025", "1")))
	first, err := s.Get("2024/2025", "1")
	require.NoError(t, err)
	require.NotEmpty(t, first.GameID)

	updated := testGame("2024/2025", "1")
	updated.Location = "New Arena"
	require.NoError(t, s.Upsert(updated))

	second, err := s.Get("2024/2025", "1")
	require.NoError(t, err)
	assert.Equal(t, first.GameID, second.GameID, "game ID must survive updates")
	assert.Equal(t, "New Arena", second.Location)
}

func TestGetNotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.Get("2024/2025", "404")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.Upsert(testGame("2024/2025", "1")))
	require.NoError(t, s.Delete("2024/2025", "1"))

	_, err := s.Get("2024/2025", "1")
	assert.ErrorIs(t, err, types.ErrNotFound)

	assert.ErrorIs(t, s.Delete("2024/2025", "1"), types.ErrNotFound)
}

func TestListAndSeasons(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.Upsert(testGame("2023/2024", "9")))
	require.NoError(t, s.Upsert(testGame("2024/2025", "1")))
	require.NoError(t, s.Upsert(testGame("2024/2025", "2")))

	all, err := s.List("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	one, err := s.List("2024/2025")
	require.NoError(t, err)
	assert.Len(t, one, 2)

	seasons, err := s.Seasons()
	require.NoError(t, err)
	assert.Equal(t, []string{"2023/2024", "2024/2025"}, seasons)
}

func TestSearch(t *testing.T) {
	s := setupStore(t)

	home := testGame("2024/2025", "1")
	home.Location = "City Arena"
	away := testGame("2024/2025", "2")
	away.Location = "Riverside Park"
	require.NoError(t, s.Upsert(home))
	require.NoError(t, s.Upsert(away))

	hits, err := s.Search("2024/2025", "ARENA")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "1", hits[0].Number)

	hits, err = s.Search("2024/2025", "2025-03")
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestMigrationMarkers(t *testing.T) {
	s := setupStore(t)

	done, err := s.Migrated("2024/2025")
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, s.MarkMigrated("2024/2025"))
	require.NoError(t, s.MarkMigrated("2024/2025"), "marking twice must succeed")

	done, err = s.Migrated("2024/2025")
	require.NoError(t, err)
	assert.True(t, done)
}

func TestInjectedConnectionSkipsSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.db")

	// Prepare a database with the schema already in place, the situation an
	// embedding caller hands us.
	prep, err := Open(types.Config{DBPath: path})
	require.NoError(t, err)
	require.NoError(t, prep.Upsert(testGame("2024/2025", "1")))
	require.NoError(t, prep.Close())

	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer conn.Close()

	s, err := Open(types.Config{Conn: conn, ConnDriver: "sqlite"})
	require.NoError(t, err)

	games, err := s.List("2024/2025")
	require.NoError(t, err)
	assert.Len(t, games, 1)

	// Closing the store must not close the injected connection.
	require.NoError(t, s.Close())
	assert.NoError(t, conn.Ping())
}

func TestRebindPostgresPlaceholders(t *testing.T) {
	s := &Store{dialect: dialectPostgres}
	assert.Equal(t,
		"SELECT 1 FROM games WHERE season = $1 AND game_number = $2",
		s.rebind("SELECT 1 FROM games WHERE season = ? AND game_number = ?"))

	s.dialect = dialectSQLite
	assert.Equal(t,
		"SELECT 1 FROM games WHERE season = ?",
		s.rebind("SELECT 1 FROM games WHERE season = ?"))
}

func TestClosedStore(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "close must be idempotent")

	_, err := s.List("")
	assert.ErrorIs(t, err, types.ErrClosed)
	assert.ErrorIs(t, s.Upsert(testGame("2024/2025", "1")), types.ErrClosed)
}
