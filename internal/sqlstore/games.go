package sqlstore

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

// gameColumns is the column list shared by every SELECT; scanGame must
// match its order.
const gameColumns = "game_id, season, game_number, date, location, transport, food, match_fee, paid_status, amount_paid, notes"

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (types.Game, error) {
	var g types.Game
	var date, location, notes sql.NullString
	err := row.Scan(&g.GameID, &g.Season, &g.Number, &date, &location,
		&g.Payments.Transport, &g.Payments.Food, &g.Payments.MatchFee,
		&g.PaidStatus, &g.AmountPaid, &notes)
	if err != nil {
		return types.Game{}, err
	}
	g.Date = date.String
	g.Location = location.String
	g.Notes = notes.String
	return g, nil
}

func (s *Store) queryGames(query string, args ...any) ([]types.Game, error) {
	rows, err := s.db.Query(s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	var games []types.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading games: %w", err)
	}
	return games, nil
}

func (s *Store) List(season string) ([]types.Game, error) {
	if s.closed {
		return nil, types.ErrClosed
	}
	if season == "" {
		return s.queryGames("SELECT " + gameColumns + " FROM games")
	}
	return s.queryGames("SELECT "+gameColumns+" FROM games WHERE season = ?", season)
}

func (s *Store) Get(season, number string) (types.Game, error) {
	if s.closed {
		return types.Game{}, types.ErrClosed
	}
	row := s.db.QueryRow(
		s.rebind("SELECT "+gameColumns+" FROM games WHERE season = ? AND game_number = ?"),
		season, number,
	)
	g, err := scanGame(row)
	if err == sql.ErrNoRows {
		return types.Game{}, types.ErrNotFound
	}
	if err != nil {
		return types.Game{}, fmt.Errorf("getting game %s/%s: %w", season, number, err)
	}
	return g, nil
}

// Upsert inserts the game or, when the (season, game_number) key already
// exists, updates the row in place. The existing game_id survives updates.
func (s *Store) Upsert(game types.Game) error {
	if s.closed {
		return types.ErrClosed
	}
	if game.GameID == "" {
		game.GameID = newGameID()
	}
	_, err := s.db.Exec(s.rebind(`INSERT INTO games
    (game_id, season, game_number, date, location, transport, food, match_fee, paid_status, amount_paid, notes)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    ON CONFLICT (season, game_number) DO UPDATE SET
        date = excluded.date,
        location = excluded.location,
        transport = excluded.transport,
        food = excluded.food,
        match_fee = excluded.match_fee,
        paid_status = excluded.paid_status,
        amount_paid = excluded.amount_paid,
        notes = excluded.notes`),
		game.GameID, game.Season, game.Number, game.Date, game.Location,
		game.Payments.Transport, game.Payments.Food, game.Payments.MatchFee,
		paidStatusOrDefault(game.PaidStatus), game.AmountPaid, game.Notes,
	)
	if err != nil {
		if isConstraintErr(err) {
			// The conflict target should have absorbed any duplicate key;
			// reaching here means a constraint tripped on another path.
			return fmt.Errorf("%w: %v", types.ErrConflict, err)
		}
		return fmt.Errorf("upserting game %s/%s: %w", game.Season, game.Number, err)
	}
	return nil
}

func (s *Store) Delete(season, number string) error {
	if s.closed {
		return types.ErrClosed
	}
	res, err := s.db.Exec(
		s.rebind("DELETE FROM games WHERE season = ? AND game_number = ?"),
		season, number,
	)
	if err != nil {
		return fmt.Errorf("deleting game %s/%s: %w", season, number, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting game %s/%s: %w", season, number, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (s *Store) Seasons() ([]string, error) {
	if s.closed {
		return nil, types.ErrClosed
	}
	rows, err := s.db.Query("SELECT DISTINCT season FROM games ORDER BY season")
	if err != nil {
		return nil, fmt.Errorf("querying seasons: %w", err)
	}
	defer rows.Close()

	var seasons []string
	for rows.Next() {
		var season string
		if err := rows.Scan(&season); err != nil {
			return nil, fmt.Errorf("scanning season: %w", err)
		}
		seasons = append(seasons, season)
	}
	return seasons, rows.Err()
}

func (s *Store) Search(season, query string) ([]types.Game, error) {
	if s.closed {
		return nil, types.ErrClosed
	}
	like := "%" + strings.ToLower(query) + "%"
	return s.queryGames(`SELECT `+gameColumns+` FROM games WHERE season = ?
        AND (LOWER(game_number) LIKE ? OR LOWER(location) LIKE ? OR LOWER(date) LIKE ?)`,
		season, like, like, like)
}

func paidStatusOrDefault(status string) string {
	if status == "" {
		return types.PaidStatusUnpaid
	}
	return status
}

// newGameID generates a UUID v7 for new rows, falling back to v4 if v7
// generation fails.
func newGameID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
