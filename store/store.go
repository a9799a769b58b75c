package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("game not found")

// Repository records the games played on this machine.
type Repository struct {
	Db  *sql.DB
	now func() time.Time
}

// Open opens or creates the sqlite database at path. ":memory:" keeps the
// history for the life of the process.
func Open(path string) (*Repository, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("error creating data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// sqlite allows one writer; an in-memory database also exists per connection.
	db.SetMaxOpenConns(1)
	repo, err := NewRepository(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

func NewRepository(db *sql.DB) (*Repository, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS game (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			finished_at INTEGER,
			moves INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	return &Repository{Db: db, now: time.Now}, nil
}

func (repo *Repository) Close() error {
	return repo.Db.Close()
}

type Game struct {
	Id         ulid.ULID
	Seed       int64
	StartedAt  time.Time
	FinishedAt sql.NullTime
	Moves      int
	Won        bool
}

// AddGame records the start of a deal.
func (repo *Repository) AddGame(seed int64) (*Game, error) {
	g := &Game{Id: ulid.Make(), Seed: seed, StartedAt: repo.now().UTC()}
	err := repo.execWrap(
		"INSERT INTO game(id, seed, started_at) values(?, ?, ?)",
		g.Id.String(), seed, g.StartedAt.UnixMilli(),
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// FinishGame closes a running game. A game can only be finished once.
func (repo *Repository) FinishGame(id ulid.ULID, moves int, won bool) error {
	res, err := repo.Db.Exec(
		"UPDATE game SET finished_at = ?, moves = ?, won = ? WHERE id = ? AND finished_at IS NULL",
		repo.now().UTC().UnixMilli(), moves, won, id.String(),
	)
	if err != nil {
		return fmt.Errorf("error in db execution: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

const gameColumns = "id, seed, started_at, finished_at, moves, won"

func (repo *Repository) FindGame(id ulid.ULID) (*Game, error) {
	row := repo.Db.QueryRow("SELECT "+gameColumns+" FROM game WHERE id = ? LIMIT 1", id.String())
	g, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return g, err
}

// RecentGames lists up to limit games, newest first.
func (repo *Repository) RecentGames(limit int) ([]*Game, error) {
	rows, err := repo.Db.Query("SELECT "+gameColumns+" FROM game ORDER BY started_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	defer rows.Close()

	var games []*Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	return games, nil
}

type Stats struct {
	Played    int
	Won       int
	BestMoves int
}

// Stats summarizes finished games. BestMoves is the fewest moves of any won
// game, zero when none was won.
func (repo *Repository) Stats() (Stats, error) {
	var (
		s    Stats
		best sql.NullInt64
	)
	row := repo.Db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(won), 0), MIN(CASE WHEN won THEN moves END)
		FROM game WHERE finished_at IS NOT NULL
	`)
	if err := row.Scan(&s.Played, &s.Won, &best); err != nil {
		return Stats{}, fmt.Errorf("error in db execution: %w", err)
	}
	s.BestMoves = int(best.Int64)
	return s, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (*Game, error) {
	var (
		g        Game
		id       string
		started  int64
		finished sql.NullInt64
	)
	if err := row.Scan(&id, &g.Seed, &started, &finished, &g.Moves, &g.Won); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	parsed, err := ulid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("bad game id %q: %w", id, err)
	}
	g.Id = parsed
	g.StartedAt = time.UnixMilli(started).UTC()
	if finished.Valid {
		g.FinishedAt = sql.NullTime{Time: time.UnixMilli(finished.Int64).UTC(), Valid: true}
	}
	return &g, nil
}

func (repo *Repository) execWrap(query string, args ...any) error {
	if _, err := repo.Db.Exec(query, args...); err != nil {
		return fmt.Errorf("error in db execution: %w", err)
	}
	return nil
}
