package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"eventdeck/internal/modules/matches/domain"
	matchesout "eventdeck/internal/modules/matches/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

var _ matchesout.Store = (*SQLiteStore)(nil)

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS matches (
  event_id TEXT PRIMARY KEY,
  id TEXT NOT NULL,
  status TEXT NOT NULL,
  matched_at TEXT NOT NULL,
  confirmed_at TEXT
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create matches table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Find(ctx context.Context, eventID string) (domain.Match, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT event_id, id, status, matched_at, confirmed_at FROM matches WHERE event_id = ?`, eventID)
	m, err := scanMatch(row)
	if err == sql.ErrNoRows {
		return domain.Match{}, false, nil
	}
	if err != nil {
		return domain.Match{}, false, fmt.Errorf("find match: %w", err)
	}
	return m, true, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, m domain.Match) (bool, error) {
	const stmt = `
INSERT INTO matches (event_id, id, status, matched_at, confirmed_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(event_id) DO NOTHING;
`
	res, err := s.db.ExecContext(ctx, stmt, m.EventID, m.ID, string(m.Status), formatTime(m.MatchedAt), nullableTime(m.ConfirmedAt))
	if err != nil {
		return false, fmt.Errorf("insert match: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert match: %w", err)
	}
	return n > 0, nil
}

func (s *SQLiteStore) Update(ctx context.Context, m domain.Match) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE matches SET status = ?, confirmed_at = ? WHERE event_id = ?`,
		string(m.Status), nullableTime(m.ConfirmedAt), m.EventID,
	)
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, eventID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM matches WHERE event_id = ?`, eventID)
	if err != nil {
		return false, fmt.Errorf("delete match: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete match: %w", err)
	}
	return n > 0, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]domain.Match, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT event_id, id, status, matched_at, confirmed_at FROM matches ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (domain.Match, error) {
	var (
		m           domain.Match
		status      string
		matchedAt   string
		confirmedAt sql.NullString
	)
	if err := row.Scan(&m.EventID, &m.ID, &status, &matchedAt, &confirmedAt); err != nil {
		return domain.Match{}, err
	}
	m.Status = domain.Status(status)
	t, err := time.Parse(time.RFC3339Nano, matchedAt)
	if err != nil {
		return domain.Match{}, fmt.Errorf("decode matched_at: %w", err)
	}
	m.MatchedAt = t
	if confirmedAt.Valid && confirmedAt.String != "" {
		t, err := time.Parse(time.RFC3339Nano, confirmedAt.String)
		if err != nil {
			return domain.Match{}, fmt.Errorf("decode confirmed_at: %w", err)
		}
		m.ConfirmedAt = t
	}
	return m, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return formatTime(t)
}
