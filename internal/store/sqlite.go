package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/sells-group/intake-cli/internal/model"
)

// SQLiteStore keeps client records in a single sqlite database. The full
// record is stored as a JSON blob alongside indexed name/timestamp columns
// so the list query never has to unmarshal records.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	// modernc.org/sqlite serializes at the driver level; a single
	// connection avoids SQLITE_BUSY under concurrent writers.
	db.SetMaxOpenConns(1)
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS clients (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			record     TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return eris.Wrap(s.db.Close(), "sqlite: close")
}

func (s *SQLiteStore) ListClients(ctx context.Context) ([]model.IndexEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM clients ORDER BY created_at DESC, id DESC`)
	if err != nil {
		zap.L().Warn("sqlite: list query failed, returning empty list", zap.Error(err))
		return []model.IndexEntry{}, nil
	}
	defer rows.Close()

	entries := []model.IndexEntry{}
	for rows.Next() {
		var e model.IndexEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan client row")
		}
		entries = append(entries, e)
	}
	return entries, eris.Wrap(rows.Err(), "sqlite: iterate clients")
}

func (s *SQLiteStore) CreateClient(ctx context.Context, name string) (string, *model.ClientRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, &ValidationError{Msg: "client name is required"}
	}

	id := model.NewClientID()
	rec := model.NewClientRecord(name)
	data, err := json.Marshal(rec)
	if err != nil {
		return "", nil, eris.Wrap(err, "sqlite: marshal record")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO clients (id, name, record, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, rec.ClientName, string(data), rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return "", nil, eris.Wrap(err, "sqlite: insert client")
	}
	return id, rec, nil
}

func (s *SQLiteStore) GetClient(ctx context.Context, id string) (*model.ClientRecord, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	var data string
	err := s.db.QueryRowContext(ctx, `SELECT record FROM clients WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get client %s", id)
	}

	var rec model.ClientRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, eris.Wrapf(err, "sqlite: parse client %s", id)
	}
	if rec.Answers == nil {
		rec.Answers = map[string]model.Answer{}
	}
	return &rec, nil
}

func (s *SQLiteStore) UpdateClient(ctx context.Context, id string, rec *model.ClientRecord) (*model.ClientRecord, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	updated := *rec
	updated.UpdatedAt = model.NowMillis()
	if updated.Answers == nil {
		updated.Answers = map[string]model.Answer{}
	}
	data, err := json.Marshal(&updated)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal record")
	}

	// Upsert: an update for an unknown id creates the row.
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO clients (id, name, record, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			record = excluded.record,
			updated_at = excluded.updated_at`,
		id, updated.ClientName, string(data), updated.CreatedAt, updated.UpdatedAt)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: upsert client %s", id)
	}
	return &updated, nil
}

func (s *SQLiteStore) DeleteClient(ctx context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	return eris.Wrapf(err, "sqlite: delete client %s", id)
}
