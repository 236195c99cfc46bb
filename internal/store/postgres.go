package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/intake-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the store needs. Keeping it an
// interface lets tests substitute a pgxmock pool.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// NewPostgresWithPool wraps an existing pool. Used by tests.
func NewPostgresWithPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS clients (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	record     JSONB NOT NULL,
	created_at BIGINT NOT NULL,
	updated_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_clients_created_at ON clients(created_at DESC);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) ListClients(ctx context.Context) ([]model.IndexEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM clients ORDER BY created_at DESC, id DESC`)
	if err != nil {
		zap.L().Warn("postgres: list query failed, returning empty list", zap.Error(err))
		return []model.IndexEntry{}, nil
	}
	defer rows.Close()

	entries := []model.IndexEntry{}
	for rows.Next() {
		var e model.IndexEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan client row")
		}
		entries = append(entries, e)
	}
	return entries, eris.Wrap(rows.Err(), "postgres: list clients iterate")
}

func (s *PostgresStore) CreateClient(ctx context.Context, name string) (string, *model.ClientRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, &ValidationError{Msg: "client name is required"}
	}

	id := model.NewClientID()
	rec := model.NewClientRecord(name)
	data, err := json.Marshal(rec)
	if err != nil {
		return "", nil, eris.Wrap(err, "postgres: marshal record")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO clients (id, name, record, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		id, rec.ClientName, data, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return "", nil, eris.Wrap(err, "postgres: insert client")
	}
	return id, rec, nil
}

func (s *PostgresStore) GetClient(ctx context.Context, id string) (*model.ClientRecord, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT record FROM clients WHERE id = $1`, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get client %s", id)
	}

	var rec model.ClientRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, eris.Wrapf(err, "postgres: parse client %s", id)
	}
	if rec.Answers == nil {
		rec.Answers = map[string]model.Answer{}
	}
	return &rec, nil
}

func (s *PostgresStore) UpdateClient(ctx context.Context, id string, rec *model.ClientRecord) (*model.ClientRecord, error) {
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
		return nil, eris.Wrap(err, "postgres: marshal record")
	}

	// Upsert: an update for an unknown id creates the row.
	_, err = s.pool.Exec(ctx, `
		INSERT INTO clients (id, name, record, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			record = EXCLUDED.record,
			updated_at = EXCLUDED.updated_at`,
		id, updated.ClientName, data, updated.CreatedAt, updated.UpdatedAt)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: upsert client %s", id)
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteClient(ctx context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	_, err := s.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	return eris.Wrapf(err, "postgres: delete client %s", id)
}
