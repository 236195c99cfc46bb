package store

import (
	"context"

	"github.com/rotisserie/eris"
)

// Open constructs the backend named by driver and runs its migration.
//
//	file     — JSON files under dsn (a directory)
//	sqlite   — sqlite database at dsn (a file path)
//	postgres — dsn is a pgx connection string
//	memory   — dsn ignored
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	var (
		s   Store
		err error
	)
	switch driver {
	case "file", "":
		s = NewFile(dsn)
	case "sqlite":
		s, err = NewSQLite(dsn)
	case "postgres":
		s, err = NewPostgres(ctx, dsn, nil)
	case "memory":
		s = NewMemory()
	default:
		return nil, eris.Errorf("store: unknown driver %q", driver)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}
