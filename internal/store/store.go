// Package store persists client questionnaire records behind a single
// interface with swappable backends (file, sqlite, postgres, memory)
// selected by configuration.
package store

import (
	"context"
	"errors"
	"regexp"

	"github.com/sells-group/intake-cli/internal/model"
)

// ErrNotFound is returned when no client exists for an id.
var ErrNotFound = errors.New("client not found")

// ValidationError reports rejected input (blank client name, unsafe id).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// idPattern is the safe id alphabet. Ids address storage locations (file
// names, row keys), so anything outside it is rejected before use.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateID rejects ids containing characters outside the safe alphabet.
func ValidateID(id string) error {
	if id == "" || !idPattern.MatchString(id) {
		return &ValidationError{Msg: "invalid client id"}
	}
	return nil
}

// Store is the persistence contract for client records. Implementations
// keep the list index in sync with the per-client record on every write.
//
// ListClients degrades to an empty list on underlying read errors so a
// missing or corrupt index never takes down the client list. UpdateClient
// is a permissive upsert: it succeeds even when no index entry exists for
// the id. DeleteClient is idempotent.
type Store interface {
	ListClients(ctx context.Context) ([]model.IndexEntry, error)
	CreateClient(ctx context.Context, name string) (string, *model.ClientRecord, error)
	GetClient(ctx context.Context, id string) (*model.ClientRecord, error)
	UpdateClient(ctx context.Context, id string, rec *model.ClientRecord) (*model.ClientRecord, error)
	DeleteClient(ctx context.Context, id string) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
