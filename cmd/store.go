package main

import (
	"context"

	"github.com/sells-group/intake-cli/internal/store"
	"github.com/sells-group/intake-cli/pkg/intakeapi"
)

var serverURL string

// initStore opens the configured backend, or an API client when
// --server points at a running intake server.
func initStore(ctx context.Context) (store.Store, error) {
	if serverURL != "" {
		return intakeapi.New(serverURL), nil
	}
	return store.Open(ctx, cfg.Store.Driver, cfg.Store.DSN())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "intake API server URL (default: local store)")
}
