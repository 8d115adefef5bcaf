// Package store provides the durable backends for the watchlist document.
package store

import (
	"fmt"

	"github.com/mmcdole/reel/internal/config"
	"github.com/mmcdole/reel/internal/domain"
)

// New creates the backend selected by the storage configuration
func New(cfg config.StorageConfig) (domain.StateBackend, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	switch cfg.Backend {
	case config.BackendJSON, "":
		return NewJSONFile(cfg.Path), nil
	case config.BackendBolt:
		return NewBoltFile(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}
