// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package settings holds device display preferences.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/storage"
)

const DensityKey = "uiDensity"

type Settings struct {
	mu      sync.Mutex
	storage storage.Storage
	logger  *slog.Logger
	density models.UIDensity
}

// Open reads the stored preferences. Missing or invalid values fall back
// to the defaults; a read failure is returned.
func Open(ctx context.Context, s storage.Storage, logger *slog.Logger) (*Settings, error) {
	if logger == nil {
		logger = slog.Default()
	}
	st := &Settings{storage: s, logger: logger, density: models.DensityNormal}

	var d models.UIDensity
	ok, err := storage.LoadJSON(ctx, s, DensityKey, &d)
	switch {
	case errors.Is(err, storage.ErrCorrupt):
		logger.Error("Discarding unreadable density preference", "error", err)
	case err != nil:
		return nil, fmt.Errorf("failed to load density preference: %w", err)
	case ok && d.Valid():
		st.density = d
	}
	return st, nil
}

func (s *Settings) Density() models.UIDensity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.density
}

// SetDensity changes the density. Write errors are logged; the new value
// still applies for the session.
func (s *Settings) SetDensity(ctx context.Context, d models.UIDensity) error {
	if !d.Valid() {
		return models.NewValidationError("density", "Density must be normal or compact.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.density = d
	if err := storage.SaveJSON(ctx, s.storage, DensityKey, d); err != nil {
		s.logger.Error("Failed to save density preference", "error", err)
	}
	return nil
}
