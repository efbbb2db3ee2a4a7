// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package device

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/myballot/ballot"
	"github.com/danielhkuo/myballot/catalog"
	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/notes"
	"github.com/danielhkuo/myballot/profile"
	"github.com/danielhkuo/myballot/settings"
	"github.com/danielhkuo/myballot/storage"
)

// Session bundles one device's stores. Build it through Registry.Session.
type Session struct {
	ID string

	Ballot   *ballot.Store
	Settings *settings.Settings
	Profile  *profile.Service

	mu      sync.Mutex
	storage storage.Storage
	catalog *catalog.Catalog
	clock   clockwork.Clock
	logger  *slog.Logger
	flows   *flowCache

	notebookMu sync.Mutex
	notebooks  map[int]*notes.Notebook
}

// Notebook returns the candidate's notes, loading them on first use. A
// notebook whose load fails is not kept.
func (s *Session) Notebook(ctx context.Context, candidateID int) (*notes.Notebook, error) {
	s.notebookMu.Lock()
	defer s.notebookMu.Unlock()

	if nb, ok := s.notebooks[candidateID]; ok {
		return nb, nil
	}
	nb, err := notes.Open(context.WithoutCancel(ctx), s.storage, candidateID, s.clock, s.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	s.notebooks[candidateID] = nb
	return nb, nil
}

// Notes returns a candidate's notes, newest first
func (s *Session) Notes(ctx context.Context, candidateID int) ([]models.NoteEntry, error) {
	nb, err := s.Notebook(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return nb.Notes(), nil
}

// NotesSummary lists every candidate with notes on this device
func (s *Session) NotesSummary(ctx context.Context) ([]models.NoteSummaryItem, error) {
	return notes.Summarize(ctx, s.storage, s.catalog)
}
