// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/storage"
)

// KeyPrefix starts every notes key; the candidate ID follows it
const KeyPrefix = "notes_"

// Key returns the storage key for a candidate's notes
func Key(candidateID int) string {
	return KeyPrefix + strconv.Itoa(candidateID)
}

// Notebook holds the private notes for one candidate, newest first
type Notebook struct {
	mu sync.Mutex

	storage     storage.Storage
	candidateID int
	clock       clockwork.Clock
	logger      *slog.Logger
	notes       []models.NoteEntry
}

// Open loads a candidate's notes. Notes that fail to decode are logged
// and the notebook starts empty; a read failure is returned.
func Open(ctx context.Context, s storage.Storage, candidateID int, clock clockwork.Clock, logger *slog.Logger) (*Notebook, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}

	n := &Notebook{
		storage:     s,
		candidateID: candidateID,
		clock:       clock,
		logger:      logger.With("candidate_id", candidateID),
	}
	if _, err := storage.LoadJSON(ctx, s, Key(candidateID), &n.notes); err != nil {
		if !errors.Is(err, storage.ErrCorrupt) {
			return nil, fmt.Errorf("failed to load notes for candidate %d: %w", candidateID, err)
		}
		n.logger.Error("Discarding unreadable notes", "error", err)
		n.notes = nil
	}
	sortNewestFirst(n.notes)
	return n, nil
}

// Add stores a new note. Blank text is ignored and reported as false.
func (n *Notebook) Add(ctx context.Context, text string) (models.NoteEntry, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.NoteEntry{}, false
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	note := models.NoteEntry{
		ID:   uuid.NewString(),
		Date: n.clock.Now().UTC(),
		Text: text,
	}
	n.notes = append([]models.NoteEntry{note}, n.notes...)
	sortNewestFirst(n.notes)
	n.save(ctx)
	return note, true
}

// Update replaces a note's text and refreshes its date. Blank text
// deletes the note instead. Reports false when id is unknown.
func (n *Notebook) Update(ctx context.Context, id, text string) (models.NoteEntry, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		n.Delete(ctx, id)
		return models.NoteEntry{}, false
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	i := slices.IndexFunc(n.notes, func(e models.NoteEntry) bool { return e.ID == id })
	if i < 0 {
		return models.NoteEntry{}, false
	}
	n.notes[i].Text = text
	n.notes[i].Date = n.clock.Now().UTC()
	updated := n.notes[i]

	sortNewestFirst(n.notes)
	n.save(ctx)
	return updated, true
}

// Delete removes a note. Unknown ids are ignored.
func (n *Notebook) Delete(ctx context.Context, id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	before := len(n.notes)
	n.notes = slices.DeleteFunc(n.notes, func(e models.NoteEntry) bool { return e.ID == id })
	if len(n.notes) == before {
		return false
	}
	n.save(ctx)
	return true
}

// Latest returns the most recent note
func (n *Notebook) Latest() (models.NoteEntry, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.notes) == 0 {
		return models.NoteEntry{}, false
	}
	return n.notes[0], true
}

// Notes returns a copy of every note, newest first
func (n *Notebook) Notes() []models.NoteEntry {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := slices.Clone(n.notes)
	if out == nil {
		out = []models.NoteEntry{}
	}
	return out
}

func (n *Notebook) save(ctx context.Context) {
	notes := n.notes
	if notes == nil {
		notes = []models.NoteEntry{}
	}
	if err := storage.SaveJSON(ctx, n.storage, Key(n.candidateID), notes); err != nil {
		n.logger.Error("Failed to save notes", "error", err)
	}
}

func sortNewestFirst(notes []models.NoteEntry) {
	slices.SortStableFunc(notes, func(a, b models.NoteEntry) int {
		return b.Date.Compare(a.Date)
	})
}
