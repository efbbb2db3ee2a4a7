// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/myballot/catalog"
	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/storage"
)

// Persistence keys
const (
	ArchiveKey   = "brVotesBallotArchive"
	RemindersKey = "brVotesRemindersArchive"
)

// Catalog supplies the election dates known from reference data.
// *catalog.Catalog satisfies it.
type Catalog interface {
	ElectionDates() []string
}

type Options struct {
	Storage storage.Storage
	Catalog Catalog
	// Clock and Location decide "today". Defaults: real clock, time.Local.
	Clock    clockwork.Clock
	Location *time.Location
	Logger   *slog.Logger
}

// Store holds one device's ballot archive and reminders. Memory is
// authoritative; every mutation is written through to storage, and
// write failures are logged and otherwise ignored.
type Store struct {
	mu sync.Mutex

	storage storage.Storage
	catalog Catalog
	clock   clockwork.Clock
	loc     *time.Location
	logger  *slog.Logger

	archive   models.BallotArchive
	reminders models.ReminderArchive
	selected  string // "" when no election is active
}

// New loads both archives from storage and picks the default election.
// A stored value that fails to decode is logged and treated as empty. A
// read failure is returned so the caller can retry instead of writing
// an empty archive over the stored one.
func New(ctx context.Context, opts Options) (*Store, error) {
	s := &Store{
		storage:   opts.Storage,
		catalog:   opts.Catalog,
		clock:     opts.Clock,
		loc:       opts.Location,
		logger:    opts.Logger,
		archive:   make(models.BallotArchive),
		reminders: make(models.ReminderArchive),
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	if _, err := storage.LoadJSON(ctx, s.storage, ArchiveKey, &s.archive); err != nil {
		if !errors.Is(err, storage.ErrCorrupt) {
			return nil, fmt.Errorf("failed to load ballot archive: %w", err)
		}
		s.logger.Error("Discarding unreadable ballot archive", "error", err)
		s.archive = make(models.BallotArchive)
	}
	if _, err := storage.LoadJSON(ctx, s.storage, RemindersKey, &s.reminders); err != nil {
		if !errors.Is(err, storage.ErrCorrupt) {
			return nil, fmt.Errorf("failed to load reminders archive: %w", err)
		}
		s.logger.Error("Discarding unreadable reminders archive", "error", err)
		s.reminders = make(models.ReminderArchive)
	}
	// A stored JSON null decodes to a nil map
	if s.archive == nil {
		s.archive = make(models.BallotArchive)
	}
	if s.reminders == nil {
		s.reminders = make(models.ReminderArchive)
	}

	s.selected, _ = s.defaultDate()
	return s, nil
}

func (s *Store) today() string {
	return s.clock.Now().In(s.loc).Format(time.DateOnly)
}

// AddCandidateSelection selects cand for its race on date, replacing any
// earlier pick for the same (office, district).
func (s *Store) AddCandidateSelection(ctx context.Context, cand models.Candidate, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := models.CandidateSelection{
		CandidateID: cand.ID,
		OfficeID:    cand.OfficeID,
		District:    cand.District,
	}
	entries := slices.DeleteFunc(slices.Clone(s.archive[date]), func(e models.BallotEntry) bool {
		c, ok := e.(models.CandidateSelection)
		return ok && c.Race() == sel.Race()
	})
	s.archive[date] = append(entries, sel)
	s.saveArchive(ctx)
}

// RemoveCandidateSelection clears the pick for a race. No-op when the
// race has no selection.
func (s *Store) RemoveCandidateSelection(ctx context.Context, officeID int, district, date string) {
	race := models.Race{OfficeID: officeID, District: district}
	s.removeWhere(ctx, date, func(e models.BallotEntry) bool {
		c, ok := e.(models.CandidateSelection)
		return ok && c.Race() == race
	})
}

// IsCandidateSelected reports whether the candidate is picked on date
func (s *Store) IsCandidateSelected(candidateID int, date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.archive[date] {
		if c, ok := e.(models.CandidateSelection); ok && c.CandidateID == candidateID {
			return true
		}
	}
	return false
}

// SetMeasureStance records vote on a measure, replacing any earlier stance
func (s *Store) SetMeasureStance(ctx context.Context, measureID int, vote models.Vote, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := slices.DeleteFunc(slices.Clone(s.archive[date]), func(e models.BallotEntry) bool {
		m, ok := e.(models.MeasureStance)
		return ok && m.MeasureID == measureID
	})
	s.archive[date] = append(entries, models.MeasureStance{MeasureID: measureID, Vote: vote})
	s.saveArchive(ctx)
}

func (s *Store) RemoveMeasureStance(ctx context.Context, measureID int, date string) {
	s.removeWhere(ctx, date, func(e models.BallotEntry) bool {
		m, ok := e.(models.MeasureStance)
		return ok && m.MeasureID == measureID
	})
}

// SelectedMeasureStance returns the stance on a measure, if any
func (s *Store) SelectedMeasureStance(measureID int, date string) (models.Vote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.archive[date] {
		if m, ok := e.(models.MeasureStance); ok && m.MeasureID == measureID {
			return m.Vote, true
		}
	}
	return "", false
}

// removeWhere drops matching entries for date. A list left empty is
// removed entirely unless a reminder still references the date.
func (s *Store) removeWhere(ctx context.Context, date string, match func(models.BallotEntry) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.archive[date]
	if !ok {
		return
	}
	kept := slices.DeleteFunc(slices.Clone(entries), match)
	if len(kept) == len(entries) {
		return
	}

	if len(kept) == 0 {
		if _, hasReminder := s.reminders[date]; !hasReminder {
			delete(s.archive, date)
			s.saveArchive(ctx)
			return
		}
	}
	s.archive[date] = kept
	s.saveArchive(ctx)
}

// ClearBallotForElection drops every entry for date. When date was the
// active election a new default is chosen.
func (s *Store) ClearBallotForElection(ctx context.Context, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.archive[date]; ok {
		delete(s.archive, date)
		s.saveArchive(ctx)
	}
	if s.selected == date {
		s.selected, _ = s.defaultDate()
	}
}

// SetSelectedElectionDate makes date the active election. An empty date
// clears the selection. The date need not have any entries.
func (s *Store) SetSelectedElectionDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = date
}

func (s *Store) SelectedElectionDate() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.selected != ""
}

// CurrentElectionEntries returns the entries for the active election
func (s *Store) CurrentElectionEntries() models.BallotEntries {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == "" {
		return models.BallotEntries{}
	}
	return s.entries(s.selected)
}

// Entries returns a copy of the entries stored for date
func (s *Store) Entries(date string) models.BallotEntries {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries(date)
}

func (s *Store) entries(date string) models.BallotEntries {
	out := slices.Clone(s.archive[date])
	if out == nil {
		out = models.BallotEntries{}
	}
	return out
}

// ArchivedElectionDates lists dates holding entries or a reminder,
// upcoming first.
func (s *Store) ArchivedElectionDates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := make(map[string]struct{})
	for date, entries := range s.archive {
		if len(entries) > 0 {
			set[date] = struct{}{}
		}
	}
	for date := range s.reminders {
		set[date] = struct{}{}
	}

	dates := slices.Collect(maps.Keys(set))
	today := s.today()
	slices.SortFunc(dates, func(a, b string) int {
		return catalog.CompareElectionDates(a, b, today)
	})
	return dates
}

// Snapshot returns a deep copy of the whole archive
func (s *Store) Snapshot() models.BallotArchive {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(models.BallotArchive, len(s.archive))
	for date, entries := range s.archive {
		out[date] = slices.Clone(entries)
	}
	return out
}

// defaultDate applies the default-election rule to every known date.
// Caller holds s.mu.
func (s *Store) defaultDate() (string, bool) {
	var dates []string
	if s.catalog != nil {
		dates = append(dates, s.catalog.ElectionDates()...)
	}
	for date, entries := range s.archive {
		if len(entries) > 0 {
			dates = append(dates, date)
		}
	}
	for date := range s.reminders {
		dates = append(dates, date)
	}
	return DefaultElectionDate(dates, s.today())
}

// DefaultElectionDate returns the soonest date on or after today, or the
// most recent past date when none is upcoming. Duplicates are ignored.
func DefaultElectionDate(dates []string, today string) (string, bool) {
	if len(dates) == 0 {
		return "", false
	}
	return slices.MinFunc(dates, func(a, b string) int {
		return catalog.CompareElectionDates(a, b, today)
	}), true
}

func (s *Store) saveArchive(ctx context.Context) {
	if err := storage.SaveJSON(ctx, s.storage, ArchiveKey, s.archive); err != nil {
		s.logger.Error("Failed to save ballot archive", "error", err)
	}
}

func (s *Store) saveReminders(ctx context.Context) {
	if err := storage.SaveJSON(ctx, s.storage, RemindersKey, s.reminders); err != nil {
		s.logger.Error("Failed to save reminders archive", "error", err)
	}
}
