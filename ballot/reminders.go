// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"context"

	"github.com/danielhkuo/myballot/models"
)

// SetElectionReminder stores settings as the reminder for date, replacing
// any previous one. A nil settings deletes the reminder.
func (s *Store) SetElectionReminder(ctx context.Context, date string, settings *models.ReminderSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if settings != nil {
		r := *settings
		r.NotificationMethods = append([]models.NotificationMethod(nil), settings.NotificationMethods...)
		s.reminders[date] = r
		s.saveReminders(ctx)
		return
	}

	if _, ok := s.reminders[date]; !ok {
		return
	}
	delete(s.reminders, date)
	s.saveReminders(ctx)

	// The reminder was the only thing keeping an empty list alive
	if entries, ok := s.archive[date]; ok && len(entries) == 0 {
		delete(s.archive, date)
		s.saveArchive(ctx)
	}
	if s.selected == date && len(s.archive[date]) == 0 {
		s.selected, _ = s.defaultDate()
	}
}

// ElectionReminder returns the reminder for date, if one is set
func (s *Store) ElectionReminder(date string) (models.ReminderSettings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reminders[date]
	return r, ok
}

// Reminders returns every stored reminder keyed by election date
func (s *Store) Reminders() models.ReminderArchive {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(models.ReminderArchive, len(s.reminders))
	for date, r := range s.reminders {
		out[date] = r
	}
	return out
}
