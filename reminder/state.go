// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reminder

import (
	"github.com/danielhkuo/myballot/models"
)

// State is a snapshot of a flow for presentation
type State struct {
	Step             Step                         `json:"step"`
	Title            string                       `json:"title"`
	Editing          bool                         `json:"editing"`
	Closed           bool                         `json:"closed"`
	ElectionDate     string                       `json:"electionDate"`
	DisplayName      string                       `json:"displayName"`
	EarlyVotingStart string                       `json:"evStart"`
	EarlyVotingEnd   string                       `json:"evEnd"`
	ReminderType     models.ReminderType          `json:"reminderType,omitempty"`
	Date             string                       `json:"date,omitempty"`
	Time             string                       `json:"time"`
	LocationID       string                       `json:"locationId,omitempty"`
	Preferences      Preferences                  `json:"preferences"`
	Locations        []models.EarlyVotingLocation `json:"locations,omitempty"`
	Existing         *models.ReminderSettings     `json:"existing,omitempty"`
	CalendarDetails  *CalendarDetails             `json:"calendarDetails,omitempty"`
	Message          string                       `json:"message,omitempty"`
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := State{
		Step:             f.step,
		Title:            f.title(),
		Editing:          f.editing(),
		Closed:           f.closed,
		ElectionDate:     f.election.ElectionDate,
		DisplayName:      f.displayName,
		EarlyVotingStart: f.election.EarlyVotingStart,
		EarlyVotingEnd:   f.election.EarlyVotingEnd,
		ReminderType:     f.reminderType,
		Date:             f.date,
		Time:             f.timeOfDay,
		LocationID:       f.locationID,
		Preferences:      f.prefs,
		Existing:         f.existing,
	}
	if f.step == StepLocationChoice {
		s.Locations = f.locations
	}
	if f.showCalendar {
		if d, err := f.calendarDetails(); err == nil {
			s.CalendarDetails = &d
		}
	}
	if f.step == StepConfirmation {
		if f.editing() {
			s.Message = "Reminder Updated!"
		} else {
			s.Message = "Reminder Set!"
		}
	}
	return s
}

func (f *Flow) title() string {
	if f.step == StepViewDetails {
		return "Reminder for " + f.displayName
	}
	if f.editing() {
		if f.step == StepConfirmation {
			return "Reminder Updated"
		}
		return "Edit Reminder: " + f.displayName
	}

	switch f.step {
	case StepPeriodChoice:
		return "Set Voting Reminder: " + f.displayName
	case StepDateTime:
		if f.reminderType == models.ReminderEarlyVote {
			return "Reminder for Early Voting"
		}
		return "Reminder for Election Day"
	case StepLocationChoice:
		return "Choose Early Voting Location"
	case StepNotifications:
		return "Notification Preferences"
	case StepConfirmation:
		return "Reminder Confirmed"
	default:
		return "Set Reminder"
	}
}
