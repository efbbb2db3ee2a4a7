// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/myballot/models"
)

var (
	central  = time.FixedZone("CDT", -5*3600)
	general  = models.ElectionEvent{ID: 1, Name: "2026 General", ElectionDate: "2026-11-06", EarlyVotingStart: "2026-10-23", EarlyVotingEnd: "2026-11-01"}
	cityHall = models.EarlyVotingLocation{ID: "ev1", Name: "City Hall", Address: "222 St. Louis St, Baton Rouge, LA 70802"}
	library  = models.EarlyVotingLocation{ID: "ev2", Name: "Main Library at Goodwood", Address: "7711 Goodwood Blvd, Baton Rouge, LA 70806"}
)

type recorder struct {
	calls []*models.ReminderSettings
}

func (r *recorder) save(_ context.Context, s *models.ReminderSettings) {
	r.calls = append(r.calls, s)
}

func newTestFlow(t *testing.T, existing *models.ReminderSettings) (*Flow, *recorder) {
	t.Helper()
	rec := &recorder{}
	f := NewFlow(FlowOptions{
		Election:    general,
		DisplayName: "Nov 6, 2026 General",
		Existing:    existing,
		Locations:   []models.EarlyVotingLocation{cityHall, library},
		Location:    central,
		Saver:       rec.save,
		Clock:       clockwork.NewFakeClockAt(time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)),
	})
	return f, rec
}

func TestElectionDayFlow(t *testing.T) {
	ctx := context.Background()
	f, rec := newTestFlow(t, nil)
	assert.Equal(t, StepPeriodChoice, f.State().Step)
	assert.Equal(t, DefaultTime, f.State().Time)

	require.NoError(t, f.ChoosePeriod(models.ReminderElectionDay))
	assert.Equal(t, "2026-11-06", f.State().Date)

	// The date is pinned to election day
	require.NoError(t, f.SetDateTime("2026-10-30", "07:30"))
	assert.Equal(t, StepNotifications, f.State().Step)

	require.NoError(t, f.SetNotifications(Preferences{NotifyByEmail: true, EmailAddress: "voter@example.com"}))
	settings, err := f.Finalize(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.ReminderSettings{
		ElectionDate:        "2026-11-06",
		ReminderType:        models.ReminderElectionDay,
		ReminderDateTime:    "2026-11-06T12:30:00.000Z",
		NotificationMethods: []models.NotificationMethod{models.NotifyEmail},
		EmailAddress:        "voter@example.com",
	}, settings)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, settings, *rec.calls[0])

	state := f.State()
	assert.Equal(t, StepConfirmation, state.Step)
	assert.Equal(t, "Reminder Set!", state.Message)
}

func TestEarlyVoteFlow(t *testing.T) {
	ctx := context.Background()
	f, rec := newTestFlow(t, nil)

	require.NoError(t, f.ChoosePeriod(models.ReminderEarlyVote))
	assert.Equal(t, "2026-10-23", f.State().Date)

	require.NoError(t, f.SetDateTime("2026-10-26", "09:00"))
	state := f.State()
	assert.Equal(t, StepLocationChoice, state.Step)
	assert.Len(t, state.Locations, 2)

	require.NoError(t, f.ChooseLocation("ev2"))
	require.NoError(t, f.SetNotifications(Preferences{
		NotifyByText:  true,
		PhoneNumber:   "2255550101",
		NotifyByEmail: false,
		EmailAddress:  "ignored@example.com",
	}))

	settings, err := f.Finalize(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-26T14:00:00.000Z", settings.ReminderDateTime)
	assert.Equal(t, []models.NotificationMethod{models.NotifyText}, settings.NotificationMethods)
	assert.Equal(t, "2255550101", settings.PhoneNumber)
	assert.Empty(t, settings.EmailAddress)
	assert.Equal(t, "Main Library at Goodwood", settings.EarlyVotingLocationName)
	assert.Equal(t, library.Address, settings.EarlyVotingLocationAddress)
	assert.Len(t, rec.calls, 1)
}

func TestNoChannelsFallsBackToApp(t *testing.T) {
	f, _ := newTestFlow(t, nil)
	require.NoError(t, f.ChoosePeriod(models.ReminderElectionDay))
	require.NoError(t, f.SetDateTime("", "09:00"))

	settings, err := f.Finalize(context.Background())
	require.NoError(t, err)
	assert.Empty(t, settings.NotificationMethods)
	assert.Equal(t, "App notification", settings.DeliverySummary())
}

func TestDateTimeValidation(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		hhmm  string
		field string
	}{
		{"missing time", "2026-10-26", "", "dateTime"},
		{"missing date", "", "09:00", "dateTime"},
		{"bad date", "10/26/2026", "09:00", "date"},
		{"before window", "2026-10-22", "09:00", "date"},
		{"after window", "2026-11-02", "09:00", "date"},
		{"bad time", "2026-10-26", "9am", "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newTestFlow(t, nil)
			require.NoError(t, f.ChoosePeriod(models.ReminderEarlyVote))

			err := f.SetDateTime(tt.date, tt.hhmm)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Equal(t, tt.field, verr.Errors[0].Field)
			assert.Equal(t, StepDateTime, f.State().Step, "flow must not advance")
		})
	}
}

func TestLocationRequired(t *testing.T) {
	f, _ := newTestFlow(t, nil)
	require.NoError(t, f.ChoosePeriod(models.ReminderEarlyVote))
	require.NoError(t, f.SetDateTime("2026-10-23", "09:00"))

	for _, id := range []string{"", "ev9"} {
		err := f.ChooseLocation(id)
		assert.ErrorIs(t, err, models.ErrValidation)
	}
	assert.Equal(t, StepLocationChoice, f.State().Step)
}

func TestContactValidation(t *testing.T) {
	tests := []struct {
		name    string
		prefs   Preferences
		wantErr string
	}{
		{"short phone", Preferences{NotifyByText: true, PhoneNumber: "12345"}, "phoneNumber"},
		{"formatted phone", Preferences{NotifyByText: true, PhoneNumber: "(225) 555-0101"}, "phoneNumber"},
		{"long phone", Preferences{NotifyByText: true, PhoneNumber: "1234567890123456"}, "phoneNumber"},
		{"valid phone", Preferences{NotifyByText: true, PhoneNumber: "2255550101"}, ""},
		{"international phone", Preferences{NotifyByText: true, PhoneNumber: "442071838750"}, ""},
		{"unchecked phone ignored", Preferences{PhoneNumber: "12345"}, ""},
		{"email without at", Preferences{NotifyByEmail: true, EmailAddress: "voter.example.com"}, "emailAddress"},
		{"valid email", Preferences{NotifyByEmail: true, EmailAddress: "voter@example.com"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, rec := newTestFlow(t, nil)
			require.NoError(t, f.ChoosePeriod(models.ReminderElectionDay))
			require.NoError(t, f.SetDateTime("2026-11-06", "09:00"))
			require.NoError(t, f.SetNotifications(tt.prefs))

			_, err := f.Finalize(context.Background())
			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.Len(t, rec.calls, 1)
				return
			}
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Errors[0].Field)
			assert.Empty(t, rec.calls)
			assert.Equal(t, StepNotifications, f.State().Step)
		})
	}
}

func TestBackInCreateMode(t *testing.T) {
	f, _ := newTestFlow(t, nil)

	require.NoError(t, f.Back())
	assert.Equal(t, StepPeriodChoice, f.State().Step)

	require.NoError(t, f.ChoosePeriod(models.ReminderEarlyVote))
	require.NoError(t, f.SetDateTime("2026-10-23", "09:00"))
	require.NoError(t, f.ChooseLocation("ev1"))

	steps := []Step{StepLocationChoice, StepDateTime, StepPeriodChoice, StepPeriodChoice}
	for _, want := range steps {
		require.NoError(t, f.Back())
		assert.Equal(t, want, f.State().Step)
	}
}

func TestBackSkipsLocationForElectionDay(t *testing.T) {
	f, _ := newTestFlow(t, nil)
	require.NoError(t, f.ChoosePeriod(models.ReminderElectionDay))
	require.NoError(t, f.SetDateTime("2026-11-06", "09:00"))

	require.NoError(t, f.Back())
	assert.Equal(t, StepDateTime, f.State().Step)
}

func existingEarlyVote() *models.ReminderSettings {
	return &models.ReminderSettings{
		ElectionDate:               "2026-11-06",
		ReminderType:               models.ReminderEarlyVote,
		ReminderDateTime:           "2026-10-28T23:15:00.000Z",
		NotificationMethods:        []models.NotificationMethod{models.NotifyText},
		PhoneNumber:                "2255550101",
		EarlyVotingLocationName:    "City Hall",
		EarlyVotingLocationAddress: cityHall.Address,
	}
}

func TestEditModePrefill(t *testing.T) {
	f, _ := newTestFlow(t, existingEarlyVote())

	state := f.State()
	assert.Equal(t, StepViewDetails, state.Step)
	assert.True(t, state.Editing)
	assert.Equal(t, "Reminder for Nov 6, 2026 General", state.Title)
	assert.Equal(t, "2026-10-28", state.Date)
	assert.Equal(t, "18:15", state.Time)
	assert.Equal(t, "ev1", state.LocationID)
	assert.Equal(t, Preferences{NotifyByText: true, PhoneNumber: "2255550101"}, state.Preferences)
}

func TestEditKeepsEarlyVoteDate(t *testing.T) {
	f, _ := newTestFlow(t, existingEarlyVote())
	require.NoError(t, f.Edit())

	require.NoError(t, f.ChoosePeriod(models.ReminderEarlyVote))
	assert.Equal(t, "2026-10-28", f.State().Date)

	// Outside the window the start date is used instead
	outside := existingEarlyVote()
	outside.ReminderDateTime = "2026-10-10T14:00:00.000Z"
	f, _ = newTestFlow(t, outside)
	require.NoError(t, f.Edit())
	require.NoError(t, f.ChoosePeriod(models.ReminderEarlyVote))
	assert.Equal(t, "2026-10-23", f.State().Date)
}

func TestBackInEditMode(t *testing.T) {
	f, _ := newTestFlow(t, existingEarlyVote())
	require.NoError(t, f.Edit())

	require.NoError(t, f.Back())
	assert.Equal(t, StepViewDetails, f.State().Step)

	require.NoError(t, f.Back())
	assert.Equal(t, StepViewDetails, f.State().Step)

	require.NoError(t, f.Edit())
	require.NoError(t, f.ChoosePeriod(models.ReminderEarlyVote))
	require.NoError(t, f.SetDateTime("2026-10-28", "18:15"))
	require.NoError(t, f.ChooseLocation("ev1"))

	steps := []Step{StepLocationChoice, StepDateTime, StepPeriodChoice, StepViewDetails}
	for _, want := range steps {
		require.NoError(t, f.Back())
		assert.Equal(t, want, f.State().Step)
	}
}

func TestEditFinalizeSaysUpdated(t *testing.T) {
	f, rec := newTestFlow(t, existingEarlyVote())
	require.NoError(t, f.Edit())
	require.NoError(t, f.ChoosePeriod(models.ReminderElectionDay))
	require.NoError(t, f.SetDateTime("2026-11-06", "08:00"))

	settings, err := f.Finalize(context.Background())
	require.NoError(t, err)
	assert.Empty(t, settings.EarlyVotingLocationName, "election day reminders carry no location")
	assert.Equal(t, "2255550101", settings.PhoneNumber)
	assert.Len(t, rec.calls, 1)

	state := f.State()
	assert.Equal(t, "Reminder Updated!", state.Message)
	assert.Equal(t, "Reminder Updated", state.Title)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	f, rec := newTestFlow(t, nil)
	assert.ErrorIs(t, f.Delete(ctx), ErrDeleteNotAllowed)

	f, rec = newTestFlow(t, existingEarlyVote())
	require.NoError(t, f.Edit())
	assert.ErrorIs(t, f.Delete(ctx), ErrDeleteNotAllowed, "not from periodChoice")
	require.NoError(t, f.Back())

	require.NoError(t, f.Delete(ctx))
	require.Len(t, rec.calls, 1)
	assert.Nil(t, rec.calls[0])
	assert.True(t, f.Closed())
	assert.ErrorIs(t, f.Edit(), ErrClosed)
}

func TestDeleteFromNotifications(t *testing.T) {
	f, rec := newTestFlow(t, existingEarlyVote())
	require.NoError(t, f.Edit())
	require.NoError(t, f.ChoosePeriod(models.ReminderElectionDay))
	require.NoError(t, f.SetDateTime("2026-11-06", "09:00"))

	require.NoError(t, f.Delete(context.Background()))
	require.Len(t, rec.calls, 1)
	assert.Nil(t, rec.calls[0])
}

func TestWrongStep(t *testing.T) {
	ctx := context.Background()
	f, rec := newTestFlow(t, nil)

	assert.ErrorIs(t, f.Edit(), ErrWrongStep)
	assert.ErrorIs(t, f.SetDateTime("2026-11-06", "09:00"), ErrWrongStep)
	assert.ErrorIs(t, f.ChooseLocation("ev1"), ErrWrongStep)
	assert.ErrorIs(t, f.SetNotifications(Preferences{}), ErrWrongStep)
	_, err := f.Finalize(ctx)
	assert.ErrorIs(t, err, ErrWrongStep)
	assert.ErrorIs(t, f.ChoosePeriod("someday"), models.ErrValidation)
	assert.Empty(t, rec.calls)

	f.Close()
	assert.ErrorIs(t, f.ChoosePeriod(models.ReminderElectionDay), ErrClosed)
	assert.ErrorIs(t, f.Back(), ErrClosed)
}

func TestCalendarDetails(t *testing.T) {
	f, _ := newTestFlow(t, nil)
	require.NoError(t, f.ChoosePeriod(models.ReminderEarlyVote))
	require.NoError(t, f.SetDateTime("2026-10-26", "09:00"))
	require.NoError(t, f.ChooseLocation("ev1"))

	details, err := f.ShowCalendarDetails()
	require.NoError(t, err)
	assert.Equal(t, "Vote in Nov 6, 2026 General", details.Event)
	assert.Equal(t, "Monday, October 26, 2026", details.Date)
	assert.Equal(t, "9:00 AM", details.Time)
	assert.Equal(t, "City Hall, 222 St. Louis St, Baton Rouge, LA 70802", details.Location)
	assert.Contains(t, details.Relative, "from now")
	assert.Equal(t, calendarNote, details.Note)

	state := f.State()
	require.NotNil(t, state.CalendarDetails)
	assert.Equal(t, details, *state.CalendarDetails)

	require.NoError(t, f.Back())
	assert.Nil(t, f.State().CalendarDetails)
}

func TestDateFormatting(t *testing.T) {
	at := time.Date(2026, 11, 6, 17, 5, 0, 0, time.UTC)
	assert.Equal(t, "Friday, November 6, 2026", LongDate(at))
	assert.Equal(t, "5:05 PM", ShortTime(at))

	at = time.Date(2026, 10, 23, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, "Friday, October 23, 2026", LongDate(at))
	assert.Equal(t, "12:30 AM", ShortTime(at))
}
