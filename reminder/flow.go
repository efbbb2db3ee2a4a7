// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reminder

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/myballot/models"
)

var (
	ErrWrongStep        = errors.New("action not available at this step")
	ErrDeleteNotAllowed = errors.New("reminder can only be deleted while editing")
	ErrClosed           = errors.New("reminder flow is closed")
)

type Step string

const (
	StepViewDetails    Step = "viewDetails"
	StepPeriodChoice   Step = "periodChoice"
	StepDateTime       Step = "dateTime"
	StepLocationChoice Step = "locationChoice"
	StepNotifications  Step = "notifications"
	StepConfirmation   Step = "confirmation"
)

// DefaultTime is the time of day a new reminder starts with
const DefaultTime = "09:00"

// isoMillis matches the millisecond UTC timestamps stored by other clients
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

var phonePattern = regexp.MustCompile(`^\d{10,15}$`)

// Saver persists the finished reminder. nil deletes it.
type Saver func(ctx context.Context, settings *models.ReminderSettings)

type FlowOptions struct {
	Election    models.ElectionEvent
	DisplayName string
	// Existing puts the flow in edit mode
	Existing  *models.ReminderSettings
	Locations []models.EarlyVotingLocation
	// Location is the time zone dates and times are entered in
	Location *time.Location
	Saver    Saver
	Clock    clockwork.Clock
}

// Preferences are the notification channels picked on the last step
type Preferences struct {
	NotifyByText  bool   `json:"notifyByText"`
	PhoneNumber   string `json:"phoneNumber"`
	NotifyByEmail bool   `json:"notifyByEmail"`
	EmailAddress  string `json:"emailAddress"`
}

// Flow walks a user through creating or editing one election reminder.
// Nothing is saved until Finalize or Delete.
type Flow struct {
	mu sync.Mutex

	election    models.ElectionEvent
	displayName string
	existing    *models.ReminderSettings
	locations   []models.EarlyVotingLocation
	loc         *time.Location
	saver       Saver
	clock       clockwork.Clock

	step         Step
	reminderType models.ReminderType
	date         string // YYYY-MM-DD
	timeOfDay    string // HH:MM
	locationID   string
	prefs        Preferences
	showCalendar bool
	closed       bool
}

func NewFlow(opts FlowOptions) *Flow {
	f := &Flow{
		election:    opts.Election,
		displayName: opts.DisplayName,
		locations:   opts.Locations,
		loc:         opts.Location,
		saver:       opts.Saver,
		clock:       opts.Clock,
		step:        StepPeriodChoice,
		timeOfDay:   DefaultTime,
	}
	if f.loc == nil {
		f.loc = time.Local
	}
	if f.clock == nil {
		f.clock = clockwork.NewRealClock()
	}
	if f.saver == nil {
		f.saver = func(context.Context, *models.ReminderSettings) {}
	}

	if opts.Existing != nil {
		existing := *opts.Existing
		f.existing = &existing
		f.step = StepViewDetails
		f.prefill(existing)
	}
	return f
}

// prefill loads the edit-mode fields from an existing reminder
func (f *Flow) prefill(r models.ReminderSettings) {
	f.reminderType = r.ReminderType
	if at, err := time.Parse(time.RFC3339, r.ReminderDateTime); err == nil {
		at = at.In(f.loc)
		f.date = at.Format(time.DateOnly)
		f.timeOfDay = at.Format("15:04")
	}
	if r.ReminderType == models.ReminderEarlyVote && r.EarlyVotingLocationName != "" {
		if l, ok := f.locationByName(r.EarlyVotingLocationName); ok {
			f.locationID = l.ID
		}
	}
	f.prefs = Preferences{
		NotifyByText:  r.Notifies(models.NotifyText),
		PhoneNumber:   r.PhoneNumber,
		NotifyByEmail: r.Notifies(models.NotifyEmail),
		EmailAddress:  r.EmailAddress,
	}
}

func (f *Flow) editing() bool {
	return f.existing != nil
}

// expect fails unless the flow is open and at one of steps
func (f *Flow) expect(steps ...Step) error {
	if f.closed {
		return ErrClosed
	}
	for _, s := range steps {
		if f.step == s {
			return nil
		}
	}
	return ErrWrongStep
}

// Edit leaves the details view and starts editing
func (f *Flow) Edit() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(StepViewDetails); err != nil {
		return err
	}
	f.step = StepPeriodChoice
	return nil
}

// ChoosePeriod picks early voting or election day and pre-fills the date
func (f *Flow) ChoosePeriod(t models.ReminderType) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(StepPeriodChoice); err != nil {
		return err
	}
	if !t.Valid() {
		return models.NewValidationError("reminderType", "Please choose early voting or election day.")
	}

	f.reminderType = t
	switch t {
	case models.ReminderElectionDay:
		f.date = f.election.ElectionDate
	case models.ReminderEarlyVote:
		f.date = f.election.EarlyVotingStart
		if d, ok := f.existingEarlyVoteDate(); ok {
			f.date = d
		}
	}
	f.step = StepDateTime
	return nil
}

// existingEarlyVoteDate returns the date of an edited early-vote
// reminder when it still falls inside the window.
func (f *Flow) existingEarlyVoteDate() (string, bool) {
	if !f.editing() || f.existing.ReminderType != models.ReminderEarlyVote {
		return "", false
	}
	at, err := time.Parse(time.RFC3339, f.existing.ReminderDateTime)
	if err != nil {
		return "", false
	}
	d := at.In(f.loc).Format(time.DateOnly)
	return d, f.inEarlyVotingWindow(d)
}

func (f *Flow) inEarlyVotingWindow(date string) bool {
	return date >= f.election.EarlyVotingStart && date <= f.election.EarlyVotingEnd
}

// SetDateTime sets the reminder date (YYYY-MM-DD) and time (HH:MM).
// Election-day reminders always use the election date.
func (f *Flow) SetDateTime(date, hhmm string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(StepDateTime); err != nil {
		return err
	}

	date, hhmm = strings.TrimSpace(date), strings.TrimSpace(hhmm)
	if f.reminderType == models.ReminderElectionDay {
		date = f.election.ElectionDate
	}

	verr := &models.ValidationError{}
	if date == "" || hhmm == "" {
		verr.Add("dateTime", "Please select a date and time.")
		return verr
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		verr.Add("date", "Please enter a date as YYYY-MM-DD.")
	} else if f.reminderType == models.ReminderEarlyVote && !f.inEarlyVotingWindow(date) {
		verr.Add("date", "Please pick a date between "+f.election.EarlyVotingStart+" and "+f.election.EarlyVotingEnd+".")
	}
	if _, err := time.Parse("15:04", hhmm); err != nil {
		verr.Add("time", "Please enter a time as HH:MM.")
	}
	if err := verr.Err(); err != nil {
		return err
	}

	f.date, f.timeOfDay = date, hhmm
	if f.reminderType == models.ReminderEarlyVote {
		f.step = StepLocationChoice
	} else {
		f.step = StepNotifications
	}
	return nil
}

// ChooseLocation picks one of the known early-voting locations
func (f *Flow) ChooseLocation(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(StepLocationChoice); err != nil {
		return err
	}
	if _, ok := f.locationByID(id); !ok {
		return models.NewValidationError("locationId", "Please select an early voting location.")
	}
	f.locationID = id
	f.step = StepNotifications
	return nil
}

// SetNotifications records the channel choices. They are validated by
// Finalize.
func (f *Flow) SetNotifications(p Preferences) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(StepNotifications); err != nil {
		return err
	}
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	p.EmailAddress = strings.TrimSpace(p.EmailAddress)
	f.prefs = p
	return nil
}

// ShowCalendarDetails turns on the calendar summary for the notifications step
func (f *Flow) ShowCalendarDetails() (CalendarDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(StepNotifications); err != nil {
		return CalendarDetails{}, err
	}
	f.showCalendar = true
	return f.calendarDetails()
}

// CalendarDetails returns the event summary for manual calendar entry
func (f *Flow) CalendarDetails() (CalendarDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.date == "" || f.timeOfDay == "" {
		return CalendarDetails{}, ErrWrongStep
	}
	return f.calendarDetails()
}

// Finalize validates the notification choices, saves the reminder and
// moves to the confirmation step.
func (f *Flow) Finalize(ctx context.Context) (models.ReminderSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(StepNotifications); err != nil {
		return models.ReminderSettings{}, err
	}

	verr := &models.ValidationError{}
	if f.prefs.NotifyByText && !phonePattern.MatchString(f.prefs.PhoneNumber) {
		verr.Add("phoneNumber", "Please enter a valid phone number (10-15 digits).")
	}
	if f.prefs.NotifyByEmail && !strings.Contains(f.prefs.EmailAddress, "@") {
		verr.Add("emailAddress", "Please enter a valid email address.")
	}
	if err := verr.Err(); err != nil {
		return models.ReminderSettings{}, err
	}

	at, err := f.reminderTime()
	if err != nil {
		return models.ReminderSettings{}, models.NewValidationError("dateTime", "Please select a date and time.")
	}

	settings := models.ReminderSettings{
		ElectionDate:        f.election.ElectionDate,
		ReminderType:        f.reminderType,
		ReminderDateTime:    at.UTC().Format(isoMillis),
		NotificationMethods: []models.NotificationMethod{},
	}
	if f.prefs.NotifyByText {
		settings.NotificationMethods = append(settings.NotificationMethods, models.NotifyText)
		settings.PhoneNumber = f.prefs.PhoneNumber
	}
	if f.prefs.NotifyByEmail {
		settings.NotificationMethods = append(settings.NotificationMethods, models.NotifyEmail)
		settings.EmailAddress = f.prefs.EmailAddress
	}
	if f.reminderType == models.ReminderEarlyVote {
		if l, ok := f.locationByID(f.locationID); ok {
			settings.EarlyVotingLocationName = l.Name
			settings.EarlyVotingLocationAddress = l.Address
		}
	}

	f.saver(ctx, &settings)
	f.step = StepConfirmation
	return settings, nil
}

// Back returns to the previous step. Edit mode bottoms out at the details
// view, create mode at the period choice.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}
	if f.step == StepConfirmation {
		return ErrWrongStep
	}

	// Shared middle of both tables
	switch f.step {
	case StepDateTime:
		f.step = StepPeriodChoice
	case StepLocationChoice:
		f.step = StepDateTime
	case StepNotifications:
		if f.reminderType == models.ReminderEarlyVote {
			f.step = StepLocationChoice
		} else {
			f.step = StepDateTime
		}
	default:
		if f.editing() {
			f.step = StepViewDetails
		} else {
			f.step = StepPeriodChoice
		}
	}
	f.showCalendar = false
	return nil
}

// Delete removes the reminder being edited and closes the flow
func (f *Flow) Delete(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}
	if !f.editing() || (f.step != StepViewDetails && f.step != StepNotifications) {
		return ErrDeleteNotAllowed
	}
	f.saver(ctx, nil)
	f.closed = true
	return nil
}

// Close ends the flow. Unsaved choices are discarded.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *Flow) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *Flow) reminderTime() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", f.date+" "+f.timeOfDay, f.loc)
}

func (f *Flow) locationByID(id string) (models.EarlyVotingLocation, bool) {
	for _, l := range f.locations {
		if l.ID == id {
			return l, true
		}
	}
	return models.EarlyVotingLocation{}, false
}

func (f *Flow) locationByName(name string) (models.EarlyVotingLocation, bool) {
	for _, l := range f.locations {
		if l.Name == name {
			return l, true
		}
	}
	return models.EarlyVotingLocation{}, false
}
