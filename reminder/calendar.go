// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reminder

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"

	"github.com/danielhkuo/myballot/models"
)

const calendarNote = "Please manually add these details to your preferred calendar application."

// CalendarDetails is a read-only event summary for manual calendar entry
type CalendarDetails struct {
	Event    string `json:"event"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location,omitempty"`
	Relative string `json:"relative"`
	Note     string `json:"note"`
}

// Caller holds f.mu
func (f *Flow) calendarDetails() (CalendarDetails, error) {
	at, err := f.reminderTime()
	if err != nil {
		return CalendarDetails{}, err
	}

	d := CalendarDetails{
		Event:    "Vote in " + f.displayName,
		Date:     LongDate(at),
		Time:     ShortTime(at),
		Relative: humanize.RelTime(at, f.clock.Now(), "ago", "from now"),
		Note:     calendarNote,
	}
	if f.reminderType == models.ReminderEarlyVote {
		if l, ok := f.locationByID(f.locationID); ok {
			d.Location = l.Name + ", " + l.Address
		}
	}
	return d, nil
}

// LongDate formats t as "Monday, October 26, 2026"
func LongDate(t time.Time) string {
	// %d pads the day; the only " 0" in the output is that padding
	return strings.Replace(strftime.Format("%A, %B %d, %Y", t), " 0", " ", 1)
}

// ShortTime formats t as "9:00 AM"
func ShortTime(t time.Time) string {
	return strings.TrimPrefix(strftime.Format("%I:%M %p", t), "0")
}
