// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"slices"
	"strings"
)

type ReminderType string

const (
	ReminderEarlyVote   ReminderType = "earlyVote"
	ReminderElectionDay ReminderType = "electionDay"
)

func (t ReminderType) Valid() bool {
	return t == ReminderEarlyVote || t == ReminderElectionDay
}

type NotificationMethod string

const (
	NotifyText  NotificationMethod = "text"
	NotifyEmail NotificationMethod = "email"
	NotifyApp   NotificationMethod = "app"
)

// ReminderSettings is the single reminder kept per election date.
// Writes replace the whole record.
type ReminderSettings struct {
	ElectionDate               string               `json:"electionDate"`
	ReminderType               ReminderType         `json:"reminderType"`
	ReminderDateTime           string               `json:"reminderDateTime"` // RFC 3339, UTC
	NotificationMethods        []NotificationMethod `json:"notificationMethods"`
	PhoneNumber                string               `json:"phoneNumber,omitempty"`
	EmailAddress               string               `json:"emailAddress,omitempty"`
	EarlyVotingLocationName    string               `json:"earlyVotingLocationName,omitempty"`
	EarlyVotingLocationAddress string               `json:"earlyVotingLocationAddress,omitempty"`
}

// Notifies reports whether the reminder goes out over m
func (s ReminderSettings) Notifies(m NotificationMethod) bool {
	return slices.Contains(s.NotificationMethods, m)
}

// DeliverySummary describes where the reminder will be delivered.
// With no contact channel it falls back to an in-app notification.
func (s ReminderSettings) DeliverySummary() string {
	var parts []string
	if s.Notifies(NotifyText) && s.PhoneNumber != "" {
		parts = append(parts, "Text to "+s.PhoneNumber)
	}
	if s.Notifies(NotifyEmail) && s.EmailAddress != "" {
		parts = append(parts, "Email to "+s.EmailAddress)
	}
	if len(parts) == 0 {
		return "App notification"
	}
	return strings.Join(parts, ", ")
}

// LocationSummary returns "Name (Address)", or "N/A" when no location is set
func (s ReminderSettings) LocationSummary() string {
	if s.EarlyVotingLocationName == "" {
		return "N/A"
	}
	return s.EarlyVotingLocationName + " (" + s.EarlyVotingLocationAddress + ")"
}

// ReminderArchive maps election date to its reminder
type ReminderArchive map[string]ReminderSettings
