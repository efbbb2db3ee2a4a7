// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Platform constants
const (
	PlatformIOS     = "ios"
	PlatformMacOS   = "macos"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// Request types

type RegisterDeviceRequest struct {
	Platform string `json:"platform"`
}

type SelectElectionRequest struct {
	ElectionDate string `json:"electionDate"` // empty clears the selection
}

type AddCandidateRequest struct {
	CandidateID int `json:"candidateId"`
}

type MeasureStanceRequest struct {
	Vote Vote `json:"vote"`
}

type ReminderPeriodRequest struct {
	ReminderType ReminderType `json:"reminderType"`
}

type ReminderDateTimeRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM
}

type ReminderLocationRequest struct {
	LocationID string `json:"locationId"`
}

type ReminderNotificationsRequest struct {
	NotifyByText  bool   `json:"notifyByText"`
	PhoneNumber   string `json:"phoneNumber"`
	NotifyByEmail bool   `json:"notifyByEmail"`
	EmailAddress  string `json:"emailAddress"`
}

type NoteRequest struct {
	Text string `json:"text"`
}

type DensityRequest struct {
	Density UIDensity `json:"density"`
}

// Response types

type RegisterDeviceResponse struct {
	DeviceID string `json:"deviceId"`
	IsNew    bool   `json:"isNew"`
}

type DeviceInfo struct {
	ID         string    `json:"id"`
	Platform   string    `json:"platform"`
	CreatedAt  time.Time `json:"createdAt"`
	LastSeenAt time.Time `json:"lastSeenAt"`
}

type ElectionView struct {
	ElectionEvent
	DisplayName string `json:"displayName"`
	IsPast      bool   `json:"isPast"`
}

type CandidateView struct {
	Candidate
	DisplayName  string `json:"displayName"`
	OfficeName   string `json:"officeName"`
	ElectionName string `json:"electionName"`
	ElectionDate string `json:"electionDate"`
}

type BallotOverview struct {
	SelectedElectionDate *string       `json:"selectedElectionDate"`
	ArchivedDates        []string      `json:"archivedDates"`
	Archive              BallotArchive `json:"archive"`
}

type ElectionBallot struct {
	ElectionDate string            `json:"electionDate"`
	Entries      BallotEntries     `json:"entries"`
	Reminder     *ReminderSettings `json:"reminder"`
}

type SelectionStatus struct {
	Selected bool `json:"selected"`
}

type MeasureStanceResponse struct {
	Vote *Vote `json:"vote"`
}

type DensityResponse struct {
	Density UIDensity `json:"density"`
}

// Error response

type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}
