// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// NoteEntry is a private note about one candidate
type NoteEntry struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"` // creation or last update
	Text string    `json:"text"`
}

type NoteSummaryItem struct {
	CandidateID          int        `json:"candidateId"`
	CandidateName        string     `json:"candidateName"`
	CandidateProfileLink string     `json:"candidateProfileLink"`
	OfficeName           string     `json:"officeName"`
	ElectionName         string     `json:"electionName"`
	NotesCount           int        `json:"notesCount"`
	LatestNote           *NoteEntry `json:"latestNote"`
}

// UIDensity is the display density preference
type UIDensity string

const (
	DensityNormal  UIDensity = "normal"
	DensityCompact UIDensity = "compact"
)

func (d UIDensity) Valid() bool {
	return d == DensityNormal || d == DensityCompact
}
