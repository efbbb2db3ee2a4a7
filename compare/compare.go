// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package compare lines up two candidates from the same race side by side.
package compare

import (
	"fmt"

	"github.com/danielhkuo/myballot/catalog"
	"github.com/danielhkuo/myballot/models"
)

const noResponse = "No response provided."

// NoteLookup returns a candidate's notes, newest first
type NoteLookup func(candidateID int) ([]models.NoteEntry, error)

type Side struct {
	models.CandidateView
	LatestNote *models.NoteEntry `json:"latestNote"`
	NotesCount int               `json:"notesCount"`
}

type Row struct {
	Key      string    `json:"key"`
	Question string    `json:"question"`
	Answers  [2]string `json:"answers"`
}

type Comparison struct {
	ElectionName string  `json:"electionName"`
	ElectionDate string  `json:"electionDate"`
	OfficeName   string  `json:"officeName"`
	IsPast       bool    `json:"isPast"`
	Candidates   [2]Side `json:"candidates"`
	Rows         []Row   `json:"rows"`
}

// Build compares id1 with id2. When id2 is zero and the race has exactly
// one other candidate, that opponent is used.
func Build(c *catalog.Catalog, notes NoteLookup, id1, id2 int) (Comparison, error) {
	first, ok := c.CandidateByID(id1)
	if !ok {
		return Comparison{}, models.NewValidationError("candidate1Id", "Unknown candidate")
	}
	if id2 == 0 {
		opponent, ok := soleOpponent(c, first)
		if !ok {
			return Comparison{}, models.NewValidationError("candidate2Id", "Choose a second candidate")
		}
		id2 = opponent.ID
	}
	second, ok := c.CandidateByID(id2)
	if !ok {
		return Comparison{}, models.NewValidationError("candidate2Id", "Unknown candidate")
	}
	if first.ID == second.ID {
		return Comparison{}, models.NewValidationError("candidate2Id", "Choose two different candidates")
	}
	if !sameRace(first, second) {
		return Comparison{}, models.NewValidationError("candidate2Id", "Candidates must be running in the same race")
	}

	firstSide, err := side(c, notes, first)
	if err != nil {
		return Comparison{}, err
	}
	secondSide, err := side(c, notes, second)
	if err != nil {
		return Comparison{}, err
	}

	cmp := Comparison{
		ElectionName: "Unknown Election",
		OfficeName:   c.FormattedCandidateOfficeName(first),
		Candidates:   [2]Side{firstSide, secondSide},
	}
	if e, ok := c.CandidateElection(first); ok {
		cmp.ElectionName = catalog.FormattedElectionName(e)
		cmp.ElectionDate = e.ElectionDate
		cmp.IsPast = c.IsElectionPast(e.ElectionDate)
	}

	for _, q := range c.SurveyQuestions() {
		cmp.Rows = append(cmp.Rows, Row{
			Key:      q.Key,
			Question: q.Question,
			Answers:  [2]string{answer(first, q.Key), answer(second, q.Key)},
		})
	}
	return cmp, nil
}

func sameRace(a, b models.Candidate) bool {
	return a.OfficeID == b.OfficeID && a.CycleID == b.CycleID && a.District == b.District
}

func soleOpponent(c *catalog.Catalog, cand models.Candidate) (models.Candidate, bool) {
	var others []models.Candidate
	for _, o := range c.CandidatesByOfficeAndElection(cand.OfficeID, cand.CycleID, cand.District) {
		if o.ID != cand.ID && o.District == cand.District {
			others = append(others, o)
		}
	}
	if len(others) != 1 {
		return models.Candidate{}, false
	}
	return others[0], true
}

func side(c *catalog.Catalog, notes NoteLookup, cand models.Candidate) (Side, error) {
	s := Side{CandidateView: c.CandidateView(cand)}
	if notes == nil {
		return s, nil
	}
	entries, err := notes(cand.ID)
	if err != nil {
		return Side{}, fmt.Errorf("failed to load notes for candidate %d: %w", cand.ID, err)
	}
	s.NotesCount = len(entries)
	if len(entries) > 0 {
		latest := entries[0]
		s.LatestNote = &latest
	}
	return s, nil
}

func answer(cand models.Candidate, key string) string {
	if a := cand.SurveyResponses[key]; a != "" {
		return a
	}
	return noResponse
}
