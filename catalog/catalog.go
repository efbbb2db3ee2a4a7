// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/myballot/models"
)

// Catalog holds the read-only reference data. It is safe for concurrent use.
type Catalog struct {
	clock clockwork.Clock
	loc   *time.Location

	offices    []models.Office
	elections  []models.ElectionEvent
	candidates []models.Candidate
	measures   []models.BallotMeasure
	questions  []models.SurveyQuestion
	locations  []models.EarlyVotingLocation
	results    []models.OfficeElectionResults

	officeByID    map[int]models.Office
	candidateByID map[int]models.Candidate
	measureByID   map[int]models.BallotMeasure
	electionByID  map[int]models.ElectionEvent
	electionByDay map[string]models.ElectionEvent
}

// New loads the seed data. "Today" is evaluated with clock in loc.
func New(clock clockwork.Clock, loc *time.Location) *Catalog {
	if loc == nil {
		loc = time.Local
	}

	c := &Catalog{
		clock:         clock,
		loc:           loc,
		offices:       slices.Clone(seedOffices),
		questions:     slices.Clone(seedSurveyQuestions),
		locations:     slices.Clone(seedEarlyVotingLocations),
		officeByID:    make(map[int]models.Office),
		candidateByID: make(map[int]models.Candidate),
		measureByID:   make(map[int]models.BallotMeasure),
		electionByID:  make(map[int]models.ElectionEvent),
		electionByDay: make(map[string]models.ElectionEvent),
	}

	for _, cy := range seedCycles {
		c.elections = append(c.elections, cy.event)
		c.electionByID[cy.event.ID] = cy.event
		c.electionByDay[cy.event.ElectionDate] = cy.event
	}
	for _, o := range c.offices {
		c.officeByID[o.ID] = o
	}

	c.candidates = append(slices.Clone(seedCandidates), generatedCandidates()...)
	for i, cand := range c.candidates {
		if cand.PhotoURL == "" {
			c.candidates[i].PhotoURL = "https://picsum.photos/seed/" + cand.Slug + "/200/200"
		}
		c.candidateByID[cand.ID] = c.candidates[i]
	}

	c.measures = append(slices.Clone(seedMeasures), generatedMeasures()...)
	for _, m := range c.measures {
		c.measureByID[m.ID] = m
	}

	c.results = c.processResults()
	return c
}

// Today returns the current calendar date as YYYY-MM-DD
func (c *Catalog) Today() string {
	return c.clock.Now().In(c.loc).Format(time.DateOnly)
}

// Location returns the time zone calendar dates are interpreted in
func (c *Catalog) Location() *time.Location {
	return c.loc
}

// Clock returns the clock used for "today"
func (c *Catalog) Clock() clockwork.Clock {
	return c.clock
}

// IsElectionPast reports whether date is strictly before today
func (c *Catalog) IsElectionPast(date string) bool {
	return date < c.Today()
}

// Elections returns every election, upcoming ones first in date order,
// then past ones most recent first.
func (c *Catalog) Elections() []models.ElectionEvent {
	out := slices.Clone(c.elections)
	today := c.Today()
	slices.SortStableFunc(out, func(a, b models.ElectionEvent) int {
		return CompareElectionDates(a.ElectionDate, b.ElectionDate, today)
	})
	return out
}

// UpcomingElections returns elections on or after today, soonest first
func (c *Catalog) UpcomingElections() []models.ElectionEvent {
	var out []models.ElectionEvent
	for _, e := range c.Elections() {
		if !c.IsElectionPast(e.ElectionDate) {
			out = append(out, e)
		}
	}
	return out
}

// ElectionDates returns the dates of all known elections in Elections order
func (c *Catalog) ElectionDates() []string {
	elections := c.Elections()
	out := make([]string, len(elections))
	for i, e := range elections {
		out[i] = e.ElectionDate
	}
	return out
}

func (c *Catalog) ElectionByID(id int) (models.ElectionEvent, bool) {
	e, ok := c.electionByID[id]
	return e, ok
}

func (c *Catalog) ElectionByDate(date string) (models.ElectionEvent, bool) {
	e, ok := c.electionByDay[date]
	return e, ok
}

func (c *Catalog) Offices() []models.Office {
	return slices.Clone(c.offices)
}

func (c *Catalog) OfficeByID(id int) (models.Office, bool) {
	o, ok := c.officeByID[id]
	return o, ok
}

func (c *Catalog) Candidates() []models.Candidate {
	return slices.Clone(c.candidates)
}

func (c *Catalog) CandidateByID(id int) (models.Candidate, bool) {
	cand, ok := c.candidateByID[id]
	return cand, ok
}

// CandidateElection returns the election a candidate is running in
func (c *Catalog) CandidateElection(cand models.Candidate) (models.ElectionEvent, bool) {
	return c.ElectionByID(cand.CycleID)
}

// CandidatesByOfficeAndElection lists a race's candidates in ballot order.
// An empty district matches every district.
func (c *Catalog) CandidatesByOfficeAndElection(officeID, electionID int, district string) []models.Candidate {
	var out []models.Candidate
	for _, cand := range c.candidates {
		if cand.OfficeID != officeID || cand.CycleID != electionID {
			continue
		}
		if district != "" && cand.District != district {
			continue
		}
		out = append(out, cand)
	}
	slices.SortStableFunc(out, func(a, b models.Candidate) int {
		return cmp.Compare(a.BallotOrder, b.BallotOrder)
	})
	return out
}

// DistrictsForOfficeAndElection returns the sorted unique districts contested
func (c *Catalog) DistrictsForOfficeAndElection(officeID, electionID int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, cand := range c.candidates {
		if cand.OfficeID == officeID && cand.CycleID == electionID && cand.District != "" && !seen[cand.District] {
			seen[cand.District] = true
			out = append(out, cand.District)
		}
	}
	slices.Sort(out)
	return out
}

func (c *Catalog) Measures() []models.BallotMeasure {
	return slices.Clone(c.measures)
}

func (c *Catalog) MeasureByID(id int) (models.BallotMeasure, bool) {
	m, ok := c.measureByID[id]
	return m, ok
}

func (c *Catalog) MeasuresByElectionDate(date string) []models.BallotMeasure {
	var out []models.BallotMeasure
	for _, m := range c.measures {
		if m.ElectionDate == date {
			out = append(out, m)
		}
	}
	return out
}

func (c *Catalog) SurveyQuestions() []models.SurveyQuestion {
	return slices.Clone(c.questions)
}

func (c *Catalog) SurveyQuestionByKey(key string) (models.SurveyQuestion, bool) {
	i := slices.IndexFunc(c.questions, func(q models.SurveyQuestion) bool { return q.Key == key })
	if i < 0 {
		return models.SurveyQuestion{}, false
	}
	return c.questions[i], true
}

func (c *Catalog) EarlyVotingLocations() []models.EarlyVotingLocation {
	return slices.Clone(c.locations)
}

func (c *Catalog) EarlyVotingLocationByID(id string) (models.EarlyVotingLocation, bool) {
	i := slices.IndexFunc(c.locations, func(l models.EarlyVotingLocation) bool { return l.ID == id })
	if i < 0 {
		return models.EarlyVotingLocation{}, false
	}
	return c.locations[i], true
}

func (c *Catalog) EarlyVotingLocationByName(name string) (models.EarlyVotingLocation, bool) {
	i := slices.IndexFunc(c.locations, func(l models.EarlyVotingLocation) bool { return l.Name == name })
	if i < 0 {
		return models.EarlyVotingLocation{}, false
	}
	return c.locations[i], true
}

// ResultsForElection returns processed results for a past election.
// Elections without recorded results return nil.
func (c *Catalog) ResultsForElection(date string) []models.OfficeElectionResults {
	var out []models.OfficeElectionResults
	for _, r := range c.results {
		if r.ElectionDate == date {
			out = append(out, r)
		}
	}
	return out
}

func (c *Catalog) processResults() []models.OfficeElectionResults {
	var out []models.OfficeElectionResults
	for _, day := range seedResults {
		for _, raw := range day.offices {
			office, ok := c.officeByID[raw.officeID]
			if !ok {
				continue
			}

			total := 0
			for _, cr := range raw.candidates {
				total += cr.votes
			}

			results := make([]models.ElectionResultCandidate, 0, len(raw.candidates))
			for _, cr := range raw.candidates {
				rc := models.ElectionResultCandidate{
					CandidateID:   cr.candidateID,
					CandidateName: "Unknown Candidate",
					Party:         "N/A",
					Votes:         cr.votes,
					VotesDisplay:  humanize.Comma(int64(cr.votes)),
					IsWinner:      cr.isWinner,
				}
				if cand, ok := c.candidateByID[cr.candidateID]; ok {
					rc.CandidateName = CandidateDisplayName(cand)
					rc.Party = cand.Party
					rc.PhotoURL = cand.PhotoURL
				}
				if total > 0 {
					rc.Percentage = roundTenth(float64(cr.votes) / float64(total) * 100)
				}
				results = append(results, rc)
			}
			slices.SortStableFunc(results, func(a, b models.ElectionResultCandidate) int {
				return cmp.Compare(b.Votes, a.Votes)
			})

			out = append(out, models.OfficeElectionResults{
				ElectionDate:       day.date,
				Office:             office,
				District:           raw.district,
				Results:            results,
				TotalVotesInOffice: total,
			})
		}
	}
	return out
}

func roundTenth(f float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 1, 64), 64)
	return r
}

// CompareElectionDates orders dates upcoming-first ascending, then past
// dates descending. Dates before today are past.
func CompareElectionDates(a, b, today string) int {
	aPast, bPast := a < today, b < today
	switch {
	case aPast && !bPast:
		return 1
	case !aPast && bPast:
		return -1
	case !aPast:
		return strings.Compare(a, b)
	default:
		return strings.Compare(b, a)
	}
}
