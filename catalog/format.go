// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"strings"
	"time"

	"github.com/danielhkuo/myballot/models"
)

// FormattedElectionName renders an election as "Nov 6, 2026 General"
func FormattedElectionName(e models.ElectionEvent) string {
	return formatElectionName(e.ElectionDate, e.Name)
}

// FormattedElectionNameFromDate formats the election held on date.
// Unknown dates fall back to "<date> Election".
func (c *Catalog) FormattedElectionNameFromDate(date string) string {
	if e, ok := c.ElectionByDate(date); ok {
		return FormattedElectionName(e)
	}
	return formatElectionName(date, "")
}

func formatElectionName(date, baseName string) string {
	kind := "Election"
	if parts := strings.Fields(baseName); len(parts) > 1 {
		kind = parts[1]
	}

	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		if baseName != "" {
			return baseName
		}
		return date
	}
	return t.Format("Jan 2, 2006") + " " + kind
}

// CandidateDisplayName is the candidate's full name, with the running
// mate appended for presidential tickets.
func CandidateDisplayName(cand models.Candidate) string {
	name := cand.FullName()
	if cand.OfficeID == models.OfficeUSPresident && cand.RunningMateName != "" {
		name += " / " + cand.RunningMateName
	}
	return name
}

// FormattedCandidateOfficeName renders "State Representative, District 61"
func (c *Catalog) FormattedCandidateOfficeName(cand models.Candidate) string {
	office, ok := c.OfficeByID(cand.OfficeID)
	if !ok {
		return "Unknown Office"
	}
	if cand.District != "" {
		return office.Name + ", " + cand.District
	}
	return office.Name
}

// CandidateView decorates a candidate with its display fields
func (c *Catalog) CandidateView(cand models.Candidate) models.CandidateView {
	view := models.CandidateView{
		Candidate:    cand,
		DisplayName:  CandidateDisplayName(cand),
		OfficeName:   c.FormattedCandidateOfficeName(cand),
		ElectionName: "Unknown Election",
	}
	if e, ok := c.CandidateElection(cand); ok {
		view.ElectionName = FormattedElectionName(e)
		view.ElectionDate = e.ElectionDate
	}
	return view
}

// ElectionView decorates an election with its display fields
func (c *Catalog) ElectionView(e models.ElectionEvent) models.ElectionView {
	return models.ElectionView{
		ElectionEvent: e,
		DisplayName:   FormattedElectionName(e),
		IsPast:        c.IsElectionPast(e.ElectionDate),
	}
}
