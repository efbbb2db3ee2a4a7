// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"slices"
	"strings"

	"github.com/danielhkuo/myballot/models"
)

// Filter narrows the candidate directory. Zero values match everything,
// except ElectionDate: empty means "any upcoming election".
type Filter struct {
	ElectionDate string
	OfficeID     int
	Party        string
	Search       string // case-insensitive, matched against full name and bio
}

// FilterCandidates returns the candidates matching f in directory order
func (c *Catalog) FilterCandidates(f Filter) []models.Candidate {
	var upcoming []string
	if f.ElectionDate == "" {
		for _, e := range c.UpcomingElections() {
			upcoming = append(upcoming, e.ElectionDate)
		}
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))

	var out []models.Candidate
	for _, cand := range c.candidates {
		e, ok := c.CandidateElection(cand)
		if !ok {
			continue
		}
		if f.ElectionDate != "" && e.ElectionDate != f.ElectionDate {
			continue
		}
		if f.ElectionDate == "" && !slices.Contains(upcoming, e.ElectionDate) {
			continue
		}
		if f.OfficeID != 0 && cand.OfficeID != f.OfficeID {
			continue
		}
		if f.Party != "" && cand.Party != f.Party {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(cand.FullName()), term) &&
			!strings.Contains(strings.ToLower(cand.Bio), term) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// SuggestCandidates matches term against candidate names only, for
// type-ahead. At most limit results are returned.
func (c *Catalog) SuggestCandidates(term string, limit int) []models.Candidate {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var out []models.Candidate
	for _, cand := range c.candidates {
		if strings.Contains(strings.ToLower(cand.FullName()), term) {
			out = append(out, cand)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

// Parties returns the party names offered as filter choices
func Parties() []string {
	return slices.Clone(parties)
}
