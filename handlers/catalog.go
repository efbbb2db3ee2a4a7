// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/myballot/catalog"
	"github.com/danielhkuo/myballot/middleware"
	"github.com/danielhkuo/myballot/models"
)

const suggestLimit = 8

// CatalogHandler serves the read-only reference data
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// ListElections handles GET /elections
// Upcoming elections come first, soonest first, then past ones.
func (h *CatalogHandler) ListElections(w http.ResponseWriter, r *http.Request) {
	elections := h.catalog.Elections()
	views := make([]models.ElectionView, 0, len(elections))
	for _, e := range elections {
		views = append(views, h.catalog.ElectionView(e))
	}
	middleware.JSONResponse(w, http.StatusOK, views)
}

// GetElection handles GET /elections/{date}
func (h *CatalogHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	e, ok := h.catalog.ElectionByDate(date)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, h.catalog.ElectionView(e))
}

// ListElectionMeasures handles GET /elections/{date}/measures
func (h *CatalogHandler) ListElectionMeasures(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	measures := h.catalog.MeasuresByElectionDate(date)
	if measures == nil {
		measures = []models.BallotMeasure{}
	}
	middleware.JSONResponse(w, http.StatusOK, measures)
}

// GetElectionResults handles GET /elections/{date}/results
// Upcoming elections have no results yet and return an empty list.
func (h *CatalogHandler) GetElectionResults(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	if _, ok := h.catalog.ElectionByDate(date); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}
	results := h.catalog.ResultsForElection(date)
	if results == nil {
		results = []models.OfficeElectionResults{}
	}
	middleware.JSONResponse(w, http.StatusOK, results)
}

// ListOffices handles GET /offices
func (h *CatalogHandler) ListOffices(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.catalog.Offices())
}

// ListDistricts handles GET /offices/{id}/districts?electionId=
func (h *CatalogHandler) ListDistricts(w http.ResponseWriter, r *http.Request) {
	officeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	electionID, ok := queryInt(w, r, "electionId")
	if !ok {
		return
	}
	if electionID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "electionId is required")
		return
	}

	districts := h.catalog.DistrictsForOfficeAndElection(officeID, electionID)
	if districts == nil {
		districts = []string{}
	}
	middleware.JSONResponse(w, http.StatusOK, districts)
}

// ListCandidates handles GET /candidates?electionDate=&officeId=&party=&q=
// Without electionDate only candidates in upcoming elections are listed.
func (h *CatalogHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	officeID, ok := queryInt(w, r, "officeId")
	if !ok {
		return
	}

	cands := h.catalog.FilterCandidates(catalog.Filter{
		ElectionDate: q.Get("electionDate"),
		OfficeID:     officeID,
		Party:        q.Get("party"),
		Search:       q.Get("q"),
	})
	middleware.JSONResponse(w, http.StatusOK, h.views(cands))
}

// SuggestCandidates handles GET /candidates/suggest?q=
func (h *CatalogHandler) SuggestCandidates(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	middleware.JSONResponse(w, http.StatusOK, h.views(h.catalog.SuggestCandidates(term, suggestLimit)))
}

// GetCandidate handles GET /candidates/{id}
func (h *CatalogHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	cand, ok := h.catalog.CandidateByID(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, h.catalog.CandidateView(cand))
}

// ListParties handles GET /parties
func (h *CatalogHandler) ListParties(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, catalog.Parties())
}

// GetMeasure handles GET /measures/{id}
func (h *CatalogHandler) GetMeasure(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	m, ok := h.catalog.MeasureByID(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Measure not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, m)
}

// ListSurveyQuestions handles GET /survey-questions
func (h *CatalogHandler) ListSurveyQuestions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.catalog.SurveyQuestions())
}

// ListEarlyVotingLocations handles GET /early-voting-locations
func (h *CatalogHandler) ListEarlyVotingLocations(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.catalog.EarlyVotingLocations())
}

func (h *CatalogHandler) views(cands []models.Candidate) []models.CandidateView {
	views := make([]models.CandidateView, 0, len(cands))
	for _, c := range cands {
		views = append(views, h.catalog.CandidateView(c))
	}
	return views
}
