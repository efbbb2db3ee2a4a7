// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/myballot/device"
	"github.com/danielhkuo/myballot/middleware"
	"github.com/danielhkuo/myballot/models"
)

// BallotHandler exposes a device's ballot archive and reminders
type BallotHandler struct {
	registry *device.Registry
}

func NewBallotHandler(reg *device.Registry) *BallotHandler {
	return &BallotHandler{registry: reg}
}

// GetOverview handles GET /ballot
func (h *BallotHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, overview(s))
}

// SelectElection handles PUT /ballot/selected-election
// An empty electionDate clears the selection.
func (h *BallotHandler) SelectElection(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}

	var req models.SelectElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	date := strings.TrimSpace(req.ElectionDate)
	if date != "" {
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			middleware.ValidationErrorResponse(w, models.NewValidationError("electionDate", "Election date must be YYYY-MM-DD."))
			return
		}
	}

	s.Ballot.SetSelectedElectionDate(date)
	middleware.JSONResponse(w, http.StatusOK, overview(s))
}

// GetElectionBallot handles GET /ballot/{date}
func (h *BallotHandler) GetElectionBallot(w http.ResponseWriter, r *http.Request) {
	s, date, ok := h.sessionAndDate(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, electionBallot(s, date))
}

// ClearElectionBallot handles DELETE /ballot/{date}
// Removes every entry for the election. A reminder is kept.
func (h *BallotHandler) ClearElectionBallot(w http.ResponseWriter, r *http.Request) {
	s, date, ok := h.sessionAndDate(w, r)
	if !ok {
		return
	}
	s.Ballot.ClearBallotForElection(r.Context(), date)
	w.WriteHeader(http.StatusNoContent)
}

// AddCandidate handles POST /ballot/{date}/candidates
// Replaces any earlier pick for the same race.
func (h *BallotHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	s, date, ok := h.sessionAndDate(w, r)
	if !ok {
		return
	}

	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c := h.registry.Catalog()
	cand, ok := c.CandidateByID(req.CandidateID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if e, ok := c.CandidateElection(cand); !ok || e.ElectionDate != date {
		middleware.ValidationErrorResponse(w, models.NewValidationError("candidateId", "Candidate is not on the ballot for this election."))
		return
	}

	s.Ballot.AddCandidateSelection(r.Context(), cand, date)
	middleware.JSONResponse(w, http.StatusCreated, electionBallot(s, date))
}

// RemoveCandidate handles DELETE /ballot/{date}/candidates/{officeId}?district=
func (h *BallotHandler) RemoveCandidate(w http.ResponseWriter, r *http.Request) {
	s, date, ok := h.sessionAndDate(w, r)
	if !ok {
		return
	}
	officeID, ok := pathID(w, r, "officeId")
	if !ok {
		return
	}

	s.Ballot.RemoveCandidateSelection(r.Context(), officeID, r.URL.Query().Get("district"), date)
	w.WriteHeader(http.StatusNoContent)
}

// GetCandidateSelection handles GET /ballot/{date}/candidates/{id}
func (h *BallotHandler) GetCandidateSelection(w http.ResponseWriter, r *http.Request) {
	s, date, ok := h.sessionAndDate(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.SelectionStatus{
		Selected: s.Ballot.IsCandidateSelected(id, date),
	})
}

// SetMeasureStance handles PUT /ballot/{date}/measures/{id}
func (h *BallotHandler) SetMeasureStance(w http.ResponseWriter, r *http.Request) {
	s, date, ok := h.sessionAndDate(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.MeasureStanceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !req.Vote.Valid() {
		middleware.ValidationErrorResponse(w, models.NewValidationError("vote", "Vote must be support or oppose."))
		return
	}
	measure, ok := h.registry.Catalog().MeasureByID(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Measure not found")
		return
	}
	if measure.ElectionDate != date {
		middleware.ValidationErrorResponse(w, models.NewValidationError("measureId", "Measure is not on the ballot for this election."))
		return
	}

	s.Ballot.SetMeasureStance(r.Context(), id, req.Vote, date)
	vote := req.Vote
	middleware.JSONResponse(w, http.StatusOK, models.MeasureStanceResponse{Vote: &vote})
}

// RemoveMeasureStance handles DELETE /ballot/{date}/measures/{id}
func (h *BallotHandler) RemoveMeasureStance(w http.ResponseWriter, r *http.Request) {
	s, date, ok := h.sessionAndDate(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	s.Ballot.RemoveMeasureStance(r.Context(), id, date)
	w.WriteHeader(http.StatusNoContent)
}

// GetMeasureStance handles GET /ballot/{date}/measures/{id}
// vote is null when no stance is recorded.
func (h *BallotHandler) GetMeasureStance(w http.ResponseWriter, r *http.Request) {
	s, date, ok := h.sessionAndDate(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var resp models.MeasureStanceResponse
	if vote, ok := s.Ballot.SelectedMeasureStance(id, date); ok {
		resp.Vote = &vote
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetReminder handles GET /ballot/{date}/reminder
func (h *BallotHandler) GetReminder(w http.ResponseWriter, r *http.Request) {
	s, date, ok := h.sessionAndDate(w, r)
	if !ok {
		return
	}
	rem, ok := s.Ballot.ElectionReminder(date)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "No reminder set for this election")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, rem)
}

// PutReminder handles PUT /ballot/{date}/reminder
// Replaces the whole reminder record without going through a flow.
func (h *BallotHandler) PutReminder(w http.ResponseWriter, r *http.Request) {
	s, date, ok := h.sessionAndDate(w, r)
	if !ok {
		return
	}

	var rem models.ReminderSettings
	if err := middleware.ParseJSONBody(r, &rem); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validateReminder(&rem, date); err != nil {
		middleware.ValidationErrorResponse(w, err)
		return
	}

	s.Ballot.SetElectionReminder(r.Context(), date, &rem)
	middleware.JSONResponse(w, http.StatusOK, rem)
}

// DeleteReminder handles DELETE /ballot/{date}/reminder
func (h *BallotHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	s, date, ok := h.sessionAndDate(w, r)
	if !ok {
		return
	}
	s.Ballot.SetElectionReminder(r.Context(), date, nil)
	w.WriteHeader(http.StatusNoContent)
}

func (h *BallotHandler) sessionAndDate(w http.ResponseWriter, r *http.Request) (*device.Session, string, bool) {
	date, ok := pathDate(w, r)
	if !ok {
		return nil, "", false
	}
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return nil, "", false
	}
	return s, date, true
}

// validateReminder checks a reminder record and normalizes it for date
func validateReminder(rem *models.ReminderSettings, date string) error {
	verr := &models.ValidationError{}
	if rem.ElectionDate != "" && rem.ElectionDate != date {
		verr.Add("electionDate", "Election date does not match the URL.")
	}
	if !rem.ReminderType.Valid() {
		verr.Add("reminderType", "Reminder type must be earlyVote or electionDay.")
	}
	if _, err := time.Parse(time.RFC3339, rem.ReminderDateTime); err != nil {
		verr.Add("reminderDateTime", "Reminder time must be an RFC 3339 timestamp.")
	}
	for _, m := range rem.NotificationMethods {
		switch m {
		case models.NotifyText, models.NotifyEmail, models.NotifyApp:
		default:
			verr.Add("notificationMethods", "Unknown notification method "+string(m)+".")
		}
	}
	if err := verr.Err(); err != nil {
		return err
	}

	rem.ElectionDate = date
	if rem.NotificationMethods == nil {
		rem.NotificationMethods = []models.NotificationMethod{}
	}
	return nil
}

func overview(s *device.Session) models.BallotOverview {
	resp := models.BallotOverview{
		ArchivedDates: s.Ballot.ArchivedElectionDates(),
		Archive:       s.Ballot.Snapshot(),
	}
	if resp.ArchivedDates == nil {
		resp.ArchivedDates = []string{}
	}
	if date, ok := s.Ballot.SelectedElectionDate(); ok {
		resp.SelectedElectionDate = &date
	}
	return resp
}

func electionBallot(s *device.Session, date string) models.ElectionBallot {
	resp := models.ElectionBallot{
		ElectionDate: date,
		Entries:      s.Ballot.Entries(date),
	}
	if rem, ok := s.Ballot.ElectionReminder(date); ok {
		resp.Reminder = &rem
	}
	return resp
}
