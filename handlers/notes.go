// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/danielhkuo/myballot/device"
	"github.com/danielhkuo/myballot/middleware"
	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/notes"
)

// NotesHandler manages a device's private notes on candidates
type NotesHandler struct {
	registry *device.Registry
}

func NewNotesHandler(reg *device.Registry) *NotesHandler {
	return &NotesHandler{registry: reg}
}

// List handles GET /candidates/{id}/notes
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	s, id, ok := h.sessionAndCandidate(w, r)
	if !ok {
		return
	}
	entries, err := s.Notes(r.Context(), id)
	if err != nil {
		storageError(w, err, "failed to load notes")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, entries)
}

// Add handles POST /candidates/{id}/notes
func (h *NotesHandler) Add(w http.ResponseWriter, r *http.Request) {
	s, id, ok := h.sessionAndCandidate(w, r)
	if !ok {
		return
	}

	var req models.NoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	nb, err := s.Notebook(r.Context(), id)
	if err != nil {
		storageError(w, err, "failed to load notes")
		return
	}
	note, ok := nb.Add(r.Context(), req.Text)
	if !ok {
		middleware.ValidationErrorResponse(w, models.NewValidationError("text", "Note cannot be empty."))
		return
	}
	slog.Debug("note added", "device_id", s.ID, "candidate_id", id)
	middleware.JSONResponse(w, http.StatusCreated, note)
}

// Update handles PUT /candidates/{id}/notes/{noteId}
// Blank text deletes the note and returns 204.
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	s, id, ok := h.sessionAndCandidate(w, r)
	if !ok {
		return
	}

	var req models.NoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	nb, err := s.Notebook(r.Context(), id)
	if err != nil {
		storageError(w, err, "failed to load notes")
		return
	}
	noteID := r.PathValue("noteId")
	if !hasNote(nb, noteID) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Note not found")
		return
	}

	note, ok := nb.Update(r.Context(), noteID, req.Text)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, note)
}

// Delete handles DELETE /candidates/{id}/notes/{noteId}
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, id, ok := h.sessionAndCandidate(w, r)
	if !ok {
		return
	}
	nb, err := s.Notebook(r.Context(), id)
	if err != nil {
		storageError(w, err, "failed to load notes")
		return
	}
	if !nb.Delete(r.Context(), r.PathValue("noteId")) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Note not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Summary handles GET /notes/summary
// Lists candidates with notes, sorted by name.
func (h *NotesHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}
	items, err := s.NotesSummary(r.Context())
	if err != nil {
		slog.Error("failed to summarize notes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load notes")
		return
	}
	if items == nil {
		items = []models.NoteSummaryItem{}
	}
	middleware.JSONResponse(w, http.StatusOK, items)
}

func (h *NotesHandler) sessionAndCandidate(w http.ResponseWriter, r *http.Request) (*device.Session, int, bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return nil, 0, false
	}
	if _, ok := h.registry.Catalog().CandidateByID(id); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return nil, 0, false
	}
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return nil, 0, false
	}
	return s, id, true
}

func hasNote(nb *notes.Notebook, id string) bool {
	return slices.ContainsFunc(nb.Notes(), func(e models.NoteEntry) bool { return e.ID == id })
}
