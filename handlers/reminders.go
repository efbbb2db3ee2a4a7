// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/myballot/device"
	"github.com/danielhkuo/myballot/middleware"
	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/reminder"
)

// ReminderFlowHandler drives the reminder setup wizard. A flow holds its
// choices in memory until it is finalized; each response carries the
// flow's current state.
type ReminderFlowHandler struct {
	registry *device.Registry
}

func NewReminderFlowHandler(reg *device.Registry) *ReminderFlowHandler {
	return &ReminderFlowHandler{registry: reg}
}

type reminderFlowResponse struct {
	ID string `json:"id"`
	reminder.State
	Reminder *models.ReminderSettings `json:"reminder,omitempty"`
}

// Start handles POST /ballot/{date}/reminder-flow
// Opens in edit mode when the election already has a reminder.
func (h *ReminderFlowHandler) Start(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}

	id, flow, err := s.StartReminderFlow(r.Context(), date)
	if errors.Is(err, device.ErrUnknownElection) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}
	if err != nil {
		slog.Error("failed to start reminder flow", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start reminder setup")
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, reminderFlowResponse{ID: id, State: flow.State()})
}

// Get handles GET /reminder-flows/{id}
func (h *ReminderFlowHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, flow, ok := h.flow(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, reminderFlowResponse{ID: id, State: flow.State()})
}

// Act handles POST /reminder-flows/{id}/{action}
// Actions: period, datetime, location, notifications, calendar, back,
// edit, finalize, close.
func (h *ReminderFlowHandler) Act(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	flow, err := s.ReminderFlow(id)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Reminder setup not found or expired")
		return
	}

	resp := reminderFlowResponse{ID: id}
	switch r.PathValue("action") {
	case "period":
		var req models.ReminderPeriodRequest
		if !parseBody(w, r, &req) {
			return
		}
		err = flow.ChoosePeriod(req.ReminderType)
	case "datetime":
		var req models.ReminderDateTimeRequest
		if !parseBody(w, r, &req) {
			return
		}
		err = flow.SetDateTime(req.Date, req.Time)
	case "location":
		var req models.ReminderLocationRequest
		if !parseBody(w, r, &req) {
			return
		}
		err = flow.ChooseLocation(req.LocationID)
	case "notifications":
		var req models.ReminderNotificationsRequest
		if !parseBody(w, r, &req) {
			return
		}
		err = flow.SetNotifications(reminder.Preferences(req))
	case "calendar":
		_, err = flow.ShowCalendarDetails()
	case "back":
		err = flow.Back()
	case "edit":
		err = flow.Edit()
	case "finalize":
		var saved models.ReminderSettings
		if saved, err = flow.Finalize(r.Context()); err == nil {
			resp.Reminder = &saved
			slog.Info("reminder saved", "device_id", s.ID, "election_date", saved.ElectionDate, "type", saved.ReminderType)
		}
	case "close":
		if err := s.CloseReminderFlow(id); err != nil {
			middleware.ErrorResponse(w, http.StatusNotFound, "Reminder setup not found or expired")
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	default:
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown reminder action")
		return
	}

	if err != nil {
		flowError(w, err)
		return
	}
	resp.State = flow.State()
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Delete handles DELETE /reminder-flows/{id}
// Deletes the reminder being edited and ends the flow.
func (h *ReminderFlowHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	flow, err := s.ReminderFlow(id)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Reminder setup not found or expired")
		return
	}

	if err := flow.Delete(r.Context()); err != nil {
		flowError(w, err)
		return
	}
	// The flow is closed now; this only evicts it
	_ = s.CloseReminderFlow(id)
	slog.Info("reminder deleted", "device_id", s.ID, "flow_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReminderFlowHandler) flow(w http.ResponseWriter, r *http.Request) (string, *reminder.Flow, bool) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return "", nil, false
	}
	id := r.PathValue("id")
	flow, err := s.ReminderFlow(id)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Reminder setup not found or expired")
		return "", nil, false
	}
	return id, flow, true
}

func parseBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := middleware.ParseJSONBody(r, v); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}
	return true
}

func flowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		middleware.ValidationErrorResponse(w, err)
	case errors.Is(err, reminder.ErrWrongStep),
		errors.Is(err, reminder.ErrDeleteNotAllowed),
		errors.Is(err, reminder.ErrClosed):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error("reminder flow failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Reminder setup failed")
	}
}
