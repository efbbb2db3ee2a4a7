// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/myballot/device"
	"github.com/danielhkuo/myballot/middleware"
	"github.com/danielhkuo/myballot/models"
)

type SettingsHandler struct {
	registry *device.Registry
}

func NewSettingsHandler(reg *device.Registry) *SettingsHandler {
	return &SettingsHandler{registry: reg}
}

// GetDensity handles GET /settings/density
func (h *SettingsHandler) GetDensity(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DensityResponse{Density: s.Settings.Density()})
}

// SetDensity handles PUT /settings/density
func (h *SettingsHandler) SetDensity(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}

	var req models.DensityRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := s.Settings.SetDensity(r.Context(), req.Density); err != nil {
		validationOr(w, err, "Failed to save density")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DensityResponse{Density: s.Settings.Density()})
}
