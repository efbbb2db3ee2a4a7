// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/danielhkuo/myballot/device"
	"github.com/danielhkuo/myballot/middleware"
	"github.com/danielhkuo/myballot/models"
)

type DeviceHandler struct {
	registry *device.Registry
}

func NewDeviceHandler(reg *device.Registry) *DeviceHandler {
	return &DeviceHandler{registry: reg}
}

// Register handles POST /devices/register
// Records the device's platform and returns its partition ID
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}

	var req models.RegisterDeviceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !isValidPlatform(req.Platform) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "platform must be one of: ios, macos, android, web")
		return
	}

	info, isNew, err := h.registry.Register(r.Context(), s, req.Platform)
	if err != nil {
		slog.Error("failed to register device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register device")
		return
	}

	status := http.StatusOK
	if isNew {
		status = http.StatusCreated
		slog.Info("device registered (new)", "device_id", info.ID, "platform", info.Platform)
	} else {
		slog.Info("device registered (existing)", "device_id", info.ID)
	}
	middleware.JSONResponse(w, status, models.RegisterDeviceResponse{
		DeviceID: info.ID,
		IsNew:    isNew,
	})
}

// GetMe handles GET /devices/me
// Returns current device info
func (h *DeviceHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}

	info, err := h.registry.Info(r.Context(), s)
	if errors.Is(err, device.ErrNotRegistered) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Device not registered")
		return
	}
	if err != nil {
		slog.Error("failed to load device info", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load device")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, info)
}

func isValidPlatform(platform string) bool {
	return slices.Contains([]string{
		models.PlatformIOS,
		models.PlatformMacOS,
		models.PlatformAndroid,
		models.PlatformWeb,
	}, platform)
}
