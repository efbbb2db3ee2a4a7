// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/myballot/auth"
	"github.com/danielhkuo/myballot/device"
	"github.com/danielhkuo/myballot/middleware"
	"github.com/danielhkuo/myballot/models"
)

// DeviceHeader names the device a request acts for
const DeviceHeader = "X-Device-UUID"

// deviceSession resolves the request's device. On failure the error
// response has been written and ok is false.
func deviceSession(reg *device.Registry, w http.ResponseWriter, r *http.Request) (*device.Session, bool) {
	deviceUUID := r.Header.Get(DeviceHeader)
	if deviceUUID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Device-UUID header required")
		return nil, false
	}

	s, err := reg.Session(r.Context(), deviceUUID)
	if errors.Is(err, auth.ErrInvalidDeviceUUID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid X-Device-UUID header")
		return nil, false
	}
	if err != nil {
		storageError(w, err, "failed to load device session")
		return nil, false
	}
	return s, true
}

// storageError answers 503 when device storage could not be read, so
// the client can retry, and 500 otherwise.
func storageError(w http.ResponseWriter, err error, msg string) {
	slog.Error(msg, "error", err)
	if errors.Is(err, device.ErrUnavailable) {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Device storage unavailable, try again")
		return
	}
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load device")
}

// pathID parses a positive integer path value
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// pathDate reads a YYYY-MM-DD path value
func pathDate(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := r.PathValue("date")
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Election date must be YYYY-MM-DD")
		return "", false
	}
	return date, true
}

// queryInt parses an optional integer query parameter. Absent means 0.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return n, true
}

// validationOr writes a 400 for validation errors, a 503 when device
// storage is unreadable and a 500 otherwise
func validationOr(w http.ResponseWriter, err error, msg string) {
	if errors.Is(err, models.ErrValidation) {
		middleware.ValidationErrorResponse(w, err)
		return
	}
	if errors.Is(err, device.ErrUnavailable) {
		storageError(w, err, msg)
		return
	}
	slog.Error(msg, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, msg)
}
