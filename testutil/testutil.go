// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/myballot/catalog"
	"github.com/danielhkuo/myballot/cliparse"
	"github.com/danielhkuo/myballot/device"
	"github.com/danielhkuo/myballot/storage"
)

// TestDeviceUUID is a well-formed device UUID for requests
const TestDeviceUUID = "9b2f4c1e-6d3a-4f8b-a1c2-0e5d7f9a3b6c"

// TestNow is mid-October 2026: the 2026-11-06 general election is the
// nearest upcoming one and its early-voting window has not opened.
var TestNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Host:            "127.0.0.1",
		Port:            3318,
		DatabaseType:    cliparse.DBMemory,
		DeviceKeySalt:   "test-device-salt",
		LogLevel:        "error",
		LogFormat:       "text",
		Timezone:        "UTC",
		ReminderFlowTTL: time.Minute,
		ShutdownTimeout: time.Second,
	}
}

// NewTestRegistry builds a registry over in-memory storage with a fake
// clock set to TestNow. Election dates are read in UTC.
func NewTestRegistry(t *testing.T) (*device.Registry, *clockwork.FakeClock) {
	t.Helper()

	cfg := GetTestConfig()
	clock := clockwork.NewFakeClockAt(TestNow)
	reg := device.NewRegistry(device.Options{
		Storage: storage.NewMemory(),
		Catalog: catalog.New(clock, time.UTC),
		Clock:   clock,
		Salt:    cfg.DeviceKeySalt,
		FlowTTL: cfg.ReminderFlowTTL,
	})
	return reg, clock
}

// DeviceHeaders returns the headers identifying a device
func DeviceHeaders(deviceUUID string) map[string]string {
	return map[string]string{"X-Device-UUID": deviceUUID}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// Serve runs a request through h and returns the recorded response
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
