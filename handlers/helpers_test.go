// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/myballot/catalog"
	"github.com/danielhkuo/myballot/device"
	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/router"
	"github.com/danielhkuo/myballot/storage"
	"github.com/danielhkuo/myballot/testutil"
)

type httptestResponse struct {
	*httptest.ResponseRecorder
}

// errorBody decodes an error response
func (w *httptestResponse) errorBody(t *testing.T) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w.ResponseRecorder, &resp)
	return resp
}

func TestDeviceHeaderRequired(t *testing.T) {
	h := newTestServer(t)

	testCases := []struct {
		name    string
		headers map[string]string
		message string
	}{
		{"missing", nil, "X-Device-UUID header required"},
		{"invalid", testutil.DeviceHeaders("not a uuid!"), "Invalid X-Device-UUID header"},
		{"too short", testutil.DeviceHeaders("abc"), "Invalid X-Device-UUID header"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/ballot", nil, tc.headers)
			w := &httptestResponse{testutil.Serve(h, req)}

			testutil.AssertStatus(t, w.ResponseRecorder, http.StatusBadRequest)
			assert.Equal(t, tc.message, w.errorBody(t).Message)
		})
	}
}

// outageOpener fails every read while down is set
type outageOpener struct {
	storage.Opener
	down *atomic.Bool
}

func (o outageOpener) Open(deviceID string) storage.Storage {
	return outageStorage{Storage: o.Opener.Open(deviceID), down: o.down}
}

type outageStorage struct {
	storage.Storage
	down *atomic.Bool
}

func (s outageStorage) Get(ctx context.Context, key string) (string, bool, error) {
	if s.down.Load() {
		return "", false, errors.New("connection refused")
	}
	return s.Storage.Get(ctx, key)
}

func TestStorageOutageIsRetryable(t *testing.T) {
	down := &atomic.Bool{}
	down.Store(true)
	clock := clockwork.NewFakeClockAt(testutil.TestNow)
	reg := device.NewRegistry(device.Options{
		Storage: outageOpener{Opener: storage.NewMemory(), down: down},
		Catalog: catalog.New(clock, time.UTC),
		Clock:   clock,
		Salt:    testutil.GetTestConfig().DeviceKeySalt,
	})
	h := router.NewRouter(reg)

	w := do(h, "GET", "/ballot", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusServiceUnavailable)

	down.Store(false)
	w = do(h, "GET", "/ballot", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)

	down.Store(true)
	w = do(h, "GET", "/candidates/2/notes", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusServiceUnavailable)
	w = do(h, "GET", "/compare?candidate1Id=116", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusServiceUnavailable)

	down.Store(false)
	w = do(h, "GET", "/candidates/2/notes", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)
}
