// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/router"
	"github.com/danielhkuo/myballot/testutil"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	reg, _ := testutil.NewTestRegistry(t)
	return router.NewRouter(reg)
}

// do sends a request as the test device
func do(h http.Handler, method, path string, body any) *httptestResponse {
	req := testutil.MakeRequest(method, path, body, testutil.DeviceHeaders(testutil.TestDeviceUUID))
	return &httptestResponse{testutil.Serve(h, req)}
}

func TestListElections(t *testing.T) {
	h := newTestServer(t)

	w := do(h, "GET", "/elections", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)

	var got []models.ElectionView
	testutil.AssertJSON(t, w.ResponseRecorder, &got)
	require.Len(t, got, 7)
	assert.Equal(t, "2026-11-06", got[0].ElectionDate)
	assert.Equal(t, "Nov 6, 2026 General", got[0].DisplayName)
	assert.False(t, got[0].IsPast)
	assert.Equal(t, "2025-11-05", got[3].ElectionDate)
	assert.True(t, got[3].IsPast)
}

func TestGetElection(t *testing.T) {
	h := newTestServer(t)

	testCases := []struct {
		name   string
		path   string
		status int
	}{
		{"known", "/elections/2026-11-06", http.StatusOK},
		{"unknown", "/elections/2030-01-01", http.StatusNotFound},
		{"malformed", "/elections/next-week", http.StatusBadRequest},
		{"measures", "/elections/2026-11-06/measures", http.StatusOK},
		{"results unknown", "/elections/2030-01-01/results", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(h, "GET", tc.path, nil)
			testutil.AssertStatus(t, w.ResponseRecorder, tc.status)
		})
	}
}

func TestElectionResults(t *testing.T) {
	h := newTestServer(t)

	w := do(h, "GET", "/elections/2024-03-05/results", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)
	var results []models.OfficeElectionResults
	testutil.AssertJSON(t, w.ResponseRecorder, &results)
	assert.Len(t, results, 3)

	// Upcoming elections have no results yet
	w = do(h, "GET", "/elections/2026-11-06/results", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCandidates(t *testing.T) {
	h := newTestServer(t)

	t.Run("get one", func(t *testing.T) {
		w := do(h, "GET", "/candidates/2", nil)
		testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)

		var got models.CandidateView
		testutil.AssertJSON(t, w.ResponseRecorder, &got)
		assert.Equal(t, "Jane Doe", got.DisplayName)
		assert.Equal(t, "State Representative, District 61", got.OfficeName)
		assert.Equal(t, "Nov 6, 2026 General", got.ElectionName)
	})

	t.Run("unknown", func(t *testing.T) {
		w := do(h, "GET", "/candidates/9999", nil)
		testutil.AssertStatus(t, w.ResponseRecorder, http.StatusNotFound)
	})

	t.Run("bad id", func(t *testing.T) {
		w := do(h, "GET", "/candidates/abc", nil)
		testutil.AssertStatus(t, w.ResponseRecorder, http.StatusBadRequest)
	})

	t.Run("filter by election and office", func(t *testing.T) {
		w := do(h, "GET", "/candidates?electionDate=2028-11-07&officeId=5", nil)
		testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)

		var got []models.CandidateView
		testutil.AssertJSON(t, w.ResponseRecorder, &got)
		require.Len(t, got, 2)
		assert.Equal(t, "Eleanor Vance / Marcus Cole", got[0].DisplayName)
	})

	t.Run("suggest", func(t *testing.T) {
		w := do(h, "GET", "/candidates/suggest?q=jane", nil)
		testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)

		var got []models.CandidateView
		testutil.AssertJSON(t, w.ResponseRecorder, &got)
		ids := make([]int, len(got))
		for i, c := range got {
			ids[i] = c.ID
		}
		assert.Contains(t, ids, 2)
	})

	t.Run("suggest blank", func(t *testing.T) {
		w := do(h, "GET", "/candidates/suggest?q=", nil)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestDistricts(t *testing.T) {
	h := newTestServer(t)

	w := do(h, "GET", "/offices/2/districts?electionId=1", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)
	var got []string
	testutil.AssertJSON(t, w.ResponseRecorder, &got)
	assert.Contains(t, got, "District 61")

	w = do(h, "GET", "/offices/2/districts", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusBadRequest)
}

func TestReferenceLists(t *testing.T) {
	h := newTestServer(t)

	var questions []models.SurveyQuestion
	w := do(h, "GET", "/survey-questions", nil)
	testutil.AssertJSON(t, w.ResponseRecorder, &questions)
	assert.Len(t, questions, 4)

	var locations []models.EarlyVotingLocation
	w = do(h, "GET", "/early-voting-locations", nil)
	testutil.AssertJSON(t, w.ResponseRecorder, &locations)
	require.NotEmpty(t, locations)
	assert.Equal(t, "City Hall", locations[0].Name)

	var measure models.BallotMeasure
	w = do(h, "GET", "/measures/101", nil)
	testutil.AssertJSON(t, w.ResponseRecorder, &measure)
	assert.Equal(t, "2026-11-06", measure.ElectionDate)

	w = do(h, "GET", "/measures/9999", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusNotFound)
}
