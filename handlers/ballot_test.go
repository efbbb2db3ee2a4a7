// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/testutil"
)

func TestBallotOverview(t *testing.T) {
	h := newTestServer(t)

	w := do(h, "GET", "/ballot", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)

	var got models.BallotOverview
	testutil.AssertJSON(t, w.ResponseRecorder, &got)
	require.NotNil(t, got.SelectedElectionDate)
	assert.Equal(t, "2026-11-06", *got.SelectedElectionDate)
	assert.Empty(t, got.ArchivedDates)
	assert.JSONEq(t, `{"selectedElectionDate":"2026-11-06","archivedDates":[],"archive":{}}`,
		do(h, "GET", "/ballot", nil).Body.String())
}

func TestSelectElection(t *testing.T) {
	h := newTestServer(t)

	w := do(h, "PUT", "/ballot/selected-election", models.SelectElectionRequest{ElectionDate: "2025-11-05"})
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)
	var got models.BallotOverview
	testutil.AssertJSON(t, w.ResponseRecorder, &got)
	require.NotNil(t, got.SelectedElectionDate)
	assert.Equal(t, "2025-11-05", *got.SelectedElectionDate)

	w = do(h, "PUT", "/ballot/selected-election", models.SelectElectionRequest{})
	got = models.BallotOverview{}
	testutil.AssertJSON(t, w.ResponseRecorder, &got)
	assert.Nil(t, got.SelectedElectionDate)

	w = do(h, "PUT", "/ballot/selected-election", models.SelectElectionRequest{ElectionDate: "soon"})
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusBadRequest)
	assert.Equal(t, "electionDate", w.errorBody(t).Fields[0].Field)
}

func TestCandidateSelection(t *testing.T) {
	h := newTestServer(t)

	w := do(h, "POST", "/ballot/2026-11-06/candidates", models.AddCandidateRequest{CandidateID: 2})
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusCreated)

	var ballot models.ElectionBallot
	testutil.AssertJSON(t, w.ResponseRecorder, &ballot)
	require.Len(t, ballot.Entries, 1)
	assert.Equal(t, models.CandidateSelection{CandidateID: 2, OfficeID: 2, District: "District 61"}, ballot.Entries[0])

	w = do(h, "GET", "/ballot/2026-11-06/candidates/2", nil)
	assert.JSONEq(t, `{"selected":true}`, w.Body.String())

	// Removing needs the matching district
	w = do(h, "DELETE", "/ballot/2026-11-06/candidates/2", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusNoContent)
	w = do(h, "GET", "/ballot/2026-11-06/candidates/2", nil)
	assert.JSONEq(t, `{"selected":true}`, w.Body.String())

	w = do(h, "DELETE", "/ballot/2026-11-06/candidates/2?district=District%2061", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusNoContent)
	w = do(h, "GET", "/ballot/2026-11-06/candidates/2", nil)
	assert.JSONEq(t, `{"selected":false}`, w.Body.String())

	// The emptied date is gone from the archive
	var overview models.BallotOverview
	testutil.AssertJSON(t, do(h, "GET", "/ballot", nil).ResponseRecorder, &overview)
	assert.Empty(t, overview.ArchivedDates)
}

func TestAddCandidateErrors(t *testing.T) {
	h := newTestServer(t)

	testCases := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"unknown candidate", "/ballot/2026-11-06/candidates", models.AddCandidateRequest{CandidateID: 9999}, http.StatusNotFound},
		{"other election", "/ballot/2025-11-05/candidates", models.AddCandidateRequest{CandidateID: 2}, http.StatusBadRequest},
		{"bad date", "/ballot/tomorrow/candidates", models.AddCandidateRequest{CandidateID: 2}, http.StatusBadRequest},
		{"bad json", "/ballot/2026-11-06/candidates", "not an object", http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(h, "POST", tc.path, tc.body)
			testutil.AssertStatus(t, w.ResponseRecorder, tc.status)
		})
	}
}

func TestMeasureStance(t *testing.T) {
	h := newTestServer(t)

	w := do(h, "GET", "/ballot/2026-11-06/measures/101", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)
	assert.JSONEq(t, `{"vote":null}`, w.Body.String())

	w = do(h, "PUT", "/ballot/2026-11-06/measures/101", models.MeasureStanceRequest{Vote: models.VoteSupport})
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)

	w = do(h, "PUT", "/ballot/2026-11-06/measures/101", models.MeasureStanceRequest{Vote: models.VoteOppose})
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)
	assert.JSONEq(t, `{"vote":"oppose"}`, w.Body.String())

	var ballot models.ElectionBallot
	testutil.AssertJSON(t, do(h, "GET", "/ballot/2026-11-06", nil).ResponseRecorder, &ballot)
	assert.Equal(t, models.BallotEntries{models.MeasureStance{MeasureID: 101, Vote: models.VoteOppose}}, ballot.Entries)

	w = do(h, "PUT", "/ballot/2026-11-06/measures/101", models.MeasureStanceRequest{Vote: "maybe"})
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusBadRequest)
	assert.Equal(t, "vote", w.errorBody(t).Fields[0].Field)

	w = do(h, "PUT", "/ballot/2026-11-06/measures/9999", models.MeasureStanceRequest{Vote: models.VoteSupport})
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusNotFound)

	w = do(h, "DELETE", "/ballot/2026-11-06/measures/101", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusNoContent)
	w = do(h, "GET", "/ballot/2026-11-06/measures/101", nil)
	assert.JSONEq(t, `{"vote":null}`, w.Body.String())
}

func TestMeasureStanceRequiresMatchingElection(t *testing.T) {
	h := newTestServer(t)

	// 102 is on the 2025-11-05 ballot
	w := do(h, "PUT", "/ballot/2026-11-06/measures/102", models.MeasureStanceRequest{Vote: models.VoteSupport})
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusBadRequest)
	assert.Equal(t, "measureId", w.errorBody(t).Fields[0].Field)

	w = do(h, "GET", "/ballot/2026-11-06/measures/102", nil)
	assert.JSONEq(t, `{"vote":null}`, w.Body.String())

	w = do(h, "PUT", "/ballot/2025-11-05/measures/102", models.MeasureStanceRequest{Vote: models.VoteSupport})
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)
}

func TestClearElectionBallot(t *testing.T) {
	h := newTestServer(t)

	do(h, "POST", "/ballot/2026-11-06/candidates", models.AddCandidateRequest{CandidateID: 2})
	do(h, "PUT", "/ballot/2026-11-06/measures/101", models.MeasureStanceRequest{Vote: models.VoteSupport})

	w := do(h, "DELETE", "/ballot/2026-11-06", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusNoContent)

	w = do(h, "GET", "/ballot/2026-11-06", nil)
	assert.JSONEq(t, `{"electionDate":"2026-11-06","entries":[],"reminder":null}`, w.Body.String())
}

func TestReminderRecord(t *testing.T) {
	h := newTestServer(t)

	w := do(h, "GET", "/ballot/2026-11-06/reminder", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusNotFound)

	rem := models.ReminderSettings{
		ReminderType:        models.ReminderElectionDay,
		ReminderDateTime:    "2026-11-06T14:00:00.000Z",
		NotificationMethods: []models.NotificationMethod{models.NotifyEmail},
		EmailAddress:        "voter@example.com",
	}
	w = do(h, "PUT", "/ballot/2026-11-06/reminder", rem)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusOK)

	var got models.ReminderSettings
	testutil.AssertJSON(t, do(h, "GET", "/ballot/2026-11-06/reminder", nil).ResponseRecorder, &got)
	assert.Equal(t, "2026-11-06", got.ElectionDate)
	assert.Equal(t, "voter@example.com", got.EmailAddress)

	// A reminder alone keeps the date in the archive
	var overview models.BallotOverview
	testutil.AssertJSON(t, do(h, "GET", "/ballot", nil).ResponseRecorder, &overview)
	assert.Equal(t, []string{"2026-11-06"}, overview.ArchivedDates)

	w = do(h, "DELETE", "/ballot/2026-11-06/reminder", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusNoContent)
	w = do(h, "GET", "/ballot/2026-11-06/reminder", nil)
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusNotFound)
}

func TestReminderRecordValidation(t *testing.T) {
	h := newTestServer(t)

	w := do(h, "PUT", "/ballot/2026-11-06/reminder", models.ReminderSettings{
		ElectionDate:        "2025-11-05",
		ReminderType:        "someday",
		ReminderDateTime:    "tomorrow",
		NotificationMethods: []models.NotificationMethod{"pigeon"},
	})
	testutil.AssertStatus(t, w.ResponseRecorder, http.StatusBadRequest)

	var fields []string
	for _, f := range w.errorBody(t).Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"electionDate", "reminderType", "reminderDateTime", "notificationMethods"}, fields)
}
