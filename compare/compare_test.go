// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package compare

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/myballot/catalog"
	"github.com/danielhkuo/myballot/models"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(clockwork.NewFakeClockAt(time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)), time.UTC)
}

func TestBuild(t *testing.T) {
	c := testCatalog()
	noted := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	notes := func(id int) ([]models.NoteEntry, error) {
		if id == 117 {
			return []models.NoteEntry{
				{ID: "b", Date: noted.Add(time.Hour), Text: "Debate was sharp"},
				{ID: "a", Date: noted, Text: "Check record on trade"},
			}, nil
		}
		return nil, nil
	}

	cmp, err := Build(c, notes, 116, 117)
	require.NoError(t, err)

	assert.Equal(t, "Nov 7, 2028 Presidential", cmp.ElectionName)
	assert.Equal(t, "2028-11-07", cmp.ElectionDate)
	assert.Equal(t, "US President", cmp.OfficeName)
	assert.False(t, cmp.IsPast)

	assert.Equal(t, "Eleanor Vance / Marcus Cole", cmp.Candidates[0].DisplayName)
	assert.Nil(t, cmp.Candidates[0].LatestNote)
	assert.Zero(t, cmp.Candidates[0].NotesCount)

	require.NotNil(t, cmp.Candidates[1].LatestNote)
	assert.Equal(t, "Debate was sharp", cmp.Candidates[1].LatestNote.Text)
	assert.Equal(t, 2, cmp.Candidates[1].NotesCount)

	require.Len(t, cmp.Rows, 4)
	assert.Equal(t, "why_running", cmp.Rows[0].Key)
	assert.Equal(t, "To lead the nation towards a brighter, more inclusive future.", cmp.Rows[0].Answers[0])
	assert.Equal(t, "Two terms as Governor, former U.S. Senator.", cmp.Rows[2].Answers[0])
}

func TestBuildPicksSoleOpponent(t *testing.T) {
	cmp, err := Build(testCatalog(), nil, 116, 0)
	require.NoError(t, err)
	assert.Equal(t, 117, cmp.Candidates[1].ID)
}

func TestBuildErrors(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name     string
		id1, id2 int
		field    string
	}{
		{"unknown first", 9999, 1, "candidate1Id"},
		{"unknown second", 1, 9999, "candidate2Id"},
		{"same candidate", 116, 116, "candidate2Id"},
		{"different races", 1, 2, "candidate2Id"},
		{"same office different election", 116, 118, "candidate2Id"},
		{"crowded race needs a second pick", 118, 0, "candidate2Id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(c, nil, tt.id1, tt.id2)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Errors[0].Field)
		})
	}
}

func TestAnswerFallback(t *testing.T) {
	cand := models.Candidate{SurveyResponses: map[string]string{"why_running": "Because", "experience": ""}}
	assert.Equal(t, "Because", answer(cand, "why_running"))
	assert.Equal(t, noResponse, answer(cand, "experience"))
	assert.Equal(t, noResponse, answer(models.Candidate{}, "top_priority"))
}

func TestBuildReportsNoteLookupFailure(t *testing.T) {
	unreadable := errors.New("disk unavailable")
	notes := func(int) ([]models.NoteEntry, error) { return nil, unreadable }

	_, err := Build(testCatalog(), notes, 116, 117)
	assert.ErrorIs(t, err, unreadable)
	assert.NotErrorIs(t, err, models.ErrValidation)
}
