// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notes

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/danielhkuo/myballot/catalog"
	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/storage"
)

// Summarize lists every candidate the device has notes for, sorted by
// candidate name. Keys for unknown candidates, empty lists and values
// that fail to decode are skipped.
func Summarize(ctx context.Context, s storage.Storage, c *catalog.Catalog) ([]models.NoteSummaryItem, error) {
	keys, err := s.Keys(ctx, KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	summary := []models.NoteSummaryItem{}
	for _, key := range keys {
		id, err := strconv.Atoi(strings.TrimPrefix(key, KeyPrefix))
		if err != nil {
			continue
		}

		var entries []models.NoteEntry
		if _, err := storage.LoadJSON(ctx, s, key, &entries); err != nil {
			slog.Warn("Skipping unreadable notes", "key", key, "error", err)
			continue
		}
		if len(entries) == 0 {
			continue
		}
		cand, ok := c.CandidateByID(id)
		if !ok {
			continue
		}

		sortNewestFirst(entries)
		latest := entries[0]

		electionName := ""
		if e, ok := c.CandidateElection(cand); ok {
			electionName = catalog.FormattedElectionName(e)
		}
		summary = append(summary, models.NoteSummaryItem{
			CandidateID:          cand.ID,
			CandidateName:        catalog.CandidateDisplayName(cand),
			CandidateProfileLink: "/candidate/" + strconv.Itoa(cand.ID),
			OfficeName:           c.FormattedCandidateOfficeName(cand),
			ElectionName:         electionName,
			NotesCount:           len(entries),
			LatestNote:           &latest,
		})
	}

	slices.SortStableFunc(summary, func(a, b models.NoteSummaryItem) int {
		return cmp.Compare(strings.ToLower(a.CandidateName), strings.ToLower(b.CandidateName))
	})
	return summary, nil
}
