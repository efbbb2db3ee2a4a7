// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"
)

// ItemType discriminates ballot entries in their JSON form
type ItemType string

const (
	ItemCandidate ItemType = "candidate"
	ItemMeasure   ItemType = "measure"
)

// Vote is a stance on a ballot measure
type Vote string

const (
	VoteSupport Vote = "support"
	VoteOppose  Vote = "oppose"
)

func (v Vote) Valid() bool {
	return v == VoteSupport || v == VoteOppose
}

// BallotEntry is either a CandidateSelection or a MeasureStance.
// The set is closed; switch on the concrete type.
type BallotEntry interface {
	ItemType() ItemType
	ballotEntry()
}

// Race identifies a single contested seat within an election
type Race struct {
	OfficeID int
	District string
}

type CandidateSelection struct {
	CandidateID int    `json:"candidateId"`
	OfficeID    int    `json:"officeId"`
	District    string `json:"district,omitempty"`
}

func (CandidateSelection) ItemType() ItemType { return ItemCandidate }
func (CandidateSelection) ballotEntry()       {}

// Race returns the (office, district) pair this selection fills
func (s CandidateSelection) Race() Race {
	return Race{OfficeID: s.OfficeID, District: s.District}
}

func (s CandidateSelection) MarshalJSON() ([]byte, error) {
	type plain CandidateSelection
	return json.Marshal(struct {
		ItemType ItemType `json:"itemType"`
		plain
	}{ItemCandidate, plain(s)})
}

type MeasureStance struct {
	MeasureID int  `json:"measureId"`
	Vote      Vote `json:"vote"`
}

func (MeasureStance) ItemType() ItemType { return ItemMeasure }
func (MeasureStance) ballotEntry()       {}

func (s MeasureStance) MarshalJSON() ([]byte, error) {
	type plain MeasureStance
	return json.Marshal(struct {
		ItemType ItemType `json:"itemType"`
		plain
	}{ItemMeasure, plain(s)})
}

// BallotEntries is the ordered entry list stored for one election date
type BallotEntries []BallotEntry

func (e *BallotEntries) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	entries := make(BallotEntries, 0, len(raw))
	for i, item := range raw {
		var head struct {
			ItemType ItemType `json:"itemType"`
		}
		if err := json.Unmarshal(item, &head); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}

		switch head.ItemType {
		case ItemCandidate:
			var s CandidateSelection
			if err := json.Unmarshal(item, &s); err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			entries = append(entries, s)
		case ItemMeasure:
			var s MeasureStance
			if err := json.Unmarshal(item, &s); err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			entries = append(entries, s)
		default:
			return fmt.Errorf("entry %d: unknown item type %q", i, head.ItemType)
		}
	}

	*e = entries
	return nil
}

// BallotArchive maps election date to that election's entries
type BallotArchive map[string]BallotEntries
