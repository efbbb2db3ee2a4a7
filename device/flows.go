// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package device

import (
	"context"
	"errors"
	"fmt"

	"github.com/patrickmn/go-cache"

	"github.com/danielhkuo/myballot/auth"
	"github.com/danielhkuo/myballot/catalog"
	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/reminder"
)

var (
	ErrUnknownElection = errors.New("unknown election")
	ErrFlowNotFound    = errors.New("reminder flow not found")
)

// flowCache keeps in-progress reminder flows until they go idle
type flowCache struct {
	c *cache.Cache
}

type flowEntry struct {
	deviceID string
	flow     *reminder.Flow
}

func (fc *flowCache) put(id string, e flowEntry) {
	fc.c.Set(id, e, cache.DefaultExpiration)
}

func (fc *flowCache) get(id string) (flowEntry, bool) {
	v, ok := fc.c.Get(id)
	if !ok {
		return flowEntry{}, false
	}
	return v.(flowEntry), true
}

// StartReminderFlow opens the reminder wizard for the election on date.
// It starts in edit mode when a reminder already exists.
func (s *Session) StartReminderFlow(ctx context.Context, date string) (string, *reminder.Flow, error) {
	election, ok := s.catalog.ElectionByDate(date)
	if !ok {
		return "", nil, ErrUnknownElection
	}

	var existing *models.ReminderSettings
	if r, ok := s.Ballot.ElectionReminder(date); ok {
		existing = &r
	}

	id, err := auth.GenerateID(12)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create flow ID: %w", err)
	}

	flow := reminder.NewFlow(reminder.FlowOptions{
		Election:    election,
		DisplayName: catalog.FormattedElectionName(election),
		Existing:    existing,
		Locations:   s.catalog.EarlyVotingLocations(),
		Location:    s.catalog.Location(),
		Clock:       s.clock,
		Saver: func(ctx context.Context, settings *models.ReminderSettings) {
			s.Ballot.SetElectionReminder(ctx, date, settings)
		},
	})
	s.flows.put(id, flowEntry{deviceID: s.ID, flow: flow})
	s.logger.Info("reminder flow started", "flow_id", id, "election_date", date, "editing", existing != nil)
	return id, flow, nil
}

// ReminderFlow returns one of this device's open flows. Each lookup
// restarts the idle timer; closed flows are dropped.
func (s *Session) ReminderFlow(id string) (*reminder.Flow, error) {
	e, ok := s.flows.get(id)
	if !ok || e.deviceID != s.ID {
		return nil, ErrFlowNotFound
	}
	if e.flow.Closed() {
		s.flows.c.Delete(id)
		return nil, ErrFlowNotFound
	}
	s.flows.put(id, e)
	return e.flow, nil
}

// CloseReminderFlow discards a flow and any unsaved choices in it
func (s *Session) CloseReminderFlow(id string) error {
	flow, err := s.ReminderFlow(id)
	if err != nil {
		return err
	}
	flow.Close()
	s.flows.c.Delete(id)
	return nil
}
