// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// Memory keeps values in process memory. Nothing survives a restart.
type Memory struct {
	mu      sync.RWMutex
	devices map[string]map[string]string
}

func NewMemory() *Memory {
	return &Memory{devices: make(map[string]map[string]string)}
}

func (m *Memory) Open(deviceID string) Storage {
	return &memoryPartition{m: m, deviceID: deviceID}
}

type memoryPartition struct {
	m        *Memory
	deviceID string
}

func (p *memoryPartition) Get(_ context.Context, key string) (string, bool, error) {
	p.m.mu.RLock()
	defer p.m.mu.RUnlock()

	value, ok := p.m.devices[p.deviceID][key]
	return value, ok, nil
}

func (p *memoryPartition) Set(_ context.Context, key, value string) error {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()

	values, ok := p.m.devices[p.deviceID]
	if !ok {
		values = make(map[string]string)
		p.m.devices[p.deviceID] = values
	}
	values[key] = value
	return nil
}

func (p *memoryPartition) Remove(_ context.Context, key string) error {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()

	delete(p.m.devices[p.deviceID], key)
	return nil
}

func (p *memoryPartition) Keys(_ context.Context, prefix string) ([]string, error) {
	p.m.mu.RLock()
	defer p.m.mu.RUnlock()

	var keys []string
	for key := range p.m.devices[p.deviceID] {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys, nil
}
