// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrClosed = errors.New("storage closed")
	// ErrCorrupt marks a stored value that could be read but not decoded
	ErrCorrupt = errors.New("corrupt value")
)

// Storage is a device's string-keyed value store. Values are opaque
// strings; LoadJSON and SaveJSON handle the JSON encoding.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	// Keys returns the stored keys beginning with prefix, sorted
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Opener hands out the Storage partition for a device
type Opener interface {
	Open(deviceID string) Storage
}

// LoadJSON decodes the value at key into v. It reports false, leaving v
// untouched, when the key is absent. Decode failures wrap ErrCorrupt;
// any other error means the store could not be read.
func LoadJSON(ctx context.Context, s Storage, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w: %w", key, ErrCorrupt, err)
	}
	return true, nil
}

// SaveJSON encodes v and stores it at key
func SaveJSON(ctx context.Context, s Storage, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
