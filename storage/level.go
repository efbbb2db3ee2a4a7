// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Level keeps every device's values in one LevelDB, with keys
// namespaced as "<deviceID>/<key>".
type Level struct {
	db *leveldb.DB
}

// OpenLevel opens (or creates) the database directory at path
func OpenLevel(path string) (*Level, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb %s: %w", path, err)
	}
	return &Level{db: db}, nil
}

// NewLevel wraps an already open database
func NewLevel(db *leveldb.DB) *Level {
	return &Level{db: db}
}

func (l *Level) Close() error {
	return l.db.Close()
}

func (l *Level) Open(deviceID string) Storage {
	return &levelPartition{db: l.db, prefix: deviceID + "/"}
}

type levelPartition struct {
	db     *leveldb.DB
	prefix string
}

func (p *levelPartition) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	value, err := p.db.Get([]byte(p.prefix+key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return "", false, nil
	}
	if errors.Is(err, leveldb.ErrClosed) {
		return "", false, ErrClosed
	}
	if err != nil {
		return "", false, err
	}
	return string(value), true, nil
}

func (p *levelPartition) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := p.db.Put([]byte(p.prefix+key), []byte(value), nil)
	if errors.Is(err, leveldb.ErrClosed) {
		return ErrClosed
	}
	return err
}

func (p *levelPartition) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := p.db.Delete([]byte(p.prefix+key), nil)
	if errors.Is(err, leveldb.ErrClosed) {
		return ErrClosed
	}
	return err
}

func (p *levelPartition) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	iter := p.db.NewIterator(util.BytesPrefix([]byte(p.prefix+prefix)), nil)
	defer iter.Release()

	var keys []string
	for iter.Next() {
		keys = append(keys, string(iter.Key()[len(p.prefix):]))
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return keys, nil
}
