// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jonboulle/clockwork"
)

const kvTable = "kv_entry"

// SQL stores every device's values in the kv_entry table, one row per
// (device_id, key). The schema comes from db.CreateSchema.
type SQL struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	clock   clockwork.Clock
}

// NewSQL wraps an open database. dialect picks the placeholder style:
// "postgres" uses $1, anything else uses ?. clock stamps updated_at and
// defaults to the real clock.
func NewSQL(db *sql.DB, dialect string, clock clockwork.Clock) *SQL {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == "postgres" {
		format = sq.Dollar
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &SQL{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(format),
		clock:   clock,
	}
}

func (s *SQL) Open(deviceID string) Storage {
	return &sqlPartition{SQL: s, deviceID: deviceID}
}

type sqlPartition struct {
	*SQL
	deviceID string
}

func (p *sqlPartition) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := p.builder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"device_id": p.deviceID, "key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("failed to build query: %w", err)
	}

	var value string
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (p *sqlPartition) Set(ctx context.Context, key, value string) error {
	query, args, err := p.builder.
		Insert(kvTable).
		Columns("device_id", "key", "value", "updated_at").
		Values(p.deviceID, key, value, p.clock.Now().UTC()).
		Suffix("ON CONFLICT (device_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = p.db.ExecContext(ctx, query, args...)
	return err
}

func (p *sqlPartition) Remove(ctx context.Context, key string) error {
	query, args, err := p.builder.
		Delete(kvTable).
		Where(sq.Eq{"device_id": p.deviceID, "key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = p.db.ExecContext(ctx, query, args...)
	return err
}

func (p *sqlPartition) Keys(ctx context.Context, prefix string) ([]string, error) {
	// LIKE treats _ and % as wildcards and may ignore case, so it only
	// narrows the scan. The exact prefix check happens below.
	query, args, err := p.builder.
		Select("key").
		From(kvTable).
		Where(sq.Eq{"device_id": p.deviceID}).
		Where(sq.Like{"key": prefix + "%"}).
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, rows.Err()
}
