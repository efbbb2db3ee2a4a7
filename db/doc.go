// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the SQL database behind local device storage and keeps
its schema current.

# Connecting

Open accepts "sqlite" (modernc.org/sqlite, a file path or ":memory:") or
"postgres" (lib/pq, a connection URL):

	conn, err := db.Open(ctx, "sqlite", "myballot.db")

# Schema Creation

CreateSchema runs the embedded goose migrations:

	if err := db.CreateSchema(ctx, conn, "sqlite"); err != nil {
		log.Fatal(err)
	}

Safe to call on every start. goose records applied versions in its own
table and skips them.

# Tables

  - kv_entry: one row per (device_id, key), holding the JSON value and
    its last update time
*/
package db
