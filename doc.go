// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the MyBallot device service.

MyBallot is a voter-education companion. This process keeps one device's
(or a few devices') ballot picks, measure stances, election reminders,
candidate notes and preferences, and serves them with the election
catalog over a localhost JSON API to whatever UI is in front of it.

# Starting the Server

A device key salt is the only required setting:

	DEVICE_KEY_SALT=change-me go run .

Or with flags:

	go run . -p 3318 -t leveldb -d ./myballot-leveldb --device-salt change-me

A .env file in the working directory is read first.

# Configuration

  - DEVICE_KEY_SALT (--device-salt): HMAC key for device partition IDs (required)
  - HOST (--host): listen address (default: 127.0.0.1)
  - PORT (-p): server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres, leveldb or memory (default: sqlite)
  - DATABASE_URL (-d): sqlite file, postgres URL or leveldb directory
  - TIMEZONE (--tz): zone election dates are read in (default: America/Chicago)
  - LOG_LEVEL, LOG_FORMAT: debug|info|warn|error and auto|json|text
  - REMINDER_FLOW_TTL (--flow-ttl): idle lifetime of a reminder wizard
  - SHUTDOWN_TIMEOUT (--shutdown-timeout): graceful shutdown limit

# Architecture

  - catalog: static elections, candidates, measures and results
  - ballot: per-device ballot archive and reminders
  - reminder: reminder setup wizard
  - notes, settings, profile, compare: the other per-device features
  - device: per-device sessions keyed by X-Device-UUID
  - storage, db: key-value persistence over sqlite, postgres or leveldb
  - handlers, router, middleware: the HTTP adapter
  - auth, cliparse, logging, models: support packages

See package documentation for each component.
*/
package main
