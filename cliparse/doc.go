// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Values are resolved in three layers. A .env file in the working directory
is loaded first (godotenv, never overriding variables already set), then
the environment is read into Config through its env tags (cleanenv), and
finally CLI flags override whatever the environment produced.

# Config Fields

  - Host: Listen address (default: 127.0.0.1)
  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres, leveldb or memory (default: sqlite)
  - DatabaseURL: sqlite file, postgres URL or leveldb directory
  - DeviceKeySalt: Secret for device key HMAC (required)
  - LogLevel, LogFormat: slog level and handler (auto picks text on a terminal)
  - Timezone: Zone election dates are interpreted in (default: America/Chicago)
  - ReminderFlowTTL: Idle lifetime of an unfinished reminder flow (default: 30m)
  - ShutdownTimeout: Grace period for in-flight requests (default: 10s)

# CLI Flags

	-host             Listen address
	-p                Server port
	-t                Storage type
	-d                Database URL, file or directory
	--device-salt     Device key salt
	--log-level       Log level
	--log-format      Log format
	--tz              Time zone
	--flow-ttl        Reminder flow lifetime
	--shutdown-timeout Graceful shutdown timeout

# Environment Variables

	HOST, PORT, DATABASE_TYPE, DATABASE_URL, DEVICE_KEY_SALT,
	LOG_LEVEL, LOG_FORMAT, TIMEZONE, REMINDER_FLOW_TTL, SHUTDOWN_TIMEOUT

# Validation

ParseFlags returns an error if:

  - DEVICE_KEY_SALT is missing
  - the storage type is unknown, or postgres has no URL
  - the time zone cannot be loaded
*/
package cliparse
