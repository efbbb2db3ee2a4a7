// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot keeps a device's ballot archive and election reminders.

The archive maps an election date (YYYY-MM-DD) to the entries picked for
that election. An entry is a models.CandidateSelection or a
models.MeasureStance:

	for _, e := range store.Entries("2026-11-06") {
		switch e := e.(type) {
		case models.CandidateSelection:
			...
		case models.MeasureStance:
			...
		}
	}

# Replace Semantics

A race (office, district) holds at most one selection per election, and a
measure at most one stance. Adding a second pick replaces the first.
Removing the last entry for a date drops the date from the archive unless
a reminder is set for it.

# Default Election

At load time, and whenever the active date's data goes away, the store
picks the soonest election on or after today, falling back to the most
recent past election. Candidates come from the catalog, non-empty archive
dates and reminder dates.

# Persistence

Both archives are written through to storage under ArchiveKey and
RemindersKey after every change. Write errors are logged and swallowed;
the in-memory state stays authoritative for the session.
*/
package ballot
