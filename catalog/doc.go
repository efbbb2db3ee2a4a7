// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the read-only reference data: offices, elections,
candidates, ballot measures, survey questions, early voting locations,
and historical results.

# Loading

The catalog is built once per process from seed data:

	cat := catalog.New(clockwork.NewRealClock(), loc)

The clock and location decide what "today" is, which in turn decides
whether an election is upcoming or past. Tests inject a fake clock.

# Lookups

Lookups by id or date return (value, ok). A miss is never an error;
callers render a "not found" state.

# Ordering

Elections are listed upcoming first (soonest first), then past elections
most recent first. CompareElectionDates implements that order and is
shared with the ballot store's default-election selection.
*/
package catalog
