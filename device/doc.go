// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package device maps X-Device-UUID values to per-device sessions.

A device UUID is validated and turned into a partition ID with
auth.DeviceKey. The Registry builds one Session per partition the first
time it is asked and keeps it for the life of the process, so every
request from a device shares the same ballot store, notes, settings and
profile.

Reminder flows in progress live in a go-cache keyed by a random flow ID.
A flow that sits idle longer than Options.FlowTTL is dropped along with
its unsaved choices.
*/
package device
