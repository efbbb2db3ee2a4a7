// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package notes stores a device's private notes about candidates, one
// list per candidate under "notes_<candidateId>", kept newest first.
package notes
