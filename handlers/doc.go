// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the MyBallot device API.

# Handler Types

Each handler is a struct built around the shared device registry:

  - CatalogHandler: elections, candidates, measures and other reference data
  - DeviceHandler: device registration
  - BallotHandler: ballot archive, measure stances and reminder records
  - ReminderFlowHandler: the step-by-step reminder setup wizard
  - NotesHandler: private candidate notes
  - CompareHandler: side-by-side candidate comparison
  - SettingsHandler: display density
  - ProfileHandler: profile data and onboarding

Handlers are created via constructor functions:

	ballotHandler := handlers.NewBallotHandler(registry)

# Device Header

Every per-device endpoint requires the X-Device-UUID header. A missing
or malformed header is a 400. The UUID itself is never stored; the
registry turns it into a partition ID with auth.DeviceKey.

# Errors

Errors use the {error, message} body from middleware.ErrorResponse.

  - 400: malformed input, or a models.ValidationError (with "fields")
  - 404: unknown catalog item, note, or reminder flow
  - 409: a reminder flow or onboarding action at the wrong step

# Reminder Flows

A flow is started for one election and driven by actions:

	POST /ballot/{date}/reminder-flow      → Start (returns the flow id)
	POST /reminder-flows/{id}/period       → early voting or election day
	POST /reminder-flows/{id}/datetime     → date and time
	POST /reminder-flows/{id}/location     → early-voting site
	POST /reminder-flows/{id}/notifications
	POST /reminder-flows/{id}/finalize     → saves the reminder

Nothing is written until finalize. Idle flows expire.
*/
package handlers
