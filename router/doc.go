// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the MyBallot device API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(registry)

# Endpoints

Health:

	GET /health

Reference data (no device header needed):

	GET /elections                       - All elections, upcoming first
	GET /elections/{date}                - One election
	GET /elections/{date}/measures       - Measures on that ballot
	GET /elections/{date}/results        - Processed results
	GET /offices                         - Offices
	GET /offices/{id}/districts          - Districts (?electionId=)
	GET /candidates                      - Directory (?electionDate=&officeId=&party=&q=)
	GET /candidates/suggest              - Type-ahead (?q=)
	GET /candidates/{id}                 - Candidate profile
	GET /parties                         - Party filter choices
	GET /measures/{id}                   - Measure detail
	GET /survey-questions                - Questionnaire
	GET /early-voting-locations          - Early-voting sites

Everything below requires the X-Device-UUID header.

Device:

	POST /devices/register - Register device
	GET  /devices/me       - Get device info

Ballot archive:

	GET    /ballot                                - Archive and selected election
	PUT    /ballot/selected-election              - Change the selection
	GET    /ballot/{date}                         - One election's entries
	DELETE /ballot/{date}                         - Clear them
	POST   /ballot/{date}/candidates              - Pick a candidate
	DELETE /ballot/{date}/candidates/{officeId}   - Unpick (?district=)
	GET    /ballot/{date}/candidates/{id}         - Is the candidate picked
	PUT    /ballot/{date}/measures/{id}           - Support or oppose
	DELETE /ballot/{date}/measures/{id}           - Clear the stance
	GET    /ballot/{date}/measures/{id}           - Current stance

Reminders:

	GET|PUT|DELETE /ballot/{date}/reminder
	POST   /ballot/{date}/reminder-flow     - Start the setup wizard
	GET    /reminder-flows/{id}             - Wizard state
	POST   /reminder-flows/{id}/{action}    - period, datetime, location,
	                                          notifications, calendar, back,
	                                          edit, finalize, close
	DELETE /reminder-flows/{id}             - Delete the reminder being edited

Notes and comparison:

	GET|POST   /candidates/{id}/notes
	PUT|DELETE /candidates/{id}/notes/{noteId}
	GET        /notes/summary
	GET        /compare?candidate1Id=&candidate2Id=

Preferences and profile:

	GET|PUT /settings/density
	GET|PUT /profile
	GET     /profile/options
	GET     /profile/onboarding
	PUT     /profile/onboarding/{step}
	POST    /profile/onboarding/back
	POST    /profile/onboarding/skip
*/
package router
