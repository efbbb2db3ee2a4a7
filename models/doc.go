// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain, request, and response types for the API.

# Domain Types

Reference data served by the catalog:

  - Office, ElectionEvent, Candidate, BallotMeasure
  - SurveyQuestion: a question every candidate may answer
  - EarlyVotingLocation
  - OfficeElectionResults: processed results for one race

Per-device data:

  - BallotEntry: a CandidateSelection or a MeasureStance
  - BallotArchive: election date to ballot entries
  - ReminderSettings and ReminderArchive
  - NoteEntry and NoteSummaryItem
  - UserProfileData and OnboardingState
  - UIDensity
  - DeviceInfo

# JSON

All JSON uses camelCase keys. Ballot entries carry an "itemType" field
("candidate" or "measure") so the archive round-trips through storage.
Timestamps are RFC 3339 in UTC.

# Errors

ValidationError collects FieldError values and unwraps to ErrValidation.
Handlers report it as a 400 with the field list in ErrorResponse.Fields.

# Constants

Votes:

	VoteSupport = "support"
	VoteOppose  = "oppose"

Reminder types:

	ReminderEarlyVote   = "earlyVote"
	ReminderElectionDay = "electionDay"

Platforms:

	PlatformIOS     = "ios"
	PlatformMacOS   = "macos"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
*/
package models
