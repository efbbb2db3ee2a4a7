// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reminder implements the reminder setup wizard as a state machine.

A Flow starts at StepPeriodChoice when creating a reminder, or at
StepViewDetails when one already exists for the election:

	viewDetails -> periodChoice -> dateTime -> locationChoice -> notifications -> confirmation
	                                      \______(election day)______/

Each action is valid only at its step; calling it elsewhere returns
ErrWrongStep. Input problems return a *models.ValidationError and leave
the flow where it was.

Nothing is persisted until Finalize, which builds the full
models.ReminderSettings and hands it to the Saver. Delete hands the Saver
nil and closes the flow; it is only offered while editing, from the
details view or the notifications step. Close discards unsaved choices.
*/
package reminder
