// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package profile keeps the device's copy of the user's profile answers and
drives the onboarding wizard:

	welcome -> location -> demographics -> political -> civic -> completion

Each SaveStep call stores the whole form and advances one page. Saving the
civic page, or calling SkipAll, marks onboarding complete. Identity and
sign-in stay with the external auth service.
*/
package profile
