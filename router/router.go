// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/myballot/device"
	"github.com/danielhkuo/myballot/handlers"
	"github.com/danielhkuo/myballot/middleware"
)

func NewRouter(reg *device.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(reg.Catalog())
	deviceHandler := handlers.NewDeviceHandler(reg)
	ballotHandler := handlers.NewBallotHandler(reg)
	flowHandler := handlers.NewReminderFlowHandler(reg)
	notesHandler := handlers.NewNotesHandler(reg)
	compareHandler := handlers.NewCompareHandler(reg)
	settingsHandler := handlers.NewSettingsHandler(reg)
	profileHandler := handlers.NewProfileHandler(reg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Reference data
	mux.HandleFunc("GET /elections", middleware.WithLogging(catalogHandler.ListElections))
	mux.HandleFunc("GET /elections/{date}", middleware.WithLogging(catalogHandler.GetElection))
	mux.HandleFunc("GET /elections/{date}/measures", middleware.WithLogging(catalogHandler.ListElectionMeasures))
	mux.HandleFunc("GET /elections/{date}/results", middleware.WithLogging(catalogHandler.GetElectionResults))
	mux.HandleFunc("GET /offices", middleware.WithLogging(catalogHandler.ListOffices))
	mux.HandleFunc("GET /offices/{id}/districts", middleware.WithLogging(catalogHandler.ListDistricts))
	mux.HandleFunc("GET /candidates", middleware.WithLogging(catalogHandler.ListCandidates))
	mux.HandleFunc("GET /candidates/suggest", middleware.WithLogging(catalogHandler.SuggestCandidates))
	mux.HandleFunc("GET /candidates/{id}", middleware.WithLogging(catalogHandler.GetCandidate))
	mux.HandleFunc("GET /parties", middleware.WithLogging(catalogHandler.ListParties))
	mux.HandleFunc("GET /measures/{id}", middleware.WithLogging(catalogHandler.GetMeasure))
	mux.HandleFunc("GET /survey-questions", middleware.WithLogging(catalogHandler.ListSurveyQuestions))
	mux.HandleFunc("GET /early-voting-locations", middleware.WithLogging(catalogHandler.ListEarlyVotingLocations))

	// Device management
	mux.HandleFunc("POST /devices/register", middleware.WithLogging(deviceHandler.Register))
	mux.HandleFunc("GET /devices/me", middleware.WithLogging(deviceHandler.GetMe))

	// Ballot archive
	mux.HandleFunc("GET /ballot", middleware.WithLogging(ballotHandler.GetOverview))
	mux.HandleFunc("PUT /ballot/selected-election", middleware.WithLogging(ballotHandler.SelectElection))
	mux.HandleFunc("GET /ballot/{date}", middleware.WithLogging(ballotHandler.GetElectionBallot))
	mux.HandleFunc("DELETE /ballot/{date}", middleware.WithLogging(ballotHandler.ClearElectionBallot))
	mux.HandleFunc("POST /ballot/{date}/candidates", middleware.WithLogging(ballotHandler.AddCandidate))
	mux.HandleFunc("DELETE /ballot/{date}/candidates/{officeId}", middleware.WithLogging(ballotHandler.RemoveCandidate))
	mux.HandleFunc("GET /ballot/{date}/candidates/{id}", middleware.WithLogging(ballotHandler.GetCandidateSelection))
	mux.HandleFunc("PUT /ballot/{date}/measures/{id}", middleware.WithLogging(ballotHandler.SetMeasureStance))
	mux.HandleFunc("DELETE /ballot/{date}/measures/{id}", middleware.WithLogging(ballotHandler.RemoveMeasureStance))
	mux.HandleFunc("GET /ballot/{date}/measures/{id}", middleware.WithLogging(ballotHandler.GetMeasureStance))

	// Reminders
	mux.HandleFunc("GET /ballot/{date}/reminder", middleware.WithLogging(ballotHandler.GetReminder))
	mux.HandleFunc("PUT /ballot/{date}/reminder", middleware.WithLogging(ballotHandler.PutReminder))
	mux.HandleFunc("DELETE /ballot/{date}/reminder", middleware.WithLogging(ballotHandler.DeleteReminder))
	mux.HandleFunc("POST /ballot/{date}/reminder-flow", middleware.WithLogging(flowHandler.Start))
	mux.HandleFunc("GET /reminder-flows/{id}", middleware.WithLogging(flowHandler.Get))
	mux.HandleFunc("POST /reminder-flows/{id}/{action}", middleware.WithLogging(flowHandler.Act))
	mux.HandleFunc("DELETE /reminder-flows/{id}", middleware.WithLogging(flowHandler.Delete))

	// Notes and comparison
	mux.HandleFunc("GET /candidates/{id}/notes", middleware.WithLogging(notesHandler.List))
	mux.HandleFunc("POST /candidates/{id}/notes", middleware.WithLogging(notesHandler.Add))
	mux.HandleFunc("PUT /candidates/{id}/notes/{noteId}", middleware.WithLogging(notesHandler.Update))
	mux.HandleFunc("DELETE /candidates/{id}/notes/{noteId}", middleware.WithLogging(notesHandler.Delete))
	mux.HandleFunc("GET /notes/summary", middleware.WithLogging(notesHandler.Summary))
	mux.HandleFunc("GET /compare", middleware.WithLogging(compareHandler.Compare))

	// Preferences and profile
	mux.HandleFunc("GET /settings/density", middleware.WithLogging(settingsHandler.GetDensity))
	mux.HandleFunc("PUT /settings/density", middleware.WithLogging(settingsHandler.SetDensity))
	mux.HandleFunc("GET /profile", middleware.WithLogging(profileHandler.GetProfile))
	mux.HandleFunc("PUT /profile", middleware.WithLogging(profileHandler.UpdateProfile))
	mux.HandleFunc("GET /profile/options", middleware.WithLogging(profileHandler.ListOptions))
	mux.HandleFunc("GET /profile/onboarding", middleware.WithLogging(profileHandler.GetOnboarding))
	mux.HandleFunc("PUT /profile/onboarding/{step}", middleware.WithLogging(profileHandler.SaveStep))
	mux.HandleFunc("POST /profile/onboarding/back", middleware.WithLogging(profileHandler.Back))
	mux.HandleFunc("POST /profile/onboarding/skip", middleware.WithLogging(profileHandler.Skip))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("myballot API v1"))
	})

	return mux
}
