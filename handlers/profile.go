// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/myballot/device"
	"github.com/danielhkuo/myballot/middleware"
	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/profile"
)

// ProfileHandler serves the locally kept profile and its onboarding wizard
type ProfileHandler struct {
	registry *device.Registry
}

func NewProfileHandler(reg *device.Registry) *ProfileHandler {
	return &ProfileHandler{registry: reg}
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s.Profile.Profile())
}

// UpdateProfile handles PUT /profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}

	var data models.UserProfileData
	if err := middleware.ParseJSONBody(r, &data); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	saved, err := s.Profile.UpdateProfile(r.Context(), data)
	if err != nil {
		validationOr(w, err, "Failed to save profile")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, saved)
}

// GetOnboarding handles GET /profile/onboarding
func (h *ProfileHandler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s.Profile.Onboarding())
}

// SaveStep handles PUT /profile/onboarding/{step}
// The step must be the wizard's current page.
func (h *ProfileHandler) SaveStep(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}

	var data models.UserProfileData
	if r.ContentLength != 0 {
		if err := middleware.ParseJSONBody(r, &data); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	}

	step := models.OnboardingStep(r.PathValue("step"))
	state, err := s.Profile.SaveStep(r.Context(), step, data)
	if errors.Is(err, profile.ErrWrongStep) {
		middleware.ErrorResponse(w, http.StatusConflict, "Onboarding is at step "+string(state.Step))
		return
	}
	if err != nil {
		validationOr(w, err, "Failed to save onboarding step")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, state)
}

// Back handles POST /profile/onboarding/back
func (h *ProfileHandler) Back(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s.Profile.Back(r.Context()))
}

// Skip handles POST /profile/onboarding/skip
func (h *ProfileHandler) Skip(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s.Profile.SkipAll(r.Context()))
}

// ListOptions handles GET /profile/options
// Returns the choices offered by the onboarding questions.
func (h *ProfileHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"keyIssues":         models.PoliticalKeyIssues,
		"infoSources":       models.CivicInfoSources,
		"ageRanges":         models.AgeRanges,
		"genderIdentities":  models.GenderIdentities,
		"educationLevels":   models.EducationLevels,
		"incomeRanges":      models.IncomeRanges,
		"partyAffiliations": models.PartyAffiliations,
		"politicalSpectrum": models.PoliticalSpectrum,
		"votingFrequencies": models.VotingFrequencies,
	})
}
