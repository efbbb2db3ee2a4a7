// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"sync"

	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/storage"
)

// Persistence keys
const (
	ProfileKey = "userProfile"
	StepKey    = "onboardingStep"
)

// mainSteps counts the pages that collect data
const mainSteps = 4

var ErrWrongStep = errors.New("onboarding is not at that step")

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// Service keeps the device's copy of the user's profile data and tracks
// the onboarding wizard.
type Service struct {
	mu      sync.Mutex
	storage storage.Storage
	logger  *slog.Logger

	data models.UserProfileData
	step models.OnboardingStep
}

// Open loads the profile and onboarding progress. Values that fail to
// decode are discarded; a read failure is returned.
func Open(ctx context.Context, s storage.Storage, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	svc := &Service{storage: s, logger: logger, step: models.StepWelcome}

	if _, err := storage.LoadJSON(ctx, s, ProfileKey, &svc.data); err != nil {
		if !errors.Is(err, storage.ErrCorrupt) {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		logger.Error("Discarding unreadable profile", "error", err)
		svc.data = models.UserProfileData{}
	}
	var step models.OnboardingStep
	ok, err := storage.LoadJSON(ctx, s, StepKey, &step)
	switch {
	case errors.Is(err, storage.ErrCorrupt):
		logger.Error("Discarding unreadable onboarding step", "error", err)
	case err != nil:
		return nil, fmt.Errorf("failed to load onboarding step: %w", err)
	case ok && progress(step) >= 0:
		svc.step = step
	}
	if svc.data.OnboardingCompleted {
		svc.step = models.StepCompletion
	}
	return svc, nil
}

func (s *Service) Profile() models.UserProfileData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneData(s.data)
}

func (s *Service) Onboarding() models.OnboardingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *Service) state() models.OnboardingState {
	return models.OnboardingState{
		Step:      s.step,
		Progress:  progress(s.step),
		Completed: s.data.OnboardingCompleted,
		Profile:   cloneData(s.data),
	}
}

// SaveStep stores the form data submitted on step and moves to the next
// page. Finishing the civic page completes onboarding.
func (s *Service) SaveStep(ctx context.Context, step models.OnboardingStep, data models.UserProfileData) (models.OnboardingState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if step != s.step || step == models.StepCompletion {
		return s.state(), ErrWrongStep
	}
	if step == models.StepWelcome {
		s.setStep(ctx, models.StepLocation)
		return s.state(), nil
	}

	if err := Validate(data); err != nil {
		return s.state(), err
	}
	data.OnboardingCompleted = s.data.OnboardingCompleted || step == models.StepCivic
	s.data = cloneData(data)
	s.saveProfile(ctx)

	s.setStep(ctx, next(step))
	return s.state(), nil
}

// Back returns to the previous page. It is a no-op on the welcome and
// completion pages.
func (s *Service) Back(ctx context.Context) models.OnboardingState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := previous(s.step); ok {
		s.setStep(ctx, prev)
	}
	return s.state()
}

// SkipAll marks onboarding complete without collecting anything more
func (s *Service) SkipAll(ctx context.Context) models.OnboardingState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.OnboardingCompleted = true
	s.saveProfile(ctx)
	s.setStep(ctx, models.StepCompletion)
	return s.state()
}

// UpdateProfile replaces the profile data outside the wizard. The
// onboarding flag is kept.
func (s *Service) UpdateProfile(ctx context.Context, data models.UserProfileData) (models.UserProfileData, error) {
	if err := Validate(data); err != nil {
		return models.UserProfileData{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data.OnboardingCompleted = s.data.OnboardingCompleted
	s.data = cloneData(data)
	s.saveProfile(ctx)
	return cloneData(s.data), nil
}

// Validate checks every answer against its allowed values. Blank answers
// are always accepted.
func Validate(data models.UserProfileData) error {
	verr := &models.ValidationError{}
	d := data.Demographics
	if d.ZipCode != "" && !zipPattern.MatchString(d.ZipCode) {
		verr.Add("demographics.zipCode", "Enter a 5-digit ZIP code")
	}
	oneOf(verr, "demographics.ageRange", d.AgeRange, models.AgeRanges)
	oneOf(verr, "demographics.genderIdentity", d.GenderIdentity, models.GenderIdentities)
	oneOf(verr, "demographics.educationLevel", d.EducationLevel, models.EducationLevels)
	oneOf(verr, "demographics.incomeRange", d.IncomeRange, models.IncomeRanges)

	p := data.PoliticalProfile
	oneOf(verr, "politicalProfile.partyAffiliation", p.PartyAffiliation, models.PartyAffiliations)
	oneOf(verr, "politicalProfile.politicalSpectrum", p.PoliticalSpectrum, models.PoliticalSpectrum)
	knownOptions(verr, "politicalProfile.keyIssues", p.KeyIssues, models.PoliticalKeyIssues)

	c := data.CivicEngagement
	oneOf(verr, "civicEngagement.votingFrequency", c.VotingFrequency, models.VotingFrequencies)
	knownOptions(verr, "civicEngagement.infoSources", c.InfoSources, models.CivicInfoSources)

	return verr.Err()
}

func oneOf(verr *models.ValidationError, field, value string, allowed []string) {
	if value != "" && !slices.Contains(allowed, value) {
		verr.Add(field, "Unknown value "+value)
	}
}

func knownOptions(verr *models.ValidationError, field string, ids []string, options []models.Option) {
	for _, id := range ids {
		if !slices.ContainsFunc(options, func(o models.Option) bool { return o.ID == id }) {
			verr.Add(field, "Unknown option "+id)
		}
	}
}

// progress returns the percentage shown for step, or -1 for an unknown step
func progress(step models.OnboardingStep) float64 {
	switch step {
	case models.StepWelcome:
		return 0
	case models.StepLocation:
		return 1.0 / mainSteps * 100
	case models.StepDemographics:
		return 2.0 / mainSteps * 100
	case models.StepPolitical:
		return 3.0 / mainSteps * 100
	case models.StepCivic, models.StepCompletion:
		return 100
	default:
		return -1
	}
}

func next(step models.OnboardingStep) models.OnboardingStep {
	switch step {
	case models.StepWelcome:
		return models.StepLocation
	case models.StepLocation:
		return models.StepDemographics
	case models.StepDemographics:
		return models.StepPolitical
	case models.StepPolitical:
		return models.StepCivic
	default:
		return models.StepCompletion
	}
}

func previous(step models.OnboardingStep) (models.OnboardingStep, bool) {
	switch step {
	case models.StepLocation:
		return models.StepWelcome, true
	case models.StepDemographics:
		return models.StepLocation, true
	case models.StepPolitical:
		return models.StepDemographics, true
	case models.StepCivic:
		return models.StepPolitical, true
	default:
		return "", false
	}
}

func (s *Service) setStep(ctx context.Context, step models.OnboardingStep) {
	s.step = step
	if err := storage.SaveJSON(ctx, s.storage, StepKey, step); err != nil {
		s.logger.Error("Failed to save onboarding step", "error", err)
	}
}

func (s *Service) saveProfile(ctx context.Context) {
	if err := storage.SaveJSON(ctx, s.storage, ProfileKey, s.data); err != nil {
		s.logger.Error("Failed to save profile", "error", err)
	}
}

func cloneData(d models.UserProfileData) models.UserProfileData {
	d.PoliticalProfile.KeyIssues = slices.Clone(d.PoliticalProfile.KeyIssues)
	d.CivicEngagement.InfoSources = slices.Clone(d.CivicEngagement.InfoSources)
	return d
}
