// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/storage"
)

func mustOpen(t *testing.T, s storage.Storage) *Service {
	t.Helper()
	svc, err := Open(context.Background(), s, nil)
	require.NoError(t, err)
	return svc
}

func TestOnboardingWalkthrough(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemory().Open("d")
	svc := mustOpen(t, s)

	state := svc.Onboarding()
	assert.Equal(t, models.StepWelcome, state.Step)
	assert.Equal(t, 0.0, state.Progress)
	assert.False(t, state.Completed)

	data := models.UserProfileData{}
	steps := []struct {
		step     models.OnboardingStep
		edit     func()
		next     models.OnboardingStep
		progress float64
	}{
		{models.StepWelcome, func() {}, models.StepLocation, 25},
		{models.StepLocation, func() { data.Demographics.ZipCode = "70802" }, models.StepDemographics, 50},
		{models.StepDemographics, func() { data.Demographics.AgeRange = "25-34" }, models.StepPolitical, 75},
		{models.StepPolitical, func() {
			data.PoliticalProfile.PartyAffiliation = "independent"
			data.PoliticalProfile.KeyIssues = []string{"education", "infrastructure"}
		}, models.StepCivic, 100},
		{models.StepCivic, func() { data.CivicEngagement.InfoSources = []string{"this_app"} }, models.StepCompletion, 100},
	}

	for _, st := range steps {
		st.edit()
		state, err := svc.SaveStep(ctx, st.step, data)
		require.NoError(t, err, st.step)
		assert.Equal(t, st.next, state.Step)
		assert.Equal(t, st.progress, state.Progress)
	}

	state = svc.Onboarding()
	assert.True(t, state.Completed)
	assert.Equal(t, "70802", state.Profile.Demographics.ZipCode)
	assert.Equal(t, []string{"education", "infrastructure"}, state.Profile.PoliticalProfile.KeyIssues)

	reopened := mustOpen(t, s)
	assert.Equal(t, models.StepCompletion, reopened.Onboarding().Step)
	assert.Equal(t, svc.Profile(), reopened.Profile())
}

func TestSaveStepMustMatchCurrentStep(t *testing.T) {
	ctx := context.Background()
	svc := mustOpen(t, storage.NewMemory().Open("d"))

	_, err := svc.SaveStep(ctx, models.StepCivic, models.UserProfileData{})
	assert.ErrorIs(t, err, ErrWrongStep)
	assert.False(t, svc.Onboarding().Completed)
}

func TestBack(t *testing.T) {
	ctx := context.Background()
	svc := mustOpen(t, storage.NewMemory().Open("d"))

	assert.Equal(t, models.StepWelcome, svc.Back(ctx).Step)

	_, err := svc.SaveStep(ctx, models.StepWelcome, models.UserProfileData{})
	require.NoError(t, err)
	_, err = svc.SaveStep(ctx, models.StepLocation, models.UserProfileData{})
	require.NoError(t, err)

	assert.Equal(t, models.StepLocation, svc.Back(ctx).Step)
	assert.Equal(t, models.StepWelcome, svc.Back(ctx).Step)
}

func TestSkipAll(t *testing.T) {
	ctx := context.Background()
	svc := mustOpen(t, storage.NewMemory().Open("d"))

	state := svc.SkipAll(ctx)
	assert.True(t, state.Completed)
	assert.Equal(t, models.StepCompletion, state.Step)
	assert.Equal(t, 100.0, state.Progress)
	assert.Equal(t, models.StepCompletion, svc.Back(ctx).Step)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		data  models.UserProfileData
		field string
	}{
		{"empty is fine", models.UserProfileData{}, ""},
		{"zip ok", models.UserProfileData{Demographics: models.UserDemographics{ZipCode: "70802"}}, ""},
		{"zip short", models.UserProfileData{Demographics: models.UserDemographics{ZipCode: "7080"}}, "demographics.zipCode"},
		{"zip plus four", models.UserProfileData{Demographics: models.UserDemographics{ZipCode: "70802-1234"}}, "demographics.zipCode"},
		{"unknown age", models.UserProfileData{Demographics: models.UserDemographics{AgeRange: "12-17"}}, "demographics.ageRange"},
		{"unknown issue", models.UserProfileData{PoliticalProfile: models.UserPoliticalProfile{KeyIssues: []string{"economy", "weather"}}}, "politicalProfile.keyIssues"},
		{"unknown source", models.UserProfileData{CivicEngagement: models.UserCivicEngagement{InfoSources: []string{"carrier_pigeon"}}}, "civicEngagement.infoSources"},
		{"unknown frequency", models.UserProfileData{CivicEngagement: models.UserCivicEngagement{VotingFrequency: "always"}}, "civicEngagement.votingFrequency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.data)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Errors[0].Field)
		})
	}
}

func TestInvalidStepDoesNotAdvance(t *testing.T) {
	ctx := context.Background()
	svc := mustOpen(t, storage.NewMemory().Open("d"))
	_, err := svc.SaveStep(ctx, models.StepWelcome, models.UserProfileData{})
	require.NoError(t, err)

	bad := models.UserProfileData{Demographics: models.UserDemographics{ZipCode: "abcde"}}
	state, err := svc.SaveStep(ctx, models.StepLocation, bad)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, models.StepLocation, state.Step)
	assert.Empty(t, svc.Profile().Demographics.ZipCode)
}

func TestUpdateProfileKeepsCompletion(t *testing.T) {
	ctx := context.Background()
	svc := mustOpen(t, storage.NewMemory().Open("d"))
	svc.SkipAll(ctx)

	updated, err := svc.UpdateProfile(ctx, models.UserProfileData{
		Demographics: models.UserDemographics{ZipCode: "70806"},
	})
	require.NoError(t, err)
	assert.True(t, updated.OnboardingCompleted)
	assert.Equal(t, "70806", svc.Profile().Demographics.ZipCode)

	_, err = svc.UpdateProfile(ctx, models.UserProfileData{Demographics: models.UserDemographics{ZipCode: "1"}})
	assert.ErrorIs(t, err, models.ErrValidation)
}

type unreadable struct {
	storage.Storage
}

func (unreadable) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("database is locked")
}

func TestOpenDistinguishesCorruptFromUnreadable(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemory().Open("d")
	require.NoError(t, s.Set(ctx, ProfileKey, `{broken`))
	require.NoError(t, s.Set(ctx, StepKey, `42`))

	svc := mustOpen(t, s)
	assert.Equal(t, models.UserProfileData{}, svc.Profile())
	assert.Equal(t, models.StepWelcome, svc.Onboarding().Step)

	_, err := Open(ctx, unreadable{s}, nil)
	assert.ErrorContains(t, err, "database is locked")
}
