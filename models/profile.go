// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

type AuthProvider string

const (
	AuthEmail    AuthProvider = "email"
	AuthPhone    AuthProvider = "phone"
	AuthGoogle   AuthProvider = "google"
	AuthFacebook AuthProvider = "facebook"
	AuthX        AuthProvider = "x"
)

// User mirrors the record supplied by the external identity service
type User struct {
	ID           string          `json:"id"`
	Email        string          `json:"email,omitempty"`
	PhoneNumber  string          `json:"phoneNumber,omitempty"`
	DisplayName  string          `json:"displayName,omitempty"`
	PhotoURL     string          `json:"photoURL,omitempty"`
	AuthProvider AuthProvider    `json:"authProvider"`
	ProfileData  UserProfileData `json:"profileData"`
}

type UserDemographics struct {
	AgeRange           string `json:"ageRange,omitempty"`
	GenderIdentity     string `json:"genderIdentity,omitempty"`
	GenderSelfDescribe string `json:"genderSelfDescribe,omitempty"`
	ZipCode            string `json:"zipCode,omitempty"`
	EducationLevel     string `json:"educationLevel,omitempty"`
	RaceEthnicity      string `json:"raceEthnicity,omitempty"`
	Religion           string `json:"religion,omitempty"`
	IncomeRange        string `json:"incomeRange,omitempty"`
}

type UserPoliticalProfile struct {
	PartyAffiliation  string   `json:"partyAffiliation,omitempty"`
	PartyOther        string   `json:"partyOther,omitempty"`
	PoliticalSpectrum string   `json:"politicalSpectrum,omitempty"`
	KeyIssues         []string `json:"keyIssues,omitempty"`
}

type UserCivicEngagement struct {
	VotingFrequency string   `json:"votingFrequency,omitempty"`
	InfoSources     []string `json:"infoSources,omitempty"`
}

type UserProfileData struct {
	Demographics        UserDemographics     `json:"demographics"`
	PoliticalProfile    UserPoliticalProfile `json:"politicalProfile"`
	CivicEngagement     UserCivicEngagement  `json:"civicEngagement"`
	OnboardingCompleted bool                 `json:"onboardingCompleted"`
}

// Option is an id/label pair offered by a multi-select question
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var PoliticalKeyIssues = []Option{
	{ID: "economy", Label: "Economy & Jobs"},
	{ID: "healthcare", Label: "Healthcare"},
	{ID: "education", Label: "Education"},
	{ID: "environment", Label: "Environment & Climate Change"},
	{ID: "social_justice", Label: "Social Justice & Equality"},
	{ID: "public_safety", Label: "Public Safety & Crime"},
	{ID: "infrastructure", Label: "Infrastructure"},
	{ID: "taxation", Label: "Taxation & Government Spending"},
	{ID: "foreign_policy", Label: "Foreign Policy & National Security"},
	{ID: "immigration", Label: "Immigration"},
}

var CivicInfoSources = []Option{
	{ID: "news_websites", Label: "News Websites/Apps"},
	{ID: "social_media", Label: "Social Media"},
	{ID: "friends_family", Label: "Friends & Family"},
	{ID: "official_voter_guides", Label: "Official Voter Guides/Mailers"},
	{ID: "candidate_websites", Label: "Candidate Websites/Materials"},
	{ID: "tv_news", Label: "Television News"},
	{ID: "radio_podcasts", Label: "Radio/Podcasts"},
	{ID: "this_app", Label: "This App (MyBallot)"},
	{ID: "other", Label: "Other"},
}

// Allowed values for the single-choice profile questions. The empty
// string (unanswered) is always allowed.
var (
	AgeRanges         = []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"}
	GenderIdentities  = []string{"male", "female", "non-binary", "self-describe", "prefer-not-to-say"}
	EducationLevels   = []string{"high-school", "some-college", "associates", "bachelors", "masters", "doctorate", "prefer-not-to-say"}
	IncomeRanges      = []string{"<$25k", "$25k-$50k", "$50k-$75k", "$75k-$100k", "$100k-$150k", "$150k-$200k", ">$200k", "prefer-not-to-say"}
	PartyAffiliations = []string{"democrat", "republican", "independent", "green", "libertarian", "other", "prefer-not-to-say"}
	PoliticalSpectrum = []string{"very-liberal", "liberal", "moderate", "conservative", "very-conservative", "prefer-not-to-say"}
	VotingFrequencies = []string{"every", "most", "some", "rarely", "first-time", "prefer-not-to-say"}
)

// OnboardingStep is a page of the profile onboarding wizard
type OnboardingStep string

const (
	StepWelcome      OnboardingStep = "welcome"
	StepLocation     OnboardingStep = "location"
	StepDemographics OnboardingStep = "demographics"
	StepPolitical    OnboardingStep = "political"
	StepCivic        OnboardingStep = "civic"
	StepCompletion   OnboardingStep = "completion"
)

type OnboardingState struct {
	Step      OnboardingStep  `json:"step"`
	Progress  float64         `json:"progress"` // 0 to 100
	Completed bool            `json:"completed"`
	Profile   UserProfileData `json:"profile"`
}
