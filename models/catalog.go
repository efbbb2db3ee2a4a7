// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Office IDs with special display rules
const (
	OfficeUSPresident = 5
)

type Office struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ElectionEvent is a single election date with its early voting window.
// Dates are calendar dates in YYYY-MM-DD form.
type ElectionEvent struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	ElectionDate     string `json:"electionDate"`
	EarlyVotingStart string `json:"evStart"`
	EarlyVotingEnd   string `json:"evEnd"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Candidate struct {
	ID              int               `json:"id"`
	FirstName       string            `json:"firstName"`
	LastName        string            `json:"lastName"`
	Slug            string            `json:"slug"`
	PhotoURL        string            `json:"photoUrl"`
	Party           string            `json:"party"`
	OfficeID        int               `json:"officeId"`
	RunningMateName string            `json:"runningMateName,omitempty"`
	District        string            `json:"district,omitempty"` // empty when the office is not districted
	CycleID         int               `json:"cycleId"`
	Website         string            `json:"website,omitempty"`
	Email           string            `json:"email,omitempty"`
	Phone           string            `json:"phone,omitempty"`
	SocialLinks     *SocialLinks      `json:"socialLinks,omitempty"`
	Bio             string            `json:"bio"`
	MailingAddress  string            `json:"mailingAddress,omitempty"`
	SurveyResponses map[string]string `json:"surveyResponses"`
	BallotOrder     int               `json:"ballotOrder"`
	IsIncumbent     bool              `json:"isIncumbent"`
}

// FullName returns "First Last"
func (c Candidate) FullName() string {
	return c.FirstName + " " + c.LastName
}

type BallotMeasure struct {
	ID                 int    `json:"id"`
	Slug               string `json:"slug"`
	Title              string `json:"title"`
	ElectionDate       string `json:"electionDate"`
	BallotLanguage     string `json:"ballotLanguage"`
	LaymansExplanation string `json:"laymansExplanation"`
	YesVoteMeans       string `json:"yesVoteMeans"`
	NoVoteMeans        string `json:"noVoteMeans"`
}

type SurveyQuestion struct {
	Key      string `json:"key"`
	Question string `json:"question"`
}

type EarlyVotingLocation struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Election result types

type ElectionResultCandidate struct {
	CandidateID   int     `json:"candidateId"`
	CandidateName string  `json:"candidateName"`
	Party         string  `json:"party"`
	PhotoURL      string  `json:"photoUrl,omitempty"`
	Votes         int     `json:"votes"`
	VotesDisplay  string  `json:"votesDisplay"` // "12,000"
	Percentage    float64 `json:"percentage"`   // one decimal place
	IsWinner      bool    `json:"isWinner"`
}

type OfficeElectionResults struct {
	ElectionDate       string                    `json:"electionDate"`
	Office             Office                    `json:"office"`
	District           string                    `json:"district,omitempty"`
	Results            []ElectionResultCandidate `json:"results"`
	TotalVotesInOffice int                       `json:"totalVotesInOffice"`
}
