// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"fmt"
	"slices"

	"github.com/danielhkuo/myballot/models"
)

type cycleType int

const (
	cyclePresidential cycleType = iota
	cycleMidtermFederal
	cycleStateGeneral
	cycleMunicipalLocal
	cycleSpecial
	cyclePrimary
)

type seedCycle struct {
	event models.ElectionEvent
	types []cycleType
}

var seedOffices = []models.Office{
	{ID: 1, Name: "Mayor-President", Slug: "mayor-president"},
	{ID: 2, Name: "State Representative", Slug: "state-representative"},
	{ID: 3, Name: "City Court Judge", Slug: "city-court-judge"},
	{ID: 4, Name: "Metro Council", Slug: "metro-council"},
	{ID: 5, Name: "US President", Slug: "us-president"},
	{ID: 7, Name: "US Senator", Slug: "us-senator"},
	{ID: 8, Name: "US Representative", Slug: "us-representative"},
	{ID: 9, Name: "Governor", Slug: "governor"},
	{ID: 10, Name: "Lieutenant Governor", Slug: "lieutenant-governor"},
	{ID: 11, Name: "Attorney General", Slug: "attorney-general"},
	{ID: 12, Name: "Secretary of State", Slug: "secretary-of-state"},
	{ID: 13, Name: "State Treasurer", Slug: "state-treasurer"},
	{ID: 14, Name: "School Board Member", Slug: "school-board-member"},
	{ID: 15, Name: "Parish Sheriff", Slug: "parish-sheriff"},
}

// Offices elected per district
var districtedOffices = []int{2, 4, 8, 14}

var seedCycles = []seedCycle{
	{models.ElectionEvent{ID: 1, Name: "2026 General", Slug: "2026-general", ElectionDate: "2026-11-06", EarlyVotingStart: "2026-10-23", EarlyVotingEnd: "2026-11-01"},
		[]cycleType{cycleMidtermFederal, cycleStateGeneral, cycleMunicipalLocal}},
	{models.ElectionEvent{ID: 2, Name: "2025 Municipal", Slug: "2025-municipal", ElectionDate: "2025-11-05", EarlyVotingStart: "2025-10-20", EarlyVotingEnd: "2025-11-03"},
		[]cycleType{cycleMunicipalLocal}},
	{models.ElectionEvent{ID: 3, Name: "2024 Presidential Primary", Slug: "2024-primary", ElectionDate: "2024-03-05", EarlyVotingStart: "2024-02-15", EarlyVotingEnd: "2024-03-01"},
		[]cycleType{cyclePrimary, cyclePresidential}},
	{models.ElectionEvent{ID: 4, Name: "2028 Presidential General", Slug: "2028-presidential-general", ElectionDate: "2028-11-07", EarlyVotingStart: "2028-10-24", EarlyVotingEnd: "2028-11-02"},
		[]cycleType{cyclePresidential, cycleMidtermFederal, cycleStateGeneral, cycleMunicipalLocal}},
	{models.ElectionEvent{ID: 5, Name: "2027 Special Election", Slug: "2027-special-election", ElectionDate: "2027-05-04", EarlyVotingStart: "2027-04-20", EarlyVotingEnd: "2027-04-29"},
		[]cycleType{cycleSpecial, cycleStateGeneral, cycleMunicipalLocal}},
	{models.ElectionEvent{ID: 6, Name: "2022 Midterm", Slug: "2022-midterm-election", ElectionDate: "2022-11-08", EarlyVotingStart: "2022-10-25", EarlyVotingEnd: "2022-11-03"},
		[]cycleType{cycleMidtermFederal, cycleStateGeneral, cycleMunicipalLocal}},
	{models.ElectionEvent{ID: 7, Name: "2023 State", Slug: "2023-state-general", ElectionDate: "2023-10-14", EarlyVotingStart: "2023-09-30", EarlyVotingEnd: "2023-10-09"},
		[]cycleType{cycleStateGeneral, cycleMunicipalLocal}},
}

var seedSurveyQuestions = []models.SurveyQuestion{
	{Key: "why_running", Question: "Why are you running?"},
	{Key: "top_priority", Question: "What is your top priority if elected?"},
	{Key: "experience", Question: "What experience qualifies you for this office?"},
	{Key: "fiscal_approach", Question: "What is your approach to fiscal responsibility and budget management?"},
}

var seedEarlyVotingLocations = []models.EarlyVotingLocation{
	{ID: "ev1", Name: "City Hall", Address: "222 St. Louis St, Baton Rouge, LA 70802"},
	{ID: "ev2", Name: "Main Library at Goodwood", Address: "7711 Goodwood Blvd, Baton Rouge, LA 70806"},
	{ID: "ev3", Name: "Baker Municipal Building", Address: "3325 Groom Rd, Baker, LA 70714"},
	{ID: "ev4", Name: "Central Branch Library", Address: "11260 Joor Rd, Central, LA 70818"},
	{ID: "ev5", Name: "Forest Community Park", Address: "13900 S Harrells Ferry Rd, Baton Rouge, LA 70816"},
}

var parties = []string{"Democratic", "Republican", "Independent", "Green", "Other"}

func survey(why, priority, experience, fiscal string) map[string]string {
	return map[string]string{
		"why_running":     why,
		"top_priority":    priority,
		"experience":      experience,
		"fiscal_approach": fiscal,
	}
}

var seedCandidates = []models.Candidate{
	{
		ID:             1,
		FirstName:      "John",
		LastName:       "Smith",
		Slug:           "john-smith",
		PhotoURL:       "https://picsum.photos/seed/johnsmith/200/200",
		Party:          "Democratic",
		OfficeID:       1,
		CycleID:        2,
		Website:        "https://johnsmithforbr.com",
		Email:          "john@smithcampaign.org",
		Phone:          "225-555-0101",
		SocialLinks:    &models.SocialLinks{Facebook: "https://facebook.com/jsmith", Twitter: "https://twitter.com/jsmith"},
		Bio:            "John Smith has served 8 years on the City Council and is running to bring transparency to local government.",
		MailingAddress: "123 Government St.\nBaton Rouge, LA 70801",
		SurveyResponses: survey(
			"I want to ensure every voice is heard in City Hall.",
			"Balancing the city budget without cutting essential services.",
			"Two terms as Councilman, former finance committee chair.",
			"A balanced budget is paramount. I advocate for regular audits and transparent spending."),
		BallotOrder: 1,
		IsIncumbent: true,
	},
	{
		ID:             2,
		FirstName:      "Jane",
		LastName:       "Doe",
		Slug:           "jane-doe",
		PhotoURL:       "https://picsum.photos/seed/janedoe/200/200",
		Party:          "Republican",
		OfficeID:       2,
		District:       "District 61",
		CycleID:        1,
		Email:          "jane@doeforstate.com",
		Phone:          "225-555-0202",
		SocialLinks:    &models.SocialLinks{Facebook: "https://facebook.com/janedoe", Instagram: "https://instagram.com/janedoe"},
		Bio:            "A lifelong educator, Jane Doe has spent 15 years improving public schools in EBR Parish.",
		MailingAddress: "PO Box 456\nBaton Rouge, LA 70802",
		SurveyResponses: survey(
			"To put education and families first in the legislature.",
			"Increase teacher pay and reduce classroom sizes.",
			"School board president, curriculum developer.",
			"Investments in education are investments in our future; I'll seek efficiency elsewhere."),
		BallotOrder: 1,
	},
	{
		ID:              116,
		FirstName:       "Eleanor",
		LastName:        "Vance",
		Slug:            "eleanor-vance",
		PhotoURL:        "https://picsum.photos/seed/eleanorvance/200/200",
		Party:           "Democratic",
		OfficeID:        5,
		RunningMateName: "Marcus Cole",
		CycleID:         4,
		Website:         "https://vancecole.com",
		Email:           "info@vancecole.com",
		Bio:             "Eleanor Vance is a former governor with a focus on national unity and economic reform.",
		SurveyResponses: survey(
			"To lead the nation towards a brighter, more inclusive future.",
			"Strengthening the economy and ensuring healthcare for all.",
			"Two terms as Governor, former U.S. Senator.",
			"Invest in growth while maintaining fiscal discipline through targeted spending and fair taxation."),
		BallotOrder: 1,
	},
	{
		ID:              117,
		FirstName:       "Arthur",
		LastName:        "Pendleton",
		Slug:            "arthur-pendleton",
		PhotoURL:        "https://picsum.photos/seed/arthurpendleton/200/200",
		Party:           "Republican",
		OfficeID:        5,
		RunningMateName: "Sofia Reyes",
		CycleID:         4,
		Website:         "https://pendletonreyes.com",
		Email:           "contact@pendletonreyes.com",
		Bio:             "Arthur Pendleton is a businessman and innovator aiming to bring a new perspective to Washington.",
		SurveyResponses: survey(
			"To restore strong leadership and promote American enterprise.",
			"Reducing government regulation and fostering job creation.",
			"CEO of a major tech company, philanthropist.",
			"Cut wasteful spending, lower taxes to stimulate economic activity, and balance the budget."),
		BallotOrder: 2,
	},
	{
		ID:              118,
		FirstName:       "Primary",
		LastName:        "Prez",
		Slug:            "primary-prez",
		PhotoURL:        "https://picsum.photos/seed/primaryprez/200/200",
		Party:           "Independent",
		OfficeID:        5,
		RunningMateName: "Primary VP",
		CycleID:         3,
		Website:         "https://primaryprez.com",
		Email:           "info@primaryprez.com",
		Bio:             "Running in the primary to challenge the status quo.",
		SurveyResponses: survey(
			"To give voters a real choice.",
			"Campaign finance reform.",
			"Community Activist.",
			"Focus on grassroots funding and fiscal transparency."),
		BallotOrder: 1,
	},
	{
		ID:          3,
		FirstName:   "Frank",
		LastName:    "Lucas",
		Slug:        "frank-lucas",
		PhotoURL:    "https://picsum.photos/seed/franklucas/200/200",
		Party:       "Democratic",
		OfficeID:    1,
		CycleID:     2,
		Website:     "https://lucas4mayor.com",
		Email:       "contact@anderson2024.org",
		SocialLinks: &models.SocialLinks{Twitter: "https://twitter.com/lucas4mayor"},
		Bio:         "Frank Lucas is a small-business owner and civic volunteer with a vision for safer streets.",
		SurveyResponses: survey(
			"To bring real economic development to neighborhoods.",
			"Strengthen public safety and neighborhood policing.",
			"Former Chamber of Commerce president.",
			"Support small businesses to grow the tax base, then manage spending wisely."),
		BallotOrder: 1,
	},
	{
		ID:             4,
		FirstName:      "Frankie",
		LastName:       "Lucas",
		Slug:           "frankie-lucas",
		PhotoURL:       "https://picsum.photos/seed/frankielucas/200/200",
		Party:          "Republican",
		OfficeID:       3,
		CycleID:        2,
		Email:          "quentin@qanderson.com",
		Phone:          "225-555-0303",
		SocialLinks:    &models.SocialLinks{Facebook: "https://facebook.com/frankielucas"},
		Bio:            "Frankie Lucas has been a public defender for 12 years and seeks to reform our criminal justice system.",
		MailingAddress: "789 Justice Ave.\nBaton Rouge, LA 70803",
		SurveyResponses: survey(
			"To ensure equal justice for all residents.",
			"Reduce case backlogs and modernize the courts.",
			"Senior public defender, legal aid board member.",
			"Efficient court systems save taxpayer money in the long run."),
		BallotOrder: 1,
		IsIncumbent: true,
	},
	{
		ID:             5,
		FirstName:      "Alice",
		LastName:       "Johnson",
		Slug:           "alice-johnson",
		PhotoURL:       "https://picsum.photos/seed/alicejohnson/200/200",
		Party:          "Independent",
		OfficeID:       1,
		CycleID:        1,
		Website:        "https://aliceforpeople.com",
		Email:          "contact@aliceforpeople.com",
		Phone:          "225-555-0404",
		SocialLinks:    &models.SocialLinks{Twitter: "https://twitter.com/aliceforpeople"},
		Bio:            "Alice Johnson is a community organizer focused on sustainable development and local empowerment.",
		MailingAddress: "456 Community Way\nBaton Rouge, LA 70805",
		SurveyResponses: survey(
			"To bring a fresh perspective and community-driven solutions to city hall.",
			"Investing in green infrastructure and supporting small businesses.",
			"10 years as director of a local non-profit, extensive grant writing and project management.",
			"Prioritize sustainable investments that provide long-term community benefits."),
		BallotOrder: 2,
	},
	{
		ID:             6,
		FirstName:      "David",
		LastName:       "Lee",
		Slug:           "david-lee",
		PhotoURL:       "https://randomuser.me/api/portraits/men/43.jpg",
		Party:          "Libertarian",
		OfficeID:       3,
		CycleID:        1,
		Website:        "https://davidleeforcongress.com",
		Email:          "david.lee@randomuser.me",
		Phone:          "225-555-1212",
		SocialLinks:    &models.SocialLinks{Facebook: "https://facebook.com/davidleeforcongress", Twitter: "https://twitter.com/davidlee"},
		Bio:            "David Lee is a business consultant and political newcomer running for office to bring fresh ideas and a strong work ethic to Washington.",
		MailingAddress: "321 Liberty St.\nBaton Rouge, LA 70801",
		SurveyResponses: survey(
			"To restore integrity and accountability in government.",
			"Job creation and economic growth.",
			"10 years in business consulting, specializing in government contracts.",
			"Eliminate wasteful spending and reduce the tax burden on families and businesses."),
		BallotOrder: 1,
	},
	{
		ID:             7,
		FirstName:      "Sarah",
		LastName:       "Chen",
		Slug:           "sarah-chen",
		PhotoURL:       "https://randomuser.me/api/portraits/women/33.jpg",
		Party:          "Democratic",
		OfficeID:       4,
		CycleID:        1,
		Website:        "https://sarahchenforgovernor.com",
		Email:          "sarah.chen@randomuser.me",
		Phone:          "225-555-1313",
		SocialLinks:    &models.SocialLinks{Facebook: "https://facebook.com/sarahchenforgovernor", Twitter: "https://twitter.com/sarahchen"},
		Bio:            "Sarah Chen is a former state legislator with a proven track record of fighting for education, healthcare, and infrastructure improvements.",
		MailingAddress: "654 Hope Ave.\nBaton Rouge, LA 70801",
		SurveyResponses: survey(
			"To continue my service to the community at a higher level.",
			"Expanding access to quality healthcare and education.",
			"8 years in the state legislature, including 2 years as Speaker Pro Tempore.",
			"Prudent fiscal management with a focus on long-term investments in our state's future."),
		BallotOrder: 2,
	},
	{
		ID:             8,
		FirstName:      "Michael",
		LastName:       "Brown",
		Slug:           "michael-brown",
		PhotoURL:       "https://randomuser.me/api/portraits/men/22.jpg",
		Party:          "Republican",
		OfficeID:       4,
		CycleID:        1,
		Website:        "https://michaelbrownforgovernor.com",
		Email:          "michael.brown@randomuser.me",
		Phone:          "225-555-1414",
		SocialLinks:    &models.SocialLinks{Facebook: "https://facebook.com/michaelbrownforgovernor", Twitter: "https://twitter.com/michaelbrown"},
		Bio:            "Michael Brown is a successful entrepreneur and community leader dedicated to bringing conservative values and fiscal responsibility to the governor's office.",
		MailingAddress: "987 Victory Blvd.\nBaton Rouge, LA 70801",
		SurveyResponses: survey(
			"To bring real change and restore faith in government.",
			"Cutting taxes and reducing government size.",
			"15 years as a business owner, 5 years on the local school board.",
			"Implement zero-based budgeting and eliminate unnecessary programs."),
		BallotOrder: 1,
	},
	{
		ID:             9,
		FirstName:      "Emily",
		LastName:       "Jones",
		Slug:           "emily-jones",
		PhotoURL:       "https://randomuser.me/api/portraits/women/11.jpg",
		Party:          "Independent",
		OfficeID:       5,
		CycleID:        1,
		Website:        "https://emilyjonesforcitycouncil.com",
		Email:          "emily.jones@randomuser.me",
		Phone:          "225-555-1515",
		SocialLinks:    &models.SocialLinks{Facebook: "https://facebook.com/emilyjonesforcitycouncil", Twitter: "https://twitter.com/emilyjones"},
		Bio:            "Emily Jones is a grassroots activist and local business owner running for City Council to give a voice to the voiceless and fight for everyday people.",
		MailingAddress: "159 Community Dr.\nBaton Rouge, LA 70801",
		SurveyResponses: survey(
			"To represent the interests of working families and small businesses.",
			"Affordable housing and neighborhood safety.",
			"5 years as a community organizer, 3 years as a small business owner.",
			"Ensure responsible spending and prioritize community needs in the budget."),
		BallotOrder: 2,
	},
	{
		ID:             10,
		FirstName:      "Robert",
		LastName:       "Davis",
		Slug:           "robert-davis",
		PhotoURL:       "https://randomuser.me/api/portraits/men/1.jpg",
		Party:          "Neighborhood First",
		OfficeID:       5,
		CycleID:        1,
		Website:        "https://robertdavisforcitycouncil.com",
		Email:          "robert.davis@randomuser.me",
		Phone:          "225-555-1616",
		SocialLinks:    &models.SocialLinks{Facebook: "https://facebook.com/robertdavisforcitycouncil", Twitter: "https://twitter.com/robertdavis"},
		Bio:            "Robert Davis is a dedicated community servant and former teacher committed to improving our neighborhoods and ensuring a high quality of life for all residents.",
		MailingAddress: "753 Unity Ln.\nBaton Rouge, LA 70801",
		SurveyResponses: survey(
			"To continue my lifelong service to the community in a new capacity.",
			"Enhancing public safety and community services.",
			"20 years as an educator and community volunteer, 4 years on the city planning commission.",
			"Advocate for a fair and transparent budget that reflects the community's priorities."),
		BallotOrder: 1,
	},
}

var seedMeasures = []models.BallotMeasure{
	{
		ID:                 101,
		Slug:               "library-funding-2026",
		Title:              "Proposition L: Library System Millage Renewal",
		ElectionDate:       "2026-11-06",
		BallotLanguage:     "Shall the Parish of East Baton Rouge continue to levy a special tax of 2.5 mills on all property subject to taxation in the Parish for a period of ten (10) years, beginning with the year 2027 and ending with the year 2036, for the purpose of acquiring, constructing, improving, maintaining and operating public libraries in the Parish, including the purchase of books, periodicals, and equipment, and providing library services to the public?",
		LaymansExplanation: "This measure asks voters if they want to continue an existing property tax that funds the public library system. The tax rate and purpose remain the same.",
		YesVoteMeans:       "You agree to continue the existing 2.5 mills property tax for ten more years to fund public libraries.",
		NoVoteMeans:        "You want to discontinue this 2.5 mills property tax, which would reduce funding for public libraries.",
	},
	{
		ID:                 102,
		Slug:               "parks-bond-2025",
		Title:              "Parks and Recreation Bond Issue",
		ElectionDate:       "2025-11-05",
		BallotLanguage:     "Shall the Parish of East Baton Rouge incur debt and issue bonds in an amount not to exceed Fifty Million Dollars ($50,000,000), to run not exceeding twenty (20) years from date thereof, with interest at a rate not exceeding the maximum allowed by law, for the purpose of acquiring, constructing, and improving public parks, recreational facilities, and green spaces, including the acquisition of land and equipment therefor?",
		LaymansExplanation: "This measure asks voters to approve the parish taking on up to $50 million in debt (by selling bonds) to pay for new and improved parks and recreation facilities. This debt would be paid back over up to 20 years, likely through property taxes.",
		YesVoteMeans:       "You authorize the parish to borrow up to $50 million for parks and recreation projects, which will be repaid with interest over time.",
		NoVoteMeans:        "You do not want the parish to borrow money for these parks and recreation projects at this time.",
	},
	{
		ID:                 103,
		Slug:               "school-safety-2024",
		Title:              "School Safety Enhancement Millage",
		ElectionDate:       "2024-03-05",
		BallotLanguage:     "Shall the School Board of East Baton Rouge Parish levy an additional tax of 1.0 mill on all property subject to taxation in the Parish for a period of five (5) years, beginning with the year 2024, for the purpose of funding school safety enhancements, including but not limited to security personnel, equipment, and mental health support services in public schools?",
		LaymansExplanation: "This measure proposed a new 1.0 mill property tax for five years specifically to improve safety and security in public schools.",
		YesVoteMeans:       "You supported a new 1.0 mill property tax for five years to fund school safety initiatives.",
		NoVoteMeans:        "You opposed this new 1.0 mill property tax for school safety initiatives.",
	},
}

type rawCandidateResult struct {
	candidateID int
	votes       int
	isWinner    bool
}

type rawOfficeResult struct {
	officeID   int
	district   string
	candidates []rawCandidateResult
}

// Historical results by election date, in display order of offices
var seedResults = []struct {
	date    string
	offices []rawOfficeResult
}{
	{"2024-03-05", []rawOfficeResult{
		{officeID: 2, district: "District 67", candidates: []rawCandidateResult{{6, 4500, false}, {7, 5500, true}}},
		{officeID: 1, candidates: []rawCandidateResult{{8, 12000, true}}},
		{officeID: 5, candidates: []rawCandidateResult{{118, 25000, true}}},
	}},
	{"2022-11-08", []rawOfficeResult{
		{officeID: 7, candidates: []rawCandidateResult{{96, 150000, true}, {89, 120000, false}}},
		{officeID: 9, candidates: []rawCandidateResult{{23, 850000, true}, {53, 750000, false}}},
	}},
	{"2023-10-14", []rawOfficeResult{
		{officeID: 11, candidates: []rawCandidateResult{{40, 60000, false}, {70, 72000, true}}},
		{officeID: 2, district: "District 3", candidates: []rawCandidateResult{{17, 8000, true}, {22, 7500, false}}},
	}},
}

// generatedCandidates fills out the directory with placeholder candidates
// (ids 12 through 112), each assigned to a cycle suited to its office.
func generatedCandidates() []models.Candidate {
	out := make([]models.Candidate, 0, 101)
	for i := 12; i <= 112; i++ {
		office := seedOffices[i%len(seedOffices)]
		cycles := suitableCycles(office.ID)
		cycleID := cycles[i%len(cycles)].event.ID

		var runningMate, district string
		if office.ID == models.OfficeUSPresident {
			runningMate = fmt.Sprintf("RunMate %d", i)
		}
		if slices.Contains(districtedOffices, office.ID) {
			district = fmt.Sprintf("District %d", i%5+1)
		}

		gender := "women"
		if i%2 == 0 {
			gender = "men"
		}
		ballotOrder := i%3 + 1

		out = append(out, models.Candidate{
			ID:              i,
			FirstName:       fmt.Sprintf("CandFirst %d", i),
			LastName:        fmt.Sprintf("CandLast %d", i),
			Slug:            fmt.Sprintf("candfirst%d-candlast%d", i, i),
			PhotoURL:        fmt.Sprintf("https://randomuser.me/api/portraits/%s/%d.jpg", gender, i%100),
			Party:           parties[i%len(parties)],
			OfficeID:        office.ID,
			RunningMateName: runningMate,
			District:        district,
			CycleID:         cycleID,
			Website:         fmt.Sprintf("https://example.com/candidate%d", i),
			Email:           fmt.Sprintf("candidate%d@example.com", i),
			Phone:           fmt.Sprintf("225-555-%04d", i%10000),
			SocialLinks:     &models.SocialLinks{Twitter: fmt.Sprintf("https://twitter.com/candidate%d", i)},
			Bio: fmt.Sprintf("This is the detailed biography for Candidate %d. They are committed to serving the community "+
				"and bringing positive change for office ID %d in cycle ID %d. Their platform focuses on key issues such as "+
				"economic development, education, and public safety. Candidate %d has a background in [Generic Field] and "+
				"believes in transparent governance.", i, office.ID, cycleID, i),
			MailingAddress: fmt.Sprintf("%d Main St\nBaton Rouge, LA 7080%d", i*10, i%10),
			SurveyResponses: survey(
				fmt.Sprintf("Candidate %d is running to make a difference in their community and address pressing local issues.", i),
				fmt.Sprintf("The top priority for Candidate %d is to improve [Generic Priority Area %d].", i, i%3+1),
				fmt.Sprintf("Candidate %d brings %d years of experience in [Generic Experience Field] to the table.", i, i%10+5),
				fmt.Sprintf("Candidate %d believes in a responsible and transparent fiscal approach, ensuring taxpayer money is used wisely.", i)),
			BallotOrder: ballotOrder,
			IsIncumbent: i%7 == 0 && ballotOrder == 1,
		})
	}
	return out
}

func suitableCycles(officeID int) []seedCycle {
	var want []cycleType
	switch {
	case officeID == models.OfficeUSPresident:
		want = []cycleType{cyclePresidential}
	case officeID == 7 || officeID == 8:
		want = []cycleType{cyclePresidential, cycleMidtermFederal, cyclePrimary}
	case slices.Contains([]int{2, 9, 10, 11, 12, 13}, officeID):
		want = []cycleType{cycleStateGeneral, cyclePrimary, cycleSpecial}
	default:
		want = []cycleType{cycleMunicipalLocal, cycleSpecial, cyclePrimary}
	}

	var out []seedCycle
	for _, c := range seedCycles {
		if slices.ContainsFunc(c.types, func(t cycleType) bool { return slices.Contains(want, t) }) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return seedCycles
	}
	return out
}

// generatedMeasures adds placeholder propositions 104 through 210,
// spread round-robin across the election cycles.
func generatedMeasures() []models.BallotMeasure {
	out := make([]models.BallotMeasure, 0, 107)
	for i := 104; i <= 210; i++ {
		date := seedCycles[i%len(seedCycles)].event.ElectionDate
		year := date[:4]
		topic := string(rune('A' + i%26))

		out = append(out, models.BallotMeasure{
			ID:           i,
			Slug:         fmt.Sprintf("measure-prop%d-%s", i, year),
			Title:        fmt.Sprintf("Proposition %d: Initiative for Topic %s-%s", i, topic, year),
			ElectionDate: date,
			BallotLanguage: fmt.Sprintf("This is the official and detailed ballot language for Proposition %d. It outlines the specific "+
				"legal changes, financial implications, and operational adjustments proposed by this measure. Voters are encouraged "+
				"to read this section carefully to understand the full scope of what a 'yes' or 'no' vote entails.", i),
			LaymansExplanation: fmt.Sprintf("In simpler terms, Proposition %d is about [Generic Explanation Area for Topic %s]. "+
				"This explanation is intended to provide a general understanding of the measure's purpose and potential impact.", i, topic),
			YesVoteMeans: fmt.Sprintf("A 'YES' vote on Proposition %d means you support the proposed changes related to Topic %s.", i, topic),
			NoVoteMeans: fmt.Sprintf("A 'NO' vote on Proposition %d means you oppose the proposed changes for Topic %s "+
				"and the current status quo is maintained.", i, topic),
		})
	}
	return out
}
