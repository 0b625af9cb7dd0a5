package domain

import "fmt"

// House identifies a chamber of Parliament.
type House string

// The two houses. An empty House means "either".
const (
	HouseCommons House = "Commons"
	HouseLords   House = "Lords"
)

// ParseHouse validates an optional house parameter. An empty string is
// valid and means no house filter.
func ParseHouse(value string) (House, error) {
	switch House(value) {
	case "", HouseCommons, HouseLords:
		return House(value), nil
	default:
		return "", fmt.Errorf("%w: %q (expected Commons or Lords)", ErrInvalidHouse, value)
	}
}

// DebateSearchRequest parameterises a debate-title search.
//
// At least one of Query, DateFrom, or DateTo must be supplied; House alone
// is not a discriminating filter for this surface.
type DebateSearchRequest struct {
	// Query is free text matched against debate titles. Optional.
	Query string

	// DateFrom and DateTo bound the sitting date, inclusive, YYYY-MM-DD.
	DateFrom string
	DateTo   string

	// House restricts to Commons or Lords. Optional.
	House string

	// MaxResults caps the number of debate groups returned. Zero means
	// the surface default.
	MaxResults int
}

// ContributionSearchRequest parameterises a Hansard contribution search.
//
// At least one of Query, MemberID, DateFrom, DateTo, DebateID, or House
// must be supplied.
type ContributionSearchRequest struct {
	// Query is free text matched against the spoken contribution. Optional.
	Query string

	// MemberID restricts to contributions by one member. Zero means unset.
	MemberID int64

	// DateFrom and DateTo bound the sitting date, inclusive, YYYY-MM-DD.
	DateFrom string
	DateTo   string

	// DebateID restricts to one debate section external id. Optional.
	DebateID string

	// House restricts to Commons or Lords. Optional.
	House string

	// MaxResults caps the number of hits returned. Zero means the surface
	// default.
	MaxResults int
}

// QuestionSearchRequest parameterises a parliamentary written question
// search. Every field is optional: an empty request returns the most
// recently tabled questions.
type QuestionSearchRequest struct {
	// Query is free text matched against question and answer text. Optional.
	Query string

	// DateFrom and DateTo bound the tabled date, inclusive, YYYY-MM-DD.
	DateFrom string
	DateTo   string

	// Party restricts to questions asked by members of one party. Optional.
	Party string

	// AskingMemberID restricts to one asking member. Zero means unset.
	AskingMemberID int64

	// AnsweringBodyName restricts to answering bodies whose name contains
	// this phrase, e.g. "Department for Transport". Optional.
	AnsweringBodyName string

	// MaxResults caps the number of question records returned. Zero means
	// the surface default.
	MaxResults int
}

// ContributorSearchRequest parameterises a relevant-contributor search.
// Query is required; the grouping is meaningless without relevance.
type ContributorSearchRequest struct {
	// Query is the topic to rank contributors against. Required.
	Query string

	// NumContributors caps the number of members returned.
	NumContributors int

	// NumContributions caps the retained hits per member.
	NumContributions int

	// DateFrom and DateTo bound the sitting date, inclusive, YYYY-MM-DD.
	DateFrom string
	DateTo   string

	// House restricts to Commons or Lords. Optional.
	House string
}
