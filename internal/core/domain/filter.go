package domain

import "time"

// FilterKind discriminates the filter condition variants.
type FilterKind int

// Filter condition kinds.
const (
	// FilterDateRange matches payload dates within an inclusive range.
	FilterDateRange FilterKind = iota

	// FilterMatchKeyword matches a payload string field exactly.
	FilterMatchKeyword

	// FilterMatchInt matches a payload integer field exactly.
	FilterMatchInt

	// FilterContainsText matches a payload text field containing a phrase.
	FilterContainsText
)

// FilterCondition is a single engine-agnostic search predicate.
// Backends translate conditions into their native filter syntax.
type FilterCondition struct {
	// Kind selects which variant fields are meaningful.
	Kind FilterKind

	// Field is the payload field the condition applies to.
	Field string

	// Keyword is the exact-match value for FilterMatchKeyword.
	Keyword string

	// Int is the exact-match value for FilterMatchInt.
	Int int64

	// Text is the phrase for FilterContainsText.
	Text string

	// From is the inclusive lower bound for FilterDateRange (nil = open).
	From *time.Time

	// To is the inclusive upper bound for FilterDateRange (nil = open).
	To *time.Time
}

// Filter is an AND-combination of conditions. All must hold.
type Filter struct {
	Must []FilterCondition
}

// DateRange builds an inclusive date range condition. Returns nil when both
// bounds are absent: filters are optional refinements and missing input
// degrades to "no filtering" rather than failing.
func DateRange(field string, from, to *time.Time) *FilterCondition {
	if from == nil && to == nil {
		return nil
	}
	return &FilterCondition{Kind: FilterDateRange, Field: field, From: from, To: to}
}

// MatchKeyword builds an exact string match condition. Returns nil for an
// empty value.
func MatchKeyword(field, value string) *FilterCondition {
	if value == "" {
		return nil
	}
	return &FilterCondition{Kind: FilterMatchKeyword, Field: field, Keyword: value}
}

// MatchInt builds an exact integer match condition. Returns nil for a zero
// value; Parliament identifiers are strictly positive so zero means the
// parameter was not supplied.
func MatchInt(field string, value int64) *FilterCondition {
	if value == 0 {
		return nil
	}
	return &FilterCondition{Kind: FilterMatchInt, Field: field, Int: value}
}

// ContainsText builds a full-text phrase containment condition. Returns nil
// for an empty value.
func ContainsText(field, value string) *FilterCondition {
	if value == "" {
		return nil
	}
	return &FilterCondition{Kind: FilterContainsText, Field: field, Text: value}
}

// Compose combines conditions with AND semantics, dropping nil entries.
// Returns nil when no conditions remain, meaning "match all".
func Compose(conditions ...*FilterCondition) *Filter {
	var must []FilterCondition
	for _, c := range conditions {
		if c != nil {
			must = append(must, *c)
		}
	}
	if len(must) == 0 {
		return nil
	}
	return &Filter{Must: must}
}
