package domain

import (
	"fmt"
	"time"
)

// DebateParent is one level of the debate section hierarchy, from the
// chamber down to the section's immediate parent.
type DebateParent struct {
	// ID is Hansard's internal numeric id for the section.
	ID int64 `json:"id"`

	// Title is the section title, e.g. "Oral Answers to Questions".
	Title string `json:"title"`

	// ParentID is the internal id of the enclosing section, nil at the top.
	ParentID *int64 `json:"parent_id"`

	// ExternalID is Hansard's stable GUID for the section.
	ExternalID string `json:"external_id"`
}

// DebateGroup is a debate section supported by at least MinimumDebateHits
// underlying contribution hits.
type DebateGroup struct {
	// DebateID is the debate section external id.
	DebateID string `json:"debate_id"`

	// Title is the debate section title.
	Title string `json:"title"`

	// Date is the sitting date.
	Date time.Time `json:"date"`

	// House is the chamber the debate sat in.
	House string `json:"house"`

	// DebateParents is the section hierarchy, top level first.
	DebateParents []DebateParent `json:"debate_parents"`

	// RelevanceScore is the sum of the member hit scores. Only meaningful
	// when the search carried a free-text query; zero otherwise.
	RelevanceScore float64 `json:"relevance_score,omitempty"`

	// HitCount is the number of underlying contribution hits.
	HitCount int `json:"hit_count"`
}

// ContributionHit is a single Hansard contribution returned by search.
// Hits are ephemeral projections of backend payloads; they carry no
// identity beyond the backend's own document id.
type ContributionHit struct {
	// Text is the spoken contribution.
	Text string `json:"text"`

	// Date is the sitting date.
	Date time.Time `json:"date"`

	// House is the chamber.
	House string `json:"house"`

	// MemberID identifies the speaking member, zero when unattributed.
	MemberID int64 `json:"member_id"`

	// MemberName is the speaking member's name.
	MemberName string `json:"member_name"`

	// RelevanceScore is the backend relevance for the query, zero for
	// browse requests.
	RelevanceScore float64 `json:"relevance_score"`

	// DebateTitle is the enclosing debate section title.
	DebateTitle string `json:"debate_title"`

	// DebateURL links to the debate on hansard.parliament.uk.
	DebateURL string `json:"debate_url"`

	// ContributionURL links to the contribution anchor within the debate.
	ContributionURL string `json:"contribution_url"`

	// OrderInDebate is the contribution's position within its section.
	OrderInDebate int `json:"order_in_debate"`

	// DebateParents is the section hierarchy, top level first.
	DebateParents []DebateParent `json:"debate_parents"`
}

// ContributorGroup is one member's top contributions for a query, used by
// the find-relevant-contributors capability.
type ContributorGroup struct {
	// MemberID identifies the member.
	MemberID int64 `json:"member_id"`

	// MemberName is the member's name as attributed in Hansard.
	MemberName string `json:"member_name"`

	// TotalScore is the sum of the retained hit scores.
	TotalScore float64 `json:"total_score"`

	// Contributions are the member's top hits, best first.
	Contributions []ContributionHit `json:"contributions"`
}

// DebateURL builds the canonical hansard.parliament.uk link for a debate
// section on a sitting date.
func DebateURL(house string, sittingDate time.Time, debateID string) string {
	return fmt.Sprintf("https://hansard.parliament.uk/%s/%s/debates/%s/link",
		house, sittingDate.Format(ISODate), debateID)
}

// ContributionURL builds the anchor link for a contribution within its
// debate. Returns an empty string when the contribution has no external id.
func ContributionURL(house string, sittingDate time.Time, debateID, contributionID string) string {
	if contributionID == "" {
		return ""
	}
	return DebateURL(house, sittingDate, debateID) + "#contribution-" + contributionID
}
