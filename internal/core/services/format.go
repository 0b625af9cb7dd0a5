package services

import (
	"sort"
	"time"

	"github.com/openparl/parliament-mcp/internal/core/domain"
	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
)

// Payload accessors. Backend payloads arrive as loosely typed maps and
// real indexed data is uneven, so every accessor tolerates a missing or
// mistyped field by returning the zero value.

func payloadString(payload map[string]any, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

func payloadInt(payload map[string]any, key string) int64 {
	switch v := payload[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func payloadTime(payload map[string]any, key string) time.Time {
	return domain.ParsePayloadDate(payloadString(payload, key))
}

func payloadMember(payload map[string]any, key string) domain.Member {
	m, ok := payload[key].(map[string]any)
	if !ok {
		return domain.Member{}
	}
	return domain.Member{
		ID:         payloadInt(m, "id"),
		Name:       payloadString(m, "name"),
		Party:      payloadString(m, "party"),
		MemberFrom: payloadString(m, "memberFrom"),
	}
}

func payloadParents(payload map[string]any, key string) []domain.DebateParent {
	raw, ok := payload[key].([]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	parents := make([]domain.DebateParent, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		parent := domain.DebateParent{
			ID:         payloadInt(m, "Id"),
			Title:      payloadString(m, "Title"),
			ExternalID: payloadString(m, "ExternalId"),
		}
		if _, present := m["ParentId"]; present && m["ParentId"] != nil {
			id := payloadInt(m, "ParentId")
			parent.ParentID = &id
		}
		parents = append(parents, parent)
	}
	return parents
}

// contributionFromHit projects a backend hit onto the public contribution
// shape. Hansard links missing from the payload are rebuilt from the
// sitting date, house and section ids.
func contributionFromHit(h driven.Hit) domain.ContributionHit {
	p := h.Payload
	hit := domain.ContributionHit{
		Text:            payloadString(p, fieldText),
		Date:            payloadTime(p, fieldSittingDate),
		House:           payloadString(p, fieldHouse),
		MemberID:        payloadInt(p, fieldMemberID),
		MemberName:      payloadString(p, fieldMemberName),
		RelevanceScore:  h.Score,
		DebateTitle:     payloadString(p, fieldDebateSection),
		DebateURL:       payloadString(p, fieldDebateURL),
		ContributionURL: payloadString(p, fieldContributionURL),
		OrderInDebate:   int(payloadInt(p, fieldOrderInDebate)),
		DebateParents:   payloadParents(p, fieldDebateParents),
	}
	if debateID := payloadString(p, fieldDebateExtID); debateID != "" {
		if hit.DebateURL == "" {
			hit.DebateURL = domain.DebateURL(hit.House, hit.Date, debateID)
		}
		if hit.ContributionURL == "" {
			hit.ContributionURL = domain.ContributionURL(hit.House, hit.Date, debateID, h.ID)
		}
	}
	return hit
}

// debateFromGroup folds a hit group into a debate record. Title, date and
// hierarchy come from the first hit; relevance is the sum over all hits
// when the search was scored.
func debateFromGroup(g driven.HitGroup, scored bool) domain.DebateGroup {
	debate := domain.DebateGroup{
		DebateID: g.Key,
		HitCount: len(g.Hits),
	}
	if len(g.Hits) > 0 {
		p := g.Hits[0].Payload
		debate.Title = payloadString(p, fieldDebateSection)
		debate.Date = payloadTime(p, fieldSittingDate)
		debate.House = payloadString(p, fieldHouse)
		debate.DebateParents = payloadParents(p, fieldDebateParents)
	}
	if scored {
		for _, h := range g.Hits {
			debate.RelevanceScore += h.Score
		}
	}
	return debate
}

func chunkFromHit(h driven.Hit) domain.QuestionChunk {
	p := h.Payload
	return domain.QuestionChunk{
		ChunkIndex:        int(payloadInt(p, fieldChunkIndex)),
		ChunkType:         payloadString(p, fieldChunkType),
		Text:              payloadString(p, fieldText),
		CreatedAt:         payloadTime(p, fieldCreatedAt),
		Score:             h.Score,
		UIN:               payloadString(p, fieldUIN),
		AskingMember:      payloadMember(p, fieldAskingMember),
		AnsweringMember:   payloadMember(p, fieldAnsweringMember),
		AnsweringBodyName: payloadString(p, fieldAnsweringBody),
		DateTabled:        payloadTime(p, fieldDateTabled),
		DateAnswered:      payloadTime(p, fieldDateAnswered),
	}
}

// sortContributions orders hits for presentation. Scored searches rank by
// relevance; browse requests read in chamber order, oldest sitting first.
func sortContributions(hits []domain.ContributionHit, scored bool) {
	if scored {
		sort.SliceStable(hits, func(i, j int) bool {
			return hits[i].RelevanceScore > hits[j].RelevanceScore
		})
		return
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if !hits[i].Date.Equal(hits[j].Date) {
			return hits[i].Date.Before(hits[j].Date)
		}
		return hits[i].OrderInDebate < hits[j].OrderInDebate
	})
}

// sortDebates orders debates by relevance then date, both descending.
// Unscored searches have uniformly zero relevance, leaving newest first.
func sortDebates(debates []domain.DebateGroup) {
	sort.SliceStable(debates, func(i, j int) bool {
		if debates[i].RelevanceScore != debates[j].RelevanceScore {
			return debates[i].RelevanceScore > debates[j].RelevanceScore
		}
		return debates[i].Date.After(debates[j].Date)
	})
}

// sortQuestions orders records by relevance for scored searches and by
// tabled date, newest first, for browse requests.
func sortQuestions(records []domain.QuestionRecord, scored bool) {
	sort.SliceStable(records, func(i, j int) bool {
		if scored && records[i].RelevanceScore != records[j].RelevanceScore {
			return records[i].RelevanceScore > records[j].RelevanceScore
		}
		return records[i].DateTabled.After(records[j].DateTabled)
	})
}

func sortContributors(groups []domain.ContributorGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalScore > groups[j].TotalScore
	})
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
