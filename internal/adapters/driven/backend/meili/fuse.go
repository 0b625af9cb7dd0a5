package meili

import (
	"sort"
	"strconv"

	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
)

// reciprocalRankFusion merges two ranked lists. Each hit contributes
// 1/(k+rank+1) per list it appears in; k=60 keeps single-list outliers
// from dominating documents found by both channels.
func reciprocalRankFusion(list1, list2 []driven.Hit, k int) []driven.Hit {
	scores := make(map[string]float64)
	byID := make(map[string]driven.Hit)

	for rank, hit := range list1 {
		scores[hit.ID] += 1.0 / float64(k+rank+1)
		byID[hit.ID] = hit
	}
	for rank, hit := range list2 {
		scores[hit.ID] += 1.0 / float64(k+rank+1)
		if _, ok := byID[hit.ID]; !ok {
			byID[hit.ID] = hit
		}
	}

	fused := make([]driven.Hit, 0, len(byID))
	for id, hit := range byID {
		hit.Score = scores[id]
		fused = append(fused, hit)
	}
	sort.SliceStable(fused, func(i, j int) bool {
		return fused[i].Score > fused[j].Score
	})
	return fused
}

// groupHits partitions a flat ranking by a payload field, keeping rank
// order. Hits without the field are dropped; once groupLimit groups exist,
// hits for unseen keys are dropped too.
func groupHits(hits []driven.Hit, groupBy string, groupLimit, groupSize int) []driven.HitGroup {
	order := make([]string, 0, groupLimit)
	grouped := make(map[string][]driven.Hit)

	for _, hit := range hits {
		key := groupKeyOf(hit.Payload[groupBy])
		if key == "" {
			continue
		}
		bucket, seen := grouped[key]
		if !seen {
			if groupLimit > 0 && len(order) >= groupLimit {
				continue
			}
			order = append(order, key)
		}
		if groupSize > 0 && len(bucket) >= groupSize {
			continue
		}
		grouped[key] = append(bucket, hit)
	}

	groups := make([]driven.HitGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, driven.HitGroup{Key: key, Hits: grouped[key]})
	}
	return groups
}

func groupKeyOf(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return ""
}
