package qdrant

import (
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/openparl/parliament-mcp/internal/core/domain"
)

// translateFilter renders the engine-agnostic filter into Qdrant's
// condition tree. A nil filter translates to nil, which Qdrant treats as
// match-all; sending an empty Must clause instead would match nothing.
func translateFilter(f *domain.Filter) *qdrant.Filter {
	if f == nil || len(f.Must) == 0 {
		return nil
	}
	must := make([]*qdrant.Condition, 0, len(f.Must))
	for _, c := range f.Must {
		if cond := translateCondition(c); cond != nil {
			must = append(must, cond)
		}
	}
	if len(must) == 0 {
		return nil
	}
	return &qdrant.Filter{Must: must}
}

func translateCondition(c domain.FilterCondition) *qdrant.Condition {
	switch c.Kind {
	case domain.FilterDateRange:
		r := &qdrant.DatetimeRange{}
		if c.From != nil {
			r.Gte = timestamppb.New(*c.From)
		}
		if c.To != nil {
			r.Lte = timestamppb.New(*c.To)
		}
		return qdrant.NewDatetimeRange(c.Field, r)
	case domain.FilterMatchKeyword:
		return qdrant.NewMatch(c.Field, c.Keyword)
	case domain.FilterMatchInt:
		return qdrant.NewMatchInt(c.Field, c.Int)
	case domain.FilterContainsText:
		return qdrant.NewMatchText(c.Field, c.Text)
	}
	return nil
}
