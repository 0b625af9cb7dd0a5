package meili

import (
	"fmt"
	"strings"
	"time"

	"github.com/openparl/parliament-mcp/internal/core/domain"
)

// renderFilter renders the engine-agnostic filter as a Meilisearch filter
// expression. Values are always quoted and escaped; filter expressions are
// built from user input and must never be interpolated raw.
func renderFilter(f *domain.Filter) string {
	if f == nil || len(f.Must) == 0 {
		return ""
	}
	clauses := make([]string, 0, len(f.Must))
	for _, c := range f.Must {
		if clause := renderCondition(c); clause != "" {
			clauses = append(clauses, clause)
		}
	}
	return strings.Join(clauses, " AND ")
}

func renderCondition(c domain.FilterCondition) string {
	switch c.Kind {
	case domain.FilterDateRange:
		// Dates are filtered as unix timestamps, the sortable numeric
		// form the indexing pipeline writes alongside each date field.
		var bounds []string
		if c.From != nil {
			bounds = append(bounds, fmt.Sprintf("%s_ts >= %d", c.Field, c.From.Unix()))
		}
		if c.To != nil {
			bounds = append(bounds, fmt.Sprintf("%s_ts <= %d", c.Field, endOfDay(*c.To).Unix()))
		}
		return strings.Join(bounds, " AND ")
	case domain.FilterMatchKeyword:
		return fmt.Sprintf("%s = \"%s\"", c.Field, escapeValue(c.Keyword))
	case domain.FilterMatchInt:
		return fmt.Sprintf("%s = %d", c.Field, c.Int)
	case domain.FilterContainsText:
		return fmt.Sprintf("%s CONTAINS \"%s\"", c.Field, escapeValue(c.Text))
	}
	return ""
}

// escapeValue escapes backslashes and double quotes in filter values.
func escapeValue(value string) string {
	value = strings.ReplaceAll(value, "\\", "\\\\")
	value = strings.ReplaceAll(value, "\"", "\\\"")
	return value
}

// endOfDay pushes an inclusive calendar-date upper bound to the last
// second of that day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
