package catalog

import "strings"

const DefaultSearchLimit = 8

// Search returns skills whose name or keywords contain the query,
// case-insensitively, skipping ids in exclude and stopping at limit.
// Results keep catalog declaration order; for a given catalog and
// query the output is always the same. An empty query returns nothing
// rather than the whole catalog.
func Search(query string, exclude map[string]bool, limit int) []Skill {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	out := make([]Skill, 0, limit)
	for _, s := range flat {
		if exclude[s.ID] {
			continue
		}
		if !matches(s, q) {
			continue
		}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

func matches(s Skill, q string) bool {
	if strings.Contains(strings.ToLower(s.Name), q) {
		return true
	}
	for _, kw := range s.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}
