package catalog

import "strings"

type SkillFacet struct {
	Skill    Skill
	Selected bool
}

type CategoryFacet struct {
	ID          string
	Name        string
	Description string
	Skills      []SkillFacet
}

// Maps the job-category label supplied by a posting to the catalog
// categories worth showing for it. Labels are matched lowercased.
var hintCategories = map[string][]string{
	"construction":     {"construction", "trades_technical"},
	"transportation":   {"driving_logistics"},
	"logistics":        {"driving_logistics", "warehouse_manufacturing"},
	"retail":           {"retail_sales"},
	"hospitality":      {"hospitality_catering"},
	"healthcare":       {"healthcare_care"},
	"service industry": {"hospitality_catering", "retail_sales", "cleaning_facilities"},
	"maintenance":      {"trades_technical", "cleaning_facilities"},
	"agriculture":      {"agriculture_outdoor"},
	"manufacturing":    {"warehouse_manufacturing", "trades_technical"},
}

var defaultHintCategories = []string{"soft_skills"}

// Facets returns the browsable category view. With allCategories set
// every category is returned; otherwise the hint narrows the view to
// its mapped categories, falling back to soft skills for a hint the
// table does not know. Selection state is a membership test against
// selected, so the browse view and the search box stay in step.
func Facets(selected map[string]bool, jobCategoryHint string, allCategories bool) []CategoryFacet {
	eligible := categories
	if !allCategories {
		eligible = narrowByHint(jobCategoryHint)
	}

	out := make([]CategoryFacet, 0, len(eligible))
	for _, c := range eligible {
		skills := make([]SkillFacet, 0, len(c.Skills))
		for _, s := range c.Skills {
			skills = append(skills, SkillFacet{Skill: s, Selected: selected[s.ID]})
		}
		out = append(out, CategoryFacet{ID: c.ID, Name: c.Name, Description: c.Description, Skills: skills})
	}
	return out
}

func narrowByHint(hint string) []Category {
	ids, ok := hintCategories[strings.ToLower(strings.TrimSpace(hint))]
	if !ok {
		ids = defaultHintCategories
	}

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	// Walk the declared order so the narrowed view keeps catalog order.
	out := make([]Category, 0, len(ids))
	for _, c := range categories {
		if want[c.ID] {
			out = append(out, c)
		}
	}
	return out
}
