package catalog

// SkillType classifies how a skill is evidenced: learned ability,
// behavioural trait, formal certification, or a licence to operate.
type SkillType string

const (
	TypeTechnical     SkillType = "technical"
	TypeSoftSkill     SkillType = "soft"
	TypeCertification SkillType = "certification"
	TypeLicense       SkillType = "license"
)

type SkillLevel string

const (
	LevelBasic        SkillLevel = "basic"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelCertified    SkillLevel = "certified"
)

type Skill struct {
	ID            string
	Name          string
	Category      string
	Type          SkillType
	Level         SkillLevel
	Keywords      []string
	RelatedSkills []string
}

type Category struct {
	ID          string
	Name        string
	Description string
	Skills      []Skill
}

var (
	flat       []Skill
	byID       map[string]Skill
	byCategory map[string][]Skill
)

func init() {
	byID = make(map[string]Skill)
	byCategory = make(map[string][]Skill, len(categories))
	for _, c := range categories {
		for _, s := range c.Skills {
			flat = append(flat, s)
			byID[s.ID] = s
		}
		byCategory[c.ID] = c.Skills
	}
}

// All returns every skill in declaration order: category order first,
// then skill order within the category. The slice is shared; callers
// must not mutate it.
func All() []Skill {
	return flat
}

func Categories() []Category {
	return categories
}

// ByCategory returns the skills of one category, or an empty slice for
// an unknown category id.
func ByCategory(categoryID string) []Skill {
	if skills, ok := byCategory[categoryID]; ok {
		return skills
	}
	return []Skill{}
}

func ByID(id string) (Skill, bool) {
	s, ok := byID[id]
	return s, ok
}

func ByType(t SkillType) []Skill {
	out := make([]Skill, 0)
	for _, s := range flat {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

// Related resolves a skill's related-skill ids against the catalog.
// Ids that no longer resolve are dropped rather than reported; related
// lists survive catalog edits between releases.
func Related(id string) []Skill {
	s, ok := byID[id]
	if !ok {
		return []Skill{}
	}
	out := make([]Skill, 0, len(s.RelatedSkills))
	for _, rid := range s.RelatedSkills {
		if rs, ok := byID[rid]; ok {
			out = append(out, rs)
		}
	}
	return out
}
