// Package scoring computes the completeness score of a CV document.
// The rubric is fixed: binary weighted checks summing to 100, with no
// partial credit inside a check. Evaluation is pure and total; an
// empty or half-filled document fails checks, it never errors.
package scoring

import (
	"regexp"
	"strings"

	"workmatch/internal/domain/cv"
)

type Check struct {
	Label  string `json:"label"`
	Weight int    `json:"weight"`
	Passed bool   `json:"passed"`
}

type Result struct {
	Score  int     `json:"score"`
	Checks []Check `json:"checks"`
}

const (
	BandExcellent        = "Excellent"
	BandGood             = "Good"
	BandNeedsImprovement = "Needs Improvement"
)

const (
	minSummaryLength = 50
	minSkillCount    = 5
)

// Matches a measurable quantity in an achievement: a percentage, a
// currency amount, a count in thousands, or a duration in years or
// months.
var quantityPattern = regexp.MustCompile(`(?i)\d+(\.\d+)?\s*%|[£$€]\s*\d|\d+(\.\d+)?\s*k\b|\d+\+?\s*(year|yr)s?\b|\d+\+?\s*months?\b`)

type rubricItem struct {
	label  string
	weight int
	passed func(cv.Document) bool
}

// Table order is the order checks are reported in, every time.
var rubric = []rubricItem{
	{"Contact info complete", 20, contactComplete},
	{"Summary present", 15, summaryPresent},
	{"Work experience detailed", 25, workDetailed},
	{"Sufficient skills", 20, sufficientSkills},
	{"Education included", 10, educationIncluded},
	{"Quantified achievements", 10, quantifiedAchievements},
}

// Evaluate scores doc against the rubric. Every check appears in the
// result whether it passed or not, so a caller can always render the
// full checklist.
func Evaluate(doc cv.Document) Result {
	res := Result{Checks: make([]Check, 0, len(rubric))}
	for _, item := range rubric {
		ok := item.passed(doc)
		if ok {
			res.Score += item.weight
		}
		res.Checks = append(res.Checks, Check{Label: item.label, Weight: item.weight, Passed: ok})
	}
	return res
}

// Band labels a score for presentation. It never feeds back into the
// numeric score.
func Band(score int) string {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	default:
		return BandNeedsImprovement
	}
}

func contactComplete(doc cv.Document) bool {
	pi := doc.PersonalInfo
	return notBlank(pi.FullName) && notBlank(pi.Email) && notBlank(pi.Phone)
}

func summaryPresent(doc cv.Document) bool {
	return len(doc.ProfessionalSummary.Content) >= minSummaryLength
}

func workDetailed(doc cv.Document) bool {
	if len(doc.WorkExperience) == 0 {
		return false
	}
	for _, we := range doc.WorkExperience {
		if !notBlank(we.JobTitle) || !notBlank(we.Company) {
			return false
		}
	}
	return true
}

func sufficientSkills(doc cv.Document) bool {
	return len(doc.Skills) >= minSkillCount
}

func educationIncluded(doc cv.Document) bool {
	return len(doc.Education) > 0
}

func quantifiedAchievements(doc cv.Document) bool {
	for _, we := range doc.WorkExperience {
		for _, a := range we.Achievements {
			if quantityPattern.MatchString(a) {
				return true
			}
		}
	}
	return false
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
