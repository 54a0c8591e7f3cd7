package scoring

import (
	"strings"
	"testing"

	"workmatch/internal/domain/cv"
)

func completeDoc() cv.Document {
	return cv.Document{
		PersonalInfo: cv.PersonalInfo{
			FullName: "Jordan Mills",
			Email:    "jordan@example.com",
			Phone:    "07700 900123",
			Location: "Leeds",
		},
		ProfessionalSummary: cv.ProfessionalSummary{
			Content: strings.Repeat("Experienced warehouse operative. ", 3),
		},
		Skills: []cv.SkillEntry{
			{Name: "Order Picking", Category: "warehouse_manufacturing"},
			{Name: "Stock Control", Category: "warehouse_manufacturing"},
			{Name: "Counterbalance Forklift", Category: "driving_logistics"},
			{Name: "Teamwork", Category: "soft_skills"},
			{Name: "Reliability & Punctuality", Category: "soft_skills"},
		},
		WorkExperience: []cv.WorkExperience{
			{
				JobTitle:     "Warehouse Operative",
				Company:      "Northern Distribution Ltd",
				StartDate:    "2021-03",
				Current:      true,
				Achievements: []string{"Cut picking errors by 15% over one year"},
			},
		},
		Education: []cv.Education{
			{Institution: "Leeds City College", Degree: "GCSEs"},
		},
	}
}

func checkByLabel(t *testing.T, res Result, label string) Check {
	t.Helper()
	for _, c := range res.Checks {
		if c.Label == label {
			return c
		}
	}
	t.Fatalf("check %q missing from result", label)
	return Check{}
}

func TestEvaluateCompleteDocument(t *testing.T) {
	res := Evaluate(completeDoc())
	if res.Score != 100 {
		t.Fatalf("complete document: expected 100, got %d", res.Score)
	}
	for _, c := range res.Checks {
		if !c.Passed {
			t.Fatalf("complete document: check %q failed", c.Label)
		}
	}
}

func TestEvaluateEmptyDocument(t *testing.T) {
	res := Evaluate(cv.Document{})
	if res.Score != 0 {
		t.Fatalf("empty document: expected 0, got %d", res.Score)
	}
	if len(res.Checks) != 6 {
		t.Fatalf("expected full checklist of 6, got %d", len(res.Checks))
	}
	for _, c := range res.Checks {
		if c.Passed {
			t.Fatalf("empty document: check %q should fail", c.Label)
		}
	}
}

func TestEvaluatePartialDocument(t *testing.T) {
	doc := cv.Document{
		PersonalInfo: cv.PersonalInfo{
			FullName: "Sam Price",
			Email:    "sam@example.com",
			Phone:    "07700 900456",
		},
		ProfessionalSummary: cv.ProfessionalSummary{
			Content: strings.Repeat("x", 60),
		},
		WorkExperience: []cv.WorkExperience{
			{
				JobTitle:     "Developer",
				Company:      "Acme",
				Achievements: []string{"Improved throughput by 30%"},
			},
		},
	}

	res := Evaluate(doc)
	if res.Score != 70 {
		t.Fatalf("expected 70, got %d", res.Score)
	}

	passed := map[string]bool{
		"Contact info complete":    true,
		"Summary present":          true,
		"Work experience detailed": true,
		"Sufficient skills":        false,
		"Education included":       false,
		"Quantified achievements":  true,
	}
	for label, want := range passed {
		if got := checkByLabel(t, res, label).Passed; got != want {
			t.Fatalf("check %q: passed=%v, want %v", label, got, want)
		}
	}
}

func TestChecklistOrderIsFixed(t *testing.T) {
	labels := []string{
		"Contact info complete",
		"Summary present",
		"Work experience detailed",
		"Sufficient skills",
		"Education included",
		"Quantified achievements",
	}
	res := Evaluate(cv.Document{})
	for i, c := range res.Checks {
		if c.Label != labels[i] {
			t.Fatalf("check %d: got %q, want %q", i, c.Label, labels[i])
		}
	}
}

func TestWeightsSumToHundred(t *testing.T) {
	total := 0
	for _, c := range Evaluate(cv.Document{}).Checks {
		total += c.Weight
	}
	if total != 100 {
		t.Fatalf("rubric weights sum to %d, want 100", total)
	}
}

func TestSummaryLengthBoundary(t *testing.T) {
	doc := cv.Document{ProfessionalSummary: cv.ProfessionalSummary{Content: strings.Repeat("x", 49)}}
	if checkByLabel(t, Evaluate(doc), "Summary present").Passed {
		t.Fatalf("49 characters should fail the summary check")
	}
	doc.ProfessionalSummary.Content = strings.Repeat("x", 50)
	if !checkByLabel(t, Evaluate(doc), "Summary present").Passed {
		t.Fatalf("50 characters should pass the summary check")
	}
}

func TestWorkDetailRequiresEveryEntry(t *testing.T) {
	doc := cv.Document{
		WorkExperience: []cv.WorkExperience{
			{JobTitle: "Driver", Company: "Haulage Co"},
			{JobTitle: "", Company: "Another Co"},
		},
	}
	if checkByLabel(t, Evaluate(doc), "Work experience detailed").Passed {
		t.Fatalf("an entry missing its job title should fail the check")
	}
}

func TestQuantifiedAchievementPatterns(t *testing.T) {
	cases := []struct {
		achievement string
		want        bool
	}{
		{"Improved throughput by 30%", true},
		{"Saved £12,000 in annual costs", true},
		{"Handled $500 daily takings", true},
		{"Processed 40k parcels", true},
		{"5 years of accident-free driving", true},
		{"Completed project in 6 months", true},
		{"Worked hard and showed initiative", false},
		{"", false},
	}
	for _, tc := range cases {
		doc := cv.Document{
			WorkExperience: []cv.WorkExperience{
				{JobTitle: "Op", Company: "Co", Achievements: []string{tc.achievement}},
			},
		}
		got := checkByLabel(t, Evaluate(doc), "Quantified achievements").Passed
		if got != tc.want {
			t.Fatalf("achievement %q: passed=%v, want %v", tc.achievement, got, tc.want)
		}
	}
}

func TestBand(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, BandExcellent},
		{80, BandExcellent},
		{79, BandGood},
		{60, BandGood},
		{59, BandNeedsImprovement},
		{0, BandNeedsImprovement},
	}
	for _, tc := range cases {
		if got := Band(tc.score); got != tc.want {
			t.Fatalf("Band(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
