// Package cv defines the CV document value object. A document is
// rebuilt whole on every edit and never persisted mid-edit.
package cv

type PersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

type ProfessionalSummary struct {
	Content string `json:"content"`
}

type SkillEntry struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level,omitempty"`
}

type WorkExperience struct {
	JobTitle     string   `json:"job_title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Current      bool     `json:"current"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type Certification struct {
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	IssueDate  string `json:"issue_date"`
	ExpiryDate string `json:"expiry_date,omitempty"`
}

type Document struct {
	PersonalInfo        PersonalInfo        `json:"personal_info"`
	ProfessionalSummary ProfessionalSummary `json:"professional_summary"`
	Skills              []SkillEntry        `json:"skills"`
	WorkExperience      []WorkExperience    `json:"work_experience"`
	Education           []Education         `json:"education"`
	Certifications      []Certification     `json:"certifications"`
}
