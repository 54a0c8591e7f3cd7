package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"workmatch/internal/database"
	"workmatch/internal/domain/cv"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DemoAccountSeeder creates one demo login with a saved skill
// selection and a partly filled CV, so a fresh environment has
// something to browse and score. Re-runs are no-ops via ON CONFLICT.
type DemoAccountSeeder struct{}

func (DemoAccountSeeder) Name() string { return "demo_account" }

func (DemoAccountSeeder) Run(ctx context.Context, db database.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	id := uuid.New()
	_, err = db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`,
		id, "demo@workmatch.local", string(hash),
	)
	if err != nil {
		return err
	}

	row := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, "demo@workmatch.local")
	if err := row.Scan(&id); err != nil {
		return err
	}

	skillIDs := []string{"hgv_class1", "cpc_driver", "route_planning", "teamwork", "reliability"}
	for i, sid := range skillIDs {
		_, err := db.Exec(ctx,
			`INSERT INTO profile_skills (user_id, skill_id, position) VALUES ($1, $2, $3)
			 ON CONFLICT (user_id, skill_id) DO NOTHING`,
			id, sid, i,
		)
		if err != nil {
			return err
		}
	}

	doc := cv.Document{
		PersonalInfo: cv.PersonalInfo{
			FullName: "Demo Driver",
			Email:    "demo@workmatch.local",
			Phone:    "07700 900000",
			Location: "Manchester",
		},
		ProfessionalSummary: cv.ProfessionalSummary{
			Content: "Class 1 driver with eight years of trunking and multidrop experience across the UK.",
		},
		WorkExperience: []cv.WorkExperience{
			{
				JobTitle:     "HGV Class 1 Driver",
				Company:      "Pennine Haulage",
				Location:     "Manchester",
				StartDate:    "2019-05",
				Current:      true,
				Achievements: []string{"Maintained a clean record over 5 years and 400k miles"},
			},
		},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal demo document: %w", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO cv_documents (user_id, doc) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING`,
		id, raw,
	)
	return err
}
