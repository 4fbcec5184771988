package store

import (
	"time"

	"github.com/jobportal/api/internal/models"
)

// seedAdminHash is the bcrypt hash of the development admin password.
const seedAdminHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

// Seed installs the fixed starter rows: one admin user, one company and one
// active job owned by the admin. Seed ids are stable so the rows can be
// referenced across restarts of a development instance.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	s.users.add("1", models.User{
		ID:           "1",
		Email:        "admin@jobportal.com",
		PasswordHash: seedAdminHash,
		FirstName:    "Admin",
		LastName:     "User",
		Role:         models.RoleAdmin,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	s.companies.add("1", models.Company{
		ID:          "1",
		Name:        "TechCorp Inc",
		Description: "Leading technology company focused on innovation.",
		Industry:    "Technology",
		Size:        "500-1000 employees",
		Founded:     "2015",
		Website:     "techcorp.com",
		Location:    "San Francisco, CA",
		CreatedBy:   "1",
		CreatedAt:   now,
	})

	s.jobs.add("1", models.Job{
		ID:               "1",
		Title:            "Senior Frontend Developer",
		Company:          "TechCorp Inc",
		CompanyID:        "1",
		Location:         "San Francisco, CA",
		Type:             "Full-time",
		Salary:           "$120,000 - $160,000",
		Description:      "We are looking for a Senior Frontend Developer to join our dynamic team.",
		Requirements:     []string{"React", "TypeScript", "Node.js", "GraphQL", "AWS"},
		Responsibilities: []string{"Develop frontend applications", "Code reviews", "Mentor junior developers"},
		Benefits:         []string{"Health insurance", "Flexible hours", "Remote work"},
		Status:           models.JobStatusActive,
		PostedDate:       now,
		CreatedBy:        "1",
	})
}
