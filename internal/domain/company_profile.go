package domain

import (
	"context"
	"time"
)

// CompanyProfile is the organisation side of an Identity with role company.
type CompanyProfile struct {
	ID            int64     `json:"id"`
	IdentityID    string    `json:"identity_id"`
	CompanyName   string    `json:"company_name"`
	Industry      string    `json:"industry"`
	CompanySize   string    `json:"company_size"`
	ContactPerson string    `json:"contact_person"`
	PhoneNumber   string    `json:"phone_number"`
	Website       *string   `json:"website"`
	AgreeTerms    bool      `json:"agree_terms"`
	CreatedAt     time.Time `json:"created_at"`
}

type CompanyProfileRepository interface {
	GetByIdentityID(ctx context.Context, identityID string) (*CompanyProfile, error)
}

type CompanyDashboard struct {
	Profile          *CompanyProfile `json:"profile"`
	JobCount         int64           `json:"job_count"`
	ActiveJobCount   int64           `json:"active_job_count"`
	ApplicationCount int64           `json:"application_count"`
}

type CompanyUsecase interface {
	Dashboard(ctx context.Context, principal Principal) (*CompanyDashboard, error)
}
