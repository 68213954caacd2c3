package scheme

import (
	"time"
)

type CreateInput struct {
	Name                string
	Description         string
	EligibilityCriteria []string
	MaxCoverage         int64
	IsActive            bool
	CreatedBy           string
}

// UpdateInput is a partial merge: nil fields keep the stored value.
type UpdateInput struct {
	Name                *string
	Description         *string
	EligibilityCriteria *[]string
	MaxCoverage         *int64
	IsActive            *bool
}

type SchemeDTO struct {
	SchemeID            string    `json:"scheme_id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	EligibilityCriteria []string  `json:"eligibility_criteria"`
	MaxCoverage         int64     `json:"max_coverage"`
	IsActive            bool      `json:"is_active"`
	CreatedBy           string    `json:"created_by"`
	CreatedAt           time.Time `json:"created_at"`
}
