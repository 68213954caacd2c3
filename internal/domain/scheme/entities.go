package scheme

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

var (
	ErrValidation = errors.New("invalid scheme input")
	ErrNotFound   = errors.New("scheme not found")
)

// Scheme is an eligibility program patients enroll against. Names are not
// required to be unique; patients reference schemes by name only.
type Scheme struct {
	ID                  uint64                      `gorm:"primaryKey;column:id" json:"-"`
	SchemeID            string                      `gorm:"size:32;uniqueIndex:ux_schemes_scheme_id" json:"scheme_id"`
	Name                string                      `gorm:"size:255" json:"name"`
	Description         string                      `gorm:"type:text" json:"description"`
	EligibilityCriteria datatypes.JSONSlice[string] `gorm:"type:json" json:"eligibility_criteria"`
	MaxCoverage         int64                       `json:"max_coverage"`
	IsActive            bool                        `json:"is_active"`
	CreatedBy           string                      `gorm:"size:255" json:"created_by"`
	CreatedAt           time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Scheme) TableName() string { return "schemes" }
