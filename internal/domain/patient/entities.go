package patient

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

type Level string

const (
	LevelHospital      Level = "hospital"
	LevelDistrict      Level = "district"
	LevelState         Level = "state"
	LevelSuperAdmin    Level = "super_admin"
	LevelFinalApproved Level = "final_approved"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Action string

const (
	ActionApproved Action = "approved"
	ActionRejected Action = "rejected"
)

var (
	ErrValidation = errors.New("invalid patient input")
	ErrNotFound   = errors.New("patient not found")
	ErrNotPending = errors.New("patient is not pending")
	ErrWrongLevel = errors.New("decision level does not match patient level")
)

// transitions is the approval pipeline as an explicit table. A level absent
// from the table is terminal.
var transitions = map[Level]Level{
	LevelHospital:   LevelDistrict,
	LevelDistrict:   LevelState,
	LevelState:      LevelSuperAdmin,
	LevelSuperAdmin: LevelFinalApproved,
}

// NextLevel returns the level that follows l in the pipeline. ok is false
// when l is terminal (final_approved) or unknown.
func NextLevel(l Level) (next Level, ok bool) {
	next, ok = transitions[l]
	return next, ok
}

// ApprovalStep is one recorded decision. It is never mutated after creation.
type ApprovalStep struct {
	Level     Level     `json:"level"`
	DecidedBy string    `json:"decided_by"`
	Action    Action    `json:"action"`
	Comments  string    `json:"comments,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Patient struct {
	ID               uint64                            `gorm:"primaryKey;column:id" json:"-"`
	PatientID        string                            `gorm:"size:32;uniqueIndex:ux_patients_patient_id" json:"patient_id"`
	Name             string                            `gorm:"size:255" json:"name"`
	Age              int                               `json:"age"`
	Gender           string                            `gorm:"size:32" json:"gender"`
	MedicalCondition string                            `gorm:"type:text" json:"medical_condition"`
	RequestedScheme  string                            `gorm:"size:255;index:idx_patients_scheme" json:"requested_scheme"`
	SubmittedBy      string                            `gorm:"size:255" json:"submitted_by"`
	CurrentLevel     Level                             `gorm:"type:enum('hospital','district','state','super_admin','final_approved');default:'hospital'" json:"current_level"`
	Status           Status                            `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	ApprovalHistory  datatypes.JSONSlice[ApprovalStep] `gorm:"type:json" json:"approval_history"`
	Documents        datatypes.JSONSlice[string]       `gorm:"type:json" json:"documents"`
	CreatedAt        time.Time                         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time                         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string { return "patients" }
