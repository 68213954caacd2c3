package patient

import (
	"time"

	domain "swasthya-backend/internal/domain/patient"
)

type SubmitInput struct {
	Name             string
	Age              int
	Gender           string
	MedicalCondition string
	RequestedScheme  string
	Documents        []string
	SubmittedBy      string
}

type ApproveInput struct {
	PatientID  string
	ApprovedBy string
	Comments   string
	// Level is the pipeline level the caller decides at. When set, the
	// patient must currently sit at exactly that level.
	Level domain.Level
}

type RejectInput struct {
	PatientID  string
	RejectedBy string
	Reason     string
	Level      domain.Level
}

type PatientDTO struct {
	PatientID        string                `json:"patient_id"`
	Name             string                `json:"name"`
	Age              int                   `json:"age"`
	Gender           string                `json:"gender"`
	MedicalCondition string                `json:"medical_condition"`
	RequestedScheme  string                `json:"requested_scheme"`
	SubmittedBy      string                `json:"submitted_by"`
	CurrentLevel     string                `json:"current_level"`
	Status           string                `json:"status"`
	ApprovalHistory  []domain.ApprovalStep `json:"approval_history"`
	Documents        []string              `json:"documents"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

type StatisticsDTO struct {
	Total        int `json:"total"`
	Approved     int `json:"approved"`
	Rejected     int `json:"rejected"`
	Pending      int `json:"pending"`
	RoleSpecific int `json:"role_specific"`
}

func toDTO(p *domain.Patient) *PatientDTO {
	return &PatientDTO{
		PatientID:        p.PatientID,
		Name:             p.Name,
		Age:              p.Age,
		Gender:           p.Gender,
		MedicalCondition: p.MedicalCondition,
		RequestedScheme:  p.RequestedScheme,
		SubmittedBy:      p.SubmittedBy,
		CurrentLevel:     string(p.CurrentLevel),
		Status:           string(p.Status),
		ApprovalHistory:  append([]domain.ApprovalStep(nil), p.ApprovalHistory...),
		Documents:        append([]string(nil), p.Documents...),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
