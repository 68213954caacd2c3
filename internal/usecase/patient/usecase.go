package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "swasthya-backend/internal/domain/patient"
	"swasthya-backend/internal/domain/uow"
	"swasthya-backend/internal/domain/user"
	"swasthya-backend/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

// NewUsecase: repo for reads and submission, UoW for transition flows.
func NewUsecase(repo domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx}
}

// Submit creates a patient at the entry level of the pipeline with an empty
// decision history.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*PatientDTO, error) {
	if err := validateSubmit(in); err != nil {
		return nil, err
	}

	p := &domain.Patient{
		PatientID:        id.NewID32(),
		Name:             strings.TrimSpace(in.Name),
		Age:              in.Age,
		Gender:           in.Gender,
		MedicalCondition: in.MedicalCondition,
		RequestedScheme:  in.RequestedScheme,
		SubmittedBy:      in.SubmittedBy,
		CurrentLevel:     domain.LevelHospital,
		Status:           domain.StatusPending,
		ApprovalHistory:  nil,
		Documents:        in.Documents,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func validateSubmit(in SubmitInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	case in.Age <= 0:
		return fmt.Errorf("%w: age must be a positive integer", domain.ErrValidation)
	case strings.TrimSpace(in.Gender) == "":
		return fmt.Errorf("%w: gender is required", domain.ErrValidation)
	case strings.TrimSpace(in.MedicalCondition) == "":
		return fmt.Errorf("%w: medical condition is required", domain.ErrValidation)
	case strings.TrimSpace(in.RequestedScheme) == "":
		return fmt.Errorf("%w: requested scheme is required", domain.ErrValidation)
	}
	return nil
}

// Approve records the decision at the patient's current level and advances
// the pipeline by exactly one step. Approval at the last level finalizes the
// case. The state machine stays role-agnostic: the boundary resolves the
// caller's decision level and the tx verifies it matches the patient.
func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*PatientDTO, error) {
	var dto *PatientDTO

	err := u.uow.WithinPatientTx(ctx, in.PatientID, func(r uow.Repos, p *domain.Patient) error {
		if p.Status != domain.StatusPending {
			return fmt.Errorf("%w: status is %s", domain.ErrNotPending, p.Status)
		}
		if in.Level != "" && p.CurrentLevel != in.Level {
			return fmt.Errorf("%w: patient is at %s", domain.ErrWrongLevel, p.CurrentLevel)
		}
		next, ok := domain.NextLevel(p.CurrentLevel)
		if !ok {
			return fmt.Errorf("%w: level %s is terminal", domain.ErrNotPending, p.CurrentLevel)
		}

		now := time.Now().UTC()
		// Record the decision at the level the patient held, before advancing.
		p.ApprovalHistory = append(p.ApprovalHistory, domain.ApprovalStep{
			Level:     p.CurrentLevel,
			DecidedBy: in.ApprovedBy,
			Action:    domain.ActionApproved,
			Comments:  in.Comments,
			Timestamp: now,
		})
		p.CurrentLevel = next
		if next == domain.LevelFinalApproved {
			p.Status = domain.StatusApproved
		}
		p.UpdatedAt = now

		if err := r.Patients.Save(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Reject terminates the case at its current level. The level is frozen at the
// point of rejection; only the status changes.
func (u *Usecase) Reject(ctx context.Context, in RejectInput) (*PatientDTO, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", domain.ErrValidation)
	}

	var dto *PatientDTO
	err := u.uow.WithinPatientTx(ctx, in.PatientID, func(r uow.Repos, p *domain.Patient) error {
		if p.Status != domain.StatusPending {
			return fmt.Errorf("%w: status is %s", domain.ErrNotPending, p.Status)
		}
		if in.Level != "" && p.CurrentLevel != in.Level {
			return fmt.Errorf("%w: patient is at %s", domain.ErrWrongLevel, p.CurrentLevel)
		}

		now := time.Now().UTC()
		p.ApprovalHistory = append(p.ApprovalHistory, domain.ApprovalStep{
			Level:     p.CurrentLevel,
			DecidedBy: in.RejectedBy,
			Action:    domain.ActionRejected,
			Comments:  in.Reason,
			Timestamp: now,
		})
		p.Status = domain.StatusRejected
		p.UpdatedAt = now

		if err := r.Patients.Save(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, patientID string) (*PatientDTO, error) {
	p, err := u.repo.GetByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

// ListForRole projects the store for one role: data_entry sees the full
// submission log, each admin role sees the pending cases at its level, and an
// unrecognized role sees nothing.
func (u *Usecase) ListForRole(ctx context.Context, role user.Role) ([]*PatientDTO, error) {
	var (
		ps  []*domain.Patient
		err error
	)
	switch {
	case role == user.RoleDataEntry:
		ps, err = u.repo.List(ctx)
	default:
		level, ok := role.ApprovalLevel()
		if !ok {
			return []*PatientDTO{}, nil
		}
		ps, err = u.repo.ListByLevelAndStatus(ctx, level, domain.StatusPending)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*PatientDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, toDTO(p))
	}
	return out, nil
}

// Statistics recomputes the status partition over the full store on every
// call, plus the size of role's scoped view.
func (u *Usecase) Statistics(ctx context.Context, role user.Role) (*StatisticsDTO, error) {
	ps, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &StatisticsDTO{Total: len(ps)}
	level, isApprover := role.ApprovalLevel()
	for _, p := range ps {
		switch p.Status {
		case domain.StatusApproved:
			stats.Approved++
		case domain.StatusRejected:
			stats.Rejected++
		case domain.StatusPending:
			stats.Pending++
		}
		if isApprover && p.CurrentLevel == level && p.Status == domain.StatusPending {
			stats.RoleSpecific++
		}
	}
	if role == user.RoleDataEntry {
		stats.RoleSpecific = stats.Total
	}
	return stats, nil
}
