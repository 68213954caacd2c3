package patientmock

import (
	"context"

	domain "swasthya-backend/internal/domain/patient"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                  func(ctx context.Context, p *domain.Patient) error
	GetByPatientIDFn          func(ctx context.Context, patientID string) (*domain.Patient, error)
	GetByPatientIDForUpdateFn func(ctx context.Context, patientID string) (*domain.Patient, error)
	SaveFn                    func(ctx context.Context, p *domain.Patient) error
	ListFn                    func(ctx context.Context) ([]*domain.Patient, error)
	ListByLevelAndStatusFn    func(ctx context.Context, level domain.Level, status domain.Status) ([]*domain.Patient, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, p *domain.Patient) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPatientID(ctx context.Context, patientID string) (*domain.Patient, error) {
	if m.GetByPatientIDFn != nil {
		return m.GetByPatientIDFn(ctx, patientID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByPatientIDForUpdate(ctx context.Context, patientID string) (*domain.Patient, error) {
	if m.GetByPatientIDForUpdateFn != nil {
		return m.GetByPatientIDForUpdateFn(ctx, patientID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, p *domain.Patient) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]*domain.Patient, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByLevelAndStatus(ctx context.Context, level domain.Level, status domain.Status) ([]*domain.Patient, error) {
	if m.ListByLevelAndStatusFn != nil {
		return m.ListByLevelAndStatusFn(ctx, level, status)
	}
	return nil, nil
}
