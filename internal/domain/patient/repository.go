package patient

import "context"

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByPatientID(ctx context.Context, patientID string) (*Patient, error)
	GetByPatientIDForUpdate(ctx context.Context, patientID string) (*Patient, error)
	Save(ctx context.Context, p *Patient) error
	// List returns every patient in insertion order.
	List(ctx context.Context) ([]*Patient, error)
	// ListByLevelAndStatus returns patients at one pipeline level with the
	// given status, in insertion order.
	ListByLevelAndStatus(ctx context.Context, level Level, status Status) ([]*Patient, error)
}
