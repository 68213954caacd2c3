package uow

import (
	"context"

	"swasthya-backend/internal/domain/patient"
	"swasthya-backend/internal/domain/scheme"
)

type Repos struct {
	Patients patient.Repository
	Schemes  scheme.Repository
}

// UnitOfWork serializes mutating operations on the shared store. The memory
// implementation holds the store mutex for the duration of fn; the mysql
// implementation runs fn inside a database transaction.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the patient first, then pass it in
	WithinPatientTx(ctx context.Context, patientID string, fn func(r Repos, p *patient.Patient) error) error
}
