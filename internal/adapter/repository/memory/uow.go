package memory

import (
	"context"

	"swasthya-backend/internal/domain/patient"
	"swasthya-backend/internal/domain/uow"
)

// UoW serializes mutating flows: it holds the store mutex for the whole
// read-modify-write sequence, the single-writer discipline the in-memory
// model requires once handlers run on multiple goroutines.
type UoW struct{ store *Store }

func NewUoW(s *Store) *UoW { return &UoW{store: s} }

func (u *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	r := uow.Repos{
		Patients: &PatientRepository{store: u.store, inTx: true},
		Schemes:  &SchemeRepository{store: u.store, inTx: true},
	}
	return fn(r)
}

func (u *UoW) WithinPatientTx(ctx context.Context, patientID string, fn func(r uow.Repos, p *patient.Patient) error) error {
	return u.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Patients.GetByPatientIDForUpdate(ctx, patientID)
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}
