package uowmock

import (
	"context"
	"errors"

	"swasthya-backend/internal/domain/patient"
	"swasthya-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinPatientTxFn func(ctx context.Context, patientID string, fn func(r uow.Repos, p *patient.Patient) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinPatientTx(ctx context.Context, patientID string, fn func(r uow.Repos, p *patient.Patient) error) error {
	if m.WithinPatientTxFn != nil {
		return m.WithinPatientTxFn(ctx, patientID, fn)
	}
	return errUnimplemented
}
