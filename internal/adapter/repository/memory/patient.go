package memory

import (
	"context"
	"fmt"
	"time"

	"swasthya-backend/internal/domain/patient"
)

type PatientRepository struct {
	store *Store
	inTx  bool
}

// clonePatient deep-copies the record so callers never alias store memory.
func clonePatient(p *patient.Patient) *patient.Patient {
	out := *p
	out.ApprovalHistory = append([]patient.ApprovalStep(nil), p.ApprovalHistory...)
	out.Documents = append([]string(nil), p.Documents...)
	return &out
}

func (r *PatientRepository) Create(_ context.Context, p *patient.Patient) error {
	unlock := r.store.lockIfNeeded(r.inTx)
	defer unlock()

	if _, exists := r.store.patientIdx[p.PatientID]; exists {
		return fmt.Errorf("patient %s already exists", p.PatientID)
	}
	r.store.nextPatientPK++
	p.ID = r.store.nextPatientPK
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	r.store.patients = append(r.store.patients, *clonePatient(p))
	r.store.patientIdx[p.PatientID] = len(r.store.patients) - 1
	return nil
}

func (r *PatientRepository) GetByPatientID(_ context.Context, patientID string) (*patient.Patient, error) {
	unlock := r.store.lockIfNeeded(r.inTx)
	defer unlock()

	i, ok := r.store.patientIdx[patientID]
	if !ok {
		return nil, patient.ErrNotFound
	}
	return clonePatient(&r.store.patients[i]), nil
}

// GetByPatientIDForUpdate is identical to GetByPatientID here; exclusivity
// comes from the UoW holding the store mutex around the whole flow.
func (r *PatientRepository) GetByPatientIDForUpdate(ctx context.Context, patientID string) (*patient.Patient, error) {
	return r.GetByPatientID(ctx, patientID)
}

func (r *PatientRepository) Save(_ context.Context, p *patient.Patient) error {
	unlock := r.store.lockIfNeeded(r.inTx)
	defer unlock()

	i, ok := r.store.patientIdx[p.PatientID]
	if !ok {
		return patient.ErrNotFound
	}
	r.store.patients[i] = *clonePatient(p)
	return nil
}

func (r *PatientRepository) List(_ context.Context) ([]*patient.Patient, error) {
	unlock := r.store.lockIfNeeded(r.inTx)
	defer unlock()

	out := make([]*patient.Patient, 0, len(r.store.patients))
	for i := range r.store.patients {
		out = append(out, clonePatient(&r.store.patients[i]))
	}
	return out, nil
}

func (r *PatientRepository) ListByLevelAndStatus(_ context.Context, level patient.Level, status patient.Status) ([]*patient.Patient, error) {
	unlock := r.store.lockIfNeeded(r.inTx)
	defer unlock()

	var out []*patient.Patient
	for i := range r.store.patients {
		p := &r.store.patients[i]
		if p.CurrentLevel == level && p.Status == status {
			out = append(out, clonePatient(p))
		}
	}
	return out, nil
}
