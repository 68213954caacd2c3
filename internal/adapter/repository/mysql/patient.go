package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	patientDomain "swasthya-backend/internal/domain/patient"
)

type PatientRepository struct{ db *gorm.DB }

func NewPatientRepository(db *gorm.DB) *PatientRepository { return &PatientRepository{db: db} }

func (r *PatientRepository) Create(ctx context.Context, p *patientDomain.Patient) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PatientRepository) Save(ctx context.Context, p *patientDomain.Patient) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PatientRepository) GetByPatientID(ctx context.Context, patientID string) (*patientDomain.Patient, error) {
	var out patientDomain.Patient
	res := r.db.WithContext(ctx).Where("patient_id = ?", patientID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, patientDomain.ErrNotFound
	}
	return &out, res.Error
}

// GetByPatientIDForUpdate locks the row for the duration of the surrounding
// transaction. sqlite has no FOR UPDATE; its whole-file lock is enough there.
func (r *PatientRepository) GetByPatientIDForUpdate(ctx context.Context, patientID string) (*patientDomain.Patient, error) {
	tx := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "mysql" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out patientDomain.Patient
	res := tx.Where("patient_id = ?", patientID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, patientDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PatientRepository) List(ctx context.Context) ([]*patientDomain.Patient, error) {
	var out []*patientDomain.Patient
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *PatientRepository) ListByLevelAndStatus(ctx context.Context, level patientDomain.Level, status patientDomain.Status) ([]*patientDomain.Patient, error) {
	var out []*patientDomain.Patient
	res := r.db.WithContext(ctx).
		Where("current_level = ? AND status = ?", level, status).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
