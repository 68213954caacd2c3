package mysql

import (
	"context"

	"gorm.io/gorm"

	"swasthya-backend/internal/domain/patient"
	"swasthya-backend/internal/domain/scheme"
	"swasthya-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

// Migrate creates the patient and scheme tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&patient.Patient{}, &scheme.Scheme{})
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Patients: &PatientRepository{db: tx},
			Schemes:  &SchemeRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinPatientTx(ctx context.Context, patientID string, fn func(r uow.Repos, p *patient.Patient) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Patients: &PatientRepository{db: tx},
			Schemes:  &SchemeRepository{db: tx},
		}
		// lock the patient row up-front to prevent races
		p, err := r.Patients.GetByPatientIDForUpdate(ctx, patientID)
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}
