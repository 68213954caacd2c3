package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	schemeDomain "swasthya-backend/internal/domain/scheme"
)

type SchemeRepository struct{ db *gorm.DB }

func NewSchemeRepository(db *gorm.DB) *SchemeRepository { return &SchemeRepository{db: db} }

func (r *SchemeRepository) Create(ctx context.Context, s *schemeDomain.Scheme) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SchemeRepository) Save(ctx context.Context, s *schemeDomain.Scheme) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SchemeRepository) GetBySchemeID(ctx context.Context, schemeID string) (*schemeDomain.Scheme, error) {
	var out schemeDomain.Scheme
	res := r.db.WithContext(ctx).Where("scheme_id = ?", schemeID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, schemeDomain.ErrNotFound
	}
	return &out, res.Error
}

// Delete is a hard delete; referencing patients are left untouched.
func (r *SchemeRepository) Delete(ctx context.Context, schemeID string) error {
	res := r.db.WithContext(ctx).Where("scheme_id = ?", schemeID).Delete(&schemeDomain.Scheme{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return schemeDomain.ErrNotFound
	}
	return nil
}

func (r *SchemeRepository) List(ctx context.Context) ([]*schemeDomain.Scheme, error) {
	var out []*schemeDomain.Scheme
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *SchemeRepository) ListActive(ctx context.Context) ([]*schemeDomain.Scheme, error) {
	var out []*schemeDomain.Scheme
	res := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id ASC").Find(&out)
	return out, res.Error
}
