package schememock

import (
	"context"

	domain "swasthya-backend/internal/domain/scheme"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, s *domain.Scheme) error
	GetBySchemeIDFn func(ctx context.Context, schemeID string) (*domain.Scheme, error)
	SaveFn          func(ctx context.Context, s *domain.Scheme) error
	DeleteFn        func(ctx context.Context, schemeID string) error
	ListFn          func(ctx context.Context) ([]*domain.Scheme, error)
	ListActiveFn    func(ctx context.Context) ([]*domain.Scheme, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, s *domain.Scheme) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetBySchemeID(ctx context.Context, schemeID string) (*domain.Scheme, error) {
	if m.GetBySchemeIDFn != nil {
		return m.GetBySchemeIDFn(ctx, schemeID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, s *domain.Scheme) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, schemeID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, schemeID)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]*domain.Scheme, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListActive(ctx context.Context) ([]*domain.Scheme, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}
