package scheme

import "context"

type Repository interface {
	Create(ctx context.Context, s *Scheme) error
	GetBySchemeID(ctx context.Context, schemeID string) (*Scheme, error)
	Save(ctx context.Context, s *Scheme) error
	// Delete removes the record unconditionally (hard delete).
	Delete(ctx context.Context, schemeID string) error
	List(ctx context.Context) ([]*Scheme, error)
	ListActive(ctx context.Context) ([]*Scheme, error)
}
