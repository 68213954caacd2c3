package memory

import (
	"context"
	"fmt"
	"time"

	"swasthya-backend/internal/domain/scheme"
)

type SchemeRepository struct {
	store *Store
	inTx  bool
}

func cloneScheme(s *scheme.Scheme) *scheme.Scheme {
	out := *s
	out.EligibilityCriteria = append([]string(nil), s.EligibilityCriteria...)
	return &out
}

func (r *SchemeRepository) Create(_ context.Context, s *scheme.Scheme) error {
	unlock := r.store.lockIfNeeded(r.inTx)
	defer unlock()

	if _, exists := r.store.schemeIdx[s.SchemeID]; exists {
		return fmt.Errorf("scheme %s already exists", s.SchemeID)
	}
	r.store.nextSchemePK++
	s.ID = r.store.nextSchemePK
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	r.store.schemes = append(r.store.schemes, *cloneScheme(s))
	r.store.schemeIdx[s.SchemeID] = len(r.store.schemes) - 1
	return nil
}

func (r *SchemeRepository) GetBySchemeID(_ context.Context, schemeID string) (*scheme.Scheme, error) {
	unlock := r.store.lockIfNeeded(r.inTx)
	defer unlock()

	i, ok := r.store.schemeIdx[schemeID]
	if !ok {
		return nil, scheme.ErrNotFound
	}
	return cloneScheme(&r.store.schemes[i]), nil
}

func (r *SchemeRepository) Save(_ context.Context, s *scheme.Scheme) error {
	unlock := r.store.lockIfNeeded(r.inTx)
	defer unlock()

	i, ok := r.store.schemeIdx[s.SchemeID]
	if !ok {
		return scheme.ErrNotFound
	}
	s.UpdatedAt = time.Now().UTC()
	r.store.schemes[i] = *cloneScheme(s)
	return nil
}

func (r *SchemeRepository) Delete(_ context.Context, schemeID string) error {
	unlock := r.store.lockIfNeeded(r.inTx)
	defer unlock()

	i, ok := r.store.schemeIdx[schemeID]
	if !ok {
		return scheme.ErrNotFound
	}
	r.store.schemes = append(r.store.schemes[:i], r.store.schemes[i+1:]...)
	delete(r.store.schemeIdx, schemeID)
	for j := i; j < len(r.store.schemes); j++ {
		r.store.schemeIdx[r.store.schemes[j].SchemeID] = j
	}
	return nil
}

func (r *SchemeRepository) List(_ context.Context) ([]*scheme.Scheme, error) {
	unlock := r.store.lockIfNeeded(r.inTx)
	defer unlock()

	out := make([]*scheme.Scheme, 0, len(r.store.schemes))
	for i := range r.store.schemes {
		out = append(out, cloneScheme(&r.store.schemes[i]))
	}
	return out, nil
}

func (r *SchemeRepository) ListActive(_ context.Context) ([]*scheme.Scheme, error) {
	unlock := r.store.lockIfNeeded(r.inTx)
	defer unlock()

	var out []*scheme.Scheme
	for i := range r.store.schemes {
		if r.store.schemes[i].IsActive {
			out = append(out, cloneScheme(&r.store.schemes[i]))
		}
	}
	return out, nil
}
