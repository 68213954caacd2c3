package scheme

import (
	"context"
	"fmt"
	"strings"

	domain "swasthya-backend/internal/domain/scheme"
	"swasthya-backend/internal/domain/uow"
	"swasthya-backend/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

// NewUsecase: repo for reads and creation, UoW for read-modify-write flows.
func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*SchemeDTO, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if in.MaxCoverage < 0 {
		return nil, fmt.Errorf("%w: max coverage must not be negative", domain.ErrValidation)
	}

	s := &domain.Scheme{
		SchemeID:            id.NewID32(),
		Name:                strings.TrimSpace(in.Name),
		Description:         in.Description,
		EligibilityCriteria: in.EligibilityCriteria,
		MaxCoverage:         in.MaxCoverage,
		IsActive:            in.IsActive,
		CreatedBy:           in.CreatedBy,
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

// Update merges the given fields into the stored record. The read-modify-
// write runs inside the unit of work so concurrent updates cannot clobber
// each other. Name collisions with other schemes are not checked.
func (u *Usecase) Update(ctx context.Context, schemeID string, in UpdateInput) (*SchemeDTO, error) {
	var dto *SchemeDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Schemes.GetBySchemeID(ctx, schemeID)
		if err != nil {
			return err
		}

		if in.Name != nil {
			if strings.TrimSpace(*in.Name) == "" {
				return fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
			}
			s.Name = strings.TrimSpace(*in.Name)
		}
		if in.Description != nil {
			if strings.TrimSpace(*in.Description) == "" {
				return fmt.Errorf("%w: description must not be empty", domain.ErrValidation)
			}
			s.Description = *in.Description
		}
		if in.EligibilityCriteria != nil {
			s.EligibilityCriteria = *in.EligibilityCriteria
		}
		if in.MaxCoverage != nil {
			if *in.MaxCoverage < 0 {
				return fmt.Errorf("%w: max coverage must not be negative", domain.ErrValidation)
			}
			s.MaxCoverage = *in.MaxCoverage
		}
		if in.IsActive != nil {
			s.IsActive = *in.IsActive
		}

		if err := r.Schemes.Save(ctx, s); err != nil {
			return err
		}
		dto = toDTO(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Delete removes the scheme unconditionally. Patients referencing its name
// keep their dangling reference.
func (u *Usecase) Delete(ctx context.Context, schemeID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Schemes.Delete(ctx, schemeID)
	})
}

// ListActive returns the schemes selectable when submitting a new patient.
func (u *Usecase) ListActive(ctx context.Context) ([]*SchemeDTO, error) {
	ss, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(ss), nil
}

// List returns every scheme, active or not (management view).
func (u *Usecase) List(ctx context.Context) ([]*SchemeDTO, error) {
	ss, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(ss), nil
}

func toDTO(s *domain.Scheme) *SchemeDTO {
	return &SchemeDTO{
		SchemeID:            s.SchemeID,
		Name:                s.Name,
		Description:         s.Description,
		EligibilityCriteria: append([]string(nil), s.EligibilityCriteria...),
		MaxCoverage:         s.MaxCoverage,
		IsActive:            s.IsActive,
		CreatedBy:           s.CreatedBy,
		CreatedAt:           s.CreatedAt,
	}
}

func toDTOs(ss []*domain.Scheme) []*SchemeDTO {
	out := make([]*SchemeDTO, 0, len(ss))
	for _, s := range ss {
		out = append(out, toDTO(s))
	}
	return out
}
