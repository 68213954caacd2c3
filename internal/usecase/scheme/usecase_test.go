package scheme

import (
	"context"
	"errors"
	"testing"

	domain "swasthya-backend/internal/domain/scheme"
	"swasthya-backend/internal/domain/uow"
	"swasthya-backend/internal/testutil/schememock"
	"swasthya-backend/internal/testutil/uowmock"
)

// passthroughUoW wires the mock UoW straight to a mock repo, mimicking the
// lock-then-call shape of the real implementations.
func passthroughUoW(repo *schememock.Repo) *uowmock.UoW {
	return &uowmock.UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(uow.Repos{Schemes: repo})
		},
	}
}

func TestUsecase_Create(t *testing.T) {
	tests := []struct {
		name    string
		in      CreateInput
		wantErr error
	}{
		{
			name: "valid",
			in:   CreateInput{Name: "Scheme A", Description: "cardiac care", MaxCoverage: 500000, IsActive: true, CreatedBy: "Super Administrator"},
		},
		{
			name:    "missing name",
			in:      CreateInput{Description: "cardiac care"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "missing description",
			in:      CreateInput{Name: "Scheme A"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "negative coverage",
			in:      CreateInput{Name: "Scheme A", Description: "cardiac care", MaxCoverage: -1},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			repo := &schememock.Repo{
				CreateFn: func(ctx context.Context, s *domain.Scheme) error {
					created = true
					if s.SchemeID == "" {
						t.Fatal("scheme id not assigned")
					}
					return nil
				},
			}
			u := NewUsecase(repo, passthroughUoW(repo))

			dto, err := u.Create(context.Background(), tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				if created {
					t.Fatal("no mutation may happen on validation failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if dto.Name != tt.in.Name || dto.IsActive != tt.in.IsActive {
				t.Fatalf("unexpected dto: %+v", dto)
			}
		})
	}
}

func TestUsecase_Update_PartialMerge(t *testing.T) {
	stored := &domain.Scheme{
		SchemeID:            "s-1",
		Name:                "Scheme A",
		Description:         "old description",
		EligibilityCriteria: []string{"age > 18"},
		MaxCoverage:         100000,
		IsActive:            false,
	}
	var saved *domain.Scheme
	repo := &schememock.Repo{
		GetBySchemeIDFn: func(ctx context.Context, schemeID string) (*domain.Scheme, error) {
			if schemeID != "s-1" {
				return nil, domain.ErrNotFound
			}
			cp := *stored
			return &cp, nil
		},
		SaveFn: func(ctx context.Context, s *domain.Scheme) error { saved = s; return nil },
	}
	u := NewUsecase(repo, passthroughUoW(repo))

	active := true
	dto, err := u.Update(context.Background(), "s-1", UpdateInput{IsActive: &active})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !saved.IsActive {
		t.Fatal("is_active not updated")
	}
	// untouched fields keep their stored values
	if saved.Name != "Scheme A" || saved.Description != "old description" || saved.MaxCoverage != 100000 {
		t.Fatalf("partial update clobbered fields: %+v", saved)
	}
	if dto.SchemeID != "s-1" {
		t.Fatalf("dto id = %s", dto.SchemeID)
	}
}

func TestUsecase_Update_RunsInsideUnitOfWork(t *testing.T) {
	held := false
	repo := &schememock.Repo{
		GetBySchemeIDFn: func(ctx context.Context, schemeID string) (*domain.Scheme, error) {
			if !held {
				t.Fatal("read happened outside the unit of work")
			}
			return &domain.Scheme{SchemeID: schemeID, Name: "Scheme A", Description: "d"}, nil
		},
		SaveFn: func(ctx context.Context, s *domain.Scheme) error {
			if !held {
				t.Fatal("write happened outside the unit of work")
			}
			return nil
		},
		DeleteFn: func(ctx context.Context, schemeID string) error {
			if !held {
				t.Fatal("delete happened outside the unit of work")
			}
			return nil
		},
	}
	tx := &uowmock.UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			held = true
			defer func() { held = false }()
			return fn(uow.Repos{Schemes: repo})
		},
	}
	u := NewUsecase(repo, tx)
	ctx := context.Background()

	name := "Scheme B"
	if _, err := u.Update(ctx, "s-1", UpdateInput{Name: &name}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := u.Delete(ctx, "s-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestUsecase_Update_Errors(t *testing.T) {
	repo := &schememock.Repo{
		GetBySchemeIDFn: func(ctx context.Context, schemeID string) (*domain.Scheme, error) {
			if schemeID == "s-1" {
				return &domain.Scheme{SchemeID: "s-1", Name: "Scheme A", Description: "d"}, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	u := NewUsecase(repo, passthroughUoW(repo))
	ctx := context.Background()

	if _, err := u.Update(ctx, "missing", UpdateInput{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown id: err = %v, want ErrNotFound", err)
	}

	empty := "  "
	if _, err := u.Update(ctx, "s-1", UpdateInput{Name: &empty}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("blank name: err = %v, want ErrValidation", err)
	}

	neg := int64(-5)
	if _, err := u.Update(ctx, "s-1", UpdateInput{MaxCoverage: &neg}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("negative coverage: err = %v, want ErrValidation", err)
	}
}

func TestUsecase_ListActive(t *testing.T) {
	repo := &schememock.Repo{
		ListActiveFn: func(ctx context.Context) ([]*domain.Scheme, error) {
			return []*domain.Scheme{{SchemeID: "s-2", Name: "Scheme B", IsActive: true}}, nil
		},
	}
	u := NewUsecase(repo, passthroughUoW(repo))

	dtos, err := u.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(dtos) != 1 || dtos[0].SchemeID != "s-2" {
		t.Fatalf("unexpected listing: %+v", dtos)
	}
}
