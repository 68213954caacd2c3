package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"swasthya-backend/internal/domain/user"
	"swasthya-backend/internal/infrastructure/session"
)

func newUsecase() *Usecase {
	return NewUsecase(session.NewMemoryStore(), time.Hour)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantRole user.Role
		wantErr  error
	}{
		{name: "super admin", username: "super_admin", password: "Admin@123", wantRole: user.RoleSuperAdmin},
		{name: "data entry", username: "data_entry", password: "User@123", wantRole: user.RoleDataEntry},
		{name: "wrong password", username: "state_admin", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "ghost", password: "Admin@123", wantErr: ErrInvalidCredentials},
		{name: "admin password on data entry", username: "data_entry", password: "Admin@123", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newUsecase()
			token, usr, err := u.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if len(token) != 32 {
				t.Fatalf("token %q is not 32-hex", token)
			}
			if usr.Role != tt.wantRole {
				t.Fatalf("role = %s, want %s", usr.Role, tt.wantRole)
			}
		})
	}
}

func TestResolveAndLogout(t *testing.T) {
	u := newUsecase()
	ctx := context.Background()

	token, _, err := u.Login(ctx, "hospital_admin", "Admin@123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	usr, err := u.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if usr.Role != user.RoleHospitalAdmin {
		t.Fatalf("role = %s, want hospital_admin", usr.Role)
	}

	if err := u.Logout(ctx, token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := u.Resolve(ctx, token); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("resolved a revoked token: err = %v", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	u := NewUsecase(session.NewMemoryStore(), -time.Second) // already expired
	ctx := context.Background()

	token, _, err := u.Login(ctx, "district_admin", "Admin@123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := u.Resolve(ctx, token); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("resolved an expired token: err = %v", err)
	}
}
