package auth

import (
	"context"
	"errors"
	"time"

	"swasthya-backend/internal/domain/user"
	"swasthya-backend/internal/infrastructure/session"
	"swasthya-backend/pkg/id"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// The demo ships a fixed user directory with a hardcoded credential table.
// This is a capability lookup, not a security boundary.
var predefinedUsers = []user.User{
	{
		ID:          "1",
		Username:    "super_admin",
		Name:        "Super Administrator",
		Email:       "super.admin@healthcare.gov",
		Role:        user.RoleSuperAdmin,
		Permissions: []string{"all"},
	},
	{
		ID:          "2",
		Username:    "state_admin",
		Name:        "State Administrator",
		Email:       "state.admin@healthcare.gov",
		Role:        user.RoleStateAdmin,
		Permissions: []string{"state_approval", "view_all_patients", "generate_reports"},
	},
	{
		ID:          "3",
		Username:    "district_admin",
		Name:        "District Administrator",
		Email:       "district.admin@healthcare.gov",
		Role:        user.RoleDistrictAdmin,
		Permissions: []string{"district_approval", "view_district_patients"},
	},
	{
		ID:          "4",
		Username:    "hospital_admin",
		Name:        "Hospital Administrator",
		Email:       "hospital.admin@healthcare.gov",
		Role:        user.RoleHospitalAdmin,
		Permissions: []string{"hospital_approval", "view_hospital_patients"},
	},
	{
		ID:          "5",
		Username:    "data_entry",
		Name:        "Data Entry Operator",
		Email:       "data.entry@healthcare.gov",
		Role:        user.RoleDataEntry,
		Permissions: []string{"create_patient", "edit_own_patients"},
	},
}

var credentials = map[string]string{
	"super_admin":    "Admin@123",
	"state_admin":    "Admin@123",
	"district_admin": "Admin@123",
	"hospital_admin": "Admin@123",
	"data_entry":     "User@123",
}

type Usecase struct {
	sessions session.Store
	ttl      time.Duration
}

func NewUsecase(sessions session.Store, ttl time.Duration) *Usecase {
	return &Usecase{sessions: sessions, ttl: ttl}
}

// Login checks the credential table and, on a match, issues an opaque
// session token bound to the resolved identity.
func (u *Usecase) Login(ctx context.Context, username, password string) (string, *user.User, error) {
	pass, ok := credentials[username]
	if !ok || pass != password {
		return "", nil, ErrInvalidCredentials
	}
	usr := findUser(username)
	if usr == nil {
		return "", nil, ErrInvalidCredentials
	}

	token := id.NewID32()
	if err := u.sessions.Put(ctx, token, *usr, u.ttl); err != nil {
		return "", nil, err
	}
	return token, usr, nil
}

// Resolve maps a session token back to its identity.
func (u *Usecase) Resolve(ctx context.Context, token string) (*user.User, error) {
	return u.sessions.Get(ctx, token)
}

func (u *Usecase) Logout(ctx context.Context, token string) error {
	return u.sessions.Delete(ctx, token)
}

func findUser(username string) *user.User {
	for i := range predefinedUsers {
		if predefinedUsers[i].Username == username {
			usr := predefinedUsers[i]
			return &usr
		}
	}
	return nil
}
