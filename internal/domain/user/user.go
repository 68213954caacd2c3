package user

import (
	"swasthya-backend/internal/domain/patient"
)

type Role string

const (
	RoleDataEntry     Role = "data_entry"
	RoleHospitalAdmin Role = "hospital_admin"
	RoleDistrictAdmin Role = "district_admin"
	RoleStateAdmin    Role = "state_admin"
	RoleSuperAdmin    Role = "super_admin"
)

// approvalLevels maps each admin role to the pipeline level it decides at.
// data_entry is absent: it submits, it never decides.
var approvalLevels = map[Role]patient.Level{
	RoleHospitalAdmin: patient.LevelHospital,
	RoleDistrictAdmin: patient.LevelDistrict,
	RoleStateAdmin:    patient.LevelState,
	RoleSuperAdmin:    patient.LevelSuperAdmin,
}

// ApprovalLevel returns the pipeline level r decides at. ok is false for
// data_entry and for unrecognized roles.
func (r Role) ApprovalLevel() (level patient.Level, ok bool) {
	level, ok = approvalLevels[r]
	return level, ok
}

type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the user holds perm. The "all" permission
// grants everything.
func (u *User) HasPermission(perm string) bool {
	for _, p := range u.Permissions {
		if p == "all" || p == perm {
			return true
		}
	}
	return false
}
