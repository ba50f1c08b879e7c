package models

import "github.com/google/uuid"

// Role is the caller's position in the response chain, carried in the
// identity token issued by the accounts service.
type Role string

const (
	RoleFirstAider        Role = "first_aider"
	RoleHospitalStaff     Role = "hospital_staff"
	RoleHospitalAdmin     Role = "hospital_admin"
	RoleSystemAdmin       Role = "system_admin"
	RoleOrganizationAdmin Role = "organization_admin"
)

// IsHospitalSide reports whether the role acts on behalf of a hospital.
func (r Role) IsHospitalSide() bool {
	return r == RoleHospitalStaff || r == RoleHospitalAdmin
}

// IsAdmin reports whether the role has platform-wide access.
func (r Role) IsAdmin() bool {
	return r == RoleSystemAdmin || r == RoleOrganizationAdmin
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Role   Role
	Name   string
	Phone  string

	// HospitalID binds hospital-side roles to their facility; zero for
	// everyone else.
	HospitalID uuid.UUID
}
