package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Portal administrator - full access
	RoleHR       Role = "hr"       // HR staff - accounts, payroll runs, offers
	RoleManager  Role = "manager"  // Has direct reports, can approve absences
	RoleEmployee Role = "employee" // Regular employee
)

// User is a portal account. Email is the stable identity key used across
// the absence subsystem; ManagerEmail links the reporting line.
type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Name         string
	Role         Role
	ManagerEmail *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanApprove checks if the user may approve absence requests
func (u *User) CanApprove() bool {
	return u.Role == RoleManager || u.Role == RoleHR || u.Role == RoleAdmin
}
