package domain

import "fmt"

// Role is the closed set of account categories. Any value outside this set
// must be rejected where data enters the system; it never defaults.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleGolfer     Role = "golfer"
)

// Roles lists every known role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleInstructor, RoleGolfer}
}

// Valid reports whether the role is a member of the known set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleGolfer:
		return true
	}
	return false
}

// ParseRole validates an untrusted role string.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}
