package models

import "fmt"

// Role is the closed set of privilege levels a user can hold.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

var roleLevels = map[Role]int{
	RoleUser:      0,
	RoleModerator: 1,
	RoleAdmin:     2,
}

// ParseRole validates a raw role string against the closed set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleLevels[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// HasCapability reports whether r grants at least the privileges of required.
// Admin satisfies moderator checks, moderator satisfies user checks.
func (r Role) HasCapability(required Role) bool {
	return roleLevels[r] >= roleLevels[required]
}
