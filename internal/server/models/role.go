package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// Role is the authorization level attached to a user. The set is closed.
type Role int

const (
	RoleUser Role = iota + 1
	RoleModerator
	RoleAdmin
)

// DefaultRole is assigned to every newly registered user.
const DefaultRole = RoleUser

var roleNames = map[Role]string{
	RoleUser:      "user",
	RoleModerator: "moderator",
	RoleAdmin:     "admin",
}

// String returns the storage form of r ("admin", "moderator", "user").
func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// ParseRole converts a stored or wire role name into a Role. Matching is case
// insensitive. Unknown names fail with common.ErrUnknownRole rather than
// falling back to a default.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return RoleUser, nil
	case "moderator":
		return RoleModerator, nil
	case "admin":
		return RoleAdmin, nil
	}
	return 0, fmt.Errorf("%w: %q", common.ErrUnknownRole, s)
}
