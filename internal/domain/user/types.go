package user

import "parkshare/internal/pkg/errs"

var (
	ErrInvalidRole          = errs.NewKind("invalid role", errs.ErrValidation)
	ErrCannotManageListings = errs.NewKind("role cannot manage listings", errs.ErrForbidden)
)

// Role is issued by the identity service in the access token.
type Role string

const (
	RoleRenter     Role = "renter"
	RoleSpaceOwner Role = "spaceowner"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleRenter, RoleSpaceOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// CanManageListings reports whether the role may create or edit parking spots.
func (r Role) CanManageListings() bool {
	return r == RoleSpaceOwner || r == RoleAdmin
}
