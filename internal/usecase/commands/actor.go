package commands

import (
	"parkshare/internal/domain/user"
	"parkshare/internal/pkg/errs"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as asserted by the access token.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

// notFoundAs replaces a storage not-found with the caller's domain sentinel.
func notFoundAs(err error, sentinel error) error {
	if errs.Is(err, errs.ErrNotFound) {
		return sentinel
	}
	return err
}
