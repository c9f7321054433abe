package domain

import "time"

// User is the domain read model for an identity. The password digest lives
// only in the persistence record (userrepo.User) so it can never be returned
// to a caller.
type User struct {
	ID       UserID
	Username string

	FullName    *string
	Bio         *string
	Preferences *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
