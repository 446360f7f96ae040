package repository

import "errors"

// Storage-level errors surfaced to the application layer. Handlers never see
// these directly; services translate them into their own sentinels.
var (
	ErrNotFound       = errors.New("not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrClubNotFound   = errors.New("club not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateName  = errors.New("club name already taken")
	ErrDuplicateClub  = errors.New("club id already taken")
)
