package application

import "errors"

// Service-level sentinels. Handlers map these onto the HTTP error taxonomy:
// invalid credentials → 401, not found → 404, duplicates → 409, bad payload → 400.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrClubNotFound       = errors.New("club not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrClubNameTaken      = errors.New("club name already taken")
	ErrClubIDTaken        = errors.New("club id already taken")
	ErrEventInvalid       = errors.New("invalid event payload")
	ErrClubInvalid        = errors.New("invalid club payload")
)
