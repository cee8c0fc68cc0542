package booking

import pkgErrors "shareit/pkg/errors"

var (
	ErrBookingNotFound = pkgErrors.NewNotFound("booking not found")
	ErrItemUnavailable = pkgErrors.NewValidation("item is not available for booking")
	ErrOwnItem         = pkgErrors.NewValidation("owner cannot book own item")
	ErrDatesRequired   = pkgErrors.NewValidation("start and end must be set")
	ErrInvalidRange    = pkgErrors.NewValidation("start must be before end")
	ErrStartInPast     = pkgErrors.NewValidation("start must not be in the past")
	ErrAlreadyDecided  = pkgErrors.NewValidation("booking already decided")
	ErrUnknownState    = pkgErrors.NewValidation("Unknown state")
)
