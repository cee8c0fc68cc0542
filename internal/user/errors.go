package user

import pkgErrors "shareit/pkg/errors"

var (
	ErrUserNotFound  = pkgErrors.NewNotFound("user not found")
	ErrEmailTaken    = pkgErrors.NewConflict("email already in use")
	ErrInvalidEmail  = pkgErrors.NewValidation("invalid email")
	ErrNameRequired  = pkgErrors.NewValidation("name must not be blank")
	ErrEmailRequired = pkgErrors.NewValidation("email must not be blank")
)
