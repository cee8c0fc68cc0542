package request

import pkgErrors "shareit/pkg/errors"

var (
	ErrRequestNotFound     = pkgErrors.NewNotFound("item request not found")
	ErrDescriptionRequired = pkgErrors.NewValidation("description must not be blank")
)
