package item

import pkgErrors "shareit/pkg/errors"

var (
	ErrItemNotFound        = pkgErrors.NewNotFound("item not found")
	ErrRequestNotFound     = pkgErrors.NewNotFound("item request not found")
	ErrNameRequired        = pkgErrors.NewValidation("name must not be blank")
	ErrDescriptionRequired = pkgErrors.NewValidation("description must not be blank")
	ErrAvailableRequired   = pkgErrors.NewValidation("available must be set")
)
