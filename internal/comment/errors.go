package comment

import pkgErrors "shareit/pkg/errors"

var (
	ErrTextRequired      = pkgErrors.NewValidation("text must not be blank")
	ErrNoFinishedBooking = pkgErrors.NewValidation("cannot comment without a finished booking")
)
