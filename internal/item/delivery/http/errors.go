package http

import pkgErrors "shareit/pkg/errors"

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	return pkgErrors.ToHTTP(err)
}
