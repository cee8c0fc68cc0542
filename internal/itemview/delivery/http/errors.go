package http

import pkgErrors "shareit/pkg/errors"

func (h *handler) mapError(err error) error {
	return pkgErrors.ToHTTP(err)
}
