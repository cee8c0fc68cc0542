package middleware

import (
	"shareit/pkg/log"
)

// Middleware bundles the gin middlewares shared by the server routes.
type Middleware struct {
	l      log.Logger
	header string
}

// New creates a Middleware that reads the caller id from header.
func New(l log.Logger, header string) Middleware {
	return Middleware{
		l:      l,
		header: header,
	}
}

// Header returns the caller header name.
func (m Middleware) Header() string {
	return m.header
}
