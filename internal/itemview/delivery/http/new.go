package http

import (
	"shareit/internal/itemview"
	"shareit/pkg/log"
)

type handler struct {
	l  log.Logger
	uc itemview.UseCase
}

// New creates a new HTTP handler for item views.
func New(l log.Logger, uc itemview.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
