package http

import (
	"shareit/internal/comment"
	"shareit/pkg/log"
)

type handler struct {
	l  log.Logger
	uc comment.UseCase
}

// New creates a new HTTP handler for the comment ledger.
func New(l log.Logger, uc comment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
