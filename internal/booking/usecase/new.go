package usecase

import (
	"time"

	"shareit/internal/booking/repository"
	"shareit/internal/item"
	"shareit/internal/user"
	"shareit/pkg/log"
	"shareit/pkg/metrics"
	"shareit/pkg/postgres"
)

// implUseCase is the private implementation of booking.UseCase.
type implUseCase struct {
	repo    repository.Repository
	tx      postgres.Transactor
	userUC  user.UseCase
	itemUC  item.UseCase
	metrics metrics.Recorder
	l       log.Logger
	now     func() time.Time
}

// New creates a new booking UseCase implementation.
func New(
	repo repository.Repository,
	tx postgres.Transactor,
	userUC user.UseCase,
	itemUC item.UseCase,
	rec metrics.Recorder,
	l log.Logger,
) *implUseCase {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &implUseCase{
		repo:    repo,
		tx:      tx,
		userUC:  userUC,
		itemUC:  itemUC,
		metrics: rec,
		l:       l,
		now:     time.Now,
	}
}
