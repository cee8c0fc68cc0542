package usecase

import (
	"context"
	"errors"
	"strings"

	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// Create registers a user after checking the email format and uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateInput) (user.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" {
		return user.User{}, user.ErrNameRequired
	}
	if err := uc.validateEmail(email); err != nil {
		return user.User{}, err
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneUser: %v", err)
		return user.User{}, err
	}
	if existing.ID != 0 {
		return user.User{}, user.ErrEmailTaken
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{Name: name, Email: email})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return user.User{}, user.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "uc.Create CreateUser: %v", err)
		return user.User{}, err
	}
	return u, nil
}
