package usecase

import (
	"context"
	"errors"
	"fmt"

	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// Detail returns ErrUserNotFound when the id is unknown.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (user.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return user.User{}, err
	}
	if u.ID == 0 {
		return user.User{}, fmt.Errorf("%w: %d", user.ErrUserNotFound, id)
	}
	return u, nil
}

func (uc *implUseCase) List(ctx context.Context) ([]user.User, error) {
	users, err := uc.repo.ListUsers(ctx, repo.ListUsersOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListUsers: %v", err)
		return nil, err
	}
	return users, nil
}

// Update applies a partial update. A changed email is validated and must not
// belong to another user.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateInput) (user.User, error) {
	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return user.User{}, err
	}

	name := uc.coalesce(input.Name, existing.Name)
	email := uc.coalesce(input.Email, existing.Email)

	if email != existing.Email {
		if err := uc.validateEmail(email); err != nil {
			return user.User{}, err
		}
		other, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email, ExcludeID: existing.ID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneUser: %v", err)
			return user.User{}, err
		}
		if other.ID != 0 {
			return user.User{}, user.ErrEmailTaken
		}
	}

	u, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{ID: existing.ID, Name: name, Email: email})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return user.User{}, user.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "uc.Update UpdateUser: %v", err)
		return user.User{}, err
	}
	if u.ID == 0 {
		return user.User{}, fmt.Errorf("%w: %d", user.ErrUserNotFound, input.ID)
	}
	return u, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.DeleteUser(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteUser: %v", err)
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %d", user.ErrUserNotFound, id)
	}
	return nil
}
