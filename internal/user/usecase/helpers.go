package usecase

import (
	"strings"

	"shareit/internal/user"
)

// coalesce keeps the stored value when the patch field is nil or blank.
func (uc *implUseCase) coalesce(newVal *string, existing string) string {
	if newVal == nil {
		return existing
	}
	if v := strings.TrimSpace(*newVal); v != "" {
		return v
	}
	return existing
}

func (uc *implUseCase) validateEmail(email string) error {
	if email == "" {
		return user.ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return user.ErrInvalidEmail
	}
	return nil
}
