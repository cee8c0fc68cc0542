package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"shareit/internal/user"
	repo "shareit/internal/user/repository"
	"shareit/pkg/log"
)

// memRepo is an in-memory user store with case-insensitive email lookups.
type memRepo struct {
	users  map[int64]user.User
	nextID int64
	// raceEmail makes CreateUser report a unique violation, as when another
	// request wins between the lookup and the insert.
	raceEmail bool
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[int64]user.User{}, nextID: 1}
}

func (m *memRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	if m.raceEmail {
		return user.User{}, repo.ErrDuplicateEmail
	}
	u := user.User{ID: m.nextID, Name: opt.Name, Email: opt.Email}
	m.users[u.ID] = u
	m.nextID++
	return u, nil
}

func (m *memRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	for _, u := range m.users {
		if opt.ID != 0 && u.ID != opt.ID {
			continue
		}
		if opt.Email != "" && !strings.EqualFold(u.Email, opt.Email) {
			continue
		}
		if opt.ExcludeID != 0 && u.ID == opt.ExcludeID {
			continue
		}
		return u, nil
	}
	return user.User{}, nil
}

func (m *memRepo) ListUsers(ctx context.Context, opt repo.ListUsersOptions) ([]user.User, error) {
	out := make([]user.User, 0, len(m.users))
	for id := int64(1); id < m.nextID; id++ {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (user.User, error) {
	if _, ok := m.users[opt.ID]; !ok {
		return user.User{}, nil
	}
	u := user.User{ID: opt.ID, Name: opt.Name, Email: opt.Email}
	m.users[opt.ID] = u
	return u, nil
}

func (m *memRepo) DeleteUser(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input user.CreateInput
		want  error
	}{
		{"valid", user.CreateInput{Name: "Ann", Email: "ann@example.com"}, nil},
		{"plus and dots", user.CreateInput{Name: "Ann", Email: "ann.b+tag@mail.example.org"}, nil},
		{"blank name", user.CreateInput{Name: "  ", Email: "ann@example.com"}, user.ErrNameRequired},
		{"blank email", user.CreateInput{Name: "Ann", Email: ""}, user.ErrEmailRequired},
		{"no at", user.CreateInput{Name: "Ann", Email: "ann.example.com"}, user.ErrInvalidEmail},
		{"no tld", user.CreateInput{Name: "Ann", Email: "ann@localhost"}, user.ErrInvalidEmail},
		{"short tld", user.CreateInput{Name: "Ann", Email: "ann@example.c"}, user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(newMemRepo(), log.NewNop())
			u, err := uc.Create(ctx, tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if tt.want == nil && u.ID == 0 {
				t.Errorf("expected an id")
			}
		})
	}

	t.Run("duplicate email ignores case", func(t *testing.T) {
		uc := New(newMemRepo(), log.NewNop())
		if _, err := uc.Create(ctx, user.CreateInput{Name: "Ann", Email: "ann@example.com"}); err != nil {
			t.Fatalf("first create: %v", err)
		}
		_, err := uc.Create(ctx, user.CreateInput{Name: "Other", Email: "ANN@example.com"})
		if !errors.Is(err, user.ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		r := newMemRepo()
		r.raceEmail = true
		uc := New(r, log.NewNop())
		_, err := uc.Create(ctx, user.CreateInput{Name: "Ann", Email: "ann@example.com"})
		if !errors.Is(err, user.ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	setup := func() *implUseCase {
		uc := New(newMemRepo(), log.NewNop())
		_, _ = uc.Create(ctx, user.CreateInput{Name: "Ann", Email: "ann@example.com"})
		_, _ = uc.Create(ctx, user.CreateInput{Name: "Bob", Email: "bob@example.com"})
		return uc
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		uc := setup()
		u, err := uc.Update(ctx, user.UpdateInput{ID: 1, Name: strPtr("Annie")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Name != "Annie" || u.Email != "ann@example.com" {
			t.Errorf("unexpected user: %+v", u)
		}
	})

	t.Run("blank fields are ignored", func(t *testing.T) {
		uc := setup()
		u, err := uc.Update(ctx, user.UpdateInput{ID: 1, Name: strPtr(" "), Email: strPtr("")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Name != "Ann" || u.Email != "ann@example.com" {
			t.Errorf("unexpected user: %+v", u)
		}
	})

	t.Run("own email in another case is allowed", func(t *testing.T) {
		uc := setup()
		if _, err := uc.Update(ctx, user.UpdateInput{ID: 1, Email: strPtr("ANN@example.com")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("taken email", func(t *testing.T) {
		uc := setup()
		_, err := uc.Update(ctx, user.UpdateInput{ID: 1, Email: strPtr("bob@example.com")})
		if !errors.Is(err, user.ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := setup()
		_, err := uc.Update(ctx, user.UpdateInput{ID: 1, Email: strPtr("nope")})
		if !errors.Is(err, user.ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := setup()
		_, err := uc.Update(ctx, user.UpdateInput{ID: 42, Name: strPtr("x")})
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestDetailListDelete(t *testing.T) {
	ctx := context.Background()
	uc := New(newMemRepo(), log.NewNop())
	_, _ = uc.Create(ctx, user.CreateInput{Name: "Ann", Email: "ann@example.com"})

	if _, err := uc.Detail(ctx, 7); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	users, err := uc.List(ctx)
	if err != nil || len(users) != 1 {
		t.Fatalf("unexpected list %v, %v", users, err)
	}
	if err := uc.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.Delete(ctx, 1); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("second delete: expected ErrUserNotFound, got %v", err)
	}
}
