package repository

type CreateUserOptions struct {
	Name  string
	Email string
}

// GetOneUserOptions filters a single user. Non-zero fields are ANDed;
// Email is compared case-insensitively.
type GetOneUserOptions struct {
	ID        int64
	Email     string
	ExcludeID int64
}

// ListUsersOptions narrows the list to IDs when non-empty.
type ListUsersOptions struct {
	IDs []int64
}

type UpdateUserOptions struct {
	ID    int64
	Name  string
	Email string
}
