package user

// User is a registered member of the sharing service.
type User struct {
	ID    int64
	Name  string
	Email string
}

// --- UseCase Inputs ---

type CreateInput struct {
	Name  string
	Email string
}

// UpdateInput is a partial update: nil or blank fields keep the stored value.
type UpdateInput struct {
	ID    int64
	Name  *string
	Email *string
}
