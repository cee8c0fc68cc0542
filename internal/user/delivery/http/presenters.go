package http

import "shareit/internal/user"

// --- Request DTOs ---

type createReq struct {
	Name  string `json:"name"  binding:"required,max=255"`
	Email string `json:"email" binding:"required,max=512"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{Name: r.Name, Email: r.Email}
}

type updateReq struct {
	ID    int64   `json:"-"`
	Name  *string `json:"name"  binding:"omitempty,max=255"`
	Email *string `json:"email" binding:"omitempty,max=512"`
}

func (r updateReq) toInput() user.UpdateInput {
	return user.UpdateInput{ID: r.ID, Name: r.Name, Email: r.Email}
}

// --- Response DTOs ---

type userResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserResp(u user.User) userResp {
	return userResp{ID: u.ID, Name: u.Name, Email: u.Email}
}

func newListResp(users []user.User) []userResp {
	out := make([]userResp, len(users))
	for i, u := range users {
		out[i] = newUserResp(u)
	}
	return out
}
