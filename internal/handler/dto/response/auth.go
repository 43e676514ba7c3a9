package response

import (
	"canchacontrol/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	LastLogin *string   `json:"lastLogin,omitempty"`
}

func FromAuthorizedUserView(rm *queries.AuthorizedUserView) *UserResponse {
	resp := &UserResponse{
		ID:       rm.ID,
		Email:    rm.Email,
		Role:     rm.Role,
		IsActive: rm.IsActive,
	}
	if rm.LastLogin != nil {
		s := rm.LastLogin.Format("2006-01-02T15:04:05Z07:00")
		resp.LastLogin = &s
	}
	return resp
}
