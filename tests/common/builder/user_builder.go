//go:build unit || e2e

package builder

import (
	"time"

	reqdto "canchacontrol/internal/handler/dto/request"
	"canchacontrol/internal/pkg/password"
	"canchacontrol/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Password     string
	passwordHash string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "operator@example.com",
		Password: "password123",
		Role:     "operator",
		IsActive: true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
	}
}

func (u *UserBuilder) BuildCredentialView() *queries.UserCredentialView {
	return &queries.UserCredentialView{
		User:         *u.BuildAuthorizedView(),
		PasswordHash: u.PasswordHash(),
	}
}

// PasswordHash hashes the builder password on first use so credential views
// always verify against Password.
func (u *UserBuilder) PasswordHash() string {
	if u.passwordHash == "" {
		hash, err := password.HashPassword(u.Password)
		if err != nil {
			panic(err)
		}
		u.passwordHash = hash
	}
	return u.passwordHash
}

func (u *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}
