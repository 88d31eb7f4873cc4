//go:build unit || e2e

package builder

import (
	reqdto "recruitflow/internal/handler/dto/request"
	"recruitflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthBuilder struct {
	UserID   uuid.UUID
	Name     string
	Email    string
	Password string
	Role     string
	IsActive bool
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		UserID:   uuid.New(),
		Name:     "Test Admin",
		Email:    "admin@example.com",
		Password: "password123",
		Role:     "admin",
		IsActive: true,
	}
}

func (b *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(b)
	return b
}

func (b *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *AuthBuilder) BuildAuthorizedUserView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       b.UserID,
		Name:     b.Name,
		Email:    b.Email,
		Role:     b.Role,
		IsActive: b.IsActive,
	}
}
