//go:build unit || e2e

package builder

import (
	"time"

	reqdto "recruitflow/internal/handler/dto/request"
	"recruitflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type CandidateBuilder struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Phone      *string
	Department string
	Grade      string
	Skills     string
	Status     string
}

func NewCandidateBuilder() *CandidateBuilder {
	phone := "+81-90-1234-5678"
	return &CandidateBuilder{
		ID:         uuid.New(),
		Name:       "Hanako Suzuki",
		Email:      "hanako@example.com",
		Phone:      &phone,
		Department: "Engineering",
		Grade:      "new-grad",
		Skills:     "Go, PostgreSQL",
		Status:     "pending",
	}
}

func (b *CandidateBuilder) With(mutate func(*CandidateBuilder)) *CandidateBuilder {
	mutate(b)
	return b
}

func (b *CandidateBuilder) BuildRegisterRequestDTO() reqdto.RegisterCandidateRequest {
	return reqdto.RegisterCandidateRequest{
		Name:       b.Name,
		Email:      b.Email,
		Phone:      b.Phone,
		Department: b.Department,
		Grade:      b.Grade,
		Skills:     b.Skills,
	}
}

func (b *CandidateBuilder) BuildView() *queries.CandidateView {
	department := b.Department
	grade := b.Grade
	skills := b.Skills
	status := b.Status
	return &queries.CandidateView{
		ID:         b.ID,
		Name:       b.Name,
		Email:      b.Email,
		Phone:      b.Phone,
		Department: &department,
		Grade:      &grade,
		Skills:     &skills,
		Status:     &status,
		CreatedAt:  time.Now().UTC(),
	}
}
