package response

import (
	"time"

	"recruitflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type CandidateResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	Department *string   `json:"department,omitempty"`
	Grade      *string   `json:"grade,omitempty"`
	Skills     *string   `json:"skills,omitempty"`
	Status     *string   `json:"status,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromCandidateView(v *queries.CandidateView) *CandidateResponse {
	return &CandidateResponse{
		ID:         v.ID,
		Name:       v.Name,
		Email:      v.Email,
		Phone:      v.Phone,
		Department: v.Department,
		Grade:      v.Grade,
		Skills:     v.Skills,
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
	}
}

type RegisterCandidateResponse struct {
	UserID        uuid.UUID `json:"userId"`
	ApplicationID uuid.UUID `json:"applicationId"`
}
