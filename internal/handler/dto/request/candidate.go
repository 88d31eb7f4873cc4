package request

type RegisterCandidateRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      *string `json:"phone,omitempty"`
	Department string  `json:"department" binding:"required"`
	Grade      string  `json:"grade" binding:"required"`
	Skills     string  `json:"skills"`
}

type SetApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
