package candidate

import (
	"time"

	"github.com/google/uuid"
)

// Application holds a candidate's recruitment details and status. One per
// user, enforced by a unique constraint on the user reference.
type Application struct {
	id         uuid.UUID
	userID     uuid.UUID
	department string
	grade      string
	skills     string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewApplication(userID uuid.UUID, department, grade, skills string) *Application {
	return &Application{
		id:         uuid.New(),
		userID:     userID,
		department: department,
		grade:      grade,
		skills:     skills,
		status:     StatusPending,
	}
}

func ReconstructApplication(
	id, userID uuid.UUID,
	department, grade, skills string,
	status Status,
	createdAt, updatedAt time.Time,
) *Application {
	return &Application{
		id:         id,
		userID:     userID,
		department: department,
		grade:      grade,
		skills:     skills,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (a *Application) ID() uuid.UUID        { return a.id }
func (a *Application) UserID() uuid.UUID    { return a.userID }
func (a *Application) Department() string   { return a.department }
func (a *Application) Grade() string        { return a.grade }
func (a *Application) Skills() string       { return a.skills }
func (a *Application) Status() Status       { return a.status }
func (a *Application) CreatedAt() time.Time { return a.createdAt }
func (a *Application) UpdatedAt() time.Time { return a.updatedAt }
