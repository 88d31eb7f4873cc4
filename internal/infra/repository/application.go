package repository

import (
	"context"

	"recruitflow/internal/domain/candidate"
	"recruitflow/internal/infra"
	"recruitflow/internal/infra/db"

	"github.com/google/uuid"
)

type ApplicationRepository struct {
	db db.DBTX
}

func NewApplicationRepository(dbtx db.DBTX) *ApplicationRepository {
	return &ApplicationRepository{db: dbtx}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *candidate.Application) (uuid.UUID, error) {
	query := `
		INSERT INTO applications (id, user_id, department, grade, skills, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		a.ID(),
		a.UserID(),
		a.Department(),
		a.Grade(),
		a.Skills(),
		a.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create application", err)
	}

	return id, nil
}

// SetStatusByUser updates the application status for a user. A user without an
// application record is not an error; the booking still stands on its own.
func (r *ApplicationRepository) SetStatusByUser(ctx context.Context, userID uuid.UUID, status candidate.Status) error {
	query := `UPDATE applications SET status = $2, updated_at = NOW() WHERE user_id = $1`

	if _, err := r.db.Exec(ctx, query, userID, status.String()); err != nil {
		return infra.WrapRepoErr("failed to update application status", err)
	}

	return nil
}

func (r *ApplicationRepository) SetStatus(ctx context.Context, id uuid.UUID, status candidate.Status) error {
	query := `UPDATE applications SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update application status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("application not found", nil, infra.KindNotFound)
	}

	return nil
}
