package readstore

import (
	"context"

	"recruitflow/internal/infra"
	"recruitflow/internal/infra/db"
	"recruitflow/internal/pkg/pgconv"
	"recruitflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	query := `SELECT id, name, email, role, is_active FROM users WHERE id = $1`

	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &v, nil
}

// FindByEmail also returns the stored password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	query := `SELECT id, name, email, role, is_active, password_hash FROM users WHERE email = $1`

	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.IsActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &v, hash, nil
}

// ListCandidates joins each candidate with their application, if any.
func (r *UserReadStore) ListCandidates(ctx context.Context) ([]*queries.CandidateView, error) {
	query := `
		SELECT u.id, u.name, u.email, u.phone,
		       a.department, a.grade, a.skills, a.status, u.created_at
		FROM users u
		LEFT JOIN applications a ON a.user_id = u.id
		WHERE u.role = 'candidate'
		ORDER BY u.created_at, u.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list candidates", err)
	}
	defer rows.Close()

	var result []*queries.CandidateView
	for rows.Next() {
		var (
			v          queries.CandidateView
			phone      pgtype.Text
			department pgtype.Text
			grade      pgtype.Text
			skills     pgtype.Text
			status     pgtype.Text
			createdAt  pgtype.Timestamptz
		)
		err := rows.Scan(&v.ID, &v.Name, &v.Email, &phone, &department, &grade, &skills, &status, &createdAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan candidate row", err)
		}
		v.Phone = pgconv.StringPtrFromPgtype(phone)
		v.Department = pgconv.StringPtrFromPgtype(department)
		v.Grade = pgconv.StringPtrFromPgtype(grade)
		v.Skills = pgconv.StringPtrFromPgtype(skills)
		v.Status = pgconv.StringPtrFromPgtype(status)
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate candidate rows", err)
	}

	return result, nil
}
