//go:build e2e

package dbtest

import (
	"context"
	"sync"
	"time"

	"recruitflow/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Reference accounts every e2e test can rely on.
var (
	AdminID    = uuid.MustParse("00000000-0000-4000-8000-000000000001")
	AdminEmail = "admin@example.com"

	CandidateID    = uuid.MustParse("00000000-0000-4000-8000-000000000002")
	CandidateEmail = "taro@example.com"

	SecondCandidateID    = uuid.MustParse("00000000-0000-4000-8000-000000000003")
	SecondCandidateEmail = "hanako@example.com"

	// Shared by all seeded accounts.
	SeedPassword = "password123"
)

var (
	seedHashOnce sync.Once
	seedHash     string
	seedHashErr  error
)

func seedPasswordHash() (string, error) {
	seedHashOnce.Do(func() {
		seedHash, seedHashErr = password.HashPassword(SeedPassword)
	})
	return seedHash, seedHashErr
}

// SeedReferenceData inserts the baseline accounts: one admin and two
// candidates with pending applications.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hash, err := seedPasswordHash()
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES
			($1, 'Admin User', $2, $4, 'admin'),
			($3, 'Taro Yamada', $5, $4, 'candidate'),
			($6, 'Hanako Suzuki', $7, $4, 'candidate')
		ON CONFLICT (id) DO NOTHING`,
		AdminID, AdminEmail, CandidateID, hash, CandidateEmail, SecondCandidateID, SecondCandidateEmail,
	)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO applications (user_id, department, grade, skills)
		VALUES
			($1, 'Engineering', 'new-grad', 'Go, PostgreSQL'),
			($2, 'Engineering', 'mid-career', 'TypeScript')
		ON CONFLICT (user_id) DO NOTHING`,
		CandidateID, SecondCandidateID,
	)
	return err
}

// ResetDB truncates every table and reapplies the reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE audit_logs, slot_bookings, interview_slots, applications, users CASCADE`)
	if err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
