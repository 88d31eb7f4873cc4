package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Entry is one recorded action. Actor is nil for unauthenticated or system
// actions.
type Entry struct {
	Actor  *uuid.UUID
	Action string
	Detail string
	IP     string
}

// Sink records entries best-effort. Recording never blocks or fails the
// operation being audited.
type Sink interface {
	Record(ctx context.Context, e Entry)
}

type PostgresSink struct {
	pool *pgxpool.Pool
}

func NewPostgresSink(pool *pgxpool.Pool) *PostgresSink {
	return &PostgresSink{pool: pool}
}

func (s *PostgresSink) Record(ctx context.Context, e Entry) {
	query := `
		INSERT INTO audit_logs (id, actor_id, action, detail, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	// Detached from the request context so a canceled request still audits.
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	_, err := s.pool.Exec(recordCtx, query, uuid.New(), e.Actor, e.Action, e.Detail, e.IP, time.Now().UTC())
	if err != nil {
		slog.Warn("failed to record audit entry", "action", e.Action, "error", err.Error())
	}
}

// NopSink discards entries. Used in tests.
type NopSink struct{}

func (NopSink) Record(context.Context, Entry) {}
