package jobs

import (
	"context"
	"log/slog"
	"time"

	"recruitflow/internal/pkg/clock"
	"recruitflow/internal/pkg/config"
	"recruitflow/internal/usecase/shared"

	"github.com/robfig/cron/v3"
)

// SlotJanitor periodically closes slots whose start time has passed, so stale
// open slots never show up as bookable.
type SlotJanitor struct {
	cron  *cron.Cron
	uow   shared.UnitOfWork
	clock clock.Clock
	spec  string
}

func NewSlotJanitor(cfg config.JobsConfig, uow shared.UnitOfWork, clk clock.Clock) *SlotJanitor {
	return &SlotJanitor{
		cron:  cron.New(),
		uow:   uow,
		clock: clk,
		spec:  cfg.SlotJanitorSpec,
	}
}

func (j *SlotJanitor) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.run); err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

func (j *SlotJanitor) Stop() {
	ctx := j.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		slog.Warn("slot janitor did not stop in time")
	}
}

func (j *SlotJanitor) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var closed int64
	err := j.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Slots().CloseStarted(ctx, j.clock.Now())
		if err != nil {
			return err
		}
		closed = n
		return nil
	})
	if err != nil {
		slog.Error("slot janitor run failed", "error", err.Error())
		return
	}

	if closed > 0 {
		slog.Info("closed started slots", "count", closed)
	}
}
