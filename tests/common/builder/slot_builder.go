//go:build unit || e2e

package builder

import (
	"time"

	"recruitflow/internal/domain/slot"
	reqdto "recruitflow/internal/handler/dto/request"
	"recruitflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID              uuid.UUID
	StartAt         time.Time
	EndAt           time.Time
	Capacity        int
	CurrentBookings int
	IsOpen          bool
	Version         int64
	CreatedBy       *uuid.UUID
	CreatedAt       time.Time
	IntervalMin     int
}

func NewSlotBuilder() *SlotBuilder {
	start := time.Now().UTC().Truncate(time.Hour).Add(48 * time.Hour)
	creator := uuid.New()
	return &SlotBuilder{
		ID:              uuid.New(),
		StartAt:         start,
		EndAt:           start.Add(time.Hour),
		Capacity:        3,
		CurrentBookings: 0,
		IsOpen:          true,
		Version:         0,
		CreatedBy:       &creator,
		CreatedAt:       time.Now().UTC(),
		IntervalMin:     60,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) BuildDomain() *slot.InterviewSlot {
	return slot.Reconstruct(
		b.ID,
		slot.ReconstructWindow(b.StartAt, b.EndAt),
		b.Capacity,
		b.CurrentBookings,
		b.IsOpen,
		b.Version,
		b.CreatedBy,
		b.CreatedAt,
	)
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	available := b.Capacity - b.CurrentBookings
	if available < 0 {
		available = 0
	}
	return &queries.SlotView{
		ID:              b.ID,
		StartAt:         b.StartAt,
		EndAt:           b.EndAt,
		Capacity:        int32(b.Capacity),
		CurrentBookings: int32(b.CurrentBookings),
		AvailableSpots:  int32(available),
		IsOpen:          b.IsOpen,
		Version:         b.Version,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *SlotBuilder) BuildCreateRequestDTO() reqdto.CreateSlotRequest {
	return reqdto.CreateSlotRequest{
		StartAt:  b.StartAt,
		EndAt:    b.EndAt,
		Capacity: b.Capacity,
	}
}

func (b *SlotBuilder) BuildGenerateRequestDTO() reqdto.GenerateSlotsRequest {
	return reqdto.GenerateSlotsRequest{
		StartAt:     b.StartAt,
		EndAt:       b.EndAt,
		IntervalMin: b.IntervalMin,
		Capacity:    b.Capacity,
	}
}
