//go:build unit

package slot_test

import (
	"testing"
	"time"

	"recruitflow/internal/domain/slot"
	"recruitflow/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterviewSlot(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	window, err := slot.NewWindow(now.Add(24*time.Hour), now.Add(25*time.Hour))
	require.NoError(t, err)

	t.Run("basic success case", func(t *testing.T) {
		s, err := slot.NewInterviewSlot(window, 3, uuid.New(), now)
		require.NoError(t, err)
		require.NotNil(t, s)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.True(t, s.IsOpen())
		assert.Equal(t, 3, s.Capacity())
		assert.Equal(t, 0, s.CurrentBookings())
		assert.Equal(t, 3, s.AvailableSpots())
		assert.False(t, s.HasBookings())
	})

	t.Run("capacity validation", func(t *testing.T) {
		for _, capacity := range []int{0, -1} {
			_, err := slot.NewInterviewSlot(window, capacity, uuid.New(), now)
			assert.ErrorIs(t, err, slot.ErrInvalidCapacity)
		}

		_, err := slot.NewInterviewSlot(window, 1, uuid.New(), now)
		assert.NoError(t, err)
	})

	t.Run("window must start in the future", func(t *testing.T) {
		past, err := slot.NewWindow(now.Add(-2*time.Hour), now.Add(-time.Hour))
		require.NoError(t, err)

		_, err = slot.NewInterviewSlot(past, 3, uuid.New(), now)
		assert.ErrorIs(t, err, slot.ErrWindowInPast)

		// Starting exactly now is already too late.
		startingNow, err := slot.NewWindow(now, now.Add(time.Hour))
		require.NoError(t, err)

		_, err = slot.NewInterviewSlot(startingNow, 3, uuid.New(), now)
		assert.ErrorIs(t, err, slot.ErrWindowInPast)
	})
}

func TestAvailability(t *testing.T) {
	now := time.Now().UTC()

	t.Run("available spots track the counter", func(t *testing.T) {
		cases := []struct {
			capacity, current, want int
			full                    bool
		}{
			{capacity: 3, current: 0, want: 3},
			{capacity: 3, current: 2, want: 1},
			{capacity: 3, current: 3, want: 0, full: true},
			// Counter drift past capacity must not go negative.
			{capacity: 3, current: 4, want: 0, full: true},
		}
		for _, tc := range cases {
			s := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
				b.Capacity = tc.capacity
				b.CurrentBookings = tc.current
			}).BuildDomain()

			assert.Equal(t, tc.want, s.AvailableSpots())
			assert.Equal(t, tc.full, s.IsFull())
		}
	})

	t.Run("bookable only when open, not full, and not started", func(t *testing.T) {
		open := builder.NewSlotBuilder().BuildDomain()
		assert.True(t, open.IsBookable(now))

		closed := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
			b.IsOpen = false
		}).BuildDomain()
		assert.False(t, closed.IsBookable(now))

		full := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
			b.CurrentBookings = b.Capacity
		}).BuildDomain()
		assert.False(t, full.IsBookable(now))

		started := builder.NewSlotBuilder().BuildDomain()
		assert.False(t, started.IsBookable(started.Window().Start()))
	})
}
