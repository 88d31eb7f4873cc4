//go:build unit

package slot_test

import (
	"testing"
	"time"

	"recruitflow/internal/domain/slot"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindow(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("start before end", func(t *testing.T) {
		w, err := slot.NewWindow(start, start.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, start, w.Start())
		assert.Equal(t, start.Add(time.Hour), w.End())
		assert.Equal(t, time.Hour, w.Duration())
	})

	t.Run("start equal to end", func(t *testing.T) {
		_, err := slot.NewWindow(start, start)
		assert.ErrorIs(t, err, slot.ErrInvalidWindow)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := slot.NewWindow(start.Add(time.Hour), start)
		assert.ErrorIs(t, err, slot.ErrInvalidWindow)
	})
}

func TestWindowOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	w := func(startOffset, endOffset time.Duration) slot.Window {
		return slot.ReconstructWindow(base.Add(startOffset), base.Add(endOffset))
	}

	a := w(0, time.Hour)

	assert.True(t, a.Overlaps(w(30*time.Minute, 90*time.Minute)))
	assert.True(t, a.Overlaps(w(-30*time.Minute, 30*time.Minute)))
	assert.True(t, a.Overlaps(w(10*time.Minute, 50*time.Minute)))

	// Touching boundaries do not overlap.
	assert.False(t, a.Overlaps(w(time.Hour, 2*time.Hour)))
	assert.False(t, a.Overlaps(w(-time.Hour, 0)))
}

func TestWindowSplit(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("even split", func(t *testing.T) {
		w, err := slot.NewWindow(start, start.Add(3*time.Hour))
		require.NoError(t, err)

		windows, err := w.Split(time.Hour)
		require.NoError(t, err)
		require.Len(t, windows, 3)

		var starts []time.Time
		for _, sub := range windows {
			assert.Equal(t, time.Hour, sub.Duration())
			starts = append(starts, sub.Start())
		}
		want := []time.Time{start, start.Add(time.Hour), start.Add(2 * time.Hour)}
		if diff := cmp.Diff(want, starts); diff != "" {
			t.Errorf("sub-window starts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("trailing remainder is dropped", func(t *testing.T) {
		w, err := slot.NewWindow(start, start.Add(2*time.Hour+30*time.Minute))
		require.NoError(t, err)

		windows, err := w.Split(time.Hour)
		require.NoError(t, err)
		assert.Len(t, windows, 2)
	})

	t.Run("interval bounds", func(t *testing.T) {
		w, err := slot.NewWindow(start, start.Add(10*time.Hour))
		require.NoError(t, err)

		_, err = w.Split(4 * time.Minute)
		assert.ErrorIs(t, err, slot.ErrInvalidInterval)

		_, err = w.Split(481 * time.Minute)
		assert.ErrorIs(t, err, slot.ErrInvalidInterval)

		windows, err := w.Split(slot.MinSplitInterval)
		require.NoError(t, err)
		assert.Len(t, windows, 120)
	})

	t.Run("window shorter than interval", func(t *testing.T) {
		w, err := slot.NewWindow(start, start.Add(30*time.Minute))
		require.NoError(t, err)

		_, err = w.Split(time.Hour)
		assert.ErrorIs(t, err, slot.ErrWindowSplitSpan)
	})
}
