package slot

import (
	"errors"
	"time"
)

var (
	ErrInvalidWindow   = errors.New("window start must be before end")
	ErrWindowSplitSpan = errors.New("window too short for the requested interval")
	ErrInvalidInterval = errors.New("interval out of range")
)

const (
	MinSplitInterval = 5 * time.Minute
	MaxSplitInterval = 480 * time.Minute
)

// Window is the slot's date/time extent. Start and end share a calendar day
// in practice (slots are generated per day), but only start < end is enforced.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

// ReconstructWindow rebuilds a window from persisted values, which the schema
// already guarantees are ordered.
func ReconstructWindow(start, end time.Time) Window {
	return Window{start: start, end: end}
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Date is the calendar day of the window's start.
func (w Window) Date() time.Time {
	y, m, d := w.start.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, w.start.Location())
}

func (w Window) StartsAfter(t time.Time) bool {
	return w.start.After(t)
}

func (w Window) Overlaps(other Window) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// Split cuts the window into consecutive sub-windows of the given interval,
// dropping a trailing remainder shorter than the interval. Used for bulk slot
// generation over a working day.
func (w Window) Split(interval time.Duration) ([]Window, error) {
	if interval < MinSplitInterval || interval > MaxSplitInterval {
		return nil, ErrInvalidInterval
	}
	if w.Duration() < interval {
		return nil, ErrWindowSplitSpan
	}

	var windows []Window
	for cur := w.start; !cur.Add(interval).After(w.end); cur = cur.Add(interval) {
		windows = append(windows, Window{start: cur, end: cur.Add(interval)})
	}
	return windows, nil
}
