package valueobject

import (
	"math/rand/v2"
	"time"
)

const DateLayout = "2006-01-02"

// DateWindow bounds the forged capture timestamps of a batch.
type DateWindow struct {
	From time.Time
	To   time.Time
}

// NewDateWindow swaps reversed bounds.
func NewDateWindow(from, to time.Time) DateWindow {
	if to.Before(from) {
		from, to = to, from
	}
	return DateWindow{From: from, To: to}
}

func TrailingWindow(now time.Time, days int) DateWindow {
	return DateWindow{From: now.AddDate(0, 0, -days), To: now}
}

// ParseDateWindow parses YYYY-MM-DD bounds. Empty or malformed bounds fall
// back to the trailing window ending at now.
func ParseDateWindow(from, to string, now time.Time, days int) DateWindow {
	fallback := TrailingWindow(now, days)

	start := fallback.From
	if t, err := time.ParseInLocation(DateLayout, from, now.Location()); err == nil {
		start = t
	}
	end := fallback.To
	if t, err := time.ParseInLocation(DateLayout, to, now.Location()); err == nil {
		end = t
	}
	return NewDateWindow(start, end)
}

// Pick draws a moment inside the window, then moves its clock to a random
// time between firstHour:00:00 and lastHour:59:59 on the same day.
func (w DateWindow) Pick(r *rand.Rand, firstHour, lastHour int) time.Time {
	span := int64(w.To.Sub(w.From) / time.Second)
	if span < 1 {
		span = 1
	}
	t := w.From.Add(time.Duration(r.Int64N(span+1)) * time.Second)

	hour := firstHour + r.IntN(lastHour-firstHour+1)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, r.IntN(60), r.IntN(60), 0, t.Location())
}
