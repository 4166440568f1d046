package schedule

import (
	"fmt"
	"math/rand"
)

// WindowMinutes is the length of a transmission window.
const WindowMinutes = 5

// quarterMinutes are the allowed start minutes of a window.
var quarterMinutes = [...]int{0, 15, 30, 45}

// HourRange is a half open range of start hours [From, To).
type HourRange struct {
	From int
	To   int
}

// Slots returns the number of distinct start times in the range.
func (r HourRange) Slots() int { return (r.To - r.From) * len(quarterMinutes) }

// PeriodHours holds the start hour range of each period.
var PeriodHours = [...]HourRange{
	Morning:   {From: 6, To: 10},
	Afternoon: {From: 12, To: 16},
	Evening:   {From: 19, To: 23},
}

// FormatWindow renders "HH:MM - HH:MM" for a window starting at h:m. The end
// minute wraps modulo 60 but the hour is never advanced, so a window starting
// at 09:57 renders as "09:57 - 09:02". Consumers rely on this format.
func FormatWindow(h, m int) string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d", h, m, h, (m+WindowMinutes)%60)
}

// timeTracker remembers the start times used by one period since its last
// reset.
type timeTracker struct {
	hours HourRange
	used  map[int]struct{}
}

func newTimeTracker(r HourRange) *timeTracker {
	return &timeTracker{hours: r, used: make(map[int]struct{}, r.Slots())}
}

// draw picks an unused start time. A full tracker is cleared first.
func (t *timeTracker) draw(rng *rand.Rand) (int, int) {
	if len(t.used) >= t.hours.Slots() {
		t.used = make(map[int]struct{}, t.hours.Slots())
	}
	for {
		h := t.hours.From + rng.Intn(t.hours.To-t.hours.From)
		m := quarterMinutes[rng.Intn(len(quarterMinutes))]
		key := h*60 + m
		if _, dup := t.used[key]; dup {
			continue
		}
		t.used[key] = struct{}{}
		return h, m
	}
}
