package schedule

import (
	"time"

	"github.com/kilianp07/pmrs/core/band"
)

// MinQuickConnectGap is the minimum separation in minutes between the two
// quick-connect times.
const MinQuickConnectGap = 15

// quickConnects derives both rendezvous points from the date fields only.
// No random draws are made.
func quickConnects(a, b time.Time, bd band.Band) [2]QuickConnect {
	m1 := (a.Day() + b.Day()) % 60
	m2 := (int(a.Month()) + int(b.Month())) % 60
	for absInt(m1-m2) < MinQuickConnectGap {
		m2 = (m2 + 7) % 60
	}

	n := bd.ChannelCount()
	c1 := (a.Day() + int(b.Month())) % n
	c2 := (int(a.Month()) + b.Day()) % n
	if c1 == c2 && n > 1 {
		c2 = (c2 + 1) % n
	}

	t := bd.ToneCount()
	t1 := bd.Tones[(a.Day()+b.Year())%t]
	t2 := bd.Tones[(a.Year()+b.Day())%t]

	ch1, ch2 := bd.Channels[c1], bd.Channels[c2]
	return [2]QuickConnect{
		{Minute: m1, Channel: ch1.ID, Frequency: ch1.Frequency, CTCSS: t1},
		{Minute: m2, Channel: ch2.ID, Frequency: ch2.Frequency, CTCSS: t2},
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
