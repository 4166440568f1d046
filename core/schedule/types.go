package schedule

import (
	"fmt"
	"time"

	"github.com/kilianp07/pmrs/core/band"
)

// Period is one of the three daily transmission windows.
type Period int

const (
	Morning Period = iota
	Afternoon
	Evening
)

// Periods lists the periods in generation order.
var Periods = [...]Period{Morning, Afternoon, Evening}

// String returns the lower case period name.
func (p Period) String() string {
	switch p {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	case Evening:
		return "evening"
	default:
		return "unknown"
	}
}

// Title returns the capitalised period name used in reports.
func (p Period) Title() string {
	switch p {
	case Morning:
		return "Morning"
	case Afternoon:
		return "Afternoon"
	case Evening:
		return "Evening"
	default:
		return "Unknown"
	}
}

// Initial returns the single letter used in radio memory names.
func (p Period) Initial() string { return p.Title()[:1] }

// Window is a five minute slot on a given channel and tone.
type Window struct {
	Time      string  `json:"time"`
	Channel   int     `json:"channel"`
	Frequency string  `json:"frequency"`
	CTCSS     float64 `json:"ctcss"`
	Hour      int     `json:"-"`
	Minute    int     `json:"-"`
}

// Day holds the three windows of one day of the rotation.
type Day struct {
	Index     int    `json:"day"`
	Morning   Window `json:"morning"`
	Afternoon Window `json:"afternoon"`
	Evening   Window `json:"evening"`
}

// Window returns the window of period p.
func (d Day) Window(p Period) Window {
	switch p {
	case Afternoon:
		return d.Afternoon
	case Evening:
		return d.Evening
	default:
		return d.Morning
	}
}

// Windows returns the windows in period order.
func (d Day) Windows() [3]Window {
	return [3]Window{d.Morning, d.Afternoon, d.Evening}
}

func (d *Day) set(p Period, w Window) {
	switch p {
	case Morning:
		d.Morning = w
	case Afternoon:
		d.Afternoon = w
	case Evening:
		d.Evening = w
	}
}

// Schedule is the ordered list of days, indexed from 1.
type Schedule []Day

// Len returns the number of days.
func (s Schedule) Len() int { return len(s) }

// Day returns the day with the given 1-based index.
func (s Schedule) Day(index int) (Day, bool) {
	if index < 1 || index > len(s) {
		return Day{}, false
	}
	return s[index-1], true
}

// QuickConnect is an emergency rendezvous at a fixed minute past every hour.
type QuickConnect struct {
	Minute    int     `json:"minute"`
	Channel   int     `json:"channel"`
	Frequency string  `json:"frequency"`
	CTCSS     float64 `json:"ctcss"`
}

// Time renders the rendezvous as XX:MM.
func (q QuickConnect) Time() string { return fmt.Sprintf("XX:%02d", q.Minute) }

// Meta is the run level metadata of a schedule.
type Meta struct {
	QuickConnects [2]QuickConnect `json:"quick_connect_times"`
	Seed          int64           `json:"seed"`
	CycleDays     int             `json:"cycle_days"`
	Band          band.Name       `json:"band"`
}

// BackupDays is the silence after which the backup protocol applies.
func (m Meta) BackupDays() int { return m.CycleDays * 3 }

// Backup describes the fixed fallback channel of the band.
type Backup struct {
	Channel   int     `json:"channel"`
	Frequency string  `json:"frequency"`
	CTCSS     float64 `json:"ctcss"`
}

// Plan is the result of one generation run.
type Plan struct {
	Schedule Schedule  `json:"schedule"`
	Meta     Meta      `json:"meta"`
	Backup   Backup    `json:"backup"`
	Start    time.Time `json:"start_date"`
}

// Date returns the calendar date of the day with the given 1-based index.
func (p *Plan) Date(index int) time.Time {
	return p.Start.AddDate(0, 0, index-1)
}
