package schedule

import (
	"strings"
	"time"
)

// DateLayout is the accepted input date format.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// Seed combines both dates into the generation seed by summing their year,
// month and day. The sum is symmetric: swapping the dates keeps the seed.
func Seed(a, b time.Time) int64 {
	return int64(a.Year()+int(a.Month())+a.Day()) + int64(b.Year()+int(b.Month())+b.Day())
}
