package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kilianp07/pmrs/core/schedule"
)

var reportNotes = []string{
	"Keep transmissions brief (30-60 seconds)",
	"Listen before transmitting",
	"If a channel is busy, try the next channel up",
	"Each transmission window is 5 minutes long",
	"Use CTCSS tones to reduce interference and ensure privacy",
	"CHIRP file included for direct radio programming",
}

// WriteText writes the human readable schedule report.
func WriteText(w io.Writer, plan *schedule.Plan) error {
	bw := bufio.NewWriter(w)
	meta := plan.Meta

	fmt.Fprintln(bw, "###### EMERGENCY TRANSMISSION SCHEDULE ######")
	fmt.Fprintf(bw, "Generated from personal information - %d-Day Rotation\n", meta.CycleDays)
	fmt.Fprintf(bw, "Band: %s | Start date: %s\n\n", meta.Band, plan.Start.Format(schedule.DateLayout))

	cols := []string{"DAY", "DATE"}
	for _, p := range schedule.Periods {
		cols = append(cols, strings.ToUpper(p.String())+" WINDOW", "CHANNEL", "FREQUENCY", "CTCSS")
	}
	fmt.Fprintln(bw, strings.Join(cols, " | "))
	fmt.Fprintln(bw, strings.Repeat("-", 163))

	for _, d := range plan.Schedule {
		cells := []string{
			fmt.Sprintf("%2d", d.Index),
			plan.Date(d.Index).Format(schedule.DateLayout),
		}
		for _, win := range d.Windows() {
			cells = append(cells,
				fmt.Sprintf("%-13s", win.Time),
				fmt.Sprintf("Ch %2d", win.Channel),
				fmt.Sprintf("%-8s", win.Frequency),
				fmt.Sprintf("%5.1f", win.CTCSS),
			)
		}
		fmt.Fprintln(bw, strings.Join(cells, " | "))
	}

	fmt.Fprintln(bw, "\n## Emergency Quick-Connect Times ##")
	for i, qc := range meta.QuickConnects {
		fmt.Fprintf(bw, "Quick Connect %d: %s on Channel %d (%s MHz) with CTCSS %s Hz\n",
			i+1, qc.Time(), qc.Channel, qc.Frequency, formatTone(qc.CTCSS))
	}

	b := plan.Backup
	fmt.Fprintln(bw, "\n## Backup Protocol ##")
	fmt.Fprintf(bw, "If no contact after three complete cycles (%d days):\n", meta.BackupDays())
	fmt.Fprintln(bw, "1. Try the top of each hour for 5 minutes for 24 hours")
	fmt.Fprintf(bw, "2. Use Channel %d (%s MHz) with CTCSS %s Hz as the backup channel\n",
		b.Channel, b.Frequency, formatTone(b.CTCSS))
	fmt.Fprintln(bw, "3. Return to primary schedule after the 24-hour attempt")

	fmt.Fprintln(bw, "\n## Notes ##")
	for _, n := range reportNotes {
		fmt.Fprintf(bw, "- %s\n", n)
	}
	return bw.Flush()
}
