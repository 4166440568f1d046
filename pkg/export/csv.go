package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/kilianp07/pmrs/core/schedule"
)

// QuickConnectNote annotates the quick-connect rows.
const QuickConnectNote = "Check at minutes past any hour"

// WriteCSV writes one row per day: the date, then time, channel, frequency
// and CTCSS tone of every period.
func WriteCSV(w io.Writer, plan *schedule.Plan) error {
	cw := csv.NewWriter(w)
	header := []string{"Day", "Date"}
	for _, p := range schedule.Periods {
		t := p.Title()
		header = append(header, t+" Time", t+" Channel", t+" Frequency", t+" CTCSS")
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, d := range plan.Schedule {
		rec := []string{strconv.Itoa(d.Index), plan.Date(d.Index).Format(schedule.DateLayout)}
		for _, win := range d.Windows() {
			rec = append(rec, win.Time, strconv.Itoa(win.Channel), win.Frequency, formatTone(win.CTCSS))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteQuickConnectCSV writes the quick-connect side table followed by the
// backup protocol row.
func WriteQuickConnectCSV(w io.Writer, plan *schedule.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Type", "Time", "Channel", "Frequency", "CTCSS", "Notes"}); err != nil {
		return err
	}
	for i, qc := range plan.Meta.QuickConnects {
		rec := []string{
			"Quick Connect " + strconv.Itoa(i+1),
			qc.Time(),
			strconv.Itoa(qc.Channel),
			qc.Frequency,
			formatTone(qc.CTCSS),
			QuickConnectNote,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	b := plan.Backup
	rec := []string{
		"Backup Protocol",
		"XX:00",
		strconv.Itoa(b.Channel),
		b.Frequency,
		formatTone(b.CTCSS),
		"If no contact after " + strconv.Itoa(plan.Meta.BackupDays()) + " days",
	}
	if err := cw.Write(rec); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func formatTone(t float64) string {
	return strconv.FormatFloat(t, 'f', 1, 64)
}
