package export

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/kilianp07/pmrs/core/schedule"
)

// ToneMode is the CHIRP tone mode of every memory: tone squelch on both
// transmit and receive.
const ToneMode = "TSQL"

// Memory is one radio memory of a CHIRP memory list.
type Memory struct {
	Number    int    `xml:"number"`
	Name      string `xml:"name"`
	Frequency string `xml:"frequency"`
	TMode     string `xml:"tmode"`
	CTone     string `xml:"ctone"`
	RTone     string `xml:"rtone"`
	Comment   string `xml:"comment"`
}

type memoryList struct {
	XMLName  xml.Name `xml:"memories"`
	Version  string   `xml:"version,attr"`
	Memories []Memory `xml:"memory"`
}

// Memories builds the memory list: every window of every day, then both
// quick-connects, then the backup channel. Numbers start at 1.
func Memories(plan *schedule.Plan) []Memory {
	mems := make([]Memory, 0, plan.Schedule.Len()*len(schedule.Periods)+3)
	add := func(name, freq string, tone float64, comment string) {
		t := formatTone(tone)
		mems = append(mems, Memory{
			Number:    len(mems) + 1,
			Name:      name,
			Frequency: freq,
			TMode:     ToneMode,
			CTone:     t,
			RTone:     t,
			Comment:   comment,
		})
	}
	for _, d := range plan.Schedule {
		for _, p := range schedule.Periods {
			win := d.Window(p)
			add(fmt.Sprintf("D%d%s", d.Index, p.Initial()), win.Frequency, win.CTCSS,
				fmt.Sprintf("Day %d %s %s", d.Index, p.Title(), win.Time))
		}
	}
	for i, qc := range plan.Meta.QuickConnects {
		add(fmt.Sprintf("QC%d", i+1), qc.Frequency, qc.CTCSS,
			fmt.Sprintf("Quick Connect %d: %s", i+1, qc.Time()))
	}
	add("BACKUP", plan.Backup.Frequency, plan.Backup.CTCSS, "Backup channel - top of hour")
	return mems
}

// WriteCHIRP writes the memory list as indented CHIRP XML.
func WriteCHIRP(w io.Writer, plan *schedule.Plan) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(memoryList{Version: "1.0", Memories: Memories(plan)}); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
