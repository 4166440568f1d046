package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/pmrs/core/schedule"
)

func testPlan(t *testing.T, days int) *schedule.Plan {
	t.Helper()
	plan, err := schedule.Generate(schedule.Request{
		User1: "1990-05-15",
		User2: "1985-11-22",
		Days:  days,
		Start: time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return plan
}

func TestParseFormats(t *testing.T) {
	f, err := ParseFormats("all")
	require.NoError(t, err)
	assert.Equal(t, AllFormats, f)

	f, err = ParseFormats(" CSV,chirp,csv ")
	require.NoError(t, err)
	assert.Equal(t, []Format{FormatCSV, FormatCHIRP}, f)

	_, err = ParseFormats("pdf")
	assert.Error(t, err)
	_, err = ParseFormats(" , ")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	plan := testPlan(t, 3)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, plan))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{
		"Day", "Date",
		"Morning Time", "Morning Channel", "Morning Frequency", "Morning CTCSS",
		"Afternoon Time", "Afternoon Channel", "Afternoon Frequency", "Afternoon CTCSS",
		"Evening Time", "Evening Channel", "Evening Frequency", "Evening CTCSS",
	}, rows[0])
	d1, _ := plan.Schedule.Day(1)
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2026-10-14", rows[1][1])
	assert.Equal(t, d1.Morning.Time, rows[1][2])
	assert.Equal(t, d1.Evening.Frequency, rows[1][12])
	assert.Equal(t, "2026-10-16", rows[3][1])
}

func TestWriteQuickConnectCSV(t *testing.T) {
	plan := testPlan(t, 3)
	var buf bytes.Buffer
	require.NoError(t, WriteQuickConnectCSV(&buf, plan))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Quick Connect 1", "XX:37", "5", "462.6625", "156.7", QuickConnectNote}, rows[1])
	assert.Equal(t, []string{"Quick Connect 2", "XX:16", "6", "462.6875", "241.8", QuickConnectNote}, rows[2])
	assert.Equal(t, []string{"Backup Protocol", "XX:00", "1", "462.5625", "67.0", "If no contact after 9 days"}, rows[3])
}

func TestWriteText(t *testing.T) {
	plan := testPlan(t, 2)
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, plan))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "###### EMERGENCY TRANSMISSION SCHEDULE ######\n"))
	assert.Contains(t, out, "2-Day Rotation")
	assert.Contains(t, out, "Band: pmrs | Start date: 2026-10-14")
	assert.Contains(t, out, "Quick Connect 1: XX:37 on Channel 5 (462.6625 MHz) with CTCSS 156.7 Hz")
	assert.Contains(t, out, "If no contact after three complete cycles (6 days):")
	assert.Contains(t, out, "2. Use Channel 1 (462.5625 MHz) with CTCSS 67.0 Hz as the backup channel")
	assert.Contains(t, out, "- Listen before transmitting")

	d2, _ := plan.Schedule.Day(2)
	var row string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, " 2 | 2026-10-15") {
			row = line
		}
	}
	require.NotEmpty(t, row)
	assert.Contains(t, row, d2.Afternoon.Time)
}

func TestMemories(t *testing.T) {
	plan := testPlan(t, 3)
	mems := Memories(plan)
	require.Len(t, mems, 3*3+3)
	for i, m := range mems {
		assert.Equal(t, i+1, m.Number)
		assert.Equal(t, ToneMode, m.TMode)
		assert.Equal(t, m.CTone, m.RTone)
	}
	d1, _ := plan.Schedule.Day(1)
	assert.Equal(t, "D1M", mems[0].Name)
	assert.Equal(t, "D1A", mems[1].Name)
	assert.Equal(t, "D1E", mems[2].Name)
	assert.Equal(t, d1.Morning.Frequency, mems[0].Frequency)
	assert.Equal(t, "Day 1 Morning "+d1.Morning.Time, mems[0].Comment)
	assert.Equal(t, "D3E", mems[8].Name)
	assert.Equal(t, "QC1", mems[9].Name)
	assert.Equal(t, "Quick Connect 2: XX:16", mems[10].Comment)

	backup := mems[11]
	assert.Equal(t, "BACKUP", backup.Name)
	assert.Equal(t, "462.5625", backup.Frequency)
	assert.Equal(t, "67.0", backup.CTone)
}

func TestWriteCHIRP(t *testing.T) {
	plan := testPlan(t, 2)
	var buf bytes.Buffer
	require.NoError(t, WriteCHIRP(&buf, plan))
	assert.True(t, strings.HasPrefix(buf.String(), xml.Header))
	assert.Contains(t, buf.String(), `<memories version="1.0">`)
	assert.Contains(t, buf.String(), "\n  <memory>\n    <number>1</number>")

	var doc memoryList
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "1.0", doc.Version)
	assert.Equal(t, Memories(plan), doc.Memories)
}

func TestWriteJSON(t *testing.T) {
	plan := testPlan(t, 2)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, plan))

	var doc struct {
		Schedule []struct {
			Day     int `json:"day"`
			Morning struct {
				Time    string  `json:"time"`
				Channel int     `json:"channel"`
				CTCSS   float64 `json:"ctcss"`
			} `json:"morning"`
		} `json:"schedule"`
		Meta struct {
			Seed      int64 `json:"seed"`
			CycleDays int   `json:"cycle_days"`
			QC        []struct {
				Minute int `json:"minute"`
			} `json:"quick_connect_times"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Schedule, 2)
	assert.Equal(t, 2, doc.Schedule[1].Day)
	assert.Equal(t, plan.Schedule[0].Morning.Time, doc.Schedule[0].Morning.Time)
	assert.Equal(t, int64(4028), doc.Meta.Seed)
	assert.Equal(t, 2, doc.Meta.CycleDays)
	require.Len(t, doc.Meta.QC, 2)
	assert.Equal(t, 37, doc.Meta.QC[0].Minute)
}

func TestWriteDispatch(t *testing.T) {
	plan := testPlan(t, 1)
	for _, f := range AllFormats {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, f, plan), f)
		assert.NotZero(t, buf.Len())
	}
	assert.Error(t, Write(&bytes.Buffer{}, Format("pdf"), plan))
}

func TestWriteCSVIncludesQuickConnectTable(t *testing.T) {
	plan := testPlan(t, 2)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, plan))

	parts := strings.SplitN(buf.String(), "\n\n", 2)
	require.Len(t, parts, 2)
	days, err := csv.NewReader(strings.NewReader(parts[0])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, days, 3)
	qc, err := csv.NewReader(strings.NewReader(parts[1])).ReadAll()
	require.NoError(t, err)
	require.Len(t, qc, 4)
	assert.Equal(t, "Type", qc[0][0])
	assert.Equal(t, "Quick Connect 1", qc[1][0])
	assert.Equal(t, "Backup Protocol", qc[3][0])
}

func TestWriteFiles(t *testing.T) {
	plan := testPlan(t, 3)
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := WriteFiles(dir, plan, AllFormats)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, TextFile),
		filepath.Join(dir, CSVFile),
		filepath.Join(dir, QuickConnectFile),
		filepath.Join(dir, CHIRPFile),
		filepath.Join(dir, JSONFile),
	}, paths)
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), p)
	}

	_, err = WriteFiles(dir, plan, []Format{"pdf"})
	assert.Error(t, err)
}
