package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kilianp07/pmrs/core/schedule"
)

// Format is an output artifact type.
type Format string

const (
	FormatText  Format = "text"
	FormatCSV   Format = "csv"
	FormatCHIRP Format = "chirp"
	FormatJSON  Format = "json"
)

// AllFormats lists every format in write order.
var AllFormats = []Format{FormatText, FormatCSV, FormatCHIRP, FormatJSON}

// Artifact file names.
const (
	TextFile         = "emergency_schedule.txt"
	CSVFile          = "emergency_schedule.csv"
	QuickConnectFile = "emergency_quick_connect.csv"
	CHIRPFile        = "emergency_schedule.chirp"
	JSONFile         = "emergency_schedule.json"
)

// ParseFormats parses a comma separated format list. "all" selects every
// format. Duplicates are dropped.
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	seen := map[Format]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if part == "all" {
			return AllFormats, nil
		}
		f := Format(part)
		switch f {
		case FormatText, FormatCSV, FormatCHIRP, FormatJSON:
		default:
			return nil, fmt.Errorf("unknown output format %q", part)
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no output format given")
	}
	return out, nil
}

// WriteJSON writes the plan to w in JSON format.
func WriteJSON(w io.Writer, plan *schedule.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

// Write renders plan in format f to w. The CSV format writes the day table,
// a blank line, then the quick-connect table.
func Write(w io.Writer, f Format, plan *schedule.Plan) error {
	switch f {
	case FormatText:
		return WriteText(w, plan)
	case FormatCSV:
		if err := WriteCSV(w, plan); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		return WriteQuickConnectCSV(w, plan)
	case FormatCHIRP:
		return WriteCHIRP(w, plan)
	case FormatJSON:
		return WriteJSON(w, plan)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

// WriteFiles writes the artifacts of every format into dir and returns the
// created paths in order.
func WriteFiles(dir string, plan *schedule.Plan, formats []Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var paths []string
	for _, f := range formats {
		switch f {
		case FormatText:
			paths = append(paths, filepath.Join(dir, TextFile))
			if err := writeFile(paths[len(paths)-1], plan, WriteText); err != nil {
				return paths, err
			}
		case FormatCSV:
			paths = append(paths, filepath.Join(dir, CSVFile))
			if err := writeFile(paths[len(paths)-1], plan, WriteCSV); err != nil {
				return paths, err
			}
			paths = append(paths, filepath.Join(dir, QuickConnectFile))
			if err := writeFile(paths[len(paths)-1], plan, WriteQuickConnectCSV); err != nil {
				return paths, err
			}
		case FormatCHIRP:
			paths = append(paths, filepath.Join(dir, CHIRPFile))
			if err := writeFile(paths[len(paths)-1], plan, WriteCHIRP); err != nil {
				return paths, err
			}
		case FormatJSON:
			paths = append(paths, filepath.Join(dir, JSONFile))
			if err := writeFile(paths[len(paths)-1], plan, WriteJSON); err != nil {
				return paths, err
			}
		default:
			return paths, fmt.Errorf("unknown output format %q", f)
		}
	}
	return paths, nil
}

func writeFile(path string, plan *schedule.Plan, fn func(io.Writer, *schedule.Plan) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := fn(f, plan); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
