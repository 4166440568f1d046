package band

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profiles is the document layout of a band profiles file.
type Profiles struct {
	Bands []Band `json:"bands" yaml:"bands"`
}

// LoadFile reads band profiles from a JSON or YAML file.
func LoadFile(path string) ([]Band, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return Decode(f, ext)
}

// Decode reads band profiles from r in the given format.
func Decode(r io.Reader, format string) ([]Band, error) {
	var p Profiles
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&p); err != nil {
			return nil, err
		}
	case "json":
		if err := json.NewDecoder(r).Decode(&p); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	for _, b := range p.Bands {
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}
	return p.Bands, nil
}
