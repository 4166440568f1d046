package band

import (
	"errors"
	"fmt"
)

// Name identifies a band profile.
type Name string

// Builtin band names.
const (
	PMRS   Name = "pmrs"
	PMR446 Name = "pmr446"
)

// DefaultName is the band used when a request does not name one.
const DefaultName = PMRS

// Channel pairs a channel identifier with its frequency in MHz.
type Channel struct {
	ID        int    `json:"id" yaml:"id"`
	Frequency string `json:"frequency" yaml:"frequency"`
}

// Band is a named radio profile: an ordered channel plan and the CTCSS tones
// usable on it.
type Band struct {
	Name     Name      `json:"name" yaml:"name"`
	Channels []Channel `json:"channels" yaml:"channels"`
	Tones    []float64 `json:"tones" yaml:"tones"`
}

// Validate checks that the band can be used for generation.
func (b Band) Validate() error {
	if b.Name == "" {
		return errors.New("band name is required")
	}
	if len(b.Channels) == 0 {
		return fmt.Errorf("band %s: at least one channel is required", b.Name)
	}
	if len(b.Tones) == 0 {
		return fmt.Errorf("band %s: at least one tone is required", b.Name)
	}
	seen := make(map[int]struct{}, len(b.Channels))
	for _, ch := range b.Channels {
		if ch.ID <= 0 {
			return fmt.Errorf("band %s: channel id %d must be positive", b.Name, ch.ID)
		}
		if ch.Frequency == "" {
			return fmt.Errorf("band %s: channel %d has no frequency", b.Name, ch.ID)
		}
		if _, dup := seen[ch.ID]; dup {
			return fmt.Errorf("band %s: duplicate channel %d", b.Name, ch.ID)
		}
		seen[ch.ID] = struct{}{}
	}
	for _, t := range b.Tones {
		if t <= 0 {
			return fmt.Errorf("band %s: tone %.1f must be positive", b.Name, t)
		}
	}
	return nil
}

// ChannelCount returns the number of channels.
func (b Band) ChannelCount() int { return len(b.Channels) }

// ToneCount returns the number of tones.
func (b Band) ToneCount() int { return len(b.Tones) }

// ChannelIDs returns the channel identifiers in plan order.
func (b Band) ChannelIDs() []int {
	ids := make([]int, len(b.Channels))
	for i, ch := range b.Channels {
		ids[i] = ch.ID
	}
	return ids
}

// Frequency looks up the frequency of channel id.
func (b Band) Frequency(id int) (string, bool) {
	for _, ch := range b.Channels {
		if ch.ID == id {
			return ch.Frequency, true
		}
	}
	return "", false
}

// FrequencyMap returns a copy of the channel to frequency mapping.
func (b Band) FrequencyMap() map[int]string {
	m := make(map[int]string, len(b.Channels))
	for _, ch := range b.Channels {
		m[ch.ID] = ch.Frequency
	}
	return m
}

// Backup returns the fixed fallback parameters of the band: the lowest
// numbered channel, its frequency and the first listed tone.
func (b Band) Backup() (Channel, float64) {
	var low Channel
	for i, ch := range b.Channels {
		if i == 0 || ch.ID < low.ID {
			low = ch
		}
	}
	var tone float64
	if len(b.Tones) > 0 {
		tone = b.Tones[0]
	}
	return low, tone
}

// clone returns a deep copy so registry entries cannot be mutated by callers.
func (b Band) clone() Band {
	out := Band{Name: b.Name}
	out.Channels = append([]Channel(nil), b.Channels...)
	out.Tones = append([]float64(nil), b.Tones...)
	return out
}
