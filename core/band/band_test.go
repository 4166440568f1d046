package band

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinBandsValid(t *testing.T) {
	for _, b := range Builtin() {
		require.NoError(t, b.Validate(), b.Name)
	}
	assert.Equal(t, 22, PMRSBand.ChannelCount())
	assert.Equal(t, 38, PMRSBand.ToneCount())
	assert.Equal(t, 16, PMR446Band.ChannelCount())
}

func TestFrequencyLookup(t *testing.T) {
	f, ok := PMRSBand.Frequency(8)
	require.True(t, ok)
	assert.Equal(t, "467.5625", f)
	_, ok = PMRSBand.Frequency(23)
	assert.False(t, ok)

	m := PMRSBand.FrequencyMap()
	assert.Len(t, m, 22)
	assert.Equal(t, "462.7250", m[22])
}

func TestBackup(t *testing.T) {
	ch, tone := PMRSBand.Backup()
	assert.Equal(t, 1, ch.ID)
	assert.Equal(t, "462.5625", ch.Frequency)
	assert.Equal(t, 67.0, tone)

	b := Band{Name: "odd", Channels: []Channel{{ID: 9, Frequency: "1"}, {ID: 3, Frequency: "2"}}, Tones: []float64{88.5, 67.0}}
	ch, tone = b.Backup()
	assert.Equal(t, 3, ch.ID)
	assert.Equal(t, 88.5, tone)
}

func TestValidateErrors(t *testing.T) {
	cases := map[string]Band{
		"no name":     {Channels: []Channel{{ID: 1, Frequency: "1"}}, Tones: []float64{67}},
		"no channels": {Name: "x", Tones: []float64{67}},
		"no tones":    {Name: "x", Channels: []Channel{{ID: 1, Frequency: "1"}}},
		"bad id":      {Name: "x", Channels: []Channel{{ID: 0, Frequency: "1"}}, Tones: []float64{67}},
		"no freq":     {Name: "x", Channels: []Channel{{ID: 1}}, Tones: []float64{67}},
		"duplicate":   {Name: "x", Channels: []Channel{{ID: 1, Frequency: "1"}, {ID: 1, Frequency: "2"}}, Tones: []float64{67}},
		"bad tone":    {Name: "x", Channels: []Channel{{ID: 1, Frequency: "1"}}, Tones: []float64{-1}},
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, b.Validate())
		})
	}
}

func TestRegistry(t *testing.T) {
	r := Default()
	assert.Equal(t, []Name{PMR446, PMRS}, r.Names())

	b, err := r.Get(PMRS)
	require.NoError(t, err)
	b.Channels[0].Frequency = "mutated"
	again, err := r.Get(PMRS)
	require.NoError(t, err)
	assert.Equal(t, "462.5625", again.Channels[0].Frequency)

	_, err = r.Get("cb27")
	assert.True(t, errors.Is(err, ErrUnknownBand))

	require.NoError(t, r.Register(Band{Name: "tiny", Channels: []Channel{{ID: 1, Frequency: "446.00625"}}, Tones: []float64{67}}))
	assert.Contains(t, r.Names(), Name("tiny"))
	assert.Error(t, r.Register(Band{Name: "broken"}))

	_, err = NewRegistry(Band{})
	assert.Error(t, err)
}

func TestDecodeYAML(t *testing.T) {
	data := `bands:
  - name: tiny
    channels:
      - id: 1
        frequency: "446.00625"
      - id: 2
        frequency: "446.01875"
    tones: [67.0, 71.9]
`
	bands, err := Decode(bytes.NewBufferString(data), "yaml")
	require.NoError(t, err)
	require.Len(t, bands, 1)
	assert.Equal(t, Name("tiny"), bands[0].Name)
	assert.Equal(t, []int{1, 2}, bands[0].ChannelIDs())
	assert.Equal(t, []float64{67.0, 71.9}, bands[0].Tones)
}

func TestLoadFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bands.json")
	data := `{"bands":[{"name":"one","channels":[{"id":5,"frequency":"146.520"}],"tones":[100.0]}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	bands, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, bands, 1)
	assert.Equal(t, 5, bands[0].Channels[0].ID)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(bytes.NewBufferString("{}"), "toml")
	assert.Error(t, err)
	_, err = Decode(bytes.NewBufferString(":"), "yaml")
	assert.Error(t, err)
	_, err = Decode(bytes.NewBufferString(`{"bands":[{"name":"x"}]}`), "json")
	assert.Error(t, err)
	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
