package schedule

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsEmpty(t *testing.T) {
	st := Schedule{}.Stats()
	assert.Equal(t, 0, st.Windows)
	assert.Equal(t, 3, st.Memories)
	assert.Zero(t, st.ChannelEntropy)
}

func TestStatsCounts(t *testing.T) {
	w := func(ch int, tone float64) Window { return Window{Channel: ch, CTCSS: tone} }
	s := Schedule{
		{Index: 1, Morning: w(1, 67.0), Afternoon: w(2, 71.9), Evening: w(3, 74.4)},
		{Index: 2, Morning: w(4, 67.0), Afternoon: w(1, 77.0), Evening: w(2, 79.7)},
	}
	st := s.Stats()
	assert.Equal(t, 2, st.Days)
	assert.Equal(t, 6, st.Windows)
	assert.Equal(t, 4, st.DistinctChannels)
	assert.Equal(t, 5, st.DistinctTones)
	assert.Equal(t, 9, st.Memories)
	// usage counts are 2, 2, 1, 1
	assert.InDelta(t, 1.5, st.ChannelUsageMean, 1e-9)
	assert.InDelta(t, math.Sqrt(1.0/3.0), st.ChannelUsageStdDev, 1e-9)
	want := -(2*(2.0/6)*math.Log(2.0/6) + 2*(1.0/6)*math.Log(1.0/6))
	assert.InDelta(t, want, st.ChannelEntropy, 1e-9)
}

func TestStatsSingleChannel(t *testing.T) {
	w := Window{Channel: 7, CTCSS: 67.0}
	st := Schedule{{Index: 1, Morning: w, Afternoon: w, Evening: w}}.Stats()
	assert.Equal(t, 1, st.DistinctChannels)
	assert.InDelta(t, 3.0, st.ChannelUsageMean, 1e-9)
	assert.Zero(t, st.ChannelUsageStdDev)
	assert.InDelta(t, 0, st.ChannelEntropy, 1e-12)
}
