package schedule

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats summarises the channel and tone usage of a schedule. Memories counts
// radio memories: every window, both quick-connects and the backup channel.
// ChannelEntropy is the Shannon entropy (nats) of the channel usage.
type Stats struct {
	Days               int     `json:"days"`
	Windows            int     `json:"windows"`
	DistinctChannels   int     `json:"distinct_channels"`
	DistinctTones      int     `json:"distinct_tones"`
	Memories           int     `json:"memories"`
	ChannelUsageMean   float64 `json:"channel_usage_mean"`
	ChannelUsageStdDev float64 `json:"channel_usage_stddev"`
	ChannelEntropy     float64 `json:"channel_entropy"`
}

// Stats computes the usage summary.
func (s Schedule) Stats() Stats {
	chCount := map[int]int{}
	toneCount := map[float64]int{}
	for _, d := range s {
		for _, w := range d.Windows() {
			chCount[w.Channel]++
			toneCount[w.CTCSS]++
		}
	}
	st := Stats{
		Days:             len(s),
		Windows:          len(s) * len(Periods),
		DistinctChannels: len(chCount),
		DistinctTones:    len(toneCount),
		Memories:         len(s)*len(Periods) + 3,
	}
	if len(chCount) == 0 {
		return st
	}

	ids := make([]int, 0, len(chCount))
	for id := range chCount {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	usage := make([]float64, len(ids))
	probs := make([]float64, len(ids))
	for i, id := range ids {
		usage[i] = float64(chCount[id])
		probs[i] = usage[i] / float64(st.Windows)
	}
	if len(usage) > 1 {
		st.ChannelUsageMean, st.ChannelUsageStdDev = stat.MeanStdDev(usage, nil)
	} else {
		st.ChannelUsageMean = usage[0]
	}
	st.ChannelEntropy = stat.Entropy(probs)
	return st
}
