package schedule

import (
	"errors"
	"math/rand"
	"time"

	"github.com/kilianp07/pmrs/core/band"
	"github.com/kilianp07/pmrs/core/logger"
	"github.com/kilianp07/pmrs/internal/recent"
)

const (
	// ChannelLookback is how many recent channel placements are held back.
	ChannelLookback = 3
	// ToneLookback is how many recent tone placements are held back.
	ToneLookback = 5
	// HistorySize bounds the channel and tone histories.
	HistorySize = 10
)

// Request holds the inputs of one generation run.
type Request struct {
	User1 string
	User2 string
	Days  int
	// Start labels day 1. The zero value means today.
	Start time.Time
	// Band selects the profile. Empty means band.DefaultName.
	Band band.Name
}

// Observer is notified about finished generation runs.
type Observer interface {
	ObserveGeneration(name band.Name, elapsed time.Duration, stats Stats)
	ObserveError(kind string)
}

// Generator builds schedules from a band registry.
type Generator struct {
	bands *band.Registry
	now   func() time.Time
	log   logger.Logger
	obs   Observer
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock used to resolve an empty start date.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithObserver sets the observer notified after each run.
func WithObserver(o Observer) Option {
	return func(g *Generator) { g.obs = o }
}

// New creates a Generator. A nil registry uses the builtin bands.
func New(bands *band.Registry, opts ...Option) *Generator {
	if bands == nil {
		bands = band.Default()
	}
	g := &Generator{bands: bands, now: time.Now, log: logger.Nop{}}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate builds a plan with the builtin bands.
func Generate(req Request, opts ...Option) (*Plan, error) {
	return New(nil, opts...).Generate(req)
}

// Generate validates req and builds the plan. Every input is checked before
// the random stream is created, so a failed call produces no partial result.
func (g *Generator) Generate(req Request) (*Plan, error) {
	began := g.now()
	plan, err := g.generate(req, began)
	if err != nil {
		if g.obs != nil {
			g.obs.ObserveError(ErrorKind(err))
		}
		g.log.Warnf("schedule generation failed: %v", err)
		return nil, err
	}
	stats := plan.Schedule.Stats()
	if g.obs != nil {
		g.obs.ObserveGeneration(plan.Meta.Band, g.now().Sub(began), stats)
	}
	g.log.Debugw("schedule generated", map[string]any{
		"band":              string(plan.Meta.Band),
		"seed":              plan.Meta.Seed,
		"days":              plan.Meta.CycleDays,
		"distinct_channels": stats.DistinctChannels,
		"distinct_tones":    stats.DistinctTones,
		"channel_entropy":   stats.ChannelEntropy,
		"channel_stddev":    stats.ChannelUsageStdDev,
	})
	return plan, nil
}

func (g *Generator) generate(req Request, now time.Time) (*Plan, error) {
	d1, err := ParseDate(req.User1)
	if err != nil {
		return nil, &InvalidInputError{Field: "user1_dob", Value: req.User1, Err: err}
	}
	d2, err := ParseDate(req.User2)
	if err != nil {
		return nil, &InvalidInputError{Field: "user2_dob", Value: req.User2, Err: err}
	}
	if req.Days < 1 {
		return nil, &InvalidRangeError{Field: "days", Value: req.Days}
	}
	name := req.Band
	if name == "" {
		name = band.DefaultName
	}
	bd, err := g.bands.Get(name)
	if err != nil {
		if errors.Is(err, band.ErrUnknownBand) {
			return nil, &UnsupportedBandError{Name: name, Err: err}
		}
		return nil, err
	}
	start := req.Start
	if start.IsZero() {
		start = now
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	seed := Seed(d1, d2)
	b := newBuilder(rand.New(rand.NewSource(seed)), bd)
	sched := make(Schedule, req.Days)
	for i := range sched {
		sched[i] = b.day(i + 1)
	}

	backupCh, backupTone := bd.Backup()
	return &Plan{
		Schedule: sched,
		Meta: Meta{
			QuickConnects: quickConnects(d1, d2, bd),
			Seed:          seed,
			CycleDays:     req.Days,
			Band:          bd.Name,
		},
		Backup: Backup{Channel: backupCh.ID, Frequency: backupCh.Frequency, CTCSS: backupTone},
		Start:  start,
	}, nil
}

// builder carries the anti-repetition state across the days of one run.
type builder struct {
	rng      *rand.Rand
	channels []int
	freqs    map[int]string
	tones    []float64
	times    [len(Periods)]*timeTracker
	chHist   *recent.History[int]
	toneHist *recent.History[float64]
}

func newBuilder(rng *rand.Rand, bd band.Band) *builder {
	b := &builder{
		rng:      rng,
		channels: bd.ChannelIDs(),
		freqs:    bd.FrequencyMap(),
		tones:    append([]float64(nil), bd.Tones...),
		chHist:   recent.New[int](HistorySize),
		toneHist: recent.New[float64](HistorySize),
	}
	for _, p := range Periods {
		b.times[p] = newTimeTracker(PeriodHours[p])
	}
	return b
}

// day draws one day. The stream is consumed in a fixed order: the three
// start times, then the three channels, then the three tones.
func (b *builder) day(index int) Day {
	var hours, minutes, channels [len(Periods)]int
	var tones [len(Periods)]float64
	for _, p := range Periods {
		hours[p], minutes[p] = b.times[p].draw(b.rng)
	}
	for _, p := range Periods {
		candidates := b.chHist.Exclude(b.channels, ChannelLookback)
		channels[p] = candidates[b.rng.Intn(len(candidates))]
		b.chHist.Push(channels[p])
	}
	for _, p := range Periods {
		candidates := b.toneHist.Exclude(b.tones, ToneLookback)
		tones[p] = candidates[b.rng.Intn(len(candidates))]
		b.toneHist.Push(tones[p])
	}

	d := Day{Index: index}
	for _, p := range Periods {
		d.set(p, Window{
			Time:      FormatWindow(hours[p], minutes[p]),
			Channel:   channels[p],
			Frequency: b.freqs[channels[p]],
			CTCSS:     tones[p],
			Hour:      hours[p],
			Minute:    minutes[p],
		})
	}
	return d
}
