package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/pmrs/core/band"
	"github.com/kilianp07/pmrs/core/schedule"
)

// PromRecorder records generation runs in Prometheus metrics. It implements
// schedule.Observer.
type PromRecorder struct {
	reg         prometheus.Gatherer
	generations *prometheus.CounterVec
	failures    *prometheus.CounterVec
	days        prometheus.Counter
	duration    prometheus.Histogram
	channels    *prometheus.GaugeVec
	entropy     *prometheus.GaugeVec
	stddev      *prometheus.GaugeVec
}

var _ schedule.Observer = (*PromRecorder)(nil)

// NewPromRecorder registers generation metrics on a private registry.
func NewPromRecorder() (*PromRecorder, error) {
	return NewPromRecorderWithRegistry(prometheus.NewRegistry())
}

// NewPromRecorderWithRegistry registers metrics on the provided registry. A nil
// registry is replaced by a new one. If the collectors are already registered, the existing ones are reused.
func NewPromRecorderWithRegistry(reg *prometheus.Registry) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	generations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pmrs_generations_total",
		Help: "Total number of generated schedules",
	}, []string{"band"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pmrs_generation_errors_total",
		Help: "Total number of rejected generation requests",
	}, []string{"kind"})
	days := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pmrs_schedule_days_total",
		Help: "Total number of scheduled days",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pmrs_generation_duration_seconds",
		Help:    "Time spent generating a schedule",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
	})
	channels := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pmrs_distinct_channels",
		Help: "Distinct channels used by the last schedule",
	}, []string{"band"})
	entropy := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pmrs_channel_entropy",
		Help: "Shannon entropy in nats of the channel usage of the last schedule",
	}, []string{"band"})
	stddev := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pmrs_channel_usage_stddev",
		Help: "Standard deviation of per channel usage of the last schedule",
	}, []string{"band"})

	var err error
	if generations, err = register(reg, generations); err != nil {
		return nil, err
	}
	if failures, err = register(reg, failures); err != nil {
		return nil, err
	}
	if days, err = register(reg, days); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if channels, err = register(reg, channels); err != nil {
		return nil, err
	}
	if entropy, err = register(reg, entropy); err != nil {
		return nil, err
	}
	if stddev, err = register(reg, stddev); err != nil {
		return nil, err
	}
	return &PromRecorder{
		reg:         reg,
		generations: generations,
		failures:    failures,
		days:        days,
		duration:    duration,
		channels:    channels,
		entropy:     entropy,
		stddev:      stddev,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveGeneration records a successful run.
func (r *PromRecorder) ObserveGeneration(name band.Name, elapsed time.Duration, stats schedule.Stats) {
	r.generations.WithLabelValues(string(name)).Inc()
	r.days.Add(float64(stats.Days))
	r.duration.Observe(elapsed.Seconds())
	r.channels.WithLabelValues(string(name)).Set(float64(stats.DistinctChannels))
	r.entropy.WithLabelValues(string(name)).Set(stats.ChannelEntropy)
	r.stddev.WithLabelValues(string(name)).Set(stats.ChannelUsageStdDev)
}

// ObserveError records a rejected request.
func (r *PromRecorder) ObserveError(kind string) {
	r.failures.WithLabelValues(kind).Inc()
}

// WriteTextfile writes the metrics in the node exporter textfile format.
func (r *PromRecorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
