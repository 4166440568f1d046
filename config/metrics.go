package config

// MetricsConfig configures generation metrics.
type MetricsConfig struct {
	// Textfile is the path of a node exporter textfile. Empty disables it.
	Textfile string `json:"textfile"`
}
