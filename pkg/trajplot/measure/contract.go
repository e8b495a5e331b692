package measure

import "time"

// Measure collects one metric per stage of a plot run.
type Measure interface {
	// AddMetric returns the metric of the named stage, creating it on first use.
	AddMetric(name string) Metric
	// GetMetric returns the metric of the named stage or nil.
	GetMetric(name string) Metric
	// Names returns the stage names in the order they were first added.
	Names() []string
}

// Metric accumulates the durations of one stage.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AVGDuration() time.Duration
	GetTotalDuration() time.Duration
	Count() int64
}
