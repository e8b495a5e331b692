package measure

import (
	"time"
)

type DefaultMetric struct {
	elapsed time.Duration
	total   int64
}

func (mt *DefaultMetric) AddDuration(elapsed time.Duration) {
	mt.total++
	mt.elapsed += elapsed
}

func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	return mt.elapsed
}

func (mt *DefaultMetric) Count() int64 {
	return mt.total
}

func (mt *DefaultMetric) AVGDuration() time.Duration {
	if mt.total == 0 {
		return time.Duration(0)
	}

	return Round(time.Duration(float64(mt.elapsed) / float64(mt.total)))
}

// Round drops the precision a reader does not need from d.
func Round(d time.Duration) time.Duration {
	switch {
	case d > time.Hour:
		d = d.Round(time.Minute)
	case d > time.Minute:
		d = d.Round(time.Second)
	case d > time.Second:
		d = d.Round(time.Millisecond)
	case d > time.Millisecond:
		d = d.Round(time.Microsecond)
	}

	return d
}
