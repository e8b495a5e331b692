// Package measure records how long every stage of a plot run takes.
package measure

// DefaultMeasure keeps metrics in memory, in stage order.
type DefaultMeasure struct {
	Stages map[string]Metric
	order  []string
}

// NewDefaultMeasure creates an empty measure.
func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		Stages: make(map[string]Metric),
	}
}

func (m *DefaultMeasure) AddMetric(name string) Metric {
	if mt, ok := m.Stages[name]; ok {
		return mt
	}

	mt := &DefaultMetric{}
	m.Stages[name] = mt
	m.order = append(m.order, name)

	return mt
}

func (m *DefaultMeasure) GetMetric(name string) Metric {
	return m.Stages[name]
}

func (m *DefaultMeasure) Names() []string {
	return append([]string(nil), m.order...)
}

var _ Measure = (*DefaultMeasure)(nil)
