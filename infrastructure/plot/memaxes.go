package plot

import (
	"github.com/qubolab/qaoa-result/internal/ports"
)

// Compile-time verification that MemAxes implements the Axes interface.
var _ ports.Axes = (*MemAxes)(nil)

// Series is one recorded line series.
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// BarSeries is one recorded bar chart.
type BarSeries struct {
	Labels  []string
	Heights []float64
}

// MemAxes is a drawing surface that records everything drawn on it.
// It serves as the default surface when a caller supplies none, and as a
// test double for renderer integrations.
type MemAxes struct {
	Lines     []Series
	Bars      []BarSeries
	XLabel    string
	YLabel    string
	HasLegend bool
}

// NewMemAxes creates an empty recording surface.
func NewMemAxes() *MemAxes { return &MemAxes{} }

// Line implements the Axes interface by recording the series.
func (m *MemAxes) Line(label string, x, y []float64) {
	m.Lines = append(m.Lines, Series{Label: label, X: x, Y: y})
}

// Bar implements the Axes interface by recording the bar chart.
func (m *MemAxes) Bar(labels []string, heights []float64) {
	m.Bars = append(m.Bars, BarSeries{Labels: labels, Heights: heights})
}

// SetXLabel implements the Axes interface.
func (m *MemAxes) SetXLabel(label string) { m.XLabel = label }

// SetYLabel implements the Axes interface.
func (m *MemAxes) SetYLabel(label string) { m.YLabel = label }

// Legend implements the Axes interface.
func (m *MemAxes) Legend() { m.HasLegend = true }
