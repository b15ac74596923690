// Package plot exposes the reporting views of a Result as pure
// data-to-axis contracts. The package never renders anything itself; it
// pushes series into a ports.Axes, and any rendering library can be
// plugged in behind that interface. When no surface is supplied, a fresh
// in-memory MemAxes is created and returned for inspection.
package plot

import (
	"github.com/qubolab/qaoa-result/internal/domain"
	"github.com/qubolab/qaoa-result/internal/ports"
)

// ExpvalHistory draws the cost expectation value over optimization
// iterations as a line, x-axis indexed from iteration 0.
func ExpvalHistory(r *domain.Result, ax ports.Axes) ports.Axes {
	if ax == nil {
		ax = NewMemAxes()
	}

	history := r.ExpvalHistory()
	ax.Line("expval", indices(len(history)), history)
	ax.SetXLabel("Iteration")
	ax.SetYLabel("Expectation Value")
	return ax
}

// ShotsHistogram draws the full-domain histogram of the final circuit
// output as a bar chart: one bar per possible bitstring of the candidate
// width, in binary-counting order, including unobserved candidates at
// height zero.
func ShotsHistogram(r *domain.Result, ax ports.Axes) (ports.Axes, error) {
	if ax == nil {
		ax = NewMemAxes()
	}

	hist, err := r.ShotsHistogram()
	if err != nil {
		return nil, err
	}

	heights := make([]float64, len(hist.Heights))
	for i, h := range hist.Heights {
		heights[i] = float64(h)
	}
	ax.Bar(hist.Labels, heights)
	ax.SetXLabel("Solution")
	ax.SetYLabel("Number of Shots")
	return ax, nil
}

// Parameters draws the trained beta and gamma parameter vectors as two
// overlaid lines indexed by layer depth, with a legend distinguishing
// them.
func Parameters(r *domain.Result, ax ports.Axes) ports.Axes {
	if ax == nil {
		ax = NewMemAxes()
	}

	beta, gamma := r.Parameters()
	depth := indices(len(beta))
	ax.Line("beta", depth, beta)
	ax.Line("gamma", depth, gamma)
	ax.SetXLabel("Depth")
	ax.SetYLabel("Rotation")
	ax.Legend()
	return ax
}

func indices(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
