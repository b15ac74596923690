package ports

// Axes is the data-to-surface contract for the reporting views. It mirrors
// the small subset of a plotting surface the views need; any rendering
// library can be plugged in behind it, and the views never depend on one.
type Axes interface {
	// Line draws an ordered series. The label identifies the series in a
	// legend; x and y have equal length.
	Line(label string, x, y []float64)

	// Bar draws one bar per label with the given heights.
	// Labels and heights have equal length.
	Bar(labels []string, heights []float64)

	// SetXLabel sets the x-axis caption.
	SetXLabel(label string)

	// SetYLabel sets the y-axis caption.
	SetYLabel(label string)

	// Legend enables a legend distinguishing the drawn series.
	Legend()
}
