// Package metrics collects lightweight per-frame observations for the stats
// panel and the load command summary.
package metrics

// Metric is a named scalar observer.
type Metric interface {
	Name() string
	Observe(v float64)
	Value() float64
	Reset()
}

// Window keeps the most recent observations and reports their mean. Series
// feeds sparkline charts directly.
type Window struct {
	name string
	cap  int
	vals []float64
}

// NewWindow builds a rolling window over the last capacity observations.
func NewWindow(name string, capacity int) *Window {
	if capacity < 1 {
		capacity = 1
	}
	return &Window{name: name, cap: capacity}
}

func (w *Window) Name() string { return w.name }

func (w *Window) Observe(v float64) {
	w.vals = append(w.vals, v)
	if len(w.vals) > w.cap {
		w.vals = w.vals[1:]
	}
}

// Value is the mean of the window, 0 when empty.
func (w *Window) Value() float64 {
	if len(w.vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range w.vals {
		sum += v
	}
	return sum / float64(len(w.vals))
}

// Last returns the most recent observation, 0 when empty.
func (w *Window) Last() float64 {
	if len(w.vals) == 0 {
		return 0
	}
	return w.vals[len(w.vals)-1]
}

// Series exposes the window contents for charting.
func (w *Window) Series() []float64 { return w.vals }

func (w *Window) Reset() { w.vals = w.vals[:0] }

// Counter is a monotonic total.
type Counter struct {
	name  string
	total float64
}

// NewCounter builds a named running total.
func NewCounter(name string) *Counter { return &Counter{name: name} }

func (c *Counter) Name() string      { return c.name }
func (c *Counter) Observe(v float64) { c.total += v }
func (c *Counter) Value() float64    { return c.total }
func (c *Counter) Reset()            { c.total = 0 }
