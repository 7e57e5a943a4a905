package metrics

import "testing"

func TestWindowMean(t *testing.T) {
	w := NewWindow("frame_ms", 3)
	if w.Value() != 0 {
		t.Errorf("empty window should read 0, got %f", w.Value())
	}

	w.Observe(10)
	w.Observe(20)
	if w.Value() != 15 {
		t.Errorf("expected mean 15, got %f", w.Value())
	}
}

func TestWindowEvicts(t *testing.T) {
	w := NewWindow("frame_ms", 2)
	w.Observe(10)
	w.Observe(20)
	w.Observe(30)

	if w.Value() != 25 {
		t.Errorf("expected mean of last two, got %f", w.Value())
	}
	if w.Last() != 30 {
		t.Errorf("expected last 30, got %f", w.Last())
	}
	if len(w.Series()) != 2 {
		t.Errorf("expected series length 2, got %d", len(w.Series()))
	}
}

func TestWindowReset(t *testing.T) {
	w := NewWindow("frame_ms", 4)
	w.Observe(5)
	w.Reset()
	if w.Value() != 0 || w.Last() != 0 {
		t.Error("reset window should read 0")
	}
}

func TestWindowCapacityClamp(t *testing.T) {
	w := NewWindow("x", 0)
	w.Observe(1)
	w.Observe(2)
	if w.Value() != 2 {
		t.Errorf("capacity should clamp to 1, got mean %f", w.Value())
	}
}

func TestCounter(t *testing.T) {
	c := NewCounter("frames")
	c.Observe(1)
	c.Observe(1)
	c.Observe(3)
	if c.Value() != 5 {
		t.Errorf("expected total 5, got %f", c.Value())
	}
	c.Reset()
	if c.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", c.Value())
	}
	if c.Name() != "frames" {
		t.Errorf("unexpected name %s", c.Name())
	}
}
