package game

import "testing"

func TestTickSourceAdvance(t *testing.T) {
	ts := NewTickSource(0.1)

	if got := ts.Advance(0.05, true); got != 0 {
		t.Errorf("Expected 0 ticks after 50ms, got %d", got)
	}
	if got := ts.Advance(0.06, true); got != 1 {
		t.Errorf("Expected 1 tick after 110ms, got %d", got)
	}
	if got := ts.Advance(0.25, true); got != 2 {
		t.Errorf("Expected 2 ticks for a long frame, got %d", got)
	}
}

func TestTickSourceStopsWhenNotRunning(t *testing.T) {
	ts := NewTickSource(0.1)
	ts.Advance(0.09, true)

	if got := ts.Advance(0.5, false); got != 0 {
		t.Errorf("Expected no ticks while stopped, got %d", got)
	}
	// 停止会清空累积量，重新启动后从零开始
	if got := ts.Advance(0.05, true); got != 0 {
		t.Errorf("Expected accumulator reset after stop, got %d ticks", got)
	}
}

func TestTickSourceDefaultInterval(t *testing.T) {
	ts := NewTickSource(0)
	if ts.Interval != DefaultTickInterval {
		t.Errorf("Expected default interval %v, got %v", DefaultTickInterval, ts.Interval)
	}
}

func TestTickSourceReset(t *testing.T) {
	ts := NewTickSource(1)
	ts.Advance(0.9, true)
	ts.Reset()
	if got := ts.Advance(0.5, true); got != 0 {
		t.Errorf("Expected 0 ticks after Reset, got %d", got)
	}
}
