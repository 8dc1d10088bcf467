package game

import "testing"

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		ticks int
		want  string
	}{
		{0, "0.0s"},
		{1, "0.1s"},
		{12, "1.2s"},
		{100, "10.0s"},
		{1234, "123.4s"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.ticks); got != tt.want {
			t.Errorf("FormatElapsed(%d) = %q, want %q", tt.ticks, got, tt.want)
		}
	}
}

func TestStatusAndCommandLabels(t *testing.T) {
	tests := []struct {
		status  Status
		label   string
		command string
	}{
		{StatusNotStarted, "LET'S PLAY", "Play"},
		{StatusInProgress, "KEEP GOING", "Restart"},
		{StatusCleared, "ALL CLEARED!", "Restart"},
		{StatusFailed, "GAME OVER", "Restart"},
	}
	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.label {
			t.Errorf("StatusLabel(%v) = %q, want %q", tt.status, got, tt.label)
		}
		if got := CommandLabel(tt.status); got != tt.command {
			t.Errorf("CommandLabel(%v) = %q, want %q", tt.status, got, tt.command)
		}
	}
}

func TestTargetStyleDiameter(t *testing.T) {
	if d := TargetStyle(1, false, 5).Diameter; d != MaxTargetDiameter {
		t.Errorf("Small count: expected %v, got %v", MaxTargetDiameter, d)
	}
	if d := TargetStyle(1, false, 20).Diameter; d != MaxTargetDiameter {
		t.Errorf("Count 20: expected %v, got %v", MaxTargetDiameter, d)
	}

	d40 := TargetStyle(1, false, 40).Diameter
	if d40 != MaxTargetDiameter-8 {
		t.Errorf("Count 40: expected %v, got %v", MaxTargetDiameter-8, d40)
	}
	if d := TargetStyle(1, false, 1000).Diameter; d < MinTargetDiameter || d >= d40 {
		t.Errorf("Count 1000: expected [%v, %v), got %v", MinTargetDiameter, d40, d)
	}
}

func TestTargetStyleFill(t *testing.T) {
	if f := TargetStyle(3, true, 10).Fill; f != SelectedFill {
		t.Errorf("Selected fill: got %v, want %v", f, SelectedFill)
	}
	if f := TargetStyle(1, false, 10).Fill; f != UnselectedFill {
		t.Errorf("First target fill: got %v, want %v", f, UnselectedFill)
	}

	last := TargetStyle(10, false, 10).Fill
	if last.G >= UnselectedFill.G {
		t.Errorf("Higher ids should be darker, got %v", last)
	}
	if TargetStyle(10, false, 10).Label != TargetLabel {
		t.Error("Label color should be constant")
	}
}
