package utils

import "testing"

func TestPointInCircle(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"圆心", 25, 25, true},
		{"边界上", 50, 25, true},
		{"圆内", 30, 40, true},
		{"外接正方形角落", 1, 1, false},
		{"圆外", 51, 25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInCircle(tt.px, tt.py, 25, 25, 25); got != tt.want {
				t.Errorf("PointInCircle(%.0f, %.0f) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}
