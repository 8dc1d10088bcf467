package game

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"5", 5, false},
		{" 12 ", 12, false},
		{"1000", 1000, false},
		{"2000", 2000, false}, // 截断由 GenerateTargets 负责
		{"", 0, true},
		{"   ", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"3.5", 0, true},
		{"1e2", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseCount(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidCount) {
				t.Errorf("ParseCount(%q): expected ErrInvalidCount, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCount(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestClampCount(t *testing.T) {
	if got := ClampCount(5, 10); got != 5 {
		t.Errorf("ClampCount(5, 10) = %d, want 5", got)
	}
	if got := ClampCount(50, 10); got != 10 {
		t.Errorf("ClampCount(50, 10) = %d, want 10", got)
	}
	if got := ClampCount(5000, 0); got != DefaultMaxTargets {
		t.Errorf("ClampCount(5000, 0) = %d, want %d", got, DefaultMaxTargets)
	}
}

func TestGenerateTargetsIDsAndBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	bounds := Bounds{Width: 300, Height: 200}

	targets, err := GenerateTargets(50, bounds, DefaultLayoutOptions(), rng)
	if err != nil {
		t.Fatalf("GenerateTargets error: %v", err)
	}
	if len(targets) != 50 {
		t.Fatalf("Expected 50 targets, got %d", len(targets))
	}

	seen := make(map[int]bool)
	for _, tg := range targets {
		if tg.ID < 1 || tg.ID > 50 || seen[tg.ID] {
			t.Errorf("Invalid or duplicate id %d", tg.ID)
		}
		seen[tg.ID] = true

		if tg.Left < 0 || tg.Left >= bounds.Width {
			t.Errorf("Target %d Left %.2f outside [0, %.0f)", tg.ID, tg.Left, bounds.Width)
		}
		if tg.Top < 0 || tg.Top >= bounds.Height {
			t.Errorf("Target %d Top %.2f outside [0, %.0f)", tg.ID, tg.Top, bounds.Height)
		}
		if tg.Selected {
			t.Errorf("Target %d should be unselected", tg.ID)
		}
	}
}

func TestGenerateTargetsNoShuffleKeepsOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	opts := LayoutOptions{MaxTargets: 100, Shuffle: false}

	targets, err := GenerateTargets(10, Bounds{Width: 100, Height: 100}, opts, rng)
	if err != nil {
		t.Fatalf("GenerateTargets error: %v", err)
	}
	for i, tg := range targets {
		if tg.ID != i+1 {
			t.Errorf("Position %d: expected id %d, got %d", i, i+1, tg.ID)
		}
	}
}

func TestGenerateTargetsShuffleChangesOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	targets, err := GenerateTargets(30, Bounds{Width: 100, Height: 100}, DefaultLayoutOptions(), rng)
	if err != nil {
		t.Fatalf("GenerateTargets error: %v", err)
	}
	inOrder := true
	for i, tg := range targets {
		if tg.ID != i+1 {
			inOrder = false
			break
		}
	}
	if inOrder {
		t.Error("Expected shuffled display order for 30 targets")
	}
}

func TestGenerateTargetsDeterministicWithSeed(t *testing.T) {
	bounds := Bounds{Width: 300, Height: 300}
	a, _ := GenerateTargets(20, bounds, DefaultLayoutOptions(), rand.New(rand.NewPCG(9, 9)))
	b, _ := GenerateTargets(20, bounds, DefaultLayoutOptions(), rand.New(rand.NewPCG(9, 9)))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Same seed should produce same layout, differ at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateTargetsClamp(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	targets, err := GenerateTargets(1500, Bounds{Width: 300, Height: 300}, DefaultLayoutOptions(), rng)
	if err != nil {
		t.Fatalf("GenerateTargets error: %v", err)
	}
	if len(targets) != DefaultMaxTargets {
		t.Errorf("Expected %d targets, got %d", DefaultMaxTargets, len(targets))
	}

	small, err := GenerateTargets(8, Bounds{Width: 300, Height: 300}, LayoutOptions{MaxTargets: 5}, rng)
	if err != nil {
		t.Fatalf("GenerateTargets error: %v", err)
	}
	if len(small) != 5 {
		t.Errorf("Expected custom max 5, got %d", len(small))
	}
}

func TestGenerateTargetsInvalidCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, count := range []int{0, -5} {
		targets, err := GenerateTargets(count, Bounds{Width: 300, Height: 300}, DefaultLayoutOptions(), rng)
		if !errors.Is(err, ErrInvalidCount) {
			t.Errorf("count %d: expected ErrInvalidCount, got %v", count, err)
		}
		if targets != nil {
			t.Errorf("count %d: expected nil targets", count)
		}
	}
}

func TestGenerateTargetsDegenerateBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	targets, err := GenerateTargets(5, Bounds{}, DefaultLayoutOptions(), rng)
	if err != nil {
		t.Fatalf("GenerateTargets error: %v", err)
	}
	for _, tg := range targets {
		if tg.Left != 0 || tg.Top != 0 {
			t.Errorf("Target %d: expected (0, 0) with empty bounds, got (%.2f, %.2f)", tg.ID, tg.Left, tg.Top)
		}
	}
}
