package geometry

import "testing"

func TestSnapToGrid(t *testing.T) {
	const grid = 1_270_000
	tests := []struct {
		in, want int64
	}{
		{0, 0},
		{634_999, 0},
		{635_000, 1_270_000},
		{1_900_000, 1_270_000},
		{-634_999, 0},
		{-635_000, -1_270_000},
	}
	for _, tt := range tests {
		if got := SnapToGrid(tt.in, grid); got != tt.want {
			t.Errorf("SnapToGrid(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := SnapToGrid(7, 0); got != 7 {
		t.Errorf("SnapToGrid with zero grid = %d, want 7", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp inside = %d", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp below = %d", got)
	}
	if got := Clamp(50, 10, 0); got != 10 {
		t.Errorf("Clamp with swapped bounds = %d", got)
	}
}

func TestDistances(t *testing.T) {
	if got := Euclidean(0, 0, 3, 4); got != 5 {
		t.Errorf("Euclidean = %v, want 5", got)
	}
	if got := ManhattanDistance(0, 0, -3, 4); got != 7 {
		t.Errorf("ManhattanDistance = %v, want 7", got)
	}
	if got := Sum([]float64{1.5, 2.5}); got != 4 {
		t.Errorf("Sum = %v, want 4", got)
	}
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %v, want 0", got)
	}
}

func TestSign(t *testing.T) {
	if Sign(-9) != -1 || Sign(0) != 0 || Sign(4) != 1 {
		t.Error("Sign returned unexpected values")
	}
}
