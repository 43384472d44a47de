package pathfinding

import (
	"math"
	"testing"

	"wireroute/config"
	"wireroute/core"
)

func pinAt(id string, x, y int64, o core.Orientation) core.Pin {
	return core.Pin{ID: id, Number: id, Position: core.Position{X: x, Y: y}, Orientation: o}
}

func TestComputeBreakPoint_Manhattan(t *testing.T) {
	tests := []struct {
		name  string
		start core.Position
		end   core.Position
		pref  core.AxisPreference
		want  core.Position
	}{
		{
			name:  "vertical preference",
			start: core.Position{X: 0, Y: 0},
			end:   core.Position{X: 10, Y: 3},
			pref:  core.Vertical,
			want:  core.Position{X: 0, Y: 3},
		},
		{
			name:  "horizontal preference",
			start: core.Position{X: 0, Y: 0},
			end:   core.Position{X: 3, Y: 10},
			pref:  core.Horizontal,
			want:  core.Position{X: 3, Y: 0},
		},
		{
			name:  "unbiased taller than wide goes vertical first",
			start: core.Position{X: 0, Y: 0},
			end:   core.Position{X: 3, Y: 10},
			pref:  core.Unbiased,
			want:  core.Position{X: 0, Y: 10},
		},
		{
			name:  "unbiased wider than tall goes horizontal first",
			start: core.Position{X: 0, Y: 0},
			end:   core.Position{X: 10, Y: 3},
			pref:  core.Unbiased,
			want:  core.Position{X: 10, Y: 0},
		},
		{
			name:  "unbiased equal magnitude goes horizontal first",
			start: core.Position{X: 0, Y: 0},
			end:   core.Position{X: -7, Y: 7},
			pref:  core.Unbiased,
			want:  core.Position{X: -7, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBreakPoint(tt.start, tt.end, core.Manhattan, tt.pref)
			if got != tt.want {
				t.Errorf("ComputeBreakPoint() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeBreakPoint_Direct(t *testing.T) {
	end := core.Position{X: 4, Y: 9}
	for _, pref := range []core.AxisPreference{core.Unbiased, core.Horizontal, core.Vertical} {
		if got := ComputeBreakPoint(core.Position{}, end, core.Direct, pref); got != end {
			t.Errorf("Direct with %v = %v, want %v", pref, got, end)
		}
	}
}

func TestComputeBreakPoint_Angle45(t *testing.T) {
	tests := []struct {
		name  string
		start core.Position
		end   core.Position
		pref  core.AxisPreference
		want  core.Position
	}{
		{
			name:  "wide unbiased: diagonal then horizontal",
			start: core.Position{X: 0, Y: 0},
			end:   core.Position{X: 10, Y: 4},
			pref:  core.Unbiased,
			want:  core.Position{X: 4, Y: 4},
		},
		{
			name:  "tall unbiased: diagonal then vertical",
			start: core.Position{X: 0, Y: 0},
			end:   core.Position{X: 4, Y: 10},
			pref:  core.Unbiased,
			want:  core.Position{X: 4, Y: 4},
		},
		{
			name:  "negative deltas follow the sign",
			start: core.Position{X: 10, Y: 10},
			end:   core.Position{X: 0, Y: 6},
			pref:  core.Unbiased,
			want:  core.Position{X: 6, Y: 6},
		},
		{
			name:  "honoured horizontal preference",
			start: core.Position{X: 0, Y: 0},
			end:   core.Position{X: -10, Y: 4},
			pref:  core.Horizontal,
			want:  core.Position{X: -4, Y: 4},
		},
		{
			name:  "horizontal preference would overshoot, falls back",
			start: core.Position{X: 0, Y: 0},
			end:   core.Position{X: 4, Y: 10},
			pref:  core.Horizontal,
			want:  core.Position{X: 4, Y: 4},
		},
		{
			name:  "vertical preference would overshoot, falls back",
			start: core.Position{X: 0, Y: 0},
			end:   core.Position{X: 10, Y: -4},
			pref:  core.Vertical,
			want:  core.Position{X: 4, Y: -4},
		},
		{
			name:  "vertical alignment degenerates to start",
			start: core.Position{X: 5, Y: 0},
			end:   core.Position{X: 5, Y: 10},
			pref:  core.Horizontal,
			want:  core.Position{X: 5, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBreakPoint(tt.start, tt.end, core.Angle45, tt.pref)
			if got != tt.want {
				t.Errorf("ComputeBreakPoint() = %v, want %v", got, tt.want)
			}
			if !consistentAngle45(tt.start, tt.end, got) {
				t.Errorf("break point %v is not a valid 45 degree bend", got)
			}
		})
	}
}

func TestPreference(t *testing.T) {
	engine := NewRoutingEngine(config.Default())
	grid := core.GridSize

	tests := []struct {
		name       string
		start, end core.Pin
		want       core.AxisPreference
	}{
		{
			name:  "rows closer than one grid",
			start: pinAt("a", 0, 0, core.North),
			end:   pinAt("b", 50*grid, grid-1, core.South),
			want:  core.Horizontal,
		},
		{
			name:  "columns closer than one grid",
			start: pinAt("a", 0, 0, core.East),
			end:   pinAt("b", grid-1, 50*grid, core.West),
			want:  core.Vertical,
		},
		{
			name:  "both facing east/west",
			start: pinAt("a", 0, 0, core.East),
			end:   pinAt("b", 10*grid, 10*grid, core.West),
			want:  core.Vertical,
		},
		{
			name:  "both facing north/south",
			start: pinAt("a", 0, 0, core.North),
			end:   pinAt("b", 10*grid, 10*grid, core.North),
			want:  core.Horizontal,
		},
		{
			name:  "mixed orientation",
			start: pinAt("a", 0, 0, core.East),
			end:   pinAt("b", 10*grid, 10*grid, core.South),
			want:  core.Unbiased,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.Preference(tt.start, tt.end); got != tt.want {
				t.Errorf("Preference() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestManhattanPath_ScenarioA(t *testing.T) {
	engine := NewRoutingEngine(config.Default())
	start := pinAt("a", 0, 0, core.East)
	end := pinAt("b", 10_000_000, 0, core.West)

	path := engine.ManhattanPath(start, end)

	if len(path.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d: %v", len(path.Segments), path.Segments)
	}
	if path.TotalLength != 10_000_000 {
		t.Errorf("TotalLength = %v, want 10000000", path.TotalLength)
	}
	if path.Bends() != 0 {
		t.Errorf("Bends() = %d, want 0", path.Bends())
	}
}

func TestManhattanPath_ScenarioB(t *testing.T) {
	start := core.Position{X: 0, Y: 0}
	end := core.Position{X: 10_000_000, Y: 10_000_000}

	bend := ComputeBreakPoint(start, end, core.Manhattan, core.Unbiased)
	if bend != (core.Position{X: 10_000_000, Y: 0}) {
		t.Fatalf("break point = %v, want horizontal-first (10000000, 0)", bend)
	}

	path := NewPath(core.Pin{}, core.Pin{}, core.Manhattan, start, bend, end)
	if len(path.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(path.Segments))
	}
	if path.TotalLength != 20_000_000 {
		t.Errorf("TotalLength = %v, want 20000000", path.TotalLength)
	}
}

func TestManhattanPath_LengthIsL1(t *testing.T) {
	engine := NewRoutingEngine(config.Default())
	orientations := []core.Orientation{core.East, core.North, core.West, core.South}
	ends := []core.Position{
		{X: 3_000_000, Y: 7_000_000},
		{X: -9_000_000, Y: 2_000_000},
		{X: 12_700_000, Y: -12_700_000},
		{X: 500_000, Y: 30_000_000},
		{X: 0, Y: 0},
	}

	for _, o1 := range orientations {
		for _, o2 := range orientations {
			for _, e := range ends {
				start := pinAt("s", 0, 0, o1)
				end := pinAt("e", e.X, e.Y, o2)
				path := engine.ManhattanPath(start, end)

				want := float64(start.Position.ManhattanDistance(end.Position))
				if path.TotalLength != want {
					t.Errorf("%v->%v to %v: length %v, want %v", o1, o2, e, path.TotalLength, want)
				}
				if !path.IsContiguous() {
					t.Errorf("%v->%v to %v: path not contiguous", o1, o2, e)
				}
				if !path.IsEmpty() {
					if path.Segments[0].Start != start.Position {
						t.Errorf("path does not start at start pin")
					}
					if path.Segments[len(path.Segments)-1].End != end.Position {
						t.Errorf("path does not end at end pin")
					}
				}
				for _, seg := range path.Segments {
					if !seg.IsHorizontal() && !seg.IsVertical() {
						t.Errorf("segment %v is not axis aligned", seg)
					}
				}
			}
		}
	}
}

func TestManhattanPath_CoincidentPins(t *testing.T) {
	engine := NewRoutingEngine(config.Default())
	p := pinAt("a", 1, 1, core.East)
	path := engine.ManhattanPath(p, p)
	if !path.IsEmpty() || path.TotalLength != 0 {
		t.Errorf("coincident pins gave %+v", path)
	}
	if path.QualityScore != QualityScore(0) {
		t.Errorf("QualityScore = %v", path.QualityScore)
	}
}

func TestQualityScoreDecreasing(t *testing.T) {
	prev := QualityScore(0)
	if prev != 1_000_000 {
		t.Errorf("QualityScore(0) = %v, want 1000000", prev)
	}
	for _, length := range []float64{0.5, 1, 10, 1e3, 1e6, 1e9, 1e12} {
		got := QualityScore(length)
		if !(got < prev) {
			t.Errorf("QualityScore(%v) = %v, not below %v", length, got, prev)
		}
		prev = got
	}
}

func TestDirectAndAngle45Paths(t *testing.T) {
	engine := NewRoutingEngine(config.Default())
	start := pinAt("a", 0, 0, core.East)
	end := pinAt("b", 30_000_000, 40_000_000, core.South)

	direct := engine.DirectPath(start, end)
	if len(direct.Segments) != 1 || direct.TotalLength != 50_000_000 {
		t.Errorf("DirectPath = %+v", direct)
	}
	if direct.Mode != core.Direct {
		t.Errorf("DirectPath mode = %v", direct.Mode)
	}

	diag := engine.Angle45Path(start, end)
	if len(diag.Segments) != 2 {
		t.Fatalf("Angle45Path segments = %v", diag.Segments)
	}
	first := diag.Segments[0]
	dx := first.End.X - first.Start.X
	dy := first.End.Y - first.Start.Y
	if dx != dy || dx != 30_000_000 {
		t.Errorf("first leg is not a 45 degree diagonal: %v", first)
	}
	want := 30_000_000*math.Sqrt2 + 10_000_000
	if math.Abs(diag.TotalLength-want) > 1e-3 {
		t.Errorf("Angle45 length = %v, want %v", diag.TotalLength, want)
	}

	for _, mode := range core.RoutingModes {
		path, err := engine.Path(mode, start, end)
		if err != nil || path.Mode != mode {
			t.Errorf("Path(%v) = %v, %v", mode, path.Mode, err)
		}
	}
	if _, err := engine.Path(core.RoutingMode(42), start, end); err == nil {
		t.Error("expected error for unknown mode")
	}
}
