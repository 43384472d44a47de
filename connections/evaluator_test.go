package connections

import (
	"errors"
	"testing"

	"wireroute/config"
	"wireroute/core"
)

// fixedPaths returns a straight path of a preset length for each mode.
type fixedPaths struct {
	lengths map[core.RoutingMode]int64
}

func (f fixedPaths) Path(mode core.RoutingMode, startPin, endPin core.Pin) (core.RoutingPath, error) {
	length, ok := f.lengths[mode]
	if !ok {
		return core.RoutingPath{}, errors.New("mode unavailable")
	}
	seg := core.Segment{End: core.Position{X: length}}
	return core.RoutingPath{
		Segments:     []core.Segment{seg},
		TotalLength:  float64(length),
		Mode:         mode,
		QualityScore: 1_000_000 / (float64(length) + 1),
	}, nil
}

// collidesWith flags paths in the listed modes as colliding.
type collidesWith map[core.RoutingMode]bool

func (c collidesWith) CheckPathCollision(path core.RoutingPath, exclude map[string]bool) core.CollisionResult {
	if c[path.Mode] {
		return core.CollisionResult{HasCollision: true, CollidingComponentIDs: []string{"X"}}
	}
	return core.CollisionResult{}
}

func TestPathEvaluatorScore(t *testing.T) {
	e := NewPathEvaluator(nil, nil, config.EvaluationConfig{CollisionPenalty: 1_000_000, QualityWeight: 1000})
	path := core.RoutingPath{TotalLength: 999, QualityScore: 1000}

	if got := e.Score(path, core.CollisionResult{}); got != 999-1_000_000 {
		t.Errorf("Score() = %v, want %v", got, 999-1_000_000)
	}
	if got := e.Score(path, core.CollisionResult{HasCollision: true}); got != 999 {
		t.Errorf("Score() with collision = %v, want 999", got)
	}
}

func TestAnalyzeRoutingOptions(t *testing.T) {
	cfg := config.Default().Evaluation

	tests := []struct {
		name      string
		lengths   map[core.RoutingMode]int64
		collide   collidesWith
		wantModes []core.RoutingMode
		want      core.RoutingMode
	}{
		{
			name:      "shortest wins",
			lengths:   map[core.RoutingMode]int64{core.Manhattan: 30_000_000, core.Direct: 20_000_000, core.Angle45: 25_000_000},
			wantModes: core.RoutingModes,
			want:      core.Direct,
		},
		{
			name:      "collision penalty outweighs length",
			lengths:   map[core.RoutingMode]int64{core.Manhattan: 30_000_000, core.Direct: 29_500_000, core.Angle45: 31_000_000},
			collide:   collidesWith{core.Direct: true},
			wantModes: core.RoutingModes,
			want:      core.Manhattan,
		},
		{
			name:      "ties keep the earliest mode",
			lengths:   map[core.RoutingMode]int64{core.Manhattan: 10_000_000, core.Direct: 10_000_000, core.Angle45: 10_000_000},
			wantModes: core.RoutingModes,
			want:      core.Manhattan,
		},
		{
			name:      "failed modes are skipped",
			lengths:   map[core.RoutingMode]int64{core.Direct: 10_000_000, core.Angle45: 5_000_000},
			wantModes: []core.RoutingMode{core.Direct, core.Angle45},
			want:      core.Angle45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewPathEvaluator(fixedPaths{tt.lengths}, tt.collide, cfg)
			got := e.AnalyzeRoutingOptions(core.Pin{}, core.Pin{}, nil)

			if len(got.Options) != len(tt.wantModes) {
				t.Fatalf("got %d options, want %d", len(got.Options), len(tt.wantModes))
			}
			for i, mode := range tt.wantModes {
				if got.Options[i].Mode != mode {
					t.Errorf("Options[%d].Mode = %v, want %v", i, got.Options[i].Mode, mode)
				}
			}
			if got.Recommended != tt.want {
				t.Errorf("Recommended = %v, want %v", got.Recommended, tt.want)
			}
		})
	}
}

func TestRoutingAnalysisOption(t *testing.T) {
	e := NewPathEvaluator(fixedPaths{map[core.RoutingMode]int64{core.Direct: 7}}, collidesWith{}, config.Default().Evaluation)
	analysis := e.AnalyzeRoutingOptions(core.Pin{}, core.Pin{}, nil)

	opt, ok := analysis.Option(core.Direct)
	if !ok || opt.Path.TotalLength != 7 {
		t.Errorf("Option(Direct) = %+v, %v", opt, ok)
	}
	if _, ok := analysis.Option(core.Manhattan); ok {
		t.Error("Option(Manhattan) should be missing")
	}
}
