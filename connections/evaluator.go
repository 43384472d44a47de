// Package connections ties the routing engine and the boundary manager
// together: it ranks the routing modes for a pin pair and runs complete
// routing sessions over a sheet snapshot.
package connections

import (
	"wireroute/config"
	"wireroute/core"
)

// PathBuilder builds a path between two pins in a given mode.
type PathBuilder interface {
	Path(mode core.RoutingMode, startPin, endPin core.Pin) (core.RoutingPath, error)
}

// CollisionChecker tests a path against the known component outlines.
type CollisionChecker interface {
	CheckPathCollision(path core.RoutingPath, exclude map[string]bool) core.CollisionResult
}

// RoutingOption is one scored candidate route.
type RoutingOption struct {
	Mode      core.RoutingMode     `json:"mode"`
	Path      core.RoutingPath     `json:"path"`
	Collision core.CollisionResult `json:"collision"`
	Score     float64              `json:"score"`
}

// RoutingAnalysis is the outcome of comparing every routing mode. Lower scores win.
type RoutingAnalysis struct {
	Options     []RoutingOption  `json:"options"`
	Recommended core.RoutingMode `json:"recommended_mode"`
}

// Option returns the candidate for mode.
func (a RoutingAnalysis) Option(mode core.RoutingMode) (RoutingOption, bool) {
	for _, opt := range a.Options {
		if opt.Mode == mode {
			return opt, true
		}
	}
	return RoutingOption{}, false
}

// PathEvaluator scores candidate routes.
type PathEvaluator struct {
	paths      PathBuilder
	collisions CollisionChecker
	cfg        config.EvaluationConfig
}

// NewPathEvaluator creates an evaluator. Neither collaborator is modified by it.
func NewPathEvaluator(paths PathBuilder, collisions CollisionChecker, cfg config.EvaluationConfig) *PathEvaluator {
	return &PathEvaluator{
		paths:      paths,
		collisions: collisions,
		cfg:        cfg,
	}
}

// Score rates a path. Collisions dominate, then length, with quality as a bonus.
func (e *PathEvaluator) Score(path core.RoutingPath, collision core.CollisionResult) float64 {
	score := path.TotalLength - path.QualityScore*e.cfg.QualityWeight
	if collision.HasCollision {
		score += e.cfg.CollisionPenalty
	}
	return score
}

// AnalyzeRoutingOptions builds a path in every mode, checks each for collisions
// and recommends the lowest score. The earliest mode wins ties.
func (e *PathEvaluator) AnalyzeRoutingOptions(startPin, endPin core.Pin, exclude map[string]bool) RoutingAnalysis {
	var analysis RoutingAnalysis
	best := -1
	for _, mode := range core.RoutingModes {
		path, err := e.paths.Path(mode, startPin, endPin)
		if err != nil {
			continue
		}
		collision := e.collisions.CheckPathCollision(path, exclude)
		opt := RoutingOption{
			Mode:      mode,
			Path:      path,
			Collision: collision,
			Score:     e.Score(path, collision),
		}
		analysis.Options = append(analysis.Options, opt)
		if best < 0 || opt.Score < analysis.Options[best].Score {
			best = len(analysis.Options) - 1
		}
	}
	if best >= 0 {
		analysis.Recommended = analysis.Options[best].Mode
	}
	return analysis
}
