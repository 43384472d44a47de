// Package pathfinding computes wire routes between schematic pins.
//
// The RoutingEngine is stateless between calls: every method is a pure
// function of its arguments and the engine configuration, so a single
// engine may be shared by concurrent callers working on separate snapshots.
package pathfinding

import (
	"fmt"
	"io"
	"log/slog"

	"wireroute/config"
	"wireroute/core"
)

// qualityNumerator scales the quality score so typical paths score above 1.
const qualityNumerator = 1_000_000.0

// RoutingEngine builds candidate paths between pins.
type RoutingEngine struct {
	cfg    config.Config
	logger *slog.Logger
}

// EngineOption customises a RoutingEngine.
type EngineOption func(*RoutingEngine)

// WithLogger sets the logger used for routing decisions.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *RoutingEngine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewRoutingEngine creates an engine with the given configuration.
func NewRoutingEngine(cfg config.Config, opts ...EngineOption) *RoutingEngine {
	e := &RoutingEngine{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine configuration.
func (e *RoutingEngine) Config() config.Config {
	return e.cfg
}

// QualityScore ranks a path by its length; shorter is better.
func QualityScore(totalLength float64) float64 {
	return qualityNumerator / (totalLength + 1.0)
}

// Preference decides which axis an L-shaped route between two pins should take first.
func (e *RoutingEngine) Preference(startPin, endPin core.Pin) core.AxisPreference {
	delta := endPin.Position.Sub(startPin.Position)
	switch {
	case abs(delta.Y) < e.cfg.GridSize:
		return core.Horizontal
	case abs(delta.X) < e.cfg.GridSize:
		return core.Vertical
	case startPin.Orientation.IsHorizontal() && endPin.Orientation.IsHorizontal():
		// Leave vertically so the last leg enters the pins from the side they face.
		return core.Vertical
	case startPin.Orientation.IsVertical() && endPin.Orientation.IsVertical():
		return core.Horizontal
	default:
		return core.Unbiased
	}
}

// ManhattanPath builds a two-segment L-shaped path between the pins.
func (e *RoutingEngine) ManhattanPath(startPin, endPin core.Pin) core.RoutingPath {
	return e.twoLegPath(startPin, endPin, core.Manhattan, e.Preference(startPin, endPin))
}

// DirectPath connects the pins with a single straight segment.
func (e *RoutingEngine) DirectPath(startPin, endPin core.Pin) core.RoutingPath {
	return e.twoLegPath(startPin, endPin, core.Direct, core.Unbiased)
}

// Angle45Path connects the pins with a 45 degree leg and an orthogonal leg.
func (e *RoutingEngine) Angle45Path(startPin, endPin core.Pin) core.RoutingPath {
	return e.twoLegPath(startPin, endPin, core.Angle45, e.Preference(startPin, endPin))
}

// Path builds a path in the requested mode.
func (e *RoutingEngine) Path(mode core.RoutingMode, startPin, endPin core.Pin) (core.RoutingPath, error) {
	switch mode {
	case core.Manhattan:
		return e.ManhattanPath(startPin, endPin), nil
	case core.Direct:
		return e.DirectPath(startPin, endPin), nil
	case core.Angle45:
		return e.Angle45Path(startPin, endPin), nil
	default:
		return core.RoutingPath{}, fmt.Errorf("unknown routing mode: %v", mode)
	}
}

func (e *RoutingEngine) twoLegPath(startPin, endPin core.Pin, mode core.RoutingMode, pref core.AxisPreference) core.RoutingPath {
	start := startPin.ConnectionPoint()
	end := endPin.ConnectionPoint()
	bend := ComputeBreakPoint(start, end, mode, pref)
	return NewPath(startPin, endPin, mode, start, bend, end)
}

// NewPath builds a RoutingPath through the given vertices.
// Repeated vertices are skipped so the path never holds zero-length segments.
func NewPath(startPin, endPin core.Pin, mode core.RoutingMode, points ...core.Position) core.RoutingPath {
	path := core.RoutingPath{
		StartPin: startPin,
		EndPin:   endPin,
		Mode:     mode,
	}
	for i := 1; i < len(points); i++ {
		seg := core.Segment{Start: points[i-1], End: points[i]}
		if seg.IsZero() {
			continue
		}
		path.Segments = append(path.Segments, seg)
	}
	path.TotalLength = PathLength(path.Segments)
	path.QualityScore = QualityScore(path.TotalLength)
	return path
}
