package obstacles

import (
	"wireroute/core"
	"wireroute/geometry"
)

// CorridorStrategy is the routing approach suggested by obstacle density.
type CorridorStrategy int

const (
	StrategyDirect CorridorStrategy = iota
	StrategySimpleDetour
	StrategyComplexMultiSegment
)

// Density thresholds between strategies.
const (
	simpleDetourDensity = 0.1
	complexDensity      = 0.3
)

// String returns the string representation of a CorridorStrategy.
func (s CorridorStrategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategySimpleDetour:
		return "simple_detour"
	case StrategyComplexMultiSegment:
		return "complex_multi_segment"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s CorridorStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CorridorAnalysis describes the obstacles between two points.
type CorridorAnalysis struct {
	CorridorLength    float64          `json:"corridor_length_nm"`
	ComponentCount    int              `json:"component_count"`
	ObstacleDensity   float64          `json:"obstacle_density"`
	Strategy          CorridorStrategy `json:"suggested_strategy"`
	ClearanceRequired int64            `json:"clearance_required_nm"`
	ComponentIDs      []string         `json:"components_in_path"`
}

// StrategyForDensity maps an obstacle density to a routing strategy.
func StrategyForDensity(density float64) CorridorStrategy {
	switch {
	case density < simpleDetourDensity:
		return StrategyDirect
	case density < complexDensity:
		return StrategySimpleDetour
	default:
		return StrategyComplexMultiSegment
	}
}

// OptimizeRoutingCorridor measures how crowded the rectangle between start and
// end is. A corridor with no area has zero density.
func (m *BoundaryManager) OptimizeRoutingCorridor(start, end core.Position) CorridorAnalysis {
	boxes := m.FindComponentsInRegion(start, end)

	areas := make([]float64, len(boxes))
	ids := make([]string, len(boxes))
	for i, box := range boxes {
		areas[i] = float64(box.Area())
		ids[i] = box.OwnerID
	}

	corridorArea := float64(geometry.Abs(end.X-start.X)) * float64(geometry.Abs(end.Y-start.Y))
	density := 0.0
	if corridorArea > 0 {
		density = geometry.Sum(areas) / corridorArea
	}

	return CorridorAnalysis{
		CorridorLength:    start.Distance(end),
		ComponentCount:    len(boxes),
		ObstacleDensity:   density,
		Strategy:          StrategyForDensity(density),
		ClearanceRequired: m.clearance,
		ComponentIDs:      ids,
	}
}
