package pathfinding

import (
	"cmp"
	"slices"

	"wireroute/core"
	"wireroute/geometry"
)

// BusDecision records why a bus-aware route was or was not used.
type BusDecision struct {
	CandidateCount int     `json:"candidate_count"`
	BusID          string  `json:"bus_id,omitempty"`
	BusLength      float64 `json:"bus_length_nm,omitempty"`
	DirectLength   float64 `json:"direct_length_nm"`
	Improvement    float64 `json:"improvement"`
	Accepted       bool    `json:"accepted"`
	Reason         string  `json:"reason"`
}

// Reasons reported in BusDecision.
const (
	ReasonNoCandidates   = "no_bus_candidates"
	ReasonNoImprovement  = "insufficient_improvement"
	ReasonDegenerate     = "zero_length_direct_path"
	ReasonAccepted       = "bus_shorter"
	ReasonStrictAccepted = "bus_strictly_shorter"
)

// BusCandidates picks the existing electrical wires long and straight enough to
// route through, longest first.
func (e *RoutingEngine) BusCandidates(wires []core.Wire) []core.BusCandidate {
	tol := e.cfg.Bus.AxisTolerance
	var buses []core.BusCandidate
	for _, w := range wires {
		if w.Layer != core.LayerWire {
			continue
		}
		length := w.Length()
		if length < float64(e.cfg.Bus.MinLength) {
			continue
		}

		bus := core.BusCandidate{ID: w.ID, Length: length}
		switch {
		case abs(w.End.Y-w.Start.Y) < tol:
			bus.Orientation = core.BusHorizontal
			bus.FixedCoordinate = w.Start.Y
			bus.RangeStart = min(w.Start.X, w.End.X)
			bus.RangeEnd = max(w.Start.X, w.End.X)
		case abs(w.End.X-w.Start.X) < tol:
			bus.Orientation = core.BusVertical
			bus.FixedCoordinate = w.Start.X
			bus.RangeStart = min(w.Start.Y, w.End.Y)
			bus.RangeEnd = max(w.Start.Y, w.End.Y)
		default:
			continue
		}
		buses = append(buses, bus)
	}

	slices.SortStableFunc(buses, func(a, b core.BusCandidate) int {
		return cmp.Compare(b.Length, a.Length)
	})
	return buses
}

// BusConnectionPoint returns where a route from start to end should join the bus.
func (e *RoutingEngine) BusConnectionPoint(bus core.BusCandidate, start, end core.Position) core.Position {
	tol := e.cfg.Bus.AxisTolerance
	clamp := func(v int64) int64 {
		return geometry.Clamp(v, bus.RangeStart, bus.RangeEnd)
	}

	if bus.Orientation == core.BusHorizontal {
		y := bus.FixedCoordinate
		switch {
		case abs(start.Y-y) <= tol:
			return core.Position{X: clamp(start.X), Y: y}
		case abs(end.Y-y) <= tol:
			return core.Position{X: clamp(end.X), Y: y}
		default:
			return core.Position{X: clamp((start.X + end.X) / 2), Y: y}
		}
	}

	x := bus.FixedCoordinate
	atStart := core.Position{X: x, Y: clamp(start.Y)}
	atEnd := core.Position{X: x, Y: clamp(end.Y)}
	viaStart := start.ManhattanDistance(atStart) + atStart.ManhattanDistance(end)
	viaEnd := start.ManhattanDistance(atEnd) + atEnd.ManhattanDistance(end)
	if viaEnd < viaStart {
		return atEnd
	}
	return atStart
}

// busPath routes start -> bus connection -> end. A horizontal-first bend is
// inserted when the connection point is not aligned with start.
func (e *RoutingEngine) busPath(startPin, endPin core.Pin, bus core.BusCandidate) core.RoutingPath {
	start := startPin.ConnectionPoint()
	end := endPin.ConnectionPoint()
	conn := e.BusConnectionPoint(bus, start, end)

	points := []core.Position{start}
	if conn.X != start.X && conn.Y != start.Y {
		points = append(points, core.Position{X: conn.X, Y: start.Y})
	}
	points = append(points, conn, end)
	return NewPath(startPin, endPin, core.Manhattan, points...)
}

// AcceptBusPath applies the acceptance rule for a bus route of busLength against
// a direct route of directLength, returning the relative improvement too.
func (e *RoutingEngine) AcceptBusPath(busLength, directLength float64) (bool, float64) {
	if directLength <= 0 {
		return false, 0
	}
	improvement := (directLength - busLength) / directLength
	if improvement > e.cfg.Bus.AcceptImprovement {
		return true, improvement
	}
	if improvement > e.cfg.Bus.StrictImprovement && busLength < directLength {
		return true, improvement
	}
	return false, improvement
}

// BusAwareManhattanPath routes through an existing bus wire when that is clearly
// shorter than the plain Manhattan path, and falls back to it otherwise.
func (e *RoutingEngine) BusAwareManhattanPath(startPin, endPin core.Pin, wires []core.Wire) (core.RoutingPath, BusDecision) {
	direct := e.ManhattanPath(startPin, endPin)
	buses := e.BusCandidates(wires)
	decision := BusDecision{
		CandidateCount: len(buses),
		DirectLength:   direct.TotalLength,
	}

	if len(buses) == 0 {
		decision.Reason = ReasonNoCandidates
		e.logDecision(decision)
		return direct, decision
	}

	var best core.RoutingPath
	var bestBus core.BusCandidate
	for i, bus := range buses {
		path := e.busPath(startPin, endPin, bus)
		if i == 0 || path.TotalLength < best.TotalLength {
			best, bestBus = path, bus
		}
	}
	decision.BusID = bestBus.ID
	decision.BusLength = best.TotalLength

	if direct.TotalLength <= 0 {
		decision.Reason = ReasonDegenerate
		e.logDecision(decision)
		return direct, decision
	}

	accepted, improvement := e.AcceptBusPath(best.TotalLength, direct.TotalLength)
	decision.Improvement = improvement
	decision.Accepted = accepted
	switch {
	case !accepted:
		decision.Reason = ReasonNoImprovement
	case improvement > e.cfg.Bus.AcceptImprovement:
		decision.Reason = ReasonAccepted
	default:
		decision.Reason = ReasonStrictAccepted
	}
	e.logDecision(decision)

	if accepted {
		return best, decision
	}
	return direct, decision
}

func (e *RoutingEngine) logDecision(d BusDecision) {
	e.logger.Debug("bus routing decision",
		"candidates", d.CandidateCount,
		"bus", d.BusID,
		"bus_length", d.BusLength,
		"direct_length", d.DirectLength,
		"improvement", d.Improvement,
		"accepted", d.Accepted,
		"reason", d.Reason,
	)
}
