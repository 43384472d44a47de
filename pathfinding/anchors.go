package pathfinding

import (
	"cmp"
	"slices"

	"wireroute/core"
	"wireroute/geometry"
)

// Anchor priorities; lower wins.
const (
	pinAnchorPriority  = 1
	gridAnchorPriority = 10
)

// FindRoutingAnchors lists snap points near position: the nearest grid point and
// every pin within snap range. Pins always sort ahead of the grid.
func (e *RoutingEngine) FindRoutingAnchors(position core.Position, symbols []core.Symbol) []core.Anchor {
	grid := core.Position{
		X: geometry.SnapToGrid(position.X, e.cfg.GridSize),
		Y: geometry.SnapToGrid(position.Y, e.cfg.GridSize),
	}
	anchors := []core.Anchor{{
		Position: grid,
		Type:     core.AnchorGrid,
		Distance: position.Distance(grid),
		Priority: gridAnchorPriority,
	}}

	for _, sym := range symbols {
		for _, pin := range sym.Pins {
			d := position.Distance(pin.Position)
			if d > float64(e.cfg.SnapRange) {
				continue
			}
			anchors = append(anchors, core.Anchor{
				Position: pin.Position,
				Type:     core.AnchorPin,
				ItemID:   pin.ID,
				Distance: d,
				Priority: pinAnchorPriority,
			})
		}
	}

	slices.SortStableFunc(anchors, func(a, b core.Anchor) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Distance, b.Distance)
	})
	return anchors
}
