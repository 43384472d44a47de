package obstacles

import (
	"slices"
	"strings"
	"sync"

	"wireroute/core"
)

// Margins used when estimating a symbol outline from its pins.
const (
	// PinlessHalfSize is the half width of the box placed around a symbol without pins (a 2.54mm square).
	PinlessHalfSize int64 = 1_270_000
	// BodyMargin grows the pin extent to cover the symbol body.
	BodyMargin int64 = 635_000
)

// BoundaryManager stores one bounding box per component and checks routes against them.
//
// A manager normally lives for a single routing session. It is safe for
// concurrent use; readers share a lock and registration takes it exclusively.
type BoundaryManager struct {
	mu        sync.RWMutex
	clearance int64
	boxes     map[string]core.BoundingBox
}

// NewBoundaryManager creates an empty manager with the given clearance.
func NewBoundaryManager(clearance int64) *BoundaryManager {
	return &BoundaryManager{
		clearance: clearance,
		boxes:     make(map[string]core.BoundingBox),
	}
}

// Clearance returns the configured wire to component clearance.
func (m *BoundaryManager) Clearance() int64 {
	return m.clearance
}

// AddComponentBoundary estimates the outline of symbol and stores it, replacing
// any box previously stored for the same symbol.
func (m *BoundaryManager) AddComponentBoundary(symbol core.Symbol, kind core.BoxKind) core.BoundingBox {
	var box core.BoundingBox
	if len(symbol.Pins) == 0 {
		half := core.Position{X: PinlessHalfSize, Y: PinlessHalfSize}
		box = core.NewBoundingBox(symbol.Position.Sub(half), symbol.Position.Add(half), symbol.ID, kind)
	} else {
		lo, hi := symbol.Pins[0].Position, symbol.Pins[0].Position
		for _, pin := range symbol.Pins[1:] {
			lo.X, lo.Y = min(lo.X, pin.Position.X), min(lo.Y, pin.Position.Y)
			hi.X, hi.Y = max(hi.X, pin.Position.X), max(hi.Y, pin.Position.Y)
		}
		box = core.NewBoundingBox(lo, hi, symbol.ID, kind).Expand(BodyMargin)
	}
	m.AddBoundingBox(box)
	return box
}

// AddBoundingBox stores a box supplied by the host as-is, keyed by its owner.
func (m *BoundaryManager) AddBoundingBox(box core.BoundingBox) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.boxes[box.OwnerID] = box
}

// Boundary returns the stored box for a component.
func (m *BoundaryManager) Boundary(id string) (core.BoundingBox, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	box, ok := m.boxes[id]
	return box, ok
}

// ClearanceZone returns the stored box for a component grown by the clearance.
func (m *BoundaryManager) ClearanceZone(id string) (core.BoundingBox, bool) {
	box, ok := m.Boundary(id)
	if !ok {
		return core.BoundingBox{}, false
	}
	return box.Expand(m.clearance), true
}

// Remove deletes the box stored for a component.
func (m *BoundaryManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.boxes, id)
}

// Clear deletes every stored box.
func (m *BoundaryManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.boxes = make(map[string]core.BoundingBox)
}

// Len returns the number of stored boxes.
func (m *BoundaryManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.boxes)
}

// Boxes returns every stored box ordered by owner id.
func (m *BoundaryManager) Boxes() []core.BoundingBox {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedLocked()
}

func (m *BoundaryManager) sortedLocked() []core.BoundingBox {
	boxes := make([]core.BoundingBox, 0, len(m.boxes))
	for _, box := range m.boxes {
		boxes = append(boxes, box)
	}
	slices.SortFunc(boxes, func(a, b core.BoundingBox) int {
		return strings.Compare(a.OwnerID, b.OwnerID)
	})
	return boxes
}

// CheckPathCollision tests every segment of path against every stored box grown
// by the clearance. Components named in exclude are skipped.
func (m *BoundaryManager) CheckPathCollision(path core.RoutingPath, exclude map[string]bool) core.CollisionResult {
	m.mu.RLock()
	boxes := m.sortedLocked()
	m.mu.RUnlock()

	result := core.CollisionResult{SuggestedClearance: 2 * m.clearance}
	seen := make(map[string]bool)
	for _, seg := range path.Segments {
		for _, box := range boxes {
			if exclude[box.OwnerID] {
				continue
			}
			if !SegmentIntersectsBox(seg.Start, seg.End, box.Expand(m.clearance)) {
				continue
			}
			result.CollisionPoints = append(result.CollisionPoints, box.Center())
			if !seen[box.OwnerID] {
				seen[box.OwnerID] = true
				result.CollidingComponentIDs = append(result.CollidingComponentIDs, box.OwnerID)
			}
		}
	}
	result.HasCollision = len(result.CollidingComponentIDs) > 0
	return result
}

// FindComponentsInRegion returns the boxes overlapping the rectangle spanned by
// start and end, edges included.
func (m *BoundaryManager) FindComponentsInRegion(start, end core.Position) []core.BoundingBox {
	region := core.NewBoundingBox(start, end, "region", core.Full)

	m.mu.RLock()
	boxes := m.sortedLocked()
	m.mu.RUnlock()

	var found []core.BoundingBox
	for _, box := range boxes {
		if box.Overlaps(region) {
			found = append(found, box)
		}
	}
	return found
}

// SuggestDetourPoints returns two waypoints that take a route from start to end
// around box, one clearance outside its clearance zone.
func (m *BoundaryManager) SuggestDetourPoints(start, end core.Position, box core.BoundingBox) [2]core.Position {
	zone := box.Expand(m.clearance)
	center := box.Center()

	switch {
	case start.Y < center.Y && end.Y < center.Y:
		y := zone.TopLeft.Y - m.clearance
		return [2]core.Position{{X: start.X, Y: y}, {X: end.X, Y: y}}
	case start.Y > center.Y && end.Y > center.Y:
		y := zone.BottomRight.Y + m.clearance
		return [2]core.Position{{X: start.X, Y: y}, {X: end.X, Y: y}}
	case start.X < center.X:
		x := zone.TopLeft.X - m.clearance
		return [2]core.Position{{X: x, Y: start.Y}, {X: x, Y: end.Y}}
	default:
		x := zone.BottomRight.X + m.clearance
		return [2]core.Position{{X: x, Y: start.Y}, {X: x, Y: end.Y}}
	}
}
