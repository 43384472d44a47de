// Package snapshot reads the sheet state supplied by the host application:
// the placed symbols with their pins and the wires already drawn.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"wireroute/core"
)

// ErrInvalidSnapshot is wrapped by every decoding and validation failure.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is the sheet state a route is computed against.
type Snapshot struct {
	Symbols []core.Symbol `json:"symbols"`
	Wires   []core.Wire   `json:"wires"`
}

// Load reads and validates a snapshot file.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a JSON snapshot from r and validates it.
func Decode(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks ids are present and unique, pin orientations are known and
// host boxes are not inverted.
func (s *Snapshot) Validate() error {
	symbols := make(map[string]bool, len(s.Symbols))
	for i, sym := range s.Symbols {
		if sym.ID == "" {
			return fmt.Errorf("%w: symbol %d has no id", ErrInvalidSnapshot, i)
		}
		if symbols[sym.ID] {
			return fmt.Errorf("%w: duplicate symbol id %s", ErrInvalidSnapshot, sym.ID)
		}
		symbols[sym.ID] = true

		pins := make(map[string]bool, len(sym.Pins))
		for _, pin := range sym.Pins {
			if pin.Number == "" {
				return fmt.Errorf("%w: symbol %s has a pin without a number", ErrInvalidSnapshot, sym.ID)
			}
			if pins[pin.Number] {
				return fmt.Errorf("%w: symbol %s has duplicate pin %s", ErrInvalidSnapshot, sym.ID, pin.Number)
			}
			pins[pin.Number] = true
			if !pin.Orientation.Valid() {
				return fmt.Errorf("%w: pin %s of symbol %s has orientation %d", ErrInvalidSnapshot, pin.Number, sym.ID, pin.Orientation)
			}
		}

		if box := sym.BoundingBox; box != nil {
			if box.TopLeft.X > box.BottomRight.X || box.TopLeft.Y > box.BottomRight.Y {
				return fmt.Errorf("%w: symbol %s has an inverted bounding box", ErrInvalidSnapshot, sym.ID)
			}
		}
	}

	wires := make(map[string]bool, len(s.Wires))
	for i, w := range s.Wires {
		if w.ID == "" {
			return fmt.Errorf("%w: wire %d has no id", ErrInvalidSnapshot, i)
		}
		if wires[w.ID] {
			return fmt.Errorf("%w: duplicate wire id %s", ErrInvalidSnapshot, w.ID)
		}
		wires[w.ID] = true
	}
	return nil
}

// Resolve finds a symbol by id, falling back to its reference designator.
func (s *Snapshot) Resolve(name string) (core.Symbol, bool) {
	for _, sym := range s.Symbols {
		if sym.ID == name {
			return sym, true
		}
	}
	for _, sym := range s.Symbols {
		if sym.Reference == name {
			return sym, true
		}
	}
	return core.Symbol{}, false
}
