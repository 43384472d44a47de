package export

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"wireroute/core"
)

// WireInstruction asks the host to draw one wire segment.
type WireInstruction struct {
	ID           string           `json:"id"`
	Start        core.Position    `json:"start_point"`
	End          core.Position    `json:"end_point"`
	Width        int64            `json:"width"` // 0 selects the sheet default
	SegmentIndex int              `json:"segment_index"`
	Mode         core.RoutingMode `json:"routing_mode"`
	Length       float64          `json:"length_nm"`
}

// WireInstructions converts a path into one instruction per segment, in order.
// Each instruction gets a fresh id so the host can report back per segment.
func WireInstructions(path core.RoutingPath) []WireInstruction {
	instructions := make([]WireInstruction, 0, len(path.Segments))
	for i, seg := range path.Segments {
		instructions = append(instructions, WireInstruction{
			ID:           uuid.NewString(),
			Start:        seg.Start,
			End:          seg.End,
			SegmentIndex: i,
			Mode:         path.Mode,
			Length:       seg.Length(),
		})
	}
	return instructions
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
