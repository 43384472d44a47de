package connections

import (
	"fmt"
	"io"
	"log/slog"

	"wireroute/config"
	"wireroute/core"
	"wireroute/obstacles"
	"wireroute/pathfinding"
)

// Lengths and densities above which a route gets a warning.
const (
	longRouteLength = 50 * core.Millimeter
	crowdedDensity  = 0.3
)

// RouteRequest names the two pins to connect.
type RouteRequest struct {
	StartSymbolID string
	StartPin      string
	EndSymbolID   string
	EndPin        string
	Mode          core.RoutingMode
	// Wires are the existing sheet lines. Manhattan routes may travel along them.
	Wires []core.Wire
}

// PinInfo describes one end of a route.
type PinInfo struct {
	SymbolReference string        `json:"symbol_reference"`
	PinName         string        `json:"pin_name"`
	PinNumber       string        `json:"pin_number"`
	ApproachAngle   int           `json:"approach_angle"`
	Position        core.Position `json:"position"`
}

// RouteResult is everything computed for one route.
type RouteResult struct {
	Path            core.RoutingPath           `json:"path"`
	Collision       core.CollisionResult       `json:"collision"`
	Corridor        obstacles.CorridorAnalysis `json:"corridor"`
	Bus             *pathfinding.BusDecision   `json:"bus,omitempty"`
	StartPin        PinInfo                    `json:"start_pin"`
	EndPin          PinInfo                    `json:"end_pin"`
	Recommendations []string                   `json:"recommendations"`
}

// Router runs routing sessions over a sheet snapshot.
type Router struct {
	cfg    config.Config
	engine *pathfinding.RoutingEngine
	logger *slog.Logger
}

// RouterOption customises a Router.
type RouterOption func(*Router)

// WithLogger sets the logger for the router and its engine.
func WithLogger(logger *slog.Logger) RouterOption {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRouter creates a router with the given configuration.
func NewRouter(cfg config.Config, opts ...RouterOption) *Router {
	r := &Router{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.engine = pathfinding.NewRoutingEngine(cfg, pathfinding.WithLogger(r.logger))
	return r
}

// Engine returns the routing engine used by the router.
func (r *Router) Engine() *pathfinding.RoutingEngine {
	return r.engine
}

// session holds the state of one routing call.
type session struct {
	startPin, endPin core.Pin
	startSym, endSym core.Symbol
	boundaries       *obstacles.BoundaryManager
}

func (s *session) exclude() map[string]bool {
	return map[string]bool{s.startSym.ID: true, s.endSym.ID: true}
}

// newSession resolves both pins and registers every symbol outline with a fresh manager.
func (r *Router) newSession(symbols []core.Symbol, req RouteRequest) (*session, error) {
	startPin, startSym, err := core.LookupPin(symbols, req.StartSymbolID, req.StartPin)
	if err != nil {
		return nil, fmt.Errorf("start pin: %w", err)
	}
	endPin, endSym, err := core.LookupPin(symbols, req.EndSymbolID, req.EndPin)
	if err != nil {
		return nil, fmt.Errorf("end pin: %w", err)
	}

	return &session{
		startPin:   startPin,
		endPin:     endPin,
		startSym:   startSym,
		endSym:     endSym,
		boundaries: r.Boundaries(symbols),
	}, nil
}

// Boundaries builds a manager holding one box per symbol. Boxes supplied by the
// host are used as-is; the rest are estimated from the pins.
func (r *Router) Boundaries(symbols []core.Symbol) *obstacles.BoundaryManager {
	m := obstacles.NewBoundaryManager(r.cfg.Clearance)
	for _, sym := range symbols {
		if sym.BoundingBox != nil {
			box := *sym.BoundingBox
			box.OwnerID = sym.ID
			m.AddBoundingBox(box)
			continue
		}
		m.AddComponentBoundary(sym, core.BodyPins)
	}
	return m
}

// Route computes a path between the requested pins and checks it against the
// other components on the sheet. A missing symbol or pin is reported as a
// *core.NotFoundError.
func (r *Router) Route(symbols []core.Symbol, req RouteRequest) (RouteResult, error) {
	s, err := r.newSession(symbols, req)
	if err != nil {
		return RouteResult{}, err
	}

	var result RouteResult
	switch {
	case req.Mode == core.Manhattan && len(req.Wires) > 0:
		path, decision := r.engine.BusAwareManhattanPath(s.startPin, s.endPin, req.Wires)
		result.Path = path
		result.Bus = &decision
	default:
		path, err := r.engine.Path(req.Mode, s.startPin, s.endPin)
		if err != nil {
			return RouteResult{}, err
		}
		result.Path = path
	}

	result.Collision = s.boundaries.CheckPathCollision(result.Path, s.exclude())
	result.Corridor = s.boundaries.OptimizeRoutingCorridor(s.startPin.Position, s.endPin.Position)
	result.StartPin = pinInfo(s.startPin, s.startSym)
	result.EndPin = pinInfo(s.endPin, s.endSym)
	result.Recommendations = Recommendations(result.Path, result.Collision, result.Corridor)

	r.logger.Info("route computed",
		"from", s.startSym.Reference+":"+s.startPin.Number,
		"to", s.endSym.Reference+":"+s.endPin.Number,
		"mode", result.Path.Mode,
		"segments", len(result.Path.Segments),
		"length", result.Path.TotalLength,
		"collision", result.Collision.HasCollision,
	)
	return result, nil
}

// Analyze compares every routing mode for the requested pins.
func (r *Router) Analyze(symbols []core.Symbol, req RouteRequest) (RoutingAnalysis, error) {
	s, err := r.newSession(symbols, req)
	if err != nil {
		return RoutingAnalysis{}, err
	}
	evaluator := NewPathEvaluator(r.engine, s.boundaries, r.cfg.Evaluation)
	analysis := evaluator.AnalyzeRoutingOptions(s.startPin, s.endPin, s.exclude())
	r.logger.Debug("routing options analysed",
		"options", len(analysis.Options),
		"recommended", analysis.Recommended,
	)
	return analysis, nil
}

// BusStructures lists the wires that qualify as buses, longest first.
func (r *Router) BusStructures(wires []core.Wire) []core.BusCandidate {
	return r.engine.BusCandidates(wires)
}

func pinInfo(pin core.Pin, sym core.Symbol) PinInfo {
	return PinInfo{
		SymbolReference: sym.Reference,
		PinName:         pin.Name,
		PinNumber:       pin.Number,
		ApproachAngle:   pin.ApproachAngle(),
		Position:        pin.Position,
	}
}

// Recommendations derives advice for a computed route.
func Recommendations(path core.RoutingPath, collision core.CollisionResult, corridor obstacles.CorridorAnalysis) []string {
	var recs []string
	if path.TotalLength > float64(longRouteLength) {
		recs = append(recs, "Consider a shorter route: length exceeds 50mm")
	}
	if collision.HasCollision {
		recs = append(recs,
			fmt.Sprintf("Collision detected with %d components", len(collision.CollidingComponentIDs)),
			"Consider moving components or routing a detour",
		)
	}
	if corridor.ObstacleDensity > crowdedDensity {
		recs = append(recs, "High component density in routing corridor: consider an alternative path")
	}
	switch path.Mode {
	case core.Manhattan:
		recs = append(recs, "Manhattan routing keeps every bend at 90 degrees")
	case core.Direct:
		recs = append(recs, "Direct routing minimises length but does not follow schematic conventions")
	}
	recs = append(recs, fmt.Sprintf("Maintains %.2fmm clearance from components",
		float64(corridor.ClearanceRequired)/float64(core.Millimeter)))
	return recs
}
