// Command wireroute computes a wire route between two pins of a schematic
// snapshot and writes the wire-creation instructions as JSON.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gonum.org/v1/plot/vg"

	"wireroute/canvas"
	"wireroute/config"
	"wireroute/connections"
	"wireroute/core"
	"wireroute/export"
	"wireroute/snapshot"
	"wireroute/terminal"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	snapshot string
	from     string
	to       string
	mode     string
	config   string
	analyze  bool
	buses    bool
	output   string
	plot     string
	chart    string
	preview  bool
	view     bool
	cell     float64
	debug    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("wireroute", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.StringVar(&o.snapshot, "snapshot", "", "Sheet snapshot JSON file (required)")
	fs.StringVar(&o.from, "from", "", "Start pin as SYMBOL:PIN (symbol id or reference)")
	fs.StringVar(&o.to, "to", "", "End pin as SYMBOL:PIN (symbol id or reference)")
	fs.StringVar(&o.mode, "mode", "manhattan", "Routing mode (manhattan, direct, 45_degree)")
	fs.StringVar(&o.config, "config", "", "YAML configuration file")
	fs.BoolVar(&o.analyze, "analyze", false, "Compare every routing mode instead of routing")
	fs.BoolVar(&o.buses, "buses", false, "List the wires usable as buses and exit")
	fs.StringVar(&o.output, "o", "", "Output file path (default: stdout)")
	fs.StringVar(&o.plot, "plot", "", "Save a route plot (.png, .svg or .pdf)")
	fs.StringVar(&o.chart, "chart", "", "Save an HTML chart of the routing options (with -analyze)")
	fs.BoolVar(&o.preview, "preview", false, "Print an ASCII preview of the route to stderr")
	fs.BoolVar(&o.view, "view", false, "Show the route preview in a full-screen viewer")
	fs.Float64Var(&o.cell, "cell", 1.27, "Preview cell size in mm")
	fs.BoolVar(&o.debug, "debug", false, "Log routing decisions to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.snapshot == "" {
		fs.Usage()
		return nil, fmt.Errorf("snapshot file required (-snapshot)")
	}
	if !o.buses && (o.from == "" || o.to == "") {
		return nil, fmt.Errorf("both -from and -to are required")
	}
	if o.chart != "" && !o.analyze {
		return nil, fmt.Errorf("-chart requires -analyze")
	}
	if o.cell <= 0 {
		return nil, fmt.Errorf("-cell must be positive")
	}
	return &o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if o.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(o.config)
	if err != nil {
		return err
	}
	sheet, err := snapshot.Load(o.snapshot)
	if err != nil {
		return err
	}
	logger.Debug("snapshot loaded", "symbols", len(sheet.Symbols), "wires", len(sheet.Wires))

	router := connections.NewRouter(cfg, connections.WithLogger(logger))

	if o.buses {
		return writeOutput(o.output, stdout, router.BusStructures(sheet.Wires))
	}

	req, err := buildRequest(sheet, o)
	if err != nil {
		return err
	}

	if o.analyze {
		analysis, err := router.Analyze(sheet.Symbols, req)
		if err != nil {
			return err
		}
		if o.chart != "" {
			if err := writeChart(o.chart, analysis); err != nil {
				return err
			}
		}
		return writeOutput(o.output, stdout, analysis)
	}

	result, err := router.Route(sheet.Symbols, req)
	if err != nil {
		return err
	}
	boxes := router.Boundaries(sheet.Symbols).Boxes()

	if o.plot != "" {
		if err := export.PlotRoute(result.Path, boxes, o.plot, 6*vg.Inch, 6*vg.Inch); err != nil {
			return err
		}
	}
	if o.preview || o.view {
		preview, err := canvas.RenderRoute(result.Path, boxes, int64(o.cell*float64(core.Millimeter)))
		if err != nil {
			return err
		}
		if o.preview {
			fmt.Fprintln(stderr, preview.String())
		}
		if o.view {
			title := fmt.Sprintf("%s -> %s (%s)", o.from, o.to, result.Path.Mode)
			if err := terminal.View(title, preview.String()); err != nil {
				return err
			}
		}
	}

	report := routeReport{
		Route:        result,
		Metrics:      connections.PathMetrics(result.StartPin.Position, result.EndPin.Position),
		Instructions: export.WireInstructions(result.Path),
	}
	return writeOutput(o.output, stdout, report)
}

type routeReport struct {
	Route        connections.RouteResult  `json:"routing_analysis"`
	Metrics      connections.Metrics      `json:"path_metrics"`
	Instructions []export.WireInstruction `json:"wire_segments"`
}

// parsePinRef splits SYMBOL:PIN. The pin is taken after the last colon so
// symbol ids may contain colons.
func parsePinRef(ref string) (symbol, pin string, err error) {
	i := strings.LastIndex(ref, ":")
	if i <= 0 || i == len(ref)-1 {
		return "", "", fmt.Errorf("invalid pin reference %q, want SYMBOL:PIN", ref)
	}
	return ref[:i], ref[i+1:], nil
}

func buildRequest(sheet *snapshot.Snapshot, o *options) (connections.RouteRequest, error) {
	mode, err := core.ParseRoutingMode(o.mode)
	if err != nil {
		return connections.RouteRequest{}, err
	}

	req := connections.RouteRequest{Mode: mode, Wires: sheet.Wires}
	refs := []struct {
		ref       string
		symbol    *string
		pinNumber *string
	}{
		{o.from, &req.StartSymbolID, &req.StartPin},
		{o.to, &req.EndSymbolID, &req.EndPin},
	}
	for _, r := range refs {
		name, pin, err := parsePinRef(r.ref)
		if err != nil {
			return connections.RouteRequest{}, err
		}
		sym, ok := sheet.Resolve(name)
		if !ok {
			return connections.RouteRequest{}, &core.NotFoundError{SymbolID: name}
		}
		*r.symbol, *r.pinNumber = sym.ID, pin
	}
	return req, nil
}

func writeChart(path string, analysis connections.RoutingAnalysis) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart: %w", err)
	}
	if err := export.WriteOptionsChart(f, analysis); err != nil {
		f.Close()
		return fmt.Errorf("writing chart: %w", err)
	}
	return f.Close()
}

func writeOutput(path string, stdout io.Writer, v any) error {
	if path == "" {
		return export.WriteJSON(stdout, v)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := export.WriteJSON(f, v); err != nil {
		f.Close()
		return fmt.Errorf("writing output file: %w", err)
	}
	return f.Close()
}
