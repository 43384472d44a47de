package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireroute/core"
)

const sheetFile = "../../snapshot/testdata/sheet.json"

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRunRoute(t *testing.T) {
	stdout, _, err := runCLI(t, "-snapshot", sheetFile, "-from", "R1:2", "-to", "C1:1", "-mode", "direct")
	require.NoError(t, err)

	var report struct {
		Route struct {
			Path struct {
				Mode     string            `json:"mode"`
				Segments []json.RawMessage `json:"segments"`
			} `json:"path"`
			StartPin struct {
				SymbolReference string `json:"symbol_reference"`
				PinNumber       string `json:"pin_number"`
			} `json:"start_pin"`
			EndPin struct {
				SymbolReference string `json:"symbol_reference"`
			} `json:"end_pin"`
		} `json:"routing_analysis"`
		Metrics struct {
			Quality string `json:"routing_quality"`
		} `json:"path_metrics"`
		Instructions []struct {
			ID   string `json:"id"`
			Mode string `json:"routing_mode"`
		} `json:"wire_segments"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))

	assert.Equal(t, "direct", report.Route.Path.Mode)
	assert.Equal(t, "R1", report.Route.StartPin.SymbolReference)
	assert.Equal(t, "2", report.Route.StartPin.PinNumber)
	assert.Equal(t, "C1", report.Route.EndPin.SymbolReference)
	assert.NotEmpty(t, report.Metrics.Quality)
	require.Len(t, report.Instructions, len(report.Route.Path.Segments))
	for _, ins := range report.Instructions {
		_, err := uuid.Parse(ins.ID)
		assert.NoError(t, err, "instruction id %q", ins.ID)
		assert.Equal(t, "direct", ins.Mode)
	}
}

func TestRunResolvesSymbolIDs(t *testing.T) {
	byRef, _, err := runCLI(t, "-snapshot", sheetFile, "-from", "R1:1", "-to", "C1:2", "-mode", "manhattan")
	require.NoError(t, err)
	byID, _, err := runCLI(t, "-snapshot", sheetFile, "-from", "a1b2:1", "-to", "c3d4:2", "-mode", "manhattan")
	require.NoError(t, err)

	pathOf := func(s string) json.RawMessage {
		var doc struct {
			Route struct {
				Path json.RawMessage `json:"path"`
			} `json:"routing_analysis"`
		}
		require.NoError(t, json.Unmarshal([]byte(s), &doc))
		return doc.Route.Path
	}
	assert.JSONEq(t, string(pathOf(byRef)), string(pathOf(byID)))
}

func TestRunBuses(t *testing.T) {
	stdout, _, err := runCLI(t, "-snapshot", sheetFile, "-buses")
	require.NoError(t, err)

	var buses []core.BusCandidate
	require.NoError(t, json.Unmarshal([]byte(stdout), &buses), stdout)
	require.Len(t, buses, 1, "graphic lines are not buses")
	assert.Equal(t, "w1", buses[0].ID)
	assert.Equal(t, int64(120*core.Millimeter), buses[0].FixedCoordinate)
	assert.Contains(t, stdout, `"type": "horizontal_bus"`)
}

func TestRunAnalyzeWithChart(t *testing.T) {
	dir := t.TempDir()
	chart := filepath.Join(dir, "options.html")
	output := filepath.Join(dir, "analysis.json")

	_, _, err := runCLI(t, "-snapshot", sheetFile, "-from", "R1:2", "-to", "C1:1", "-analyze", "-chart", chart, "-o", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var analysis struct {
		Options []struct {
			Mode string `json:"mode"`
		} `json:"options"`
		Recommended string `json:"recommended_mode"`
	}
	require.NoError(t, json.Unmarshal(data, &analysis))
	assert.Len(t, analysis.Options, len(core.RoutingModes))
	assert.NotEmpty(t, analysis.Recommended)

	html, err := os.ReadFile(chart)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Routing options")
}

func TestRunPlotAndPreview(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "route.png")

	_, stderr, err := runCLI(t, "-snapshot", sheetFile, "-from", "R1:2", "-to", "C1:1", "-plot", plot, "-preview")
	require.NoError(t, err)

	info, err := os.Stat(plot)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Contains(t, stderr, "o")
}

func TestRunDebugLogging(t *testing.T) {
	_, stderr, err := runCLI(t, "-snapshot", sheetFile, "-from", "R1:2", "-to", "C1:1", "-debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "snapshot loaded")
	assert.Contains(t, stderr, "route computed")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing snapshot", []string{"-from", "R1:1", "-to", "C1:1"}, "snapshot file required"},
		{"missing pins", []string{"-snapshot", sheetFile, "-from", "R1:1"}, "both -from and -to"},
		{"chart without analyze", []string{"-snapshot", sheetFile, "-from", "R1:1", "-to", "C1:1", "-chart", "x.html"}, "-chart requires -analyze"},
		{"bad cell size", []string{"-snapshot", sheetFile, "-from", "R1:1", "-to", "C1:1", "-cell", "0"}, "-cell must be positive"},
		{"bad pin reference", []string{"-snapshot", sheetFile, "-from", "R1", "-to", "C1:1"}, "want SYMBOL:PIN"},
		{"bad mode", []string{"-snapshot", sheetFile, "-from", "R1:1", "-to", "C1:1", "-mode", "curvy"}, "curvy"},
		{"bad plot format", []string{"-snapshot", sheetFile, "-from", "R1:1", "-to", "C1:1", "-plot", filepath.Join(t.TempDir(), "x.json")}, "json"},
		{"missing snapshot file", []string{"-snapshot", "nope.json", "-from", "R1:1", "-to", "C1:1"}, "opening snapshot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunNotFound(t *testing.T) {
	tests := []struct {
		name string
		from string
		want core.NotFoundError
	}{
		{"unknown symbol", "U9:1", core.NotFoundError{SymbolID: "U9"}},
		{"unknown pin", "R1:7", core.NotFoundError{SymbolID: "a1b2", PinNumber: "7"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, "-snapshot", sheetFile, "-from", tt.from, "-to", "C1:1")
			require.ErrorIs(t, err, core.ErrNotFound)

			var nf *core.NotFoundError
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, tt.want, *nf)
		})
	}
}

func TestParsePinRef(t *testing.T) {
	tests := []struct {
		ref, symbol, pin string
		wantErr          bool
	}{
		{ref: "R1:2", symbol: "R1", pin: "2"},
		{ref: "lib:U1:A3", symbol: "lib:U1", pin: "A3"},
		{ref: "R1", wantErr: true},
		{ref: ":2", wantErr: true},
		{ref: "R1:", wantErr: true},
	}
	for _, tt := range tests {
		symbol, pin, err := parsePinRef(tt.ref)
		if tt.wantErr {
			assert.Error(t, err, tt.ref)
			continue
		}
		require.NoError(t, err, tt.ref)
		assert.Equal(t, tt.symbol, symbol)
		assert.Equal(t, tt.pin, pin)
	}
}
