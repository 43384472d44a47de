// Package export writes computed routes for the host application and for people:
// wire-creation instructions as JSON, route plots and option comparison charts.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents an export format
type Format string

const (
	// FormatJSON writes wire-creation instructions.
	FormatJSON Format = "json"
	// FormatPNG, FormatSVG and FormatPDF render a route plot.
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
	// FormatHTML renders an interactive chart.
	FormatHTML Format = "html"
)

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	case "pdf":
		return FormatPDF, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// FormatFromPath picks the format named by a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("no file extension in %q", path)
	}
	return ParseFormat(ext)
}

// IsPlot reports whether the format is an image format a route plot can be saved as.
func (f Format) IsPlot() bool {
	return f == FormatPNG || f == FormatSVG || f == FormatPDF
}

// AvailableFormats returns a list of all available export formats
func AvailableFormats() []Format {
	return []Format{
		FormatJSON,
		FormatPNG,
		FormatSVG,
		FormatPDF,
		FormatHTML,
	}
}
