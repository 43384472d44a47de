package connections

import (
	"wireroute/core"
)

// PathQuality grades how far a pin pair is from being axis aligned.
type PathQuality int

const (
	QualityAligned PathQuality = iota
	QualityMinorDetour
	QualityComplex
)

// String returns the string representation of a PathQuality.
func (q PathQuality) String() string {
	switch q {
	case QualityAligned:
		return "aligned"
	case QualityMinorDetour:
		return "minor_detour"
	case QualityComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (q PathQuality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// Metrics summarises the geometry between two points.
type Metrics struct {
	Euclidean       float64     `json:"euclidean_distance_nm"`
	Manhattan       int64       `json:"manhattan_distance_nm"`
	EfficiencyRatio float64     `json:"efficiency_ratio"`
	Quality         PathQuality `json:"routing_quality"`
}

// PathMetrics measures the straight and Manhattan distances between start and end.
func PathMetrics(start, end core.Position) Metrics {
	m := Metrics{
		Euclidean:       start.Distance(end),
		Manhattan:       start.ManhattanDistance(end),
		EfficiencyRatio: 1,
	}
	manhattan := float64(m.Manhattan)
	if manhattan > 0 {
		m.EfficiencyRatio = m.Euclidean / manhattan
	}
	switch {
	case manhattan == m.Euclidean:
		m.Quality = QualityAligned
	case manhattan < m.Euclidean*1.5:
		m.Quality = QualityMinorDetour
	default:
		m.Quality = QualityComplex
	}
	return m
}
