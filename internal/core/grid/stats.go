package grid

import (
	"math"
	"strings"

	"github.com/example/gridboard/internal/models"
)

// Statistics summarises the grid: section counts per status and average load.
type Statistics struct {
	Online      int
	Offline     int
	Maintenance int
	Alert       int
	Unknown     int

	// AvgLoad is only meaningful when AvgLoadDefined is true; an empty
	// collection has no average.
	AvgLoad        int
	AvgLoadDefined bool
}

// Total returns the number of sections counted.
func (s Statistics) Total() int {
	return s.Online + s.Offline + s.Maintenance + s.Alert + s.Unknown
}

// Count returns the number of sections in status.
func (s Statistics) Count(status models.GridStatus) int {
	switch status {
	case models.GridOnline:
		return s.Online
	case models.GridOffline:
		return s.Offline
	case models.GridMaintenance:
		return s.Maintenance
	case models.GridAlert:
		return s.Alert
	}
	return s.Unknown
}

// Stats counts sections per status and averages load over every section,
// offline ones included, rounding half up.
func Stats(sections []models.GridSection) Statistics {
	var s Statistics
	total := 0
	for _, sec := range sections {
		switch sec.Status {
		case models.GridOnline:
			s.Online++
		case models.GridOffline:
			s.Offline++
		case models.GridMaintenance:
			s.Maintenance++
		case models.GridAlert:
			s.Alert++
		default:
			s.Unknown++
		}
		total += sec.Load
	}

	if len(sections) > 0 {
		s.AvgLoad = int(math.Floor(float64(total)/float64(len(sections)) + 0.5))
		s.AvgLoadDefined = true
	}
	return s
}

// ChartPoint is one section projected for the load chart.
type ChartPoint struct {
	Label  string
	Load   int
	Status models.GridStatus
}

// Chart drops offline sections and labels the rest with the first word of
// their name, keeping source order.
func Chart(sections []models.GridSection) []ChartPoint {
	points := make([]ChartPoint, 0, len(sections))
	for _, sec := range sections {
		if sec.Status == models.GridOffline {
			continue
		}
		points = append(points, ChartPoint{
			Label:  firstWord(sec.Name),
			Load:   sec.Load,
			Status: sec.Status,
		})
	}
	return points
}

func firstWord(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Band buckets a load percentage for display.
type Band string

const (
	BandNormal   Band = "normal"
	BandElevated Band = "elevated"
	BandHigh     Band = "high"
	BandCritical Band = "critical"
)

// LoadBand classifies load: critical from 90, high from 70, elevated from 50.
func LoadBand(load int) Band {
	switch {
	case load >= 90:
		return BandCritical
	case load >= 70:
		return BandHigh
	case load >= 50:
		return BandElevated
	}
	return BandNormal
}
