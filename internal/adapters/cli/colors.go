package cli

import (
	"github.com/fatih/color"

	"github.com/example/gridboard/internal/core/grid"
	"github.com/example/gridboard/internal/models"
)

func colorWorkStatus(s models.WorkStatus) string {
	label := s.Label()
	switch s {
	case models.WorkInProgress:
		return color.New(color.FgHiBlue).Sprint(label)
	case models.WorkPending:
		return color.New(color.FgYellow).Sprint(label)
	case models.WorkDelayed:
		return color.New(color.FgRed).Sprint(label)
	case models.WorkCompleted:
		return color.New(color.FgHiGreen).Sprint(label)
	}
	return color.New(color.FgHiBlack).Sprintf("%s?", string(s))
}

func colorPriority(p models.Priority) string {
	switch p {
	case models.PriorityCritical:
		return color.New(color.FgRed, color.Bold).Sprint(p.Label())
	case models.PriorityHigh:
		return color.New(color.FgHiRed).Sprint(p.Label())
	case models.PriorityMedium:
		return color.New(color.FgYellow).Sprint(p.Label())
	case models.PriorityLow:
		return color.New(color.FgGreen).Sprint(p.Label())
	}
	return color.New(color.FgHiBlack).Sprintf("%s?", string(p))
}

func colorGridStatus(s models.GridStatus) string {
	switch s {
	case models.GridOnline:
		return color.New(color.FgHiGreen).Sprint(s.Label())
	case models.GridOffline:
		return color.New(color.FgHiBlack).Sprint(s.Label())
	case models.GridMaintenance:
		return color.New(color.FgYellow).Sprint(s.Label())
	case models.GridAlert:
		return color.New(color.FgRed, color.Bold).Sprint(s.Label())
	}
	return color.New(color.FgHiBlack).Sprintf("%s?", string(s))
}

func colorBand(band string, text string) string {
	switch grid.Band(band) {
	case grid.BandCritical:
		return color.New(color.FgRed).Sprint(text)
	case grid.BandHigh:
		return color.New(color.FgHiYellow).Sprint(text)
	case grid.BandElevated:
		return color.New(color.FgYellow).Sprint(text)
	}
	return color.New(color.FgGreen).Sprint(text)
}

func colorSeverity(s models.Severity) string {
	label := string(s)
	switch s {
	case models.SeverityCritical:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case models.SeverityHigh:
		return color.New(color.FgHiRed).Sprint(label)
	case models.SeverityMedium:
		return color.New(color.FgYellow).Sprint(label)
	case models.SeverityLow:
		return color.New(color.FgGreen).Sprint(label)
	}
	return color.New(color.FgHiBlack).Sprintf("%s?", label)
}

func dim(s string) string {
	return color.New(color.FgHiBlack).Sprint(s)
}
