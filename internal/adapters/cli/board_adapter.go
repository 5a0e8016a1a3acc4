// Package cli renders dashboard views for the terminal.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/primary"
)

// chartWidth is the number of cells a 100% load bar occupies.
const chartWidth = 25

// BoardAdapter is a thin adapter that renders DashboardService views.
// It depends only on the DashboardService interface, enabling easy testing with mocks.
type BoardAdapter struct {
	service primary.DashboardService
	out     io.Writer
}

// NewBoardAdapter creates a new BoardAdapter with the given service.
func NewBoardAdapter(service primary.DashboardService, out io.Writer) *BoardAdapter {
	return &BoardAdapter{
		service: service,
		out:     out,
	}
}

// Overview prints the combined board shown after login.
func (a *BoardAdapter) Overview(now time.Time) *primary.Overview {
	ov := a.service.Overview(now)

	if ov.LastError != "" {
		fmt.Fprintf(a.out, "%s %s\n\n", color.New(color.FgRed).Sprint("!"), ov.LastError)
	}

	bold := color.New(color.Bold)
	bold.Fprintln(a.out, "GRID")
	a.gridSummary(ov.Grid)
	fmt.Fprintln(a.out)

	bold.Fprintln(a.out, "WORK")
	for _, col := range ov.Work.Columns {
		fmt.Fprintf(a.out, "  %-12s %d\n", col.Label, len(col.Cards))
	}
	if len(ov.Work.Unknown) > 0 {
		fmt.Fprintf(a.out, "  %-12s %d\n", "Unknown", len(ov.Work.Unknown))
	}
	overdue := 0
	for _, col := range ov.Work.Columns {
		for _, card := range col.Cards {
			if card.Overdue {
				overdue++
			}
		}
	}
	if overdue > 0 {
		fmt.Fprintf(a.out, "  %s\n", color.New(color.FgRed).Sprintf("%d overdue", overdue))
	}
	fmt.Fprintln(a.out)

	bold.Fprintln(a.out, "INCIDENTS")
	fmt.Fprintf(a.out, "  Open: %d   Resolved: %d\n", ov.Incidents.Open, ov.Incidents.Resolved)
	for _, row := range ov.Incidents.Rows {
		if row.Incident.Status != models.IncidentOpen {
			continue
		}
		fmt.Fprintf(a.out, "  [%s] %s\n", colorSeverity(row.Incident.Severity), row.Incident.Title)
	}
	fmt.Fprintln(a.out)

	bold.Fprintln(a.out, "ON SHIFT")
	fmt.Fprintf(a.out, "  %d of %d scheduled\n", ov.Schedules.OnShift, len(ov.Schedules.Rows))

	return ov
}

// Work prints work order cards grouped by status. A non-empty status limits
// output to that group.
func (a *BoardAdapter) Work(now time.Time, status models.WorkStatus) *primary.WorkBoard {
	board := a.service.WorkBoard(now)

	if board.Total == 0 {
		fmt.Fprintln(a.out, "No work orders found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Create one:")
		fmt.Fprintln(a.out, `  gridboard work add --title "Transformer Maintenance" --location "Jayanagar" --end 4h`)
		return board
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tLOCATION\tPRIORITY\tREMAINING\tCREW\tSTATUS")
	fmt.Fprintln(w, "--\t-----\t--------\t--------\t---------\t----\t------")

	for _, col := range board.Columns {
		if status != "" && col.Status != status {
			continue
		}
		for _, card := range col.Cards {
			a.workRow(w, card)
		}
	}
	if status == "" {
		for _, card := range board.Unknown {
			a.workRow(w, card)
		}
	}

	w.Flush()
	return board
}

func (a *BoardAdapter) workRow(w io.Writer, card primary.WorkCard) {
	remaining := card.Remaining
	if card.Overdue {
		remaining = color.New(color.FgRed).Sprint(remaining)
	}

	crew := make([]string, 0, len(card.Assignees)+len(card.MissingIDs))
	for _, e := range card.Assignees {
		crew = append(crew, e.Name)
	}
	for _, id := range card.MissingIDs {
		crew = append(crew, dim(id+"?"))
	}
	if len(crew) == 0 {
		crew = append(crew, dim("unassigned"))
	}

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		card.Order.ID,
		card.Order.Title,
		card.Order.Location,
		colorPriority(card.Order.Priority),
		remaining,
		strings.Join(crew, ", "),
		colorWorkStatus(card.Order.Status),
	)
}

// Grid prints grid statistics and one row per section.
func (a *BoardAdapter) Grid() *primary.GridBoard {
	board := a.service.GridBoard()

	if board.Total == 0 {
		fmt.Fprintln(a.out, "No grid sections found.")
		return board
	}

	a.gridSummary(board)
	fmt.Fprintln(a.out)

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tREGION\tLOAD\tCONNECTED TO\tSTATUS")
	fmt.Fprintln(w, "--\t----\t------\t----\t------------\t------")

	for _, row := range board.Sections {
		peers := append([]string{}, row.Neighbors...)
		for _, id := range row.Dangling {
			peers = append(peers, dim(id+"?"))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Section.ID,
			row.Section.Name,
			row.Section.Region,
			colorBand(row.Band, fmt.Sprintf("%d%%", row.Section.Load)),
			strings.Join(peers, ", "),
			colorGridStatus(row.Section.Status),
		)
	}

	w.Flush()
	return board
}

func (a *BoardAdapter) gridSummary(board *primary.GridBoard) {
	avg := "n/a"
	if board.AvgLoadDefined {
		avg = fmt.Sprintf("%d%%", board.AvgLoad)
	}
	fmt.Fprintf(a.out, "  Online: %d   Offline: %d   Maintenance: %d   Alert: %d   Avg load: %s\n",
		board.Online, board.Offline, board.Maintenance, board.Alert, avg)
}

// Chart prints a horizontal load bar for every section that is not offline.
func (a *BoardAdapter) Chart() *primary.GridBoard {
	board := a.service.GridBoard()

	if len(board.Chart) == 0 {
		fmt.Fprintln(a.out, "No grid sections to chart.")
		return board
	}

	width := 0
	for _, bar := range board.Chart {
		if len(bar.Label) > width {
			width = len(bar.Label)
		}
	}
	for _, bar := range board.Chart {
		fmt.Fprintf(a.out, "%-*s %s %3d%%\n", width, bar.Label, LoadBar(bar.Load), bar.Load)
	}
	return board
}

// LoadBar draws load as a fixed-width bar of filled and empty cells.
func LoadBar(load int) string {
	if load < 0 {
		load = 0
	}
	if load > 100 {
		load = 100
	}
	filled := load * chartWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", chartWidth-filled)
}

// Incidents prints incidents most severe first.
func (a *BoardAdapter) Incidents() *primary.IncidentBoard {
	board := a.service.IncidentBoard()

	if len(board.Rows) == 0 {
		fmt.Fprintln(a.out, "No incidents reported.")
		return board
	}

	fmt.Fprintf(a.out, "Open: %d   Resolved: %d\n\n", board.Open, board.Resolved)

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tREPORTED BY\tREPORTED\tSEVERITY")
	fmt.Fprintln(w, "--\t-----\t------\t-----------\t--------\t--------")

	for _, row := range board.Rows {
		reporter := row.ReporterName
		if !row.ReporterKnown {
			reporter = dim(row.Incident.ReportedBy + "?")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Incident.ID,
			row.Incident.Title,
			row.Incident.Status,
			reporter,
			row.Incident.CreatedAt.Local().Format("2006-01-02 15:04"),
			colorSeverity(row.Incident.Severity),
		)
	}

	w.Flush()
	return board
}

// Schedules prints every shift with its employee and on-shift marker.
func (a *BoardAdapter) Schedules(now time.Time) *primary.ScheduleBoard {
	board := a.service.ScheduleBoard(now)

	if len(board.Rows) == 0 {
		fmt.Fprintln(a.out, "No schedules found.")
		return board
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tEMPLOYEE\tTYPE\tSTART\tEND\tHOURS\tNOW")
	fmt.Fprintln(w, "--\t--------\t----\t-----\t---\t-----\t---")

	for _, row := range board.Rows {
		name := row.EmployeeName
		if !row.EmployeeKnown {
			name = dim(row.Schedule.EmployeeID + "?")
		}
		marker := ""
		if row.OnShift {
			marker = color.New(color.FgHiGreen).Sprint("on shift")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.1f\t%s\n",
			row.Schedule.ID,
			name,
			row.TypeLabel,
			row.Schedule.ShiftStart.Local().Format("Mon 15:04"),
			row.Schedule.ShiftEnd.Local().Format("Mon 15:04"),
			row.Duration.Hours(),
			marker,
		)
	}

	w.Flush()
	return board
}

// Employees prints the employee directory.
func (a *BoardAdapter) Employees() []models.Employee {
	employees := a.service.EmployeeDirectory()

	if len(employees) == 0 {
		fmt.Fprintln(a.out, "No employees found.")
		return employees
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROLE\tDEPARTMENT\tCONTACT")
	fmt.Fprintln(w, "--\t----\t----\t----------\t-------")

	for _, e := range employees {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Role, e.Department, e.Contact)
	}

	w.Flush()
	return employees
}
