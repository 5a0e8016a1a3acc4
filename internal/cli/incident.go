package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/wire"
)

var incidentCmd = &cobra.Command{
	Use:   "incident",
	Short: "Track safety incidents",
}

var incidentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List incidents, most severe first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, _, err := requireSession(commandContext(cmd))
		if err != nil {
			return err
		}

		store := wire.Store()
		if err := loadAll(ctx, store, "load incidents", store.FetchEmployees, store.FetchIncidents); err != nil {
			return err
		}

		wire.BoardAdapter().Incidents()
		return nil
	},
}

var incidentReportCmd = &cobra.Command{
	Use:   "report [title]",
	Short: "Report a safety incident",
	Long: `Report a safety incident as the logged-in employee.

Examples:
  gridboard incident report "Exposed conductor near bus stop" --severity high
  gridboard incident report "Oil leak" -d "Koramangala unit" -s critical`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, user, err := requireSession(commandContext(cmd))
		if err != nil {
			return err
		}
		description, _ := cmd.Flags().GetString("description")
		severity, _ := cmd.Flags().GetString("severity")

		store := wire.Store()
		store.AddIncident(ctx, models.IncidentDraft{
			Title:       args[0],
			Description: description,
			Severity:    models.Severity(severity),
			ReportedBy:  user.ID,
		})
		if err := storeResult(store, "report incident"); err != nil {
			return err
		}

		fmt.Printf("✓ Reported incident: %s\n", args[0])
		return nil
	},
}

// IncidentCmd returns the incident command
func IncidentCmd() *cobra.Command {
	incidentReportCmd.Flags().StringP("description", "d", "", "What happened")
	incidentReportCmd.Flags().StringP("severity", "s", "", "Severity (critical, high, medium, low; default low)")

	incidentCmd.AddCommand(incidentListCmd)
	incidentCmd.AddCommand(incidentReportCmd)

	return incidentCmd
}
