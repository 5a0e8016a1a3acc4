package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/core/grid"
	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/wire"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Inspect and update grid sections",
}

var gridStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show grid statistics and sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, _, err := requireSession(commandContext(cmd))
		if err != nil {
			return err
		}

		store := wire.Store()
		store.FetchGridSections(ctx)
		if err := storeResult(store, "load grid sections"); err != nil {
			return err
		}

		wire.BoardAdapter().Grid()
		return nil
	},
}

var gridChartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Chart load for every section that is not offline",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, _, err := requireSession(commandContext(cmd))
		if err != nil {
			return err
		}

		store := wire.Store()
		store.FetchGridSections(ctx)
		if err := storeResult(store, "load grid sections"); err != nil {
			return err
		}

		wire.BoardAdapter().Chart()
		return nil
	},
}

var gridSetCmd = &cobra.Command{
	Use:   "set [section-id]",
	Short: "Set a section's status and load",
	Long: `Set a section's status and load.

Flags not given keep the section's current value.

Examples:
  gridboard grid set GRID004 --status maintenance
  gridboard grid set GRID006 --status online --load 35`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, _, err := requireSession(commandContext(cmd))
		if err != nil {
			return err
		}
		id := args[0]

		store := wire.Store()
		store.FetchGridSections(ctx)
		if err := storeResult(store, "load grid sections"); err != nil {
			return err
		}
		section, ok := grid.FindSection(store.Snapshot().GridSections, id)
		if !ok {
			return fmt.Errorf("grid section %s not found", id)
		}

		status := section.Status
		if cmd.Flags().Changed("status") {
			raw, _ := cmd.Flags().GetString("status")
			status = models.GridStatus(raw)
		}
		load := section.Load
		if cmd.Flags().Changed("load") {
			load, _ = cmd.Flags().GetInt("load")
		}

		store.UpdateGridSection(ctx, id, status, load)
		if err := storeResult(store, "update grid section"); err != nil {
			return err
		}

		fmt.Printf("✓ %s: %s at %d%%\n", section.Name, status, load)
		return nil
	},
}

// GridCmd returns the grid command
func GridCmd() *cobra.Command {
	gridSetCmd.Flags().String("status", "", "New status (online, offline, maintenance, alert)")
	gridSetCmd.Flags().Int("load", 0, "New load percentage (0-100)")

	gridCmd.AddCommand(gridStatusCmd)
	gridCmd.AddCommand(gridChartCmd)
	gridCmd.AddCommand(gridSetCmd)

	return gridCmd
}
