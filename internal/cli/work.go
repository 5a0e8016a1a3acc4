package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/wire"
)

var workCmd = &cobra.Command{
	Use:   "work",
	Short: "Manage field work orders",
	Long:  "List work orders by status, update their status, and create new ones",
}

var workListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work orders grouped by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, _, err := requireSession(commandContext(cmd))
		if err != nil {
			return err
		}
		status, _ := cmd.Flags().GetString("status")
		if status != "" {
			if _, err := models.ParseWorkStatus(status); err != nil {
				return err
			}
		}

		store := wire.Store()
		if err := loadAll(ctx, store, "load work orders", store.FetchEmployees, store.FetchWorkOrders); err != nil {
			return err
		}

		wire.BoardAdapter().Work(time.Now(), models.WorkStatus(status))
		return nil
	},
}

var workUpdateCmd = &cobra.Command{
	Use:   "update [work-order-id] [status]",
	Short: "Change a work order's status",
	Long: `Change a work order's status.

Status is one of: pending, in-progress, completed, delayed.

Examples:
  gridboard work update WRK002 in-progress
  gridboard work update WRK005 delayed --notes "Waiting on permit"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, _, err := requireSession(commandContext(cmd))
		if err != nil {
			return err
		}
		notes, _ := cmd.Flags().GetString("notes")

		store := wire.Store()
		store.UpdateWorkStatus(ctx, args[0], models.WorkStatus(args[1]), notes)
		if err := storeResult(store, "update work order"); err != nil {
			return err
		}

		fmt.Printf("✓ Work order %s is now %s\n", args[0], args[1])
		return nil
	},
}

var workAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a work order",
	Long: `Create a work order.

Times accept RFC 3339, '2006-01-02 15:04', or a duration from now.

Examples:
  gridboard work add --title "Meter Replacement" --location "Indiranagar" --end 3h --crew EMP001,EMP002
  gridboard work add --title "Pole Inspection" --location "Hebbal" --priority high --start 1h --end 5h`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, _, err := requireSession(commandContext(cmd))
		if err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		location, _ := cmd.Flags().GetString("location")
		priority, _ := cmd.Flags().GetString("priority")
		status, _ := cmd.Flags().GetString("status")
		startRaw, _ := cmd.Flags().GetString("start")
		endRaw, _ := cmd.Flags().GetString("end")
		crew, _ := cmd.Flags().GetString("crew")

		now := time.Now()
		start, err := parseWhen(startRaw, now)
		if err != nil {
			return err
		}
		end, err := parseWhen(endRaw, now)
		if err != nil {
			return err
		}

		draft := models.WorkOrderDraft{
			Title:               title,
			Description:         description,
			Location:            location,
			Status:              models.WorkStatus(status),
			Priority:            models.Priority(priority),
			StartTime:           start,
			EstimatedEndTime:    end,
			AssignedEmployeeIDs: splitIDs(crew),
		}

		store := wire.Store()
		store.AddNewWork(ctx, draft)
		if err := storeResult(store, "create work order"); err != nil {
			return err
		}

		fmt.Printf("✓ Created work order: %s\n", title)
		return nil
	},
}

// WorkCmd returns the work command
func WorkCmd() *cobra.Command {
	// Add flags
	workListCmd.Flags().StringP("status", "s", "", "Only show this status (pending, in-progress, completed, delayed)")
	workUpdateCmd.Flags().StringP("notes", "n", "", "Notes for the status change")
	workAddCmd.Flags().StringP("title", "t", "", "Work order title (required)")
	workAddCmd.Flags().StringP("description", "d", "", "Work order description")
	workAddCmd.Flags().StringP("location", "l", "", "Work site (required)")
	workAddCmd.Flags().StringP("priority", "p", string(models.PriorityMedium), "Priority (low, medium, high, critical)")
	workAddCmd.Flags().String("status", string(models.WorkPending), "Initial status")
	workAddCmd.Flags().String("start", "", "Start time (default now)")
	workAddCmd.Flags().String("end", "", "Estimated end time (required)")
	workAddCmd.Flags().String("crew", "", "Comma-separated employee IDs")
	workAddCmd.MarkFlagRequired("title")
	workAddCmd.MarkFlagRequired("location")
	workAddCmd.MarkFlagRequired("end")

	// Add subcommands
	workCmd.AddCommand(workListCmd)
	workCmd.AddCommand(workUpdateCmd)
	workCmd.AddCommand(workAddCmd)

	return workCmd
}
