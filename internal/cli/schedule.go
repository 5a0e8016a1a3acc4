package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/wire"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "View and edit shift schedules",
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shifts and who is on shift now",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, _, err := requireSession(commandContext(cmd))
		if err != nil {
			return err
		}

		store := wire.Store()
		if err := loadAll(ctx, store, "load schedules", store.FetchEmployees, store.FetchSchedules); err != nil {
			return err
		}

		wire.BoardAdapter().Schedules(time.Now())
		return nil
	},
}

var scheduleSetCmd = &cobra.Command{
	Use:   "set [schedule-id]",
	Short: "Create or replace a shift",
	Long: `Create or replace a shift by ID.

Examples:
  gridboard schedule set SCH010 --employee EMP002 --start "2025-01-16 06:00" --end "2025-01-16 14:00"
  gridboard schedule set SCH011 --employee EMP005 --start 2h --end 14h --type on-call`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, _, err := requireSession(commandContext(cmd))
		if err != nil {
			return err
		}
		employee, _ := cmd.Flags().GetString("employee")
		startRaw, _ := cmd.Flags().GetString("start")
		endRaw, _ := cmd.Flags().GetString("end")
		shiftType, _ := cmd.Flags().GetString("type")

		now := time.Now()
		start, err := parseWhen(startRaw, now)
		if err != nil {
			return err
		}
		end, err := parseWhen(endRaw, now)
		if err != nil {
			return err
		}

		store := wire.Store()
		store.UpdateSchedule(ctx, models.Schedule{
			ID:         args[0],
			EmployeeID: employee,
			ShiftStart: start,
			ShiftEnd:   end,
			Type:       shiftType,
		})
		if err := storeResult(store, "update schedule"); err != nil {
			return err
		}

		fmt.Printf("✓ Saved schedule %s\n", args[0])
		return nil
	},
}

// ScheduleCmd returns the schedule command
func ScheduleCmd() *cobra.Command {
	scheduleSetCmd.Flags().StringP("employee", "e", "", "Employee ID (required)")
	scheduleSetCmd.Flags().String("start", "", "Shift start (required)")
	scheduleSetCmd.Flags().String("end", "", "Shift end (required)")
	scheduleSetCmd.Flags().StringP("type", "t", models.ShiftRegular, "Shift type (regular, on-call, overtime, ...)")
	scheduleSetCmd.MarkFlagRequired("employee")
	scheduleSetCmd.MarkFlagRequired("start")
	scheduleSetCmd.MarkFlagRequired("end")

	scheduleCmd.AddCommand(scheduleListCmd)
	scheduleCmd.AddCommand(scheduleSetCmd)

	return scheduleCmd
}
