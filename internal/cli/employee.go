package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/wire"
)

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Browse the employee directory",
}

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, _, err := requireSession(commandContext(cmd))
		if err != nil {
			return err
		}

		store := wire.Store()
		store.FetchEmployees(ctx)
		if err := storeResult(store, "load employees"); err != nil {
			return err
		}

		wire.BoardAdapter().Employees()
		return nil
	},
}

// EmployeeCmd returns the employee command
func EmployeeCmd() *cobra.Command {
	employeeCmd.AddCommand(employeeListCmd)
	return employeeCmd
}
