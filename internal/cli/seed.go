package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/db"
	"github.com/example/gridboard/internal/wire"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load development fixtures into the local database",
	Long: `Load the development employees, work orders, grid sections, incidents,
and schedules into the configured sqlite or postgres database.

Existing records with the same IDs are left untouched. Times are relative
to now so the board shows live countdowns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, dialect, err := wire.Database()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.SeedFixtures(conn, dialect, time.Now()); err != nil {
			return err
		}

		fmt.Println("✓ Seeded development fixtures")
		fmt.Println()
		fmt.Println("Log in with:")
		fmt.Println(`  gridboard login "Rajesh Kumar" EMP001`)
		return nil
	},
}

// SeedCmd returns the seed command.
func SeedCmd() *cobra.Command {
	return seedCmd
}
