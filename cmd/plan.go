// cmd/plan.go
package cmd

import (
	"fmt"
	"os"

	"github.com/markb/migrename/internal/log"
	"github.com/markb/migrename/internal/migration"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print rename commands and SQL updates for migration files",
	Long: `Plan the renaming of 14-digit timestamp migrations to unix-epoch-millisecond versions.

The 14-digit version (YYYYMMDDHHmmss) is interpreted as UTC. The plan has two
sections: shell mv commands for the files, and SQL updates that keep the
tracking table's name column consistent with the new file names. Nothing is
renamed and no database is touched; review the output, then run it.

Examples:
  # Plan against the default src/migrations directory
  migrename plan

  # Pipe the mv section straight into a shell after review
  migrename plan | tee rename.plan

  # Write the plan to a file
  migrename plan -o rename.plan

  # A different tree and tracking table
  migrename plan --migrations-dir db/migrations --table schema_migrations`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("migrations-dir")
		table, _ := cmd.Flags().GetString("table")
		outputPath, _ := cmd.Flags().GetString("output")

		plan, err := migration.BuildPlan(dir, table)
		if err != nil {
			return fmt.Errorf("failed to build rename plan: %w", err)
		}

		log.Debug("rename plan built", "dir", dir, "renames", len(plan.Moves))

		report := plan.Render()
		if outputPath != "" {
			if err := os.WriteFile(outputPath, []byte(report), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			log.Info("plan written", "path", outputPath, "renames", len(plan.Moves))
		} else {
			fmt.Print(report)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().String("migrations-dir", "src/migrations", "Directory with migration files")
	planCmd.Flags().String("table", "inventory_schema_migrations", "Tracking table the SQL updates target")
	planCmd.Flags().StringP("output", "o", "", "Output file (stdout if not specified)")
}
