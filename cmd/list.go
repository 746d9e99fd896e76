// cmd/list.go
package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/markb/migrename/internal/migration"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List migration files and their rename status",
	Long: `Show migration files from the migrations directory and whether each would be renamed.

Files with a 14-digit timestamp version show the unix-millisecond version
they would be renamed to. Files already carrying a millisecond version show
as up-to-date. Anything else in the directory is not listed.

Examples:
  migrename list
  migrename list --migrations-dir db/migrations`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("migrations-dir")

		pending, err := migration.ReadFromDir(dir)
		if err != nil {
			return fmt.Errorf("failed to read migrations: %w", err)
		}
		renamed, err := migration.ReadRenamed(dir)
		if err != nil {
			return fmt.Errorf("failed to read renamed migrations: %w", err)
		}

		if len(pending)+len(renamed) == 0 {
			fmt.Println("No migrations found in", dir)
			return nil
		}

		type row struct {
			version, name, status string
		}

		var rows []row
		for _, m := range pending {
			ms, err := m.UnixMilliVersion()
			if err != nil {
				return fmt.Errorf("migration %s: %w", m.Path, err)
			}
			rows = append(rows, row{m.Version, m.Name, "rename -> " + ms})
		}
		for _, m := range renamed {
			rows = append(rows, row{m.Version, m.Name, "up-to-date"})
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].version != rows[j].version {
				return rows[i].version < rows[j].version
			}
			return rows[i].name < rows[j].name
		})

		// Print table
		fmt.Printf("%-16s %-30s %s\n", "VERSION", "NAME", "STATUS")
		fmt.Println(strings.Repeat("-", 60))
		for _, r := range rows {
			fmt.Printf("%-16s %-30s %s\n", r.version, r.name, r.status)
		}
		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("%d up-to-date, %d to rename\n", len(renamed), len(pending))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().String("migrations-dir", "src/migrations", "Directory with migration files")
}
