package cmd

import (
	"fmt"
	"os"

	"github.com/markb/migrename/internal/log"
	"github.com/spf13/cobra"
)

// Version information set via ldflags at build time
var (
	Version   = "dev"
	BuildTime = ""
	GitCommit = ""
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:     "migrename",
	Short:   "Plan migration file renames to unix-millisecond versions",
	Long:    `Plans the renaming of 14-digit timestamp migration files to unix-epoch-millisecond versions, together with the SQL updates that keep the migrations tracking table in step.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init(&log.Config{Level: logLevel, Format: "text"})
	},
}

func init() {
	// Set version template to include build info when available
	rootCmd.SetVersionTemplate("migrename version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
