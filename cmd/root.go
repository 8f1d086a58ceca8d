package cmd

import (
	"fmt"
	"os"

	"backoffice/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the backoffice command; subcommands register themselves in init.
var RootCmd = &cobra.Command{
	Use:   "backoffice",
	Short: "Trading back office data service",
	Long: `Back office serves pair orders and security reference data.
Datasets are replaced as a whole through staging tables, from the HTTP API
or from JSON feeds kept in S3-compatible storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits non-zero when a command fails.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		reportFailure(err)
		os.Exit(1)
	}
}

// reportFailure logs err on the console; the configured logger may be the
// thing that failed to load.
func reportFailure(err error) {
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	l.Error("Command failed", zap.Error(err))
	_ = l.Sync()
}
