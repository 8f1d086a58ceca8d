package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	refreshAll      bool
	continueOnError bool
	yesConfirm      bool
	dryRun          bool
)

// refreshCmd replaces datasets from their feeds.
var refreshCmd = &cobra.Command{
	Use:   "refresh [dataset...]",
	Short: "Replace datasets from their feeds in object storage",
	Long: `Downloads each dataset's JSON feed and replaces the dataset with it.

Every replace clears the staging table, stages the feed and promotes it into
the target table. A failed dataset stops the run unless --continue-on-error
is given.

Examples:
  # Replace pair orders (with interactive confirmation)
  refresh pair_orders

  # Show what replacing the security master would change
  refresh security_master_ext --dry-run

  # Replace everything, non-interactive, keep going on failures
  refresh --all --yes --continue-on-error`,
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().BoolVar(&refreshAll, "all", false, "Refresh every registered dataset")
	refreshCmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "Log failed datasets and keep going")
	refreshCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the replace (non-interactive)")
	refreshCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print what each replace would change without writing")

	RootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := bootstrap(true)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	svc := a.feeds.Service()
	known := svc.Datasets()

	if !refreshAll && len(args) == 0 {
		return fmt.Errorf("no dataset given; use --all or one of: %s", strings.Join(known, ", "))
	}
	for _, name := range args {
		if !slices.Contains(known, name) {
			return fmt.Errorf("unknown dataset %q; known datasets: %s", name, strings.Join(known, ", "))
		}
	}

	targets := args
	if refreshAll {
		targets = known
	}
	a.logger.Info("Refresh planned", zap.Strings("datasets", targets), zap.String("bucket", a.cfg.Storage.Bucket))

	if dryRun {
		return previewRefresh(ctx, a, targets)
	}

	if !confirmDestructiveAction() {
		a.logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	if refreshAll {
		outcomes, err := svc.RefreshAll(ctx, continueOnError)
		for _, o := range outcomes {
			if o.Error != "" {
				a.logger.Warn("Dataset failed", zap.String("dataset", o.Dataset), zap.String("error", o.Error))
				continue
			}
			a.logger.Info("Dataset replaced", zap.String("dataset", o.Dataset), zap.Int("rows", o.Rows))
		}
		return err
	}

	failed := 0
	for _, name := range targets {
		res, err := svc.Refresh(ctx, name)
		if err != nil {
			if !continueOnError {
				return err
			}
			failed++
			a.logger.Error("Dataset refresh failed, continuing", zap.String("dataset", name), zap.Error(err))
			continue
		}
		a.logger.Info("Dataset replaced", zap.String("dataset", res.Dataset), zap.Int("rows", res.Rows))
	}
	if failed > 0 {
		a.logger.Warn("Refresh finished with failures", zap.Int("failed", failed), zap.Int("total", len(targets)))
	}
	return nil
}

// previewRefresh prints the plan of every target as indented JSON.
func previewRefresh(ctx context.Context, a *app, targets []string) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, name := range targets {
		plan, err := a.feeds.Service().Preview(ctx, name)
		if err != nil {
			return err
		}
		if err := enc.Encode(plan); err != nil {
			return err
		}
	}
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to replace the datasets: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
