package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verifyFeeds bool

// verifyCmd checks that every dataset's tables carry the expected columns.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check staging and target tables of every dataset",
	Long: `Inspects the staging and target table of every dataset and reports
columns that a replace would write but the table does not have.

With --feeds, also reports datasets that have no feed in the bucket.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyFeeds, "feeds", false, "Also check that every dataset has a feed object")
	RootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := bootstrap(verifyFeeds)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	svc := a.integrity.Service()
	report, err := svc.CheckSchema(ctx)
	if err != nil {
		return err
	}

	failed := 0
	for _, ds := range report.Datasets {
		if ds.Matched {
			a.logger.Info("Dataset ok", zap.String("dataset", ds.Dataset))
			continue
		}
		failed++
		for _, t := range ds.Tables {
			if t.Status == "ok" {
				continue
			}
			a.logger.Error("Dataset shape mismatch",
				zap.String("dataset", ds.Dataset),
				zap.String("table", t.Table),
				zap.String("role", t.Role),
				zap.Strings("missing_columns", t.MissingColumns),
				zap.String("error", t.Error),
			)
		}
	}

	if verifyFeeds {
		fr, err := svc.CheckFeeds(ctx)
		if err != nil {
			return err
		}
		if len(fr.Missing) > 0 {
			a.logger.Warn("Datasets without a feed", zap.Strings("missing", fr.Missing))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d datasets failed verification", failed, len(report.Datasets))
	}
	return nil
}
