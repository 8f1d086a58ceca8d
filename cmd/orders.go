package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var showTemplates bool

// ordersCmd prints reconstructed pair orders or templates as JSON.
var ordersCmd = &cobra.Command{
	Use:   "orders [id]",
	Short: "Print pair orders (or templates) as JSON",
	Long: `Reads the pair order table, pairs each parent order's buy and sell legs
and prints the result as JSON. With an id only that order is printed.

Examples:
  orders
  orders P-1042
  orders --templates`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOrders,
}

func init() {
	ordersCmd.Flags().BoolVar(&showTemplates, "templates", false, "Print pair-order templates instead of orders")
	RootCmd.AddCommand(ordersCmd)
}

func runOrders(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	svc := a.pairOrders.Service()
	var out any
	switch {
	case showTemplates && len(args) == 1:
		out, err = svc.GetTemplate(ctx, args[0])
	case showTemplates:
		out, err = svc.ListTemplates(ctx)
	case len(args) == 1:
		out, err = svc.GetOrder(ctx, args[0])
	default:
		out, err = svc.ListOrders(ctx)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
