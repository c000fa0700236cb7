package topping

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pizzeria/internal/cli"
)

// DeleteCmd returns the topping delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a topping",
		Long: `Delete a topping by ID. Pizzas lose the topping too.

Examples:
  pizzeria topping delete --id=3
`,
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "Topping ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		panic(err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, _ := cmd.Flags().GetInt("id")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}

	if err := cliInstance.API.DeleteTopping(ctx, id); err != nil {
		return cliInstance.ReportAPIError(formatter, err)
	}

	return formatter.Success(fmt.Sprintf("Topping %d deleted", id), cli.ToppingView{ID: id})
}
