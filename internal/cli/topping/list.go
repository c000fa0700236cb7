package topping

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pizzeria/internal/cli"
)

const tableWidth = 80

// ListCmd returns the topping list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List toppings",
		Long: `List every topping on the menu.

Examples:
  # Human-readable table
  pizzeria topping list

  # JSON output for agents
  pizzeria topping list --json

  # Quiet mode (one ID per line)
  pizzeria topping list --quiet
`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}

	toppings, err := cliInstance.API.ListToppings(ctx)
	if err != nil {
		return cliInstance.ReportAPIError(formatter, err)
	}
	views := cli.ToppingViews(toppings)
	out := cmd.OutOrStdout()

	switch {
	case formatter.JSON:
		return formatter.Success(fmt.Sprintf("%d toppings", len(views)), views)
	case formatter.Quiet:
		for _, v := range views {
			if _, err := fmt.Fprintf(out, "%d\n", v.ID); err != nil {
				return err
			}
		}
		return nil
	}

	if len(views) == 0 {
		_, err := fmt.Fprintln(out, cli.SubtleStyle.Render("No toppings yet"))
		return err
	}
	_, err = fmt.Fprintln(out, cli.RenderToppings(views, tableWidth))
	return err
}
