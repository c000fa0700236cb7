package topping

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pizzeria/internal/cli"
)

// RenameCmd returns the topping rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a topping",
		Long: `Rename a topping by ID.

Examples:
  pizzeria topping rename --id=3 --name="Black Olives"
`,
		RunE: runRename,
	}

	cmd.Flags().Int("id", 0, "Topping ID (required)")
	cmd.Flags().String("name", "", "New topping name (required)")
	for _, flag := range []string{"id", "name"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, _ := cmd.Flags().GetInt("id")
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		return cli.Report(formatter, cli.CodeValidation, "topping name cannot be empty", "")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}

	if err := cliInstance.API.UpdateTopping(ctx, id, name); err != nil {
		return cliInstance.ReportAPIError(formatter, err)
	}

	return formatter.Success(fmt.Sprintf("Topping %d renamed to '%s'", id, name),
		cli.ToppingView{ID: id, Name: name})
}
