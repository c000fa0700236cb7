package topping

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pizzeria/internal/cli"
	"github.com/thenoetrevino/pizzeria/internal/client"
)

// AddCmd returns the topping add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a topping",
		Long: `Add a topping to the menu. The name is sent exactly as given.

Examples:
  pizzeria topping add --name=Pepperoni

  # JSON output for agents
  pizzeria topping add --name=Olives --json
`,
		RunE: runAdd,
	}

	cmd.Flags().String("name", "", "Topping name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		panic(err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		return cli.Report(formatter, cli.CodeValidation, "topping name cannot be empty", "")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}

	result := cliInstance.API.CreateTopping(ctx, name)
	if !result.IsOk() {
		message := result.Message()
		if message == "" {
			message = client.FallbackErrorMessage
		}
		return cli.Report(formatter, cli.CodeRejected, message, "")
	}

	return formatter.Success(fmt.Sprintf("Topping '%s' added", name), map[string]string{"name": name})
}
