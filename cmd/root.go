package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pizzeria/internal/cli"
	"github.com/thenoetrevino/pizzeria/internal/cli/topping"
	"github.com/thenoetrevino/pizzeria/internal/config"
)

var rootCmd = NewRootCmd()

// NewRootCmd builds the pizzeria command tree
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pizzeria",
		Short: "Pizzeria - manage the topping menu from the terminal",
		Long: `Pizzeria manages the toppings served by a pizzeriad API.

Run "pizzeria form" for the interactive add-topping form, or use the
topping subcommands from scripts.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().String("api", "", "Topping API base URL (overrides "+config.EnvAPIURL+")")

	cmd.AddCommand(FormCmd())
	cmd.AddCommand(topping.ToppingCmd())

	return cmd
}

// setup loads config and stores the CLI in the command context
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if apiURL, _ := cmd.Flags().GetString("api"); apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	cli.InitStyles(cfg.ColorScheme)
	ctx := cli.WithCLI(cmd.Context(), cli.NewCLI(cfg.API.BaseURL))
	ctx = withConfig(ctx, cfg)
	cmd.SetContext(ctx)
	return nil
}

// ExecuteContext runs the command tree with ctx
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
