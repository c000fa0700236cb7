package topping

import (
	"github.com/spf13/cobra"
)

// ToppingCmd returns the topping parent command
func ToppingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topping",
		Short: "Manage toppings",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
