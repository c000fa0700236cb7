package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/thenoetrevino/pizzeria/cmd"
	"github.com/thenoetrevino/pizzeria/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		cancel()
		os.Exit(cli.ExitError)
	}
}
