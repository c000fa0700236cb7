package cmd

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pizzeria/internal/client"
	"github.com/thenoetrevino/pizzeria/internal/config"
	"github.com/thenoetrevino/pizzeria/internal/logging"
	"github.com/thenoetrevino/pizzeria/internal/tui"
)

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// FormCmd returns the interactive add-topping form command
func FormCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Open the add-topping form",
		RunE:  runForm,
	}
}

func runForm(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)

	closer, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		_ = closer.Close()
	}()

	api := client.New(cfg.API.BaseURL)
	slog.Info("form starting", "api", api.BaseURL())

	model := tui.InitialModel(ctx, api, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		slog.Error("Error running program", "error", err)
		return err
	}
	return nil
}
