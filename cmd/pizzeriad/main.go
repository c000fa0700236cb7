package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pizzeria/internal/api"
	"github.com/thenoetrevino/pizzeria/internal/app"
	"github.com/thenoetrevino/pizzeria/internal/config"
	"github.com/thenoetrevino/pizzeria/internal/database"
	"github.com/thenoetrevino/pizzeria/internal/logging"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	if err := newCmd().ExecuteContext(ctx); err != nil {
		slog.Error("pizzeriad error", "error", err)
		cancel()
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pizzeriad",
		Short:         "Serve the pizzeria topping and pizza API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().String("addr", "", "Listen address (overrides "+config.EnvAddr+")")
	cmd.Flags().String("db", "", "SQLite database path (overrides "+config.EnvDBPath+")")
	cmd.Flags().Bool("debug", false, "Log at debug level")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	logger := logging.InitStderr(level)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.Server.DBPath = dbPath
	}

	db, err := database.InitDB(ctx, cfg.Server.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	application := app.New(database.NewRepository(db), app.WithLogger(logger))

	server, err := api.NewServer(cfg.Server.Addr, application, api.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("pizzeriad starting", "addr", server.Addr(), "db_path", cfg.Server.DBPath, "pid", os.Getpid())

	// Blocks until shutdown
	if err := server.Start(ctx); err != nil {
		return err
	}

	logger.Info("pizzeriad shutting down gracefully")
	return nil
}
