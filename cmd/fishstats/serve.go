package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ougirez/fishstats/internal/api"
	"github.com/ougirez/fishstats/internal/pkg/loader"
	"github.com/ougirez/fishstats/internal/pkg/logger"
	"github.com/ougirez/fishstats/internal/pkg/store"
	"github.com/spf13/cobra"
)

func getServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the datasets and start the HTTP API",
		RunE:  runServe,
	}

	cmd.Flags().String("addr", "", "listen address, overrides server.addr")
	cmd.Flags().String("data", "", "dataset directory, overrides data.base_path")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := store.NewStore()
	svc, err := api.NewAPIService(st, cfg)
	if err != nil {
		return fmt.Errorf("api.NewAPIService: %w", err)
	}

	snapshot, _, err := loader.LoadAll(ctx, cfg.Data)
	if err != nil {
		return fmt.Errorf("loader.LoadAll: %w", err)
	}
	st.Replace(snapshot)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof(ctx, "listening on %s", cfg.Server.Addr)
		errCh <- svc.Serve(cfg.Server.Addr)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Infof(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err = svc.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
