package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/termfab/internal/config"
	"github.com/bnema/termfab/internal/logging"
	"github.com/bnema/termfab/internal/store"
	"github.com/bnema/termfab/internal/ui"
)

// runWorkspace wires config, storage, and the workspace model together and
// runs the TUI until it quits.
func runWorkspace(cmd *cobra.Command, _ []string) error {
	mgr, err := config.NewManager()
	if err != nil {
		return err
	}
	if err := mgr.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(cmd.Context(), logger)

	db, err := store.Open(ctx, cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close state database")
		}
	}()

	workspace := ui.NewWorkspace(ctx, cfg, store.NewPositionRepository(db))
	program := tea.NewProgram(workspace,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	// Live config reload: restyle the running control on file changes.
	if err := mgr.Watch(); err != nil {
		logger.Warn().Err(err).Msg("config watching disabled")
	}
	mgr.OnConfigChange(func(c *config.Config) {
		program.Send(ui.ConfigChangedMsg{Config: c})
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		return err
	})
	g.Go(func() error {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case <-gctx.Done():
			return nil
		case sig := <-sigCh:
			logger.Info().Str("signal", sig.String()).Msg("shutting down")
			program.Quit()
			return nil
		}
	})
	return g.Wait()
}
