package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/termfab/internal/config"
	"github.com/bnema/termfab/internal/logging"
	"github.com/bnema/termfab/internal/store"
)

// NewPositionCmd creates the position maintenance command.
func NewPositionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position",
		Short: "Inspect or reset the saved launcher position",
	}
	cmd.AddCommand(newPositionShowCmd(), newPositionResetCmd())
	return cmd
}

func newPositionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved launcher position",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, db, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			pos, ok, err := store.NewPositionRepository(db).Load(ctx)
			if err != nil {
				return err
			}
			if !ok {
				cmd.Println("no saved position (launcher anchors to the bottom-right corner)")
				return nil
			}
			cmd.Printf("x=%d y=%d\n", pos.X, pos.Y)
			return nil
		},
	}
}

func newPositionResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved position and return to the default anchor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, db, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := store.NewPositionRepository(db).Clear(ctx); err != nil {
				return err
			}
			cmd.Println("position reset")
			return nil
		},
	}
}

// openStore loads config and opens the state database for maintenance
// commands.
func openStore(ctx context.Context) (context.Context, *sql.DB, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx = logging.WithContext(ctx, logger)

	db, err := store.Open(ctx, cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}
	return ctx, db, nil
}
