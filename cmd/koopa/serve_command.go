package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"koopa/internal/database"
	"koopa/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if _, err := os.Stat(cfg.Server.PublicDir); os.IsNotExist(err) {
				ctx.logger.WithField("public_dir", cfg.Server.PublicDir).Warn("Public directory does not exist; only the catalog routes will respond")
			}

			var db *database.Database
			if cfg.Export.Enabled {
				db, err = database.NewDatabase(cfg.Export.SQLitePath, ctx.logger)
				if err != nil {
					return fmt.Errorf("open export database: %w", err)
				}
				defer db.Close()
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			catalogServer := server.NewCatalogServer(cfg, ctx.logger, db)
			return catalogServer.Run(runCtx)
		},
	}
}
