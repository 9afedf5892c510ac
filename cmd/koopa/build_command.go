package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"koopa/internal/catalog"
	"koopa/internal/database"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Convert the source spreadsheet into the catalog JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var exporter catalog.Exporter
			if cfg.Export.Enabled {
				db, err := database.NewDatabase(cfg.Export.SQLitePath, ctx.logger)
				if err != nil {
					return fmt.Errorf("open export database: %w", err)
				}
				defer db.Close()
				exporter = db
			}

			builder := catalog.NewBuilder(cfg.Catalog, ctx.logger, exporter)
			summary, err := builder.Run(cmd.Context())
			if err != nil {
				ctx.logger.WithError(err).WithField("source_path", cfg.Catalog.SourcePath).Error("Catalog build failed")
				return err
			}

			ctx.logger.WithFields(logrus.Fields{
				"build_id": summary.BuildID,
				"output":   summary.OutputPath,
			}).Debug("Build finished")
			fmt.Fprintf(cmd.OutOrStdout(), "Converted %d tracks to %s\n", summary.Stats.Rows, summary.OutputPath)
			return nil
		},
	}
}
