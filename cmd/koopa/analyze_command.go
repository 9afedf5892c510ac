package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"koopa/internal/catalog"
	"koopa/internal/database"
	"koopa/internal/report"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Check the built catalog against the dashboard charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			tag, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("invalid language %q: %w", lang, err)
			}

			tracks, err := catalog.ReadFile(cfg.Catalog.OutputPath)
			if err != nil {
				return fmt.Errorf("read catalog: %w", err)
			}

			r := report.Analyze(tracks)
			if cfg.Export.Enabled {
				db, err := database.NewDatabase(cfg.Export.SQLitePath, ctx.logger)
				if err != nil {
					return fmt.Errorf("open export database: %w", err)
				}
				defer db.Close()

				exported, err := db.GetAllTracks()
				if err != nil {
					return fmt.Errorf("read export database: %w", err)
				}
				r.Export = report.CheckExport(tracks, exported)
				if !r.Export.InSync() {
					ctx.logger.WithField("mismatched", len(r.Export.Mismatched)).Warn("Dashboard export differs from the catalog")
				}
			}

			return r.Render(cmd.OutOrStdout(), tag)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "Language used to format counts")
	return cmd
}
