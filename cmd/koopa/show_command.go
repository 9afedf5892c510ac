package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"koopa/internal/config"
	"koopa/internal/reader"
	"koopa/pkg/models"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the ranked catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			snapshot := reader.New(newSource(cfg)).Load(cmd.Context())
			out := cmd.OutOrStdout()

			if snapshot.State != reader.StateLoaded {
				if snapshot.Err != nil {
					ctx.logger.WithError(snapshot.Err).Warn("Catalog could not be loaded")
				}
				fmt.Fprintln(out, "No chart data available")
				return nil
			}

			tracks := snapshot.Tracks
			if limit > 0 && len(tracks) > limit {
				tracks = tracks[:limit]
			}
			fmt.Fprintln(out, renderTracks(tracks))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the first N tracks (0 = all)")
	return cmd
}

// newSource reads from a running site when reader.url is set, otherwise
// straight from the artifact on disk.
func newSource(cfg *config.Config) reader.Source {
	if cfg.Reader.URL == "" {
		return reader.FileSource{Path: cfg.Catalog.OutputPath}
	}
	return reader.HTTPSource{
		Client: &http.Client{Timeout: time.Duration(cfg.Reader.Timeout) * time.Second},
		URL:    strings.TrimRight(cfg.Reader.URL, "/") + reader.ArtifactPath,
	}
}

func renderTracks(tracks []models.TrackRecord) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Track", "Game", "Artist", "Spotify", "YouTube", "Ranking"})

	for _, t := range tracks {
		tw.AppendRow(table.Row{
			t.Rank,
			t.Track,
			t.Game,
			t.Artist,
			t.Spotify,
			reader.FormatViews(t.YouTube),
			fmt.Sprintf("%.2f", t.Ranking),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	return tw.Render()
}
