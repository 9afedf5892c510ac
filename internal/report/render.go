package report

import (
	"fmt"
	"io"
	"strings"

	"koopa/internal/reader"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Render writes the report as a set of terminal tables. Counts are formatted
// for the given locale.
func (r *Report) Render(w io.Writer, tag language.Tag) error {
	p := message.NewPrinter(tag)

	sections := []string{
		r.renderOverview(p),
		r.renderCharts(p),
		r.renderSuperstars(p),
		r.renderSongTypes(p),
	}
	if len(r.MissingArtwork) > 0 {
		sections = append(sections, r.renderMissingArtwork())
	}
	if r.Export != nil {
		sections = append(sections, r.renderExport(p))
	}

	_, err := io.WriteString(w, strings.Join(sections, "\n\n")+"\n")
	return err
}

func newTable(title string) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)
	return tw
}

func (r *Report) renderOverview(p *message.Printer) string {
	tw := newTable("Catalog")
	tw.AppendRows([]table.Row{
		{"Total tracks", p.Sprintf("%d", r.Total)},
		{"Nintendo tracks", p.Sprintf("%d (%.1f%%)", r.FranchiseTracks, r.FranchiseShare())},
		{"Superstar tracks", p.Sprintf("%d", len(r.Superstars))},
		{"Release years", r.yearRange()},
		{"Unique platforms", p.Sprintf("%d", len(r.Platforms))},
		{"Cleaned names", p.Sprintf("%d", r.CleanedNames)},
		{"With artwork", p.Sprintf("%d / %d", r.WithArtwork, r.Total)},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	return tw.Render()
}

func (r *Report) yearRange() string {
	if r.EarliestYear == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%d - %d", r.EarliestYear, r.LatestYear)
}

func (r *Report) renderCharts(p *message.Printer) string {
	tw := newTable("Dashboard readiness")
	tw.AppendHeader(table.Row{"Chart", "Field", "Present", "Ready"})
	for _, chart := range r.Charts {
		ready := "no"
		if chart.Ready(r.Total) {
			ready = "yes"
		}
		for i, f := range chart.Fields {
			name, status := "", ""
			if i == 0 {
				name, status = chart.Chart, ready
			}
			tw.AppendRow(table.Row{name, f.Field, p.Sprintf("%d / %d", f.Present, r.Total), status})
		}
		tw.AppendSeparator()
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignRight}})
	return tw.Render()
}

func (r *Report) renderSuperstars(p *message.Printer) string {
	tw := newTable("Superstar tracks")
	tw.AppendHeader(table.Row{"#", "Track", "Game", "Spotify", "YouTube", "Reach"})
	for _, t := range r.Superstars {
		tw.AppendRow(table.Row{
			t.Rank,
			t.Track,
			t.Game,
			t.Spotify,
			reader.FormatViews(t.YouTube),
			p.Sprintf("%d", Reach(t)),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	return tw.Render()
}

func (r *Report) renderSongTypes(p *message.Printer) string {
	tw := newTable("Song types")
	tw.AppendHeader(table.Row{"Type", "Tracks"})
	for _, tc := range r.SongTypes {
		tw.AppendRow(table.Row{tc.Type, p.Sprintf("%d", tc.Count)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	return tw.Render()
}

func (r *Report) renderMissingArtwork() string {
	tw := newTable("Missing artwork")
	tw.AppendHeader(table.Row{"#", "Track", "Suggested path"})
	for _, s := range r.MissingArtwork {
		tw.AppendRow(table.Row{s.Rank, s.Track, s.Suggested})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	return tw.Render()
}

func (r *Report) renderExport(p *message.Printer) string {
	c := r.Export
	status := "in sync"
	if !c.InSync() {
		status = "stale, rebuild with export enabled"
	}

	mismatched := "none"
	if len(c.Mismatched) > 0 {
		ranks := make([]string, len(c.Mismatched))
		for i, rank := range c.Mismatched {
			ranks[i] = p.Sprintf("%d", rank)
		}
		mismatched = strings.Join(ranks, ", ")
	}

	tw := newTable("Dashboard export")
	tw.AppendRows([]table.Row{
		{"Catalog tracks", p.Sprintf("%d", c.ArtifactTracks)},
		{"Exported tracks", p.Sprintf("%d", c.ExportedTracks)},
		{"Mismatched ranks", mismatched},
		{"Status", status},
	})
	return tw.Render()
}
