package main

import (
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	screenshots "github.com/gcxixi/find-screenshots-cli"
)

// renderMatchTable renders the matched files as a rounded table with the
// evidence kind per row.
func renderMatchTable(matches []screenshots.Match) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Found %d screenshot(s)", len(matches))
	tw.AppendHeader(table.Row{"Name", "Directory", "Matched By"})

	for _, m := range matches {
		tw.AppendRow(table.Row{m.Name, relDir(m.RelPath), evidenceLabel(m)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// relDir is the directory component of a relative match path.
func relDir(relPath string) string {
	return filepath.Dir(relPath)
}

func evidenceLabel(m screenshots.Match) string {
	if m.ByName {
		return "filename"
	}
	return "image features"
}
