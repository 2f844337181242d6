package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"pixpress/internal/convert"
	"pixpress/internal/ledger"
)

func renderSummaryTable(result *convert.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Run", "Directory", "Converted", "Failed", "Elapsed"})
	tw.AppendRow(table.Row{
		shortID(result.RunID),
		result.Directory,
		result.Succeeded(),
		result.Failed(),
		result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond).String(),
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return tw.Render()
}

func renderHistoryTable(runs []ledger.Run) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Run", "Started", "Directory", "Total", "Failed"})
	for _, run := range runs {
		tw.AppendRow(table.Row{
			shortID(run.ID),
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Directory,
			strconv.Itoa(run.Total),
			strconv.Itoa(run.Failed),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return tw.Render()
}

// shortID trims a uuid to its first group for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatOutcomeLabel(outcome convert.Outcome) string {
	return fmt.Sprintf("%s -> %s", outcome.Source, outcome.Output)
}
