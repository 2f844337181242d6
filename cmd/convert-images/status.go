package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"pixpress/internal/convert"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

// printOutcomes writes one status line per encoder invocation, colorized
// when the destination is a terminal.
func printOutcomes(w io.Writer, outcomes []convert.Outcome) {
	colorize := false
	if file, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}
	for _, outcome := range outcomes {
		fmt.Fprintln(w, renderStatusLine(outcome, colorize))
	}
}

func renderStatusLine(outcome convert.Outcome, colorize bool) string {
	label := "ok"
	color := ansiGreen
	if outcome.Err != nil {
		label = "failed"
		color = ansiRed
	}
	line := fmt.Sprintf("  [%-6s] %s", label, formatOutcomeLabel(outcome))
	if outcome.Err != nil {
		line += fmt.Sprintf(" (%v)", outcome.Err)
	}
	if colorize {
		return color + line + ansiReset
	}
	return line
}
