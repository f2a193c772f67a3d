package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/ryanoneill/envision/harness"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <before.json> <after.json>",
	Short: "Compare two snapshot files",
	Long:  `Compare two JSON snapshot files, reporting changed lines and, with --cells, every changed cell.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

var diffCells bool

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().BoolVar(&diffCells, "cells", false, "list every changed cell")
}

var (
	diffHeaderStyle  = lipgloss.NewStyle().Bold(true)
	diffRemovedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	diffAddedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	diffMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runDiff(cmd *cobra.Command, args []string) error {
	before, err := harness.LoadSnapshot(args[0])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[0], err)
	}
	after, err := harness.LoadSnapshot(args[1])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[1], err)
	}

	out := cmd.OutOrStdout()
	cellDiff := before.Diff(after)
	lineDiff := harness.DiffSnapshots(before, after)

	fmt.Fprintln(out, diffHeaderStyle.Render(
		fmt.Sprintf("frame %d -> %d", cellDiff.FromFrame, cellDiff.ToFrame)))

	if !cellDiff.HasChanges() && lineDiff.IsEmpty() {
		fmt.Fprintln(out, diffMutedStyle.Render("No differences"))
		return nil
	}

	if cellDiff.SizeChanged {
		fmt.Fprintln(out, diffMutedStyle.Render(fmt.Sprintf(
			"size changed: %dx%d -> %dx%d",
			before.Size.Width, before.Size.Height,
			after.Size.Width, after.Size.Height)))
	}
	if cellDiff.CursorMoved {
		fmt.Fprintln(out, diffMutedStyle.Render("cursor moved"))
	}
	fmt.Fprintf(out, "%d cell(s) changed, %d line(s) changed\n",
		cellDiff.ChangedCount(), lineDiff.Changes())

	for _, ld := range lineDiff.ChangedLines {
		fmt.Fprintln(out, diffMutedStyle.Render(fmt.Sprintf("Line %d:", ld.Line+1)))
		fmt.Fprintln(out, diffRemovedStyle.Render("  - "+ld.Left))
		fmt.Fprintln(out, diffAddedStyle.Render("  + "+ld.Right))
	}

	if diffCells {
		for _, ch := range cellDiff.ChangedCells {
			fmt.Fprintf(out, "  (%d,%d) %q -> %q\n",
				ch.Position.X, ch.Position.Y, ch.Old.Symbol, ch.New.Symbol)
		}
	}

	return nil
}
