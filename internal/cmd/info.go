package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/ryanoneill/envision/harness"
	"github.com/ryanoneill/envision/internal/config"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <snapshot.json>",
	Short: "Describe a snapshot file",
	Long:  `Print a snapshot file's frame number, dimensions, cursor state and styling statistics.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoLabelStyle = lipgloss.NewStyle().Bold(true).Width(10)

func runInfo(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	snap, err := harness.LoadSnapshot(args[0])
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	styled := 0
	skipped := 0
	for _, c := range snap.Cells() {
		if c.HasStyling() {
			styled++
		}
		if c.Skip {
			skipped++
		}
	}

	cursor := fmt.Sprintf("(%d,%d) hidden", snap.Cursor.Position.X, snap.Cursor.Position.Y)
	if snap.Cursor.Visible {
		cursor = fmt.Sprintf("(%d,%d) visible", snap.Cursor.Position.X, snap.Cursor.Position.Y)
	}

	out := cmd.OutOrStdout()
	row := func(label, value string) {
		fmt.Fprintf(out, "%s %s\n", infoLabelStyle.Render(label), value)
	}
	row("Frame", fmt.Sprintf("%d", snap.Frame))
	row("Size", fmt.Sprintf("%dx%d cells", snap.Size.Width, snap.Size.Height))
	row("Pixels", fmt.Sprintf("%dx%d (at %dx%d per cell)",
		snap.Size.Width*cfg.Pixels.CellWidth,
		snap.Size.Height*cfg.Pixels.CellHeight,
		cfg.Pixels.CellWidth, cfg.Pixels.CellHeight))
	row("Cursor", cursor)
	row("Cells", fmt.Sprintf("%d total, %d styled, %d continuation",
		len(snap.Cells()), styled, skipped))

	return nil
}
