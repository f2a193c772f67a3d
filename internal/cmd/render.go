package cmd

import (
	"fmt"
	"strings"

	"github.com/ryanoneill/envision/backend"
	"github.com/ryanoneill/envision/harness"
	"github.com/ryanoneill/envision/internal/config"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <snapshot.json>",
	Short: "Render a snapshot file",
	Long:  `Render a JSON snapshot file as plain text, ANSI-styled text or JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var (
	renderFormat string
	renderTrim   bool
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "output format: plain, ansi, json, json-pretty (default from config)")
	renderCmd.Flags().BoolVar(&renderTrim, "trim", false, "trim trailing whitespace and blank lines from plain output")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	name := renderFormat
	if name == "" {
		name = cfg.Output.Format
	}
	format, ok := backend.ParseOutputFormat(name)
	if !ok {
		return fmt.Errorf("unknown output format %q", name)
	}

	snap, err := harness.LoadSnapshot(args[0])
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	var content string
	switch format {
	case backend.FormatANSI:
		content = snap.ToANSI()
	case backend.FormatJSON:
		content = snap.ToJSON()
	case backend.FormatJSONPretty:
		content = snap.ToJSONPretty()
	default:
		content = snap.ToPlain()
		if renderTrim || (renderFormat == "" && cfg.Output.TrimTrailing) {
			content = trimTrailing(content)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), content)
	return nil
}

// trimTrailing removes trailing whitespace from each line and drops
// trailing blank lines.
func trimTrailing(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
