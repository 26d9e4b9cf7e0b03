package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"studyqa/internal/extract"
	"studyqa/internal/service"
)

var sourcesJSON bool

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	enabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	cellStyle     = lipgloss.NewStyle().PaddingRight(2)
)

func newSourcesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List configured sources and their index state",
		Long: `Builds every source index and reports, in selection order, whether each
source is enabled, how many entries or chunks it holds and why it was disabled.`,
		Args: cobra.NoArgs,
		RunE: runSources,
	}
	cmd.Flags().BoolVar(&sourcesJSON, "json", false, "output sources as JSON")
	return cmd
}

func runSources(cmd *cobra.Command, _ []string) error {
	router, err := buildRouter(cmd)
	if err != nil {
		return err
	}
	sources := router.Sources()
	out := cmd.OutOrStdout()

	if sourcesJSON {
		data, err := json.MarshalIndent(sources, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal sources: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Policy: %s\n\n", router.Policy())
	fmt.Fprintln(out, renderSources(sources))

	if needsPDFTool(sources) && extract.CheckAvailable() != nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, extract.InstallInstructions())
	}
	return nil
}

func renderSources(sources []service.SourceInfo) string {
	rows := [][]string{{"LABEL", "KIND", "SUBJECT", "STATE", "SIZE", "VOCAB", "PATH"}}
	for _, s := range sources {
		state := "enabled"
		if !s.Enabled {
			state = "disabled: " + s.Reason
		}
		subject := s.Subject
		if subject == "" {
			subject = "-"
		}
		rows = append(rows, []string{
			s.Label, string(s.Kind), subject, state,
			fmt.Sprint(s.Size), fmt.Sprint(s.Vocabulary), s.Path,
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := make([]string, len(rows))
	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := cellStyle.Width(widths[i] + 2)
			switch {
			case r == 0:
				style = style.Inherit(headerStyle)
			case i == 3 && sources[r-1].Enabled:
				style = style.Inherit(enabledStyle)
			case i == 3:
				style = style.Inherit(disabledStyle)
			}
			cells[i] = style.Render(cell)
		}
		lines[r] = strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " ")
	}
	return strings.Join(lines, "\n")
}

func needsPDFTool(sources []service.SourceInfo) bool {
	for _, s := range sources {
		if !s.Enabled && strings.EqualFold(filepath.Ext(s.Path), ".pdf") {
			return true
		}
	}
	return false
}
