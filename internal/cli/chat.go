package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"studyqa/internal/service"
	"studyqa/internal/tui"
)

func newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive chat window",
		Args:  cobra.NoArgs,
		RunE:  runChat,
	}
}

func runChat(cmd *cobra.Command, _ []string) error {
	router, err := buildRouter(cmd)
	if err != nil {
		return err
	}
	m := tui.New(router, sourcesSummary(router.Sources()))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	return nil
}

// sourcesSummary renders one line like "Study Dataset (42) · Notes (off)".
func sourcesSummary(sources []service.SourceInfo) string {
	parts := make([]string, len(sources))
	for i, s := range sources {
		if s.Enabled {
			parts[i] = fmt.Sprintf("%s (%d)", s.Label, s.Size)
		} else {
			parts[i] = s.Label + " (off)"
		}
	}
	return strings.Join(parts, " · ")
}
