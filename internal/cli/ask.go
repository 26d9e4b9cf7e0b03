package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askJSON bool

func newAskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Answer a single question",
		Long: `Answers one question and exits. All arguments are joined into the question.
With --json the selected source, score, tags and per-source candidates are printed too.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}
	cmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	router, err := buildRouter(cmd)
	if err != nil {
		return err
	}

	ans := router.Ask(strings.Join(args, " "))
	out := cmd.OutOrStdout()
	if askJSON {
		data, err := json.MarshalIndent(ans, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	fmt.Fprintln(out, ans.Text)
	return nil
}
