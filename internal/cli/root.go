package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"studyqa/internal/config"
	"studyqa/internal/emoji"
	"studyqa/internal/logging"
	"studyqa/internal/service"
)

var (
	cfgFile     string
	verbose     bool
	noEmoji     bool
	datasetPath string
	policy      string
)

// NewRootCommand creates the root command. Without a subcommand it opens
// the chat window.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "studyqa",
		Short: "Offline study question answering",
		Long: `studyqa answers study questions from a local question/answer dataset
and optional subject notes (PDF or text).

Each question is matched with TF-IDF cosine similarity against every source,
classified by intent and subject, and answered from the most suitable source.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			emoji.SetDisabled(noEmoji)
		},
		RunE: runChat,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (.yaml or .toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "question/answer CSV file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&policy, "policy", "", "source selection policy: subject_override or max_score")

	rootCmd.AddCommand(newAskCommand())
	rootCmd.AddCommand(newChatCommand())
	rootCmd.AddCommand(newSourcesCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func loadConfig() (*config.AppConfig, error) {
	var (
		cfg *config.AppConfig
		err error
	)
	if cfgFile == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgFile)
	}
	if err != nil {
		return nil, err
	}
	if datasetPath != "" {
		cfg.Dataset.Path = datasetPath
	}
	if policy != "" {
		cfg.Selection.Policy = policy
	}
	return cfg, nil
}

// buildRouter loads the configuration and indexes every source.
func buildRouter(cmd *cobra.Command) (*service.Router, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.UI.Emoji {
		emoji.SetDisabled(true)
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), verbose)
	return service.New(cfg, service.Deps{Logger: logger})
}
