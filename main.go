package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"realtime-translator/internal/logger"
	"realtime-translator/models"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "realtime-translator",
		Short: "Real-time text translator with dictation and speech output",
		Long: "Translates text as you type through LibreTranslate-compatible endpoints.\n" +
			"Run without a subcommand to open the desktop app.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", models.DefaultConfigPath(), "path to config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newTranslateCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newLanguagesCmd())
	cmd.AddCommand(newSpeakCmd(opts))
	cmd.AddCommand(newDictateCmd(opts))
	cmd.AddCommand(newServeCmd(opts))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "realtime-translator %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

// loadConfig reads the config file and applies the log level.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*models.Config, error) {
	cfg, err := models.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger.SetOutput(cmd.ErrOrStderr())
	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logger.SetLevel(logger.ParseLevel(level))
	return cfg, nil
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	code := execute(newRootCmd())
	logger.Default().Sync()
	os.Exit(code)
}
