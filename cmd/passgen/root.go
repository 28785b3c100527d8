package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Passgen - generate passphrases that are easy to type",
		Long: `Passgen generates random word passphrases and ranks them by how
comfortable they are to type on a QWERTY keyboard.

Candidates are drawn uniformly from a word list, so the ranking never lowers
the entropy of the scheme: it only picks, among equally strong candidates,
the ones that alternate hands and fingers well.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newGenerateCommand())
	cmd.AddCommand(newScoreCommand())
	cmd.AddCommand(newEntropyCommand())
	cmd.AddCommand(newScorersCommand())

	return cmd
}

func execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCommand()
	return rootCmd.ExecuteContext(ctx)
}
