// Package main provides the zipper CLI entry point: navigate, walk and
// edit JSON documents through a persistent tree cursor.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/zipper/pkg/config"
)

// Version information, set at build time via -ldflags.
var (
	version = "dev"     //nolint:gochecknoglobals // Build-time variable.
	commit  = "unknown" //nolint:gochecknoglobals // Build-time variable.
)

var (
	cfgFile string         //nolint:gochecknoglobals // CLI flag variable.
	verbose bool           //nolint:gochecknoglobals // CLI flag variable.
	quiet   bool           //nolint:gochecknoglobals // CLI flag variable.
	cfg     *config.Config //nolint:gochecknoglobals // Loaded in the root PersistentPreRunE.
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "zipper",
		Short: "Tree cursor over JSON documents",
		Long: `zipper navigates and edits JSON documents through a persistent
tree cursor: every operation yields a new focus without mutating the
original tree, and edits are folded back into the root on commit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			loaded, err := config.LoadConfig(cfgFile)
			if err != nil {
				return err
			}

			cfg = loaded

			setupLogging(cfg)

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.zipper.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")

	rootCmd.AddCommand(walkCmd())
	rootCmd.AddCommand(exploreCmd())
	rootCmd.AddCommand(editCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(completionCmd())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	level := cfg.LogLevel()
	if verbose {
		level = slog.LevelDebug
	}

	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "zipper %s (commit: %s)\n", version, commit)
		},
	}

	return cmd
}
