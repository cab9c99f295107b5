// Package cli implements the srclink command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/srclink/srclink/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose bool
	flagLogFile string
	flagConfig  string
)

// log is the run-wide progress log, shared by all commands.
var log = logger.New(os.Stdout)

var rootCmd = &cobra.Command{
	Use:   "srclink",
	Short: "Index symbol files against a repository revision",
	Long: `srclink patches compiled symbol (PDB) files so a debugger can fetch
the exact historical revision of each source file from a repository host,
instead of relying on local developer paths. Run it once per build, after
compilation, across every project in a solution.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		log.SetVerbose(flagVerbose)

		out := cmd.OutOrStdout()
		if flagLogFile != "" {
			f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			out = io.MultiWriter(out, f)
		}
		log.SetOutput(out)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "tee the progress log to a file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default srclink.toml in the solution root)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
