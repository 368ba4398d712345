package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "job-browser",
	Short: "Browse job listings in the terminal",
	Long: "job-browser loads a set of job listings and lets you narrow them by role, technology, " +
		"experience and compensation. Results load in batches as you scroll.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: the browser when attached to a terminal, a plain
		// listing otherwise.
		return runBrowse(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "job-browser %s\n", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagSource, "source", "", "listing source: URL, file path or \"demo\"")
	pf.StringVar(&flagConfig, "config", "", "config file (default ~/.job-browser/config.yaml)")
	pf.StringVar(&flagLogFile, "log-file", "", "log file (default ~/.job-browser/job-browser.log)")
	pf.StringVar(&flagMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(facetsCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
