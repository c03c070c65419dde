package main

import (
	"os"

	"github.com/spf13/cobra"
)

var workspaceFlag string

var rootCmd = &cobra.Command{
	Use:   "foreman",
	Short: "Structured results from developer command-line tools",
	Long: `foreman wraps linters, type checkers, formatters, test runners,
auditors, package managers, git, docker, and build systems behind one
normalized result model. Run it as an MCP server with "serve", or
invoke a single tool with "run".`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error. Cobra has
// already printed the error by the time this returns.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&workspaceFlag, "workspace", "",
		"workspace root (defaults to the current directory)")
}

// workspace resolves the --workspace flag, falling back to the current
// directory.
func workspace() (string, error) {
	if workspaceFlag != "" {
		return workspaceFlag, nil
	}
	return os.Getwd()
}
