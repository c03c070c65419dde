package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deixis/foreman"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(foreman.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
