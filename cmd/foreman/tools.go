package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	foremanmcp "github.com/deixis/foreman/internal/mcp"
	"github.com/deixis/foreman/internal/result"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the wrapped tool catalog",
	Long: `List every wrapped tool grouped by result family, with the MCP tool
name and the fixed command prefix it runs.`,
	Args: cobra.NoArgs,
	Run:  runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) {
	byFamily := map[result.Family][]foremanmcp.Command{}
	for _, c := range foremanmcp.Commands() {
		byFamily[c.Family] = append(byFamily[c.Family], c)
	}

	titleCase := cases.Title(language.English)
	for _, f := range result.Families {
		cmds := byFamily[f]
		if len(cmds) == 0 {
			continue
		}
		fmt.Println(titleCase.String(string(f)))
		for _, c := range cmds {
			key := c.Tool
			if c.Action != "" {
				key += " " + c.Action
			}
			fmt.Printf("  %-18s %-16s %s\n", key, c.Name, strings.Join(c.Argv, " "))
		}
		fmt.Println()
	}
}
