package mcp

import (
	"sort"

	"github.com/deixis/foreman/internal/parse"
	"github.com/deixis/foreman/internal/result"
)

// Command describes one invocable wrapped tool for hosts outside an MCP
// session, such as the CLI's run and tools subcommands.
type Command struct {
	Name     string // MCP tool name (fm_*)
	Tool     string // wrapped tool, forms the parser key with Action
	Action   string
	Family   result.Family
	Argv     []string // fixed argv prefix, output-mode flags included
	Defaults []string // appended when the caller passes no args
}

// Commands returns the full tool catalog, conda actions included,
// sorted by tool then action.
func Commands() []Command {
	out := make([]Command, 0, len(toolDefs)+len(condaArgv))
	for _, d := range toolDefs {
		f, _ := parse.FamilyOf(d.tool, d.action)
		out = append(out, Command{
			Name:     d.name,
			Tool:     d.tool,
			Action:   d.action,
			Family:   f,
			Argv:     d.base,
			Defaults: d.defaults,
		})
	}
	for action, argv := range condaArgv {
		out = append(out, Command{
			Name:   condaToolName,
			Tool:   "conda",
			Action: action,
			Family: result.Conda,
			Argv:   argv,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tool != out[j].Tool {
			return out[i].Tool < out[j].Tool
		}
		return out[i].Action < out[j].Action
	})
	return out
}

// FindCommand resolves a tool name and optional action to its catalog
// entry.
func FindCommand(tool, action string) (Command, bool) {
	for _, c := range Commands() {
		if c.Tool == tool && c.Action == action {
			return c, true
		}
	}
	return Command{}, false
}
