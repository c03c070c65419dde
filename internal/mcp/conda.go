package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deixis/foreman/internal/result"
	"github.com/deixis/foreman/internal/runner"
)

const condaToolName = "fm_conda"

// condaArgv maps each conda action to the argv prefix that produces its
// parseable output. The version action has no JSON mode.
var condaArgv = map[string][]string{
	result.CondaActionList:    {"conda", "list", "--json"},
	result.CondaActionInfo:    {"conda", "info", "--json"},
	result.CondaActionEnvList: {"conda", "env", "list", "--json"},
	result.CondaActionInstall: {"conda", "install", "--json", "--yes"},
	result.CondaActionVersion: {"conda", "--version"},
}

// registerConda publishes the fm_conda tool. Conda is one MCP tool with
// an action discriminator; each action selects its own argv and result
// variant.
func registerConda(s *mcp.Server, h *handler) {
	s.AddTool(&mcp.Tool{
		Name: condaToolName,
		Description: "Operate conda: list packages, show installation info, list environments, " +
			"install packages, or report the version. The action parameter selects the operation.",
		InputSchema: requiredObjectSchema(map[string]any{
			"action": map[string]any{
				"type": "string",
				"enum": []string{
					result.CondaActionList,
					result.CondaActionInfo,
					result.CondaActionEnvList,
					result.CondaActionInstall,
					result.CondaActionVersion,
				},
				"description": "Conda operation to perform.",
			},
			"args": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Package specifiers for install; ignored by other actions.",
			},
			"dry_run": map[string]any{
				"type":        "boolean",
				"description": "For install: resolve without changing the environment.",
			},
			"env": map[string]any{
				"type":        "string",
				"description": "Environment name to operate in (-n); list and install only.",
			},
			"cwd": map[string]any{
				"type":        "string",
				"description": "Working directory relative to the workspace root.",
			},
			"compact": map[string]any{
				"type":        "boolean",
				"description": "Return the compact projection instead of the full result.",
			},
		}, []string{"action"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return h.invokeConda(ctx, req.Params.Arguments)
	})
}

func (h *handler) invokeConda(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	params, err := decodeArgs(raw)
	if err != nil {
		return errorResult("invalid arguments: " + err.Error())
	}

	action, _ := params["action"].(string)
	base, ok := condaArgv[action]
	if !ok {
		return errorResult(fmt.Sprintf("unknown conda action %q", action))
	}

	userArgs := stringList(params["args"])
	if err := runner.Guard(userArgs); err != nil {
		return errorResult(err.Error())
	}
	if env, _ := params["env"].(string); env != "" {
		if err := runner.Guard([]string{env}); err != nil {
			return errorResult(err.Error())
		}
	}

	argv := append([]string{}, base...)
	argv = append(argv, h.cfg.ExtraArgs("conda")...)
	if env, _ := params["env"].(string); env != "" &&
		(action == result.CondaActionList || action == result.CondaActionInstall) {
		argv = append(argv, "-n", env)
	}
	if action == result.CondaActionInstall {
		if dry, _ := params["dry_run"].(bool); dry {
			argv = append(argv, "--dry-run")
		}
		argv = append(argv, userArgs...)
	}

	cwd, _ := params["cwd"].(string)
	compact, _ := params["compact"].(bool)
	return h.dispatch(ctx, "conda", action, argv, cwd, compact)
}
