package mcp

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deixis/foreman/internal/parse"
	"github.com/deixis/foreman/internal/render"
	"github.com/deixis/foreman/internal/runner"
	"github.com/deixis/foreman/internal/schema"
)

// decodeArgs unmarshals the raw tool arguments into a generic map.
// Absent arguments decode to nil, which every reader treats as unset.
func decodeArgs(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var params map[string]any
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, err
	}
	return params, nil
}

// stringList coerces a decoded JSON array into a string slice. Non-string
// elements are dropped rather than failing the call.
func stringList(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// invokeTool is the shared handler behind every static tool definition:
// guard user args, assemble argv, then run the dispatch pipeline.
func (h *handler) invokeTool(ctx context.Context, d toolDef, raw json.RawMessage) (*mcp.CallToolResult, error) {
	params, err := decodeArgs(raw)
	if err != nil {
		return errorResult("invalid arguments: " + err.Error())
	}

	userArgs := stringList(params["args"])
	if err := runner.Guard(userArgs); err != nil {
		return errorResult(err.Error())
	}

	argv := append([]string{}, d.base...)
	argv = append(argv, h.cfg.ExtraArgs(d.tool)...)
	for _, f := range d.flags {
		v, ok := params[f.param]
		if !ok {
			continue
		}
		switch f.typ {
		case "boolean":
			if b, _ := v.(bool); b {
				argv = append(argv, f.flag)
			}
		case "string":
			if s, _ := v.(string); s != "" {
				argv = append(argv, f.flag, s)
			}
		case "integer":
			if n, ok := v.(float64); ok && n > 0 {
				argv = append(argv, f.flag, strconv.Itoa(int(n)))
			}
		}
	}
	if len(userArgs) > 0 {
		argv = append(argv, userArgs...)
	} else {
		argv = append(argv, d.defaults...)
	}

	cwd, _ := params["cwd"].(string)
	compact, _ := params["compact"].(bool)
	return h.dispatch(ctx, d.tool, d.action, argv, cwd, compact)
}

// dispatch runs one assembled command through the normalization
// pipeline: run, parse, clip the raw tail to the configured budget,
// validate, optionally compact (and validate the projection), render.
// Contract and schema violations come back as IsError results so the
// caller sees them loudly instead of as silently empty data.
func (h *handler) dispatch(ctx context.Context, tool, action string, argv []string, cwd string, compact bool) (*mcp.CallToolResult, error) {
	res, err := h.run.Run(ctx, argv, cwd)
	if err != nil {
		return errorResult(err.Error())
	}

	r, err := parse.Parse(tool, action, res.Capture)
	if err != nil {
		return errorResult(err.Error())
	}
	r.ClipRawOutput(h.cfg.RawTail())

	if err := schema.Validate(r); err != nil {
		return errorResult(err.Error())
	}
	if !compact {
		return textResult(render.Text(r), r)
	}

	c := r.Compact()
	if err := schema.ValidateCompact(c); err != nil {
		return errorResult(err.Error())
	}
	return textResult(render.Text(c), c)
}
