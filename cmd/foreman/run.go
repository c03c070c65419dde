package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deixis/foreman/internal/config"
	foremanmcp "github.com/deixis/foreman/internal/mcp"
	"github.com/deixis/foreman/internal/parse"
	"github.com/deixis/foreman/internal/render"
	"github.com/deixis/foreman/internal/runner"
	"github.com/deixis/foreman/internal/schema"
)

var (
	runJSON    bool
	runCompact bool
)

var runCmd = &cobra.Command{
	Use:   "run <tool> [action] [args...]",
	Short: "Run one wrapped tool and print its result",
	Long: `Run a single wrapped tool through the normalization pipeline and
print the result as text, or as JSON with --json. Remaining arguments
are passed to the tool after its fixed output-mode flags.

Examples:
  foreman run ruff check src/
  foreman run git status
  foreman run pytest --json
  foreman run conda list --compact

Exits non-zero when the tool reports findings or fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the result as JSON")
	runCmd.Flags().BoolVar(&runCompact, "compact", false, "use the compact projection")
}

// resolveCommand matches leading arguments against the catalog: tool
// plus action first, then tool alone. The rest are tool arguments.
func resolveCommand(args []string) (foremanmcp.Command, []string, bool) {
	if len(args) > 1 {
		if c, ok := foremanmcp.FindCommand(args[0], args[1]); ok {
			return c, args[2:], true
		}
	}
	if c, ok := foremanmcp.FindCommand(args[0], ""); ok {
		return c, args[1:], true
	}
	return foremanmcp.Command{}, nil, false
}

func runRun(cmd *cobra.Command, args []string) error {
	c, rest, ok := resolveCommand(args)
	if !ok {
		return fmt.Errorf("no tool matches %q (run 'foreman tools' to list them)", args[0])
	}

	ws, err := workspace()
	if err != nil {
		return fmt.Errorf("determining workspace: %w", err)
	}
	loaded, err := config.Load(ws)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := loaded.Config

	argv := append([]string{}, c.Argv...)
	argv = append(argv, cfg.ExtraArgs(c.Tool)...)
	if len(rest) > 0 {
		argv = append(argv, rest...)
	} else {
		argv = append(argv, c.Defaults...)
	}

	r := &runner.Runner{
		Workspace: loaded.RepoRoot,
		Timeout:   cfg.Timeout(),
		MaxOutput: cfg.MaxOutputBytes(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := r.Run(ctx, argv, "")
	if err != nil {
		return fmt.Errorf("running %s: %w", strings.Join(argv, " "), err)
	}

	parsed, err := parse.Parse(c.Tool, c.Action, res.Capture)
	if err != nil {
		return err
	}
	parsed.ClipRawOutput(cfg.RawTail())
	if err := schema.Validate(parsed); err != nil {
		return err
	}

	var payload any = parsed
	text := render.Text(parsed)
	if runCompact {
		cp := parsed.Compact()
		if err := schema.ValidateCompact(cp); err != nil {
			return err
		}
		payload = cp
		text = render.Text(cp)
	}

	if runJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			return err
		}
	} else {
		fmt.Println(text)
	}

	if !parsed.Ok() {
		os.Exit(1)
	}
	return nil
}
