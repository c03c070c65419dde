package mcp

// toolDef statically describes one wrapped CLI tool: the MCP name it is
// published under, the parser registry key it dispatches to, and the
// argv prefix that pins the tool to its parseable output mode. User
// arguments are appended after the prefix and any configured extra
// args, so they can never displace the mode flags.
type toolDef struct {
	// name is the MCP tool name (fm_*).
	name string
	// tool and action form the parser registry key.
	tool   string
	action string
	// description is shown to agents in the tool listing.
	description string
	// base is the fixed argv prefix, including output-mode flags.
	base []string
	// defaults are appended when the caller passes no args.
	defaults []string
	// flags are optional structured parameters mapped to CLI flags.
	flags []flagDef
	// noArgs drops the args parameter for tools with no positional form.
	noArgs bool
	// argsDesc overrides the default args parameter description.
	argsDesc string
}

// flagDef maps one structured tool parameter to a CLI flag. Boolean
// parameters emit the flag alone; string and integer parameters emit
// the flag followed by the value.
type flagDef struct {
	param string
	typ   string // "boolean", "string", or "integer"
	flag  string
	desc  string
}

// toolDefs is the static catalog of wrapped tools, one MCP tool each.
// The conda union is registered separately (see conda.go).
var toolDefs = []toolDef{
	// lint
	{
		name: "fm_ruff", tool: "ruff", action: "check",
		description: "Lint Python files with ruff. Returns per-diagnostic file, position, code, and fixability.",
		base:        []string{"ruff", "check", "--output-format", "json"},
		defaults:    []string{"."},
		argsDesc:    "Files or directories to lint.",
	},
	{
		name: "fm_flake8", tool: "flake8", action: "",
		description: "Lint Python files with flake8. Returns per-diagnostic file, position, and code.",
		base:        []string{"flake8"},
		defaults:    []string{"."},
		argsDesc:    "Files or directories to lint.",
	},
	{
		name: "fm_pylint", tool: "pylint", action: "",
		description: "Lint Python modules with pylint. Returns diagnostics tiered by severity.",
		base:        []string{"pylint", "--output-format=json"},
		defaults:    []string{"."},
		argsDesc:    "Modules, packages, or paths to lint.",
	},
	{
		name: "fm_bandit", tool: "bandit", action: "",
		description: "Scan Python code for security issues with bandit (recursive).",
		base:        []string{"bandit", "-f", "json", "-r"},
		defaults:    []string{"."},
		argsDesc:    "Files or directories to scan.",
	},
	{
		name: "fm_eslint", tool: "eslint", action: "",
		description: "Lint JavaScript/TypeScript files with eslint. Returns per-diagnostic file, position, rule, and fixability.",
		base:        []string{"eslint", "-f", "json"},
		defaults:    []string{"."},
		argsDesc:    "Files or directories to lint.",
	},
	{
		name: "fm_go_vet", tool: "go", action: "vet",
		description: "Examine Go packages with go vet. Returns suspicious-construct diagnostics.",
		base:        []string{"go", "vet"},
		defaults:    []string{"./..."},
		argsDesc:    "Go package patterns.",
	},
	{
		name: "fm_staticcheck", tool: "staticcheck", action: "",
		description: "Analyse Go packages with staticcheck. Returns diagnostics with check codes.",
		base:        []string{"staticcheck", "-f", "json"},
		defaults:    []string{"./..."},
		argsDesc:    "Go package patterns.",
	},
	{
		name: "fm_golangci_lint", tool: "golangci-lint", action: "run",
		description: "Run the golangci-lint suite over Go packages.",
		base:        []string{"golangci-lint", "run", "--out-format", "json"},
		argsDesc:    "Go package patterns. Defaults to the whole workspace.",
	},
	{
		name: "fm_cargo_clippy", tool: "cargo", action: "clippy",
		description: "Lint a Rust crate with cargo clippy.",
		base:        []string{"cargo", "clippy", "--message-format", "json"},
		noArgs:      true,
	},

	// typecheck
	{
		name: "fm_mypy", tool: "mypy", action: "",
		description: "Type-check Python files with mypy. Returns diagnostics plus checked-file and timing totals when reported.",
		base:        []string{"mypy"},
		defaults:    []string{"."},
		argsDesc:    "Files, directories, or modules to check.",
	},
	{
		name: "fm_pyright", tool: "pyright", action: "",
		description: "Type-check Python files with pyright.",
		base:        []string{"pyright", "--outputjson"},
		argsDesc:    "Files to check. Defaults to the configured project.",
	},
	{
		name: "fm_tsc", tool: "tsc", action: "",
		description: "Type-check a TypeScript project with tsc (no emit).",
		base:        []string{"tsc", "--noEmit", "--pretty", "false"},
		argsDesc:    "Files to check. Defaults to the tsconfig project.",
	},

	// format
	{
		name: "fm_black", tool: "black", action: "",
		description: "Format Python files with black, or report what would change with check=true.",
		base:        []string{"black"},
		defaults:    []string{"."},
		flags: []flagDef{
			{param: "check", typ: "boolean", flag: "--check", desc: "Report files that would change without rewriting them."},
		},
		argsDesc: "Files or directories to format.",
	},
	{
		name: "fm_prettier", tool: "prettier", action: "",
		description: "Check formatting of files with prettier. Reports files that are not formatted; never rewrites.",
		base:        []string{"prettier", "--check"},
		defaults:    []string{"."},
		argsDesc:    "Files, directories, or globs to check.",
	},
	{
		name: "fm_gofmt", tool: "gofmt", action: "",
		description: "List Go files whose formatting differs from gofmt's; never rewrites.",
		base:        []string{"gofmt", "-l"},
		defaults:    []string{"."},
		argsDesc:    "Files or directories to check.",
	},
	{
		name: "fm_cargo_fmt", tool: "cargo", action: "fmt",
		description: "Format a Rust crate with cargo fmt, or report differences with check=true.",
		base:        []string{"cargo", "fmt"},
		flags: []flagDef{
			{param: "check", typ: "boolean", flag: "--check", desc: "Report files that would change without rewriting them."},
		},
		noArgs: true,
	},

	// test
	{
		name: "fm_pytest", tool: "pytest", action: "",
		description: "Run Python tests with pytest. Returns pass/fail/skip counts, duration, and failing tests with messages.",
		base:        []string{"pytest"},
		argsDesc:    "Test files, directories, or node IDs. Defaults to pytest discovery.",
	},
	{
		name: "fm_jest", tool: "jest", action: "",
		description: "Run JavaScript tests with jest. Returns counts, duration, and failing tests.",
		base:        []string{"jest", "--json"},
		argsDesc:    "Test path patterns. Defaults to jest discovery.",
	},
	{
		name: "fm_go_test", tool: "go", action: "test",
		description: "Run Go tests. Returns counts, duration, and failing tests with first failure lines.",
		base:        []string{"go", "test", "-json"},
		defaults:    []string{"./..."},
		argsDesc:    "Go package patterns.",
	},
	{
		name: "fm_cargo_test", tool: "cargo", action: "test",
		description: "Run Rust tests with cargo test. Returns counts and failing tests with panic messages.",
		base:        []string{"cargo", "test"},
		argsDesc:    "Test name filter. Defaults to all tests.",
	},

	// audit
	{
		name: "fm_pip_audit", tool: "pip-audit", action: "",
		description: "Audit installed Python dependencies for known vulnerabilities.",
		base:        []string{"pip-audit", "-f", "json"},
		noArgs:      true,
	},
	{
		name: "fm_npm_audit", tool: "npm", action: "audit",
		description: "Audit npm dependencies for known vulnerabilities.",
		base:        []string{"npm", "audit", "--json"},
		noArgs:      true,
	},
	{
		name: "fm_govulncheck", tool: "govulncheck", action: "",
		description: "Scan Go packages for calls into known-vulnerable code.",
		base:        []string{"govulncheck", "-json"},
		defaults:    []string{"./..."},
		argsDesc:    "Go package patterns.",
	},
	{
		name: "fm_cargo_audit", tool: "cargo", action: "audit",
		description: "Audit Cargo.lock dependencies against the RustSec advisory database.",
		base:        []string{"cargo", "audit", "--json"},
		noArgs:      true,
	},

	// packages
	{
		name: "fm_pip_list", tool: "pip", action: "list",
		description: "List installed Python packages with versions.",
		base:        []string{"pip", "list", "--format", "json"},
		noArgs:      true,
	},
	{
		name: "fm_npm_ls", tool: "npm", action: "ls",
		description: "List direct npm dependencies with versions.",
		base:        []string{"npm", "ls", "--json", "--depth=0"},
		argsDesc:    "Package names to filter the tree by.",
	},
	{
		name: "fm_pip_install", tool: "pip", action: "install",
		description: "Install Python packages with pip. Returns installed packages and versions; resolution and environment failures are classified.",
		base:        []string{"pip", "install"},
		flags: []flagDef{
			{param: "dry_run", typ: "boolean", flag: "--dry-run", desc: "Resolve without installing."},
			{param: "upgrade", typ: "boolean", flag: "--upgrade", desc: "Upgrade already-installed packages."},
			{param: "requirements", typ: "string", flag: "-r", desc: "Requirements file to install from."},
		},
		argsDesc: "Package specifiers (e.g. requests==2.31.0).",
	},
	{
		name: "fm_uv_install", tool: "uv", action: "install",
		description: "Install Python packages with uv pip. Returns install/remove counts and timing.",
		base:        []string{"uv", "pip", "install"},
		flags: []flagDef{
			{param: "dry_run", typ: "boolean", flag: "--dry-run", desc: "Resolve without installing."},
			{param: "requirements", typ: "string", flag: "-r", desc: "Requirements file to install from."},
		},
		argsDesc: "Package specifiers.",
	},
	{
		name: "fm_npm_install", tool: "npm", action: "install",
		description: "Install npm packages. Returns add/remove/audit counts and vulnerability totals.",
		base:        []string{"npm", "install"},
		flags: []flagDef{
			{param: "save_dev", typ: "boolean", flag: "--save-dev", desc: "Record packages under devDependencies."},
		},
		argsDesc: "Package specifiers. Defaults to installing from package.json.",
	},
	{
		name: "fm_pip_show", tool: "pip", action: "show",
		description: "Show metadata for an installed Python package.",
		base:        []string{"pip", "show"},
		argsDesc:    "Package names to show.",
	},

	// version control
	{
		name: "fm_git_status", tool: "git", action: "status",
		description: "Show working-tree status: branch, ahead/behind, and per-file staged/unstaged states.",
		base:        []string{"git", "status", "--porcelain", "-b"},
		argsDesc:    "Pathspecs to limit the status to.",
	},
	{
		name: "fm_git_diff", tool: "git", action: "diff",
		description: "Show per-file added/deleted line counts for uncommitted changes.",
		base:        []string{"git", "diff", "--numstat"},
		flags: []flagDef{
			{param: "staged", typ: "boolean", flag: "--staged", desc: "Diff the index against HEAD instead of the working tree."},
		},
		argsDesc: "Pathspecs to limit the diff to.",
	},
	{
		name: "fm_git_log", tool: "git", action: "log",
		description: "Show recent commits: hash, author, date, and subject. Returns 20 commits unless limit is set.",
		base:        []string{"git", "log", "--pretty=format:%H%x09%an%x09%aI%x09%s", "-n", "20"},
		flags: []flagDef{
			{param: "limit", typ: "integer", flag: "-n", desc: "Maximum number of commits to return."},
		},
		argsDesc: "Revision range or pathspecs.",
	},

	// containers
	{
		name: "fm_docker_build", tool: "docker", action: "build",
		description: "Build a container image. Returns step progress, image ID, and tags; classic and BuildKit output are both understood.",
		base:        []string{"docker", "build"},
		defaults:    []string{"."},
		flags: []flagDef{
			{param: "tag", typ: "string", flag: "-t", desc: "Name and optionally tag for the built image."},
			{param: "file", typ: "string", flag: "-f", desc: "Dockerfile path."},
		},
		argsDesc: "Build context directory.",
	},
	{
		name: "fm_docker_images", tool: "docker", action: "images",
		description: "List local container images with IDs and sizes.",
		base:        []string{"docker", "images", "--format", "{{json .}}"},
		argsDesc:    "Repository to filter by.",
	},
	{
		name: "fm_docker_ps", tool: "docker", action: "ps",
		description: "List running containers with image, state, and ports.",
		base:        []string{"docker", "ps", "--format", "{{json .}}"},
		flags: []flagDef{
			{param: "all", typ: "boolean", flag: "-a", desc: "Include stopped containers."},
		},
		noArgs: true,
	},

	// build
	{
		name: "fm_make", tool: "make", action: "",
		description: "Run make. Returns compiler-style diagnostics and the failing target on error.",
		base:        []string{"make"},
		argsDesc:    "Make targets. Defaults to the first target.",
	},
	{
		name: "fm_go_build", tool: "go", action: "build",
		description: "Compile Go packages. Returns compiler diagnostics grouped by package.",
		base:        []string{"go", "build"},
		defaults:    []string{"./..."},
		argsDesc:    "Go package patterns.",
	},
	{
		name: "fm_coverage", tool: "coverage", action: "report",
		description: "Report Python test coverage from collected data: per-file statements, misses, and percentages.",
		base:        []string{"coverage", "report"},
		noArgs:      true,
	},
}

// toolSchema builds the input schema for a tool definition. Every tool
// accepts cwd and compact; args and the flag parameters vary per tool.
func toolSchema(d toolDef) map[string]any {
	props := map[string]any{
		"cwd": map[string]any{
			"type":        "string",
			"description": "Working directory relative to the workspace root.",
		},
		"compact": map[string]any{
			"type":        "boolean",
			"description": "Return the compact projection (counts and names) instead of the full result.",
		},
	}
	if !d.noArgs {
		desc := d.argsDesc
		if desc == "" {
			desc = "Positional arguments. Flags are rejected."
		}
		props["args"] = map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": desc,
		}
	}
	for _, f := range d.flags {
		props[f.param] = map[string]any{
			"type":        f.typ,
			"description": f.desc,
		}
	}
	return objectSchema(props)
}

// objectSchema returns a minimal JSON Schema for an object with no required fields.
func objectSchema(props map[string]any) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": props,
	}
}

// requiredObjectSchema returns a JSON Schema for an object with required fields.
func requiredObjectSchema(props map[string]any, required []string) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}
