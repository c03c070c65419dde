package parse

import "github.com/deixis/foreman/internal/result"

// exitMeaning classifies one exit code of one tool. Success and
// errorType derive from these tables plus output content, never from
// a bare zero check.
type exitMeaning int

const (
	exitClean       exitMeaning = iota // ran, nothing to report
	exitFindings                       // ran, legitimately reported problems
	exitInternal                       // the tool itself failed
	exitNothingToDo                    // ran, had no work (still success)
	exitUsage                          // the tool rejected its invocation
	exitFatal                          // unmapped code
)

// exitTables holds the explicit exit-code semantics per registered
// tool. Codes absent from a tool's table mean exitFatal. pylint's
// composite bitmask codes are resolved by its parser on top of the
// enumerable entries here.
var exitTables = map[Key]map[int]exitMeaning{
	{"ruff", "check"}:        {0: exitClean, 1: exitFindings, 2: exitInternal},
	{"flake8", ""}:           {0: exitClean, 1: exitFindings},
	{"pylint", ""}:           {0: exitClean, 32: exitUsage},
	{"bandit", ""}:           {0: exitClean, 1: exitFindings, 2: exitInternal},
	{"eslint", ""}:           {0: exitClean, 1: exitFindings, 2: exitInternal},
	{"go", "vet"}:            {0: exitClean, 1: exitFindings, 2: exitInternal},
	{"staticcheck", ""}:      {0: exitClean, 1: exitFindings},
	{"golangci-lint", "run"}: {0: exitClean, 1: exitFindings, 2: exitInternal, 3: exitInternal, 4: exitInternal, 7: exitUsage},
	{"cargo", "clippy"}:      {0: exitClean, 101: exitFindings},

	{"mypy", ""}:    {0: exitClean, 1: exitFindings, 2: exitInternal},
	{"pyright", ""}: {0: exitClean, 1: exitFindings, 2: exitInternal, 3: exitUsage},
	{"tsc", ""}:     {0: exitClean, 1: exitFindings, 2: exitFindings},

	{"black", ""}:    {0: exitClean, 1: exitFindings, 2: exitUsage, 123: exitInternal},
	{"prettier", ""}: {0: exitClean, 1: exitFindings, 2: exitInternal},
	{"gofmt", ""}:    {0: exitClean, 1: exitInternal, 2: exitInternal},
	{"cargo", "fmt"}: {0: exitClean, 1: exitFindings, 101: exitInternal},

	{"pytest", ""}:    {0: exitClean, 1: exitFindings, 2: exitInternal, 3: exitInternal, 4: exitUsage, 5: exitNothingToDo},
	{"jest", ""}:      {0: exitClean, 1: exitFindings},
	{"go", "test"}:    {0: exitClean, 1: exitFindings, 2: exitInternal},
	{"cargo", "test"}: {0: exitClean, 101: exitFindings},

	{"pip-audit", ""}:   {0: exitClean, 1: exitFindings, 2: exitInternal},
	{"npm", "audit"}:    {0: exitClean, 1: exitFindings},
	{"govulncheck", ""}: {0: exitClean, 1: exitInternal, 2: exitInternal, 3: exitFindings},
	{"cargo", "audit"}:  {0: exitClean, 1: exitFindings},

	{"pip", "list"}:    {0: exitClean},
	{"npm", "ls"}:      {0: exitClean, 1: exitFindings},
	{"pip", "install"}: {0: exitClean, 1: exitInternal, 2: exitUsage},
	{"uv", "install"}:  {0: exitClean, 1: exitInternal, 2: exitUsage},
	{"npm", "install"}: {0: exitClean, 1: exitInternal},
	{"pip", "show"}:    {0: exitClean, 1: exitInternal},

	{"conda", "list"}:     {0: exitClean, 1: exitInternal},
	{"conda", "info"}:     {0: exitClean, 1: exitInternal},
	{"conda", "env-list"}: {0: exitClean, 1: exitInternal},
	{"conda", "install"}:  {0: exitClean, 1: exitInternal},
	{"conda", "version"}:  {0: exitClean, 1: exitInternal},

	{"git", "status"}: {0: exitClean, 128: exitInternal, 129: exitUsage},
	{"git", "diff"}:   {0: exitClean, 1: exitFindings, 128: exitInternal, 129: exitUsage},
	{"git", "log"}:    {0: exitClean, 128: exitInternal, 129: exitUsage},

	{"docker", "build"}:  {0: exitClean, 1: exitFindings, 125: exitInternal},
	{"docker", "images"}: {0: exitClean, 1: exitInternal, 125: exitInternal},
	{"docker", "ps"}:     {0: exitClean, 1: exitInternal, 125: exitInternal},

	{"make", ""}:           {0: exitClean, 1: exitInternal, 2: exitFindings},
	{"go", "build"}:        {0: exitClean, 1: exitFindings, 2: exitUsage},
	{"coverage", "report"}: {0: exitClean, 1: exitNothingToDo, 2: exitFindings},
}

// meaning resolves one exit code against a tool's table.
func meaning(k Key, code int) exitMeaning {
	if t, ok := exitTables[k]; ok {
		if m, ok := t[code]; ok {
			return m
		}
	}
	return exitFatal
}

// errorType maps a non-findings meaning to the result errorType
// discriminator, "" for meanings that are not errors.
func errorType(m exitMeaning) string {
	switch m {
	case exitInternal, exitFatal:
		return result.ErrInternal
	case exitUsage:
		return result.ErrUsage
	case exitNothingToDo:
		return result.ErrNothingToDo
	}
	return ""
}
