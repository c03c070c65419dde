// Package parse turns raw tool output into canonical results. One pure
// parser per (tool, action) pair, registered in an immutable table.
// Free-text anomalies degrade to zero results; violated structural
// guarantees on always-JSON modes are contract errors that propagate.
package parse

import (
	"errors"
	"fmt"
	"sort"

	"github.com/deixis/foreman/internal/capture"
	"github.com/deixis/foreman/internal/result"
)

// ErrContract marks output that violated a tool's unconditional
// structural guarantee (for example a JSON mode that must produce an
// array). It signals an upstream tool change worth surfacing loudly,
// not a parse shortfall.
var ErrContract = errors.New("tool output contract violated")

// contractErr wraps ErrContract with the offending tool and detail.
func contractErr(tool, detail string) error {
	return fmt.Errorf("%s: %s: %w", tool, detail, ErrContract)
}

// Key identifies one parser: the wrapped tool plus the action that
// selects its output mode. Single-mode tools use action "".
type Key struct {
	Tool   string
	Action string
}

func (k Key) String() string {
	if k.Action == "" {
		return k.Tool
	}
	return k.Tool + " " + k.Action
}

// Func turns one capture into a canonical result. A non-nil error is
// reserved for contract violations; everything else degrades into the
// result itself.
type Func func(c capture.Capture) (result.Result, error)

// entry binds a parser to the result family it produces.
type entry struct {
	fn     Func
	family result.Family
}

// table maps (tool, action) to its parser. Built once at startup,
// never mutated.
var table = map[Key]entry{
	// lint
	{"ruff", "check"}:        {parseRuff, result.Lint},
	{"flake8", ""}:           {parseFlake8, result.Lint},
	{"pylint", ""}:           {parsePylint, result.Lint},
	{"bandit", ""}:           {parseBandit, result.Lint},
	{"eslint", ""}:           {parseESLint, result.Lint},
	{"go", "vet"}:            {parseGoVet, result.Lint},
	{"staticcheck", ""}:      {parseStaticcheck, result.Lint},
	{"golangci-lint", "run"}: {parseGolangciLint, result.Lint},
	{"cargo", "clippy"}:      {parseCargoClippy, result.Lint},

	// typecheck
	{"mypy", ""}:    {parseMypy, result.Typecheck},
	{"pyright", ""}: {parsePyright, result.Typecheck},
	{"tsc", ""}:     {parseTsc, result.Typecheck},

	// format
	{"black", ""}:    {parseBlack, result.Format},
	{"prettier", ""}: {parsePrettier, result.Format},
	{"gofmt", ""}:    {parseGofmt, result.Format},
	{"cargo", "fmt"}: {parseCargoFmt, result.Format},

	// testrun
	{"pytest", ""}:    {parsePytest, result.TestRun},
	{"jest", ""}:      {parseJest, result.TestRun},
	{"go", "test"}:    {parseGoTest, result.TestRun},
	{"cargo", "test"}: {parseCargoTest, result.TestRun},

	// audit
	{"pip-audit", ""}:   {parsePipAudit, result.Audit},
	{"npm", "audit"}:    {parseNpmAudit, result.Audit},
	{"govulncheck", ""}: {parseGovulncheck, result.Audit},
	{"cargo", "audit"}:  {parseCargoAudit, result.Audit},

	// packages
	{"pip", "list"}:    {parsePipList, result.PkgList},
	{"npm", "ls"}:      {parseNpmLs, result.PkgList},
	{"pip", "install"}: {parsePipInstall, result.PkgInstall},
	{"uv", "install"}:  {parseUvInstall, result.PkgInstall},
	{"npm", "install"}: {parseNpmInstall, result.PkgInstall},
	{"pip", "show"}:    {parsePipShow, result.PkgInfo},

	// conda
	{"conda", "list"}:     {parseCondaList, result.Conda},
	{"conda", "info"}:     {parseCondaInfo, result.Conda},
	{"conda", "env-list"}: {parseCondaEnvList, result.Conda},
	{"conda", "install"}:  {parseCondaInstall, result.Conda},
	{"conda", "version"}:  {parseCondaVersion, result.Conda},

	// version control
	{"git", "status"}: {parseGitStatus, result.VCSStatus},
	{"git", "diff"}:   {parseGitDiff, result.VCSDiff},
	{"git", "log"}:    {parseGitLog, result.VCSLog},

	// containers
	{"docker", "build"}:  {parseDockerBuild, result.ContainerBuild},
	{"docker", "images"}: {parseDockerImages, result.ImageList},
	{"docker", "ps"}:     {parseDockerPs, result.ContainerList},

	// build
	{"make", ""}:           {parseMake, result.BuildRun},
	{"go", "build"}:        {parseGoBuild, result.BuildRun},
	{"coverage", "report"}: {parseCoverageReport, result.Coverage},
}

// Lookup returns the parser registered for a tool/action pair.
func Lookup(tool, action string) (Func, bool) {
	e, ok := table[Key{Tool: tool, Action: action}]
	return e.fn, ok
}

// FamilyOf returns the result family a tool/action pair produces.
func FamilyOf(tool, action string) (result.Family, bool) {
	e, ok := table[Key{Tool: tool, Action: action}]
	return e.family, ok
}

// Parse dispatches one capture to the registered parser.
func Parse(tool, action string, c capture.Capture) (result.Result, error) {
	f, ok := Lookup(tool, action)
	if !ok {
		return nil, fmt.Errorf("no parser registered for %q", Key{Tool: tool, Action: action})
	}
	return f(c)
}

// Keys returns every registered key, sorted for stable listings.
func Keys() []Key {
	keys := make([]Key, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Tool != keys[j].Tool {
			return keys[i].Tool < keys[j].Tool
		}
		return keys[i].Action < keys[j].Action
	})
	return keys
}
