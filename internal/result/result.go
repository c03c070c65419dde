// Package result defines the canonical structured record produced for
// one wrapped-tool invocation, plus the compact projection derived from
// it. There is one canonical type per tool family; compact forms exist
// only as the output of a canonical type's Compact method, never built
// directly.
package result

// Family identifies the result shape shared by a group of tools.
type Family string

const (
	Lint           Family = "lint"
	Typecheck      Family = "typecheck"
	Format         Family = "format"
	TestRun        Family = "testrun"
	Audit          Family = "audit"
	PkgList        Family = "pkglist"
	PkgInstall     Family = "pkginstall"
	PkgInfo        Family = "pkginfo"
	Conda          Family = "conda"
	VCSStatus      Family = "vcsstatus"
	VCSDiff        Family = "vcsdiff"
	VCSLog         Family = "vcslog"
	ContainerBuild Family = "containerbuild"
	ImageList      Family = "imagelist"
	ContainerList  Family = "containerlist"
	BuildRun       Family = "buildrun"
	Coverage       Family = "coverage"
)

// Families lists every family, in stable order.
var Families = []Family{
	Lint, Typecheck, Format, TestRun, Audit,
	PkgList, PkgInstall, PkgInfo, Conda,
	VCSStatus, VCSDiff, VCSLog,
	ContainerBuild, ImageList, ContainerList,
	BuildRun, Coverage,
}

// Result is the canonical form of one invocation's outcome.
type Result interface {
	Family() Family
	Ok() bool
	Head() Header
	Compact() Compact
	ClipRawOutput(max int)
}

// Compact is the token-frugal projection of a canonical result. It has
// no further projection; compaction is one-way.
type Compact interface {
	Family() Family
	Ok() bool
	Head() Header
}

// Header carries the scalars every result form shares. Success is a
// tool-specific reading of exit code plus output content, never a bare
// exit-code check. Truncated propagates from the capture layer.
// Error and RawOutput are set when parsing extracted nothing from
// output that should have carried data.
type Header struct {
	Success   bool   `json:"success"`
	Truncated bool   `json:"truncated,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorType string `json:"errorType,omitempty"`
	RawOutput string `json:"rawOutput,omitempty"`
}

// Ok reports whether the invocation succeeded.
func (h Header) Ok() bool { return h.Success }

// Head returns the shared header scalars. Interface holders read the
// common fields through it instead of switching on concrete types.
func (h Header) Head() Header { return h }

// ClipRawOutput truncates the raw-output tail to at most max bytes.
// Parsers fill RawOutput under their own cap; the serving layer
// re-clips to the configured budget before emitting.
func (h *Header) ClipRawOutput(max int) {
	if max > 0 && len(h.RawOutput) > max {
		h.RawOutput = h.RawOutput[:max]
	}
}

// ErrorType values shared across families.
const (
	ErrInternal    = "internal"    // the tool itself crashed or misbehaved
	ErrUsage       = "usage"       // the tool rejected its arguments
	ErrNothingToDo = "nothingToDo" // the tool had no work (make, coverage)
	ErrResolution  = "resolution"  // dependency resolution failed
	ErrEnvironment = "environment" // environment rejected the operation
	ErrNotFound    = "notFound"    // requested object does not exist
)

// HeavyFields returns the JSON keys a family's Compact drops from the
// canonical form. Compact payloads never contain these keys.
func HeavyFields(f Family) []string {
	switch f {
	case Lint, Typecheck:
		return []string{"diagnostics"}
	case Format:
		return []string{"changedFiles"}
	case TestRun:
		return []string{"failures"}
	case Audit:
		return []string{"vulnerabilities"}
	case PkgList:
		return []string{"packages"}
	case PkgInstall:
		return []string{"installed"}
	case PkgInfo:
		return []string{"summary", "homepage", "author", "license", "location", "requires", "requiredBy"}
	case Conda:
		// Union over the action variants that carry entry lists.
		return []string{"packages", "environments", "installed"}
	case VCSStatus, VCSDiff:
		return []string{"files"}
	case VCSLog:
		return []string{"commits"}
	case ContainerBuild:
		return []string{"steps"}
	case ImageList:
		return []string{"images"}
	case ContainerList:
		return []string{"containers"}
	case BuildRun:
		return []string{"errors"}
	case Coverage:
		return []string{"files"}
	}
	return nil
}
