package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/deixis/foreman/internal/capture"
	"github.com/deixis/foreman/internal/result"
)

// vcsFailure fills a header for a failed git invocation.
func vcsFailure(h *result.Header, c capture.Capture, m exitMeaning) {
	h.ErrorType = errorType(m)
	degrade(h, c, firstLine(c.Stderr))
}

// git status --porcelain -b: a "## branch...upstream [ahead N, behind
// M]" header then one "XY path" entry per file. X is the staged state,
// Y the unstaged one; untracked files carry "??".

var gitAheadBehindRE = regexp.MustCompile(`\[(?:ahead (\d+))?(?:, )?(?:behind (\d+))?\]`)

// unquotePath strips git's C-style quoting from paths with special
// characters.
func unquotePath(s string) string {
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}
	return s
}

func parseGitStatus(c capture.Capture) (result.Result, error) {
	k := Key{"git", "status"}
	m := meaning(k, c.ExitCode)
	r := &result.VCSStatusResult{Header: header(c, false)}

	if m != exitClean {
		vcsFailure(&r.Header, c, m)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stdout), "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "## ") {
			head := strings.TrimPrefix(line, "## ")
			if mm := gitAheadBehindRE.FindStringSubmatch(head); mm != nil {
				r.Ahead = count(mm[1])
				r.Behind = count(mm[2])
				head = strings.TrimSpace(head[:strings.Index(head, "[")])
			}
			head = strings.TrimPrefix(head, "No commits yet on ")
			branch, upstream, ok := strings.Cut(head, "...")
			r.Branch = branch
			if ok {
				r.Upstream = upstream
			}
			continue
		}
		if len(line) < 4 {
			continue
		}
		x, y, path := line[0], line[1], unquotePath(line[3:])
		fs := result.FileStatus{Path: path}
		if x == '?' {
			fs.Staged, fs.Unstaged = "?", "?"
			r.Untracked++
		} else {
			if x != ' ' {
				fs.Staged = string(x)
				r.Staged++
			}
			if y != ' ' {
				fs.Unstaged = string(y)
				r.Unstaged++
			}
		}
		if x == 'R' || x == 'C' {
			if old, renamed, ok := strings.Cut(path, " -> "); ok {
				fs.RenamedFrom = unquotePath(old)
				fs.Path = unquotePath(renamed)
			}
		}
		r.Files = append(r.Files, fs)
	}
	r.Total = len(r.Files)
	r.Success = true
	return r, nil
}

// git diff --numstat: "added<TAB>deleted<TAB>path" per file, "-" in
// both count columns for binary files.
func parseGitDiff(c capture.Capture) (result.Result, error) {
	k := Key{"git", "diff"}
	m := meaning(k, c.ExitCode)
	r := &result.VCSDiffResult{Header: header(c, false)}

	if m != exitClean && m != exitFindings {
		vcsFailure(&r.Header, c, m)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stdout), "\n") {
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 || parts[2] == "" {
			continue
		}
		ds := result.DiffStat{Path: unquotePath(parts[2])}
		if parts[0] == "-" || parts[1] == "-" {
			ds.Binary = true
		} else {
			ds.Added = count(parts[0])
			ds.Deleted = count(parts[1])
		}
		r.Added += ds.Added
		r.Deleted += ds.Deleted
		r.Files = append(r.Files, ds)
	}
	r.FilesChanged = len(r.Files)
	r.Success = true
	return r, nil
}

// git log --pretty=format:%H%x09%an%x09%aI%x09%s: four tab-separated
// columns per commit.
func parseGitLog(c capture.Capture) (result.Result, error) {
	k := Key{"git", "log"}
	m := meaning(k, c.ExitCode)
	r := &result.VCSLogResult{Header: header(c, false)}

	if m != exitClean {
		vcsFailure(&r.Header, c, m)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stdout), "\n") {
		parts := strings.SplitN(line, "\t", 4)
		if len(parts) != 4 {
			continue
		}
		r.Commits = append(r.Commits, result.Commit{
			Hash:    parts[0],
			Author:  parts[1],
			Date:    parts[2],
			Subject: parts[3],
		})
	}
	r.Total = len(r.Commits)
	r.Success = true
	return r, nil
}
