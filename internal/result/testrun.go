package result

// TestRunResult is the canonical result for test runners (pytest, jest,
// go test, cargo test). Total sums every bucket; Duration is seconds of
// wall clock as the runner reported it, 0 when it reported none.
type TestRunResult struct {
	Header
	Tool     string        `json:"tool"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Skipped  int           `json:"skipped"`
	Errored  int           `json:"errored,omitempty"`
	Total    int           `json:"total"`
	Duration float64       `json:"duration"`
	Failures []TestFailure `json:"failures,omitempty"`
}

func (r *TestRunResult) Family() Family { return TestRun }

// Compact replaces the failure objects with the failing test names, in
// encountered order.
func (r *TestRunResult) Compact() Compact {
	c := &TestRunCompact{
		Header:   r.Header,
		Tool:     r.Tool,
		Passed:   r.Passed,
		Failed:   r.Failed,
		Skipped:  r.Skipped,
		Errored:  r.Errored,
		Total:    r.Total,
		Duration: r.Duration,
	}
	for _, f := range r.Failures {
		c.FailureNames = append(c.FailureNames, f.Test)
	}
	return c
}

// TestRunCompact is the compact projection of TestRunResult.
type TestRunCompact struct {
	Header
	Tool         string   `json:"tool"`
	Passed       int      `json:"passed"`
	Failed       int      `json:"failed"`
	Skipped      int      `json:"skipped"`
	Errored      int      `json:"errored,omitempty"`
	Total        int      `json:"total"`
	Duration     float64  `json:"duration"`
	FailureNames []string `json:"failureNames,omitempty"`
}

func (c *TestRunCompact) Family() Family { return TestRun }
