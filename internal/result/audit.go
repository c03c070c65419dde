package result

// AuditResult is the canonical result for dependency auditors
// (pip-audit, npm audit, govulncheck, cargo audit). A dependency with
// no findings contributes no entries.
type AuditResult struct {
	Header
	Tool            string          `json:"tool"`
	Total           int             `json:"total"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities,omitempty"`
}

func (r *AuditResult) Family() Family { return Audit }

// Compact replaces the vulnerability objects with their advisory IDs,
// in encountered order.
func (r *AuditResult) Compact() Compact {
	c := &AuditCompact{
		Header: r.Header,
		Tool:   r.Tool,
		Total:  r.Total,
	}
	for _, v := range r.Vulnerabilities {
		c.VulnerabilityIDs = append(c.VulnerabilityIDs, v.ID)
	}
	return c
}

// AuditCompact is the compact projection of AuditResult.
type AuditCompact struct {
	Header
	Tool             string   `json:"tool"`
	Total            int      `json:"total"`
	VulnerabilityIDs []string `json:"vulnerabilityIDs,omitempty"`
}

func (c *AuditCompact) Family() Family { return Audit }
