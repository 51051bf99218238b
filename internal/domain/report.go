package domain

// DriftReport is the outcome of one comparison run. Computed fresh per
// invocation, never persisted.
type DriftReport struct {
	HasDrift            bool
	UnauthorizedIngress []Rule
	UnauthorizedEgress  []Rule
	TotalUnauthorized   int
}

type RevokedRule struct {
	Direction Direction `json:"type"`
	Rule      string    `json:"rule"`
}

type FailedRule struct {
	Direction Direction `json:"type"`
	Rule      string    `json:"rule"`
	Error     string    `json:"error"`
}

// RemediationResult records the per-rule outcome of one revocation batch.
// Rule summaries use the human-readable form produced by Summarize.
type RemediationResult struct {
	Revoked []RevokedRule `json:"revoked"`
	Failed  []FailedRule  `json:"failed"`
}

const (
	RunStatusOK    = "ok"
	RunStatusError = "error"
)

// RunResult is the status/body pair reported by one handler invocation.
type RunResult struct {
	Status                   string             `json:"status"`
	NoDrift                  bool               `json:"noDrift,omitempty"`
	UnauthorizedRulesRemoved int                `json:"unauthorizedRulesRemoved,omitempty"`
	Details                  *RemediationResult `json:"details,omitempty"`
}
