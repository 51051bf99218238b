package detector

import (
	"context"
	"log/slog"

	"github.com/driftguard/driftguard/internal/domain"
)

// Remediator removes unauthorized rules through the mutation API. Each rule
// is attempted exactly once per invocation; a rejected revoke is recorded and
// the batch moves on, so one stuck rule never shields the rest.
type Remediator struct {
	api             domain.SecurityGroupAPI
	securityGroupID string
	log             *slog.Logger
}

func NewRemediator(api domain.SecurityGroupAPI, securityGroupID string, log *slog.Logger) *Remediator {
	return &Remediator{
		api:             api,
		securityGroupID: securityGroupID,
		log:             log,
	}
}

// Revoke processes every unauthorized rule in the report, all ingress rules
// first, then all egress rules, strictly sequentially.
func (r *Remediator) Revoke(ctx context.Context, report domain.DriftReport) domain.RemediationResult {
	var result domain.RemediationResult
	r.revokeDirection(ctx, domain.DirectionIngress, report.UnauthorizedIngress, &result)
	r.revokeDirection(ctx, domain.DirectionEgress, report.UnauthorizedEgress, &result)
	return result
}

func (r *Remediator) revokeDirection(ctx context.Context, direction domain.Direction, rules []domain.Rule, result *domain.RemediationResult) {
	for _, rule := range rules {
		summary := domain.Summarize(rule)
		r.log.Info("revoking unauthorized rule",
			"security_group", r.securityGroupID,
			"direction", string(direction),
			"rule", summary)

		if err := r.api.RevokeRule(ctx, r.securityGroupID, direction, rule); err != nil {
			r.log.Error("failed to revoke rule",
				"direction", string(direction),
				"rule", summary,
				"error", err)
			result.Failed = append(result.Failed, domain.FailedRule{
				Direction: direction,
				Rule:      summary,
				Error:     err.Error(),
			})
			continue
		}

		result.Revoked = append(result.Revoked, domain.RevokedRule{
			Direction: direction,
			Rule:      summary,
		})
	}
}
