package detector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/driftguard/driftguard/internal/domain"
	"github.com/driftguard/driftguard/internal/notify"
)

// Notifier is the notification dispatch the detector needs. Both methods are
// best effort: implementations log and swallow their own failures.
type Notifier interface {
	NotifyDrift(ctx context.Context, d notify.DriftNotification)
	NotifyError(ctx context.Context, runErr error, event domain.AuditEvent)
}

// Detector runs one drift detection and remediation pass. It holds no state
// between runs; every invocation reads the baseline and the live rules fresh.
type Detector struct {
	rules           domain.SecurityGroupAPI
	baselines       domain.BaselineStore
	notifier        Notifier
	remediator      *Remediator
	securityGroupID string
	baselineBucket  string
	baselineKey     string
	log             *slog.Logger
}

type Params struct {
	Rules           domain.SecurityGroupAPI
	Baselines       domain.BaselineStore
	Notifier        Notifier
	SecurityGroupID string
	BaselineBucket  string
	BaselineKey     string
	Log             *slog.Logger
}

func New(p Params) *Detector {
	return &Detector{
		rules:           p.Rules,
		baselines:       p.Baselines,
		notifier:        p.Notifier,
		remediator:      NewRemediator(p.Rules, p.SecurityGroupID, p.Log),
		securityGroupID: p.SecurityGroupID,
		baselineBucket:  p.BaselineBucket,
		baselineKey:     p.BaselineKey,
		log:             p.Log,
	}
}

// Run executes the pipeline for one audit event: load baseline, fetch live
// rules, compare, revoke anything unauthorized, notify. Steps are strictly
// sequential. A failure loading comparison inputs aborts the run after a
// best-effort error notification.
func (d *Detector) Run(ctx context.Context, event domain.AuditEvent) (domain.RunResult, error) {
	actor := event.Actor()
	d.log.Info("processing change event",
		"event", event.EventName(),
		"user", actor.User,
		"time", event.EventTime())

	baseline, err := d.baselines.GetBaseline(ctx, d.baselineBucket, d.baselineKey)
	if err != nil {
		return d.fail(ctx, event, fmt.Errorf("load baseline: %w", err))
	}
	d.log.Info("baseline loaded",
		"security_group", baseline.SecurityGroupID,
		"version", baseline.BaselineVersion)

	live, err := d.rules.GetSecurityGroupRules(ctx, d.securityGroupID)
	if err != nil {
		return d.fail(ctx, event, fmt.Errorf("fetch live rules: %w", err))
	}
	d.log.Info("live rules fetched",
		"ingress", len(live.Ingress),
		"egress", len(live.Egress))

	report := domain.Compare(&baseline.Rules, live)
	if !report.HasDrift {
		d.log.Info("no drift detected, all rules are compliant with baseline")
		return domain.RunResult{Status: domain.RunStatusOK, NoDrift: true}, nil
	}

	for _, rule := range report.UnauthorizedIngress {
		d.log.Warn("unauthorized ingress rule detected", "rule", domain.Summarize(rule))
	}
	for _, rule := range report.UnauthorizedEgress {
		d.log.Warn("unauthorized egress rule detected", "rule", domain.Summarize(rule))
	}

	result := d.remediator.Revoke(ctx, report)

	d.notifier.NotifyDrift(ctx, notify.DriftNotification{
		Actor:     actor,
		EventTime: event.EventTime(),
		EventName: event.EventName(),
		Report:    report,
		Result:    result,
	})

	d.log.Info("drift detection and remediation completed",
		"revoked", len(result.Revoked),
		"failed", len(result.Failed))

	return domain.RunResult{
		Status:                   domain.RunStatusOK,
		UnauthorizedRulesRemoved: len(result.Revoked),
		Details:                  &result,
	}, nil
}

// fail reports an unrecoverable error: log it, attempt an error notification,
// and propagate. The notification attempt's own failure is swallowed by the
// notifier.
func (d *Detector) fail(ctx context.Context, event domain.AuditEvent, err error) (domain.RunResult, error) {
	d.log.Error("drift run failed", "error", err)
	d.notifier.NotifyError(ctx, err, event)
	return domain.RunResult{Status: domain.RunStatusError}, err
}
