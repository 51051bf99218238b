package driftguard

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"

	internalaws "github.com/driftguard/driftguard/internal/aws"
	"github.com/driftguard/driftguard/internal/config"
	"github.com/driftguard/driftguard/internal/detector"
	"github.com/driftguard/driftguard/internal/domain"
	"github.com/driftguard/driftguard/internal/notify"
)

type Config = config.Config

type Rule = domain.Rule

type RuleSet = domain.RuleSet

type Baseline = domain.Baseline

type DriftReport = domain.DriftReport

type RemediationResult = domain.RemediationResult

type RunResult = domain.RunResult

type ActorContext = domain.ActorContext

type AuditEvent = domain.AuditEvent

// Handler wires the drift pipeline against live AWS services. Construct one
// per process and feed it audit events; each Handle call is an independent,
// stateless run.
type Handler struct {
	detector *detector.Detector
	notifier *notify.Notifier
	log      *slog.Logger
}

// New builds a Handler from a resolved AWS config and validated process
// configuration. Only this constructor holds external-service handles; the
// core components receive them as interfaces.
func New(awsCfg aws.Config, cfg *config.Config, log *slog.Logger) *Handler {
	client := internalaws.NewClient(awsCfg)

	region := cfg.Region
	if region == "" {
		region = client.Region()
	}

	notifier := notify.NewNotifier(notify.Params{
		Publisher:        client,
		Secrets:          client,
		TopicARN:         cfg.TopicARN,
		WebhookParameter: cfg.WebhookParameterName,
		SecurityGroupID:  cfg.SecurityGroupID,
		Region:           region,
		Log:              log,
	})

	det := detector.New(detector.Params{
		Rules:           client,
		Baselines:       client,
		Notifier:        notifier,
		SecurityGroupID: cfg.SecurityGroupID,
		BaselineBucket:  cfg.BaselineBucket,
		BaselineKey:     cfg.BaselineKey,
		Log:             log,
	})

	return &Handler{detector: det, notifier: notifier, log: log}
}

// Handle processes one raw audit event payload. A payload that does not
// parse aborts the run after a best-effort error notification, matching the
// behavior of any other unrecoverable input failure.
func (h *Handler) Handle(ctx context.Context, payload []byte) (domain.RunResult, error) {
	event, err := domain.ParseAuditEvent(payload)
	if err != nil {
		h.log.Error("drift run failed", "error", err)
		h.notifier.NotifyError(ctx, err, domain.AuditEvent{})
		return domain.RunResult{Status: domain.RunStatusError}, err
	}
	return h.detector.Run(ctx, event)
}
