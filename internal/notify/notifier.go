package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/driftguard/driftguard/internal/domain"
)

// PlaceholderWebhookURL marks a webhook parameter that was provisioned but
// never filled in. Seeing it means "chat notifications not configured", which
// is not an error.
const PlaceholderWebhookURL = "REPLACE_WITH_YOUR_WEBHOOK_URL"

// Notifier dispatches a composed report to both channels: the pub/sub topic
// for email and the chat webhook. Delivery is best effort on both paths;
// failures are logged and swallowed, never surfaced to the run.
type Notifier struct {
	publisher        domain.TopicPublisher
	secrets          domain.SecretStore
	httpClient       *http.Client
	topicARN         string
	webhookParameter string
	securityGroupID  string
	region           string
	log              *slog.Logger
	now              func() time.Time
}

type Params struct {
	Publisher        domain.TopicPublisher
	Secrets          domain.SecretStore
	HTTPClient       *http.Client
	TopicARN         string
	WebhookParameter string
	SecurityGroupID  string
	Region           string
	Log              *slog.Logger
}

func NewNotifier(p Params) *Notifier {
	httpClient := p.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Notifier{
		publisher:        p.Publisher,
		secrets:          p.Secrets,
		httpClient:       httpClient,
		topicARN:         p.TopicARN,
		webhookParameter: p.WebhookParameter,
		securityGroupID:  p.SecurityGroupID,
		region:           p.Region,
		log:              p.Log,
		now:              time.Now,
	}
}

// NotifyDrift sends the drift report to both channels. Each channel fails
// independently; neither failure affects the other or the caller.
func (n *Notifier) NotifyDrift(ctx context.Context, d DriftNotification) {
	body := ComposeEmail(n.securityGroupID, n.region, d)
	if err := n.publisher.Publish(ctx, n.topicARN, EmailSubject(n.securityGroupID), body); err != nil {
		n.log.Error("failed to send SNS notification", "error", err)
	} else {
		n.log.Info("SNS notification sent", "topic", n.topicARN)
	}

	if err := n.sendSlack(ctx, d); err != nil {
		n.log.Error("failed to send Slack notification", "error", err)
	}
}

// NotifyError publishes a failure report when a run aborts before
// remediation. Its own failure is swallowed.
func (n *Notifier) NotifyError(ctx context.Context, runErr error, event domain.AuditEvent) {
	body := ComposeErrorEmail(n.securityGroupID, n.region, runErr, event, n.now())
	if err := n.publisher.Publish(ctx, n.topicARN, ErrorSubject(n.securityGroupID), body); err != nil {
		n.log.Error("failed to send error notification", "error", err)
	}
}

func (n *Notifier) sendSlack(ctx context.Context, d DriftNotification) error {
	webhookURL, err := n.secrets.GetParameter(ctx, n.webhookParameter)
	if err != nil {
		return err
	}
	if strings.Contains(webhookURL, PlaceholderWebhookURL) {
		n.log.Warn("Slack webhook URL is still a placeholder, skipping Slack notification")
		return nil
	}

	payload, err := json.Marshal(ComposeSlack(n.securityGroupID, n.region, d))
	if err != nil {
		return domain.NewNotificationError("encode Slack payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		return domain.NewNotificationError("build Slack request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return domain.NewNotificationError("post to Slack webhook", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.NewNotificationError(fmt.Sprintf("Slack webhook returned status %d", resp.StatusCode), nil)
	}

	n.log.Info("Slack notification sent")
	return nil
}
