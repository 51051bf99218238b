package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/driftguard/driftguard/internal/domain"
)

// DriftNotification carries everything the composers render: who made the
// change, when, what drifted, and how remediation went.
type DriftNotification struct {
	Actor     domain.ActorContext
	EventTime string
	EventName string
	Report    domain.DriftReport
	Result    domain.RemediationResult
}

func EmailSubject(securityGroupID string) string {
	return fmt.Sprintf("🚨 Security Group Drift Detected - %s", securityGroupID)
}

func ErrorSubject(securityGroupID string) string {
	return fmt.Sprintf("❌ Drift Detector Error - %s", securityGroupID)
}

// ComposeEmail renders the long-form notification body. Output is
// deterministic: identical inputs yield byte-identical text.
func ComposeEmail(securityGroupID, region string, n DriftNotification) string {
	var b strings.Builder

	fmt.Fprintf(&b, `
🚨 SECURITY GROUP DRIFT DETECTED AND REMEDIATED 🚨

Security Group: %s
Region: %s
Event: %s
Timestamp: %s

👤 CHANGE MADE BY:
User: %s
Type: %s
ARN: %s

📊 DRIFT SUMMARY:
Total Unauthorized Rules: %d
Unauthorized Ingress Rules: %d
Unauthorized Egress Rules: %d

✅ REMEDIATION RESULTS:
Rules Revoked: %d
Failed Revocations: %d

🔍 REVOKED RULES:
`,
		securityGroupID, region, n.EventName, n.EventTime,
		n.Actor.User, n.Actor.PrincipalType, n.Actor.ARN,
		n.Report.TotalUnauthorized,
		len(n.Report.UnauthorizedIngress), len(n.Report.UnauthorizedEgress),
		len(n.Result.Revoked), len(n.Result.Failed))

	for _, item := range n.Result.Revoked {
		fmt.Fprintf(&b, "\n  - [%s] %s", strings.ToUpper(string(item.Direction)), item.Rule)
	}

	if len(n.Result.Failed) > 0 {
		b.WriteString("\n\n❌ FAILED TO REVOKE:\n")
		for _, item := range n.Result.Failed {
			fmt.Fprintf(&b, "\n  - [%s] %s\n    Error: %s", strings.ToUpper(string(item.Direction)), item.Rule, item.Error)
		}
	}

	fmt.Fprintf(&b, "\n\n🔗 CloudWatch Logs: https://%s.console.aws.amazon.com/cloudwatch/home?region=%s#logsV2:log-groups", region, region)
	fmt.Fprintf(&b, "\n🔗 Security Group: https://%s.console.aws.amazon.com/ec2/home?region=%s#SecurityGroup:groupId=%s", region, region, securityGroupID)

	return b.String()
}

// ComposeErrorEmail renders the notification sent when a run fails before
// remediation could complete. The triggering payload is included verbatim to
// aid manual follow-up.
func ComposeErrorEmail(securityGroupID, region string, runErr error, event domain.AuditEvent, now time.Time) string {
	eventJSON := string(pretty(event.Raw))
	if eventJSON == "" {
		eventJSON = "(no event payload)"
	}

	return fmt.Sprintf(`
❌ ERROR IN DRIFT DETECTOR

Security Group: %s
Region: %s
Timestamp: %s

Error: %s

Event Details:
%s

Please check the logs for more details.
`, securityGroupID, region, now.UTC().Format(time.RFC3339), runErr, eventJSON)
}

func pretty(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return raw
	}
	return buf.Bytes()
}
