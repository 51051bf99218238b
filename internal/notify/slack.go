package notify

import (
	"fmt"
	"strings"
)

// Slack block-kit payload types, limited to the block shapes this system
// emits.
type SlackMessage struct {
	Text   string       `json:"text"`
	Blocks []SlackBlock `json:"blocks"`
}

type SlackBlock struct {
	Type   string      `json:"type"`
	Text   *SlackText  `json:"text,omitempty"`
	Fields []SlackText `json:"fields,omitempty"`
}

type SlackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func mrkdwn(format string, args ...any) SlackText {
	return SlackText{Type: "mrkdwn", Text: fmt.Sprintf(format, args...)}
}

// ComposeSlack renders the structured chat payload: a header, two field
// sections, and a bullet list of revoked rule summaries.
func ComposeSlack(securityGroupID, region string, n DriftNotification) *SlackMessage {
	var bullets []string
	for _, item := range n.Result.Revoked {
		bullets = append(bullets, fmt.Sprintf("• [%s] %s", strings.ToUpper(string(item.Direction)), item.Rule))
	}

	return &SlackMessage{
		Text: fmt.Sprintf("🚨 Security Group Drift Detected: %s", securityGroupID),
		Blocks: []SlackBlock{
			{
				Type: "header",
				Text: &SlackText{Type: "plain_text", Text: "🚨 Security Group Drift Detected & Remediated"},
			},
			{
				Type: "section",
				Fields: []SlackText{
					mrkdwn("*Security Group:*\n%s", securityGroupID),
					mrkdwn("*Region:*\n%s", region),
					mrkdwn("*Changed By:*\n%s", n.Actor.User),
					mrkdwn("*Timestamp:*\n%s", n.EventTime),
				},
			},
			{
				Type: "section",
				Fields: []SlackText{
					mrkdwn("*Unauthorized Rules:*\n%d", n.Report.TotalUnauthorized),
					mrkdwn("*Rules Revoked:*\n%d", len(n.Result.Revoked)),
				},
			},
			{
				Type: "section",
				Text: &SlackText{Type: "mrkdwn", Text: "*Revoked Rules:*\n" + strings.Join(bullets, "\n")},
			},
		},
	}
}
