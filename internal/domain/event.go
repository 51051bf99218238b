package domain

import (
	"encoding/json"
	"fmt"
)

// UnknownField is substituted for any identity or event field missing from
// the triggering payload.
const UnknownField = "Unknown"

type SessionIssuer struct {
	UserName string `json:"userName"`
}

type SessionContext struct {
	SessionIssuer SessionIssuer `json:"sessionIssuer"`
}

type UserIdentity struct {
	Type           string         `json:"type"`
	PrincipalID    string         `json:"principalId"`
	ARN            string         `json:"arn"`
	UserName       string         `json:"userName"`
	SessionContext SessionContext `json:"sessionContext"`
}

type EventDetail struct {
	EventTime    string       `json:"eventTime"`
	EventName    string       `json:"eventName"`
	UserIdentity UserIdentity `json:"userIdentity"`
}

// AuditEvent is the EventBridge-wrapped change-audit payload that triggers a
// drift run. Raw preserves the payload verbatim for error reporting.
type AuditEvent struct {
	Detail EventDetail     `json:"detail"`
	Raw    json.RawMessage `json:"-"`
}

// ActorContext identifies who made the change that triggered the run. It is
// passed through to notification formatting unchanged.
type ActorContext struct {
	User          string
	PrincipalType string
	PrincipalID   string
	ARN           string
}

// ParseAuditEvent decodes a trigger payload. Field extraction is lenient;
// only malformed JSON is an error.
func ParseAuditEvent(payload []byte) (AuditEvent, error) {
	var event AuditEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return AuditEvent{}, fmt.Errorf("parse audit event: %w", err)
	}
	event.Raw = append(json.RawMessage(nil), payload...)
	return event, nil
}

func (e AuditEvent) EventTime() string {
	return orUnknown(e.Detail.EventTime)
}

func (e AuditEvent) EventName() string {
	return orUnknown(e.Detail.EventName)
}

// Actor resolves the identity behind the event. IAM users report their user
// name, assumed roles report the session issuer's name, and anything else
// falls back to the principal ID.
func (e AuditEvent) Actor() ActorContext {
	id := e.Detail.UserIdentity

	user := orUnknown(id.PrincipalID)
	switch id.Type {
	case "IAMUser":
		user = orUnknown(id.UserName)
	case "AssumedRole":
		user = orUnknown(id.SessionContext.SessionIssuer.UserName)
	}

	return ActorContext{
		User:          user,
		PrincipalType: orUnknown(id.Type),
		PrincipalID:   orUnknown(id.PrincipalID),
		ARN:           orUnknown(id.ARN),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return UnknownField
	}
	return s
}
