package domain

import "context"

// SecurityGroupAPI queries and mutates the live firewall rules of one
// security group.
type SecurityGroupAPI interface {
	// GetSecurityGroupRules returns the group's current rule set, or a
	// not-found classified error when the ID does not resolve.
	GetSecurityGroupRules(ctx context.Context, securityGroupID string) (*RuleSet, error)

	// RevokeRule removes exactly one rule, passed in its original shape;
	// the mutation API matches on the full source structure.
	RevokeRule(ctx context.Context, securityGroupID string, direction Direction, rule Rule) error
}

// BaselineStore fetches the approved baseline document.
type BaselineStore interface {
	GetBaseline(ctx context.Context, bucket, key string) (*Baseline, error)
}

// SecretStore returns decrypted parameter values, such as the chat webhook URL.
type SecretStore interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

// TopicPublisher delivers a subject and long-form body to a pub/sub topic.
type TopicPublisher interface {
	Publish(ctx context.Context, topicARN, subject, message string) error
}
