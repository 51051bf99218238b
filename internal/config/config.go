package config

import (
	"os"
	"strings"

	"github.com/driftguard/driftguard/internal/domain"
)

// Config is the process configuration, read from the environment the way the
// hosting execution environment injects it.
type Config struct {
	// SecurityGroupID is the single security group this process guards.
	SecurityGroupID string

	// BaselineBucket and BaselineKey locate the approved baseline document.
	BaselineBucket string
	BaselineKey    string

	// TopicARN is the pub/sub topic drift and error notifications go to.
	TopicARN string

	// WebhookParameterName names the decrypted parameter holding the chat
	// webhook URL.
	WebhookParameterName string

	// Region is used for console links in notifications. Falls back to the
	// resolved SDK region when unset.
	Region string
}

const (
	envSecurityGroupID  = "SECURITY_GROUP_ID"
	envBaselineBucket   = "BASELINE_BUCKET"
	envBaselineKey      = "BASELINE_S3_KEY"
	envTopicARN         = "SNS_TOPIC_ARN"
	envWebhookParameter = "SLACK_WEBHOOK_PARAMETER_NAME"
	envRegion           = "AWS_REGION"
)

// FromEnv reads and validates the configuration. A missing required variable
// is a configuration error; nothing has been mutated yet, so the run aborts
// cleanly.
func FromEnv() (*Config, error) {
	cfg := &Config{
		SecurityGroupID:      os.Getenv(envSecurityGroupID),
		BaselineBucket:       os.Getenv(envBaselineBucket),
		BaselineKey:          os.Getenv(envBaselineKey),
		TopicARN:             os.Getenv(envTopicARN),
		WebhookParameterName: os.Getenv(envWebhookParameter),
		Region:               os.Getenv(envRegion),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every required field is set. Region is optional here;
// callers fill it from the resolved AWS config when absent.
func (c *Config) Validate() error {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{envSecurityGroupID, c.SecurityGroupID},
		{envBaselineBucket, c.BaselineBucket},
		{envBaselineKey, c.BaselineKey},
		{envTopicARN, c.TopicARN},
		{envWebhookParameter, c.WebhookParameterName},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return domain.NewConfigurationError("missing required environment variables: " + strings.Join(missing, ", "))
	}
	return nil
}
