package aws

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/ratelimit"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Client wraps the AWS service clients one drift run needs. It implements
// the collaborator interfaces declared in internal/domain.
type Client struct {
	ec2Client *ec2.Client
	s3Client  *s3.Client
	snsClient *sns.Client
	ssmClient *ssm.Client
	stsClient *sts.Client
	region    string
}

func newRetryer() aws.Retryer {
	return retry.NewStandard(func(o *retry.StandardOptions) {
		o.MaxAttempts = 5
		o.MaxBackoff = 30 * time.Second
		o.Backoff = retry.NewExponentialJitterBackoff(o.MaxBackoff)
		o.RateLimiter = ratelimit.None
	})
}

func NewClient(cfg aws.Config) *Client {
	retryer := newRetryer()
	return &Client{
		ec2Client: ec2.NewFromConfig(cfg, func(o *ec2.Options) { o.Retryer = retryer }),
		s3Client:  s3.NewFromConfig(cfg, func(o *s3.Options) { o.Retryer = retryer }),
		snsClient: sns.NewFromConfig(cfg, func(o *sns.Options) { o.Retryer = retryer }),
		ssmClient: ssm.NewFromConfig(cfg, func(o *ssm.Options) { o.Retryer = retryer }),
		stsClient: sts.NewFromConfig(cfg, func(o *sts.Options) { o.Retryer = retryer }),
		region:    cfg.Region,
	}
}

func (c *Client) Region() string {
	return c.region
}
