package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// CallerIdentity describes the credentials the process is running under.
// Used by environment diagnostics, not by the drift run itself.
type CallerIdentity struct {
	AccountID string
	ARN       string
}

func (c *Client) GetCallerIdentity(ctx context.Context) (CallerIdentity, error) {
	out, err := c.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return CallerIdentity{}, classifyAPIError("get caller identity", err)
	}
	return CallerIdentity{
		AccountID: derefString(out.Account),
		ARN:       derefString(out.Arn),
	}, nil
}
