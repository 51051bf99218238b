package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/driftguard/driftguard/internal/domain"
)

func (c *Client) GetParameter(ctx context.Context, name string) (string, error) {
	out, err := c.ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", classifyAPIError(fmt.Sprintf("get parameter %s", name), err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", domain.NewNotFoundError(fmt.Sprintf("parameter %s has no value", name), nil)
	}
	return *out.Parameter.Value, nil
}
