package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/driftguard/driftguard/internal/domain"
)

func (c *Client) Publish(ctx context.Context, topicARN, subject, message string) error {
	_, err := c.snsClient.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return domain.NewNotificationError(fmt.Sprintf("publish to %s", topicARN), err)
	}
	return nil
}
