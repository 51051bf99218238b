package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/driftguard/driftguard/internal/domain"
)

func (c *Client) GetBaseline(ctx context.Context, bucket, key string) (*domain.Baseline, error) {
	out, err := c.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyAPIError(fmt.Sprintf("get baseline s3://%s/%s", bucket, key), err)
	}
	defer out.Body.Close()

	var baseline domain.Baseline
	if err := json.NewDecoder(out.Body).Decode(&baseline); err != nil {
		return nil, &domain.ClassifiedError{
			Kind:    domain.KindConfiguration,
			Message: fmt.Sprintf("parse baseline s3://%s/%s", bucket, key),
			Err:     err,
		}
	}
	return &baseline, nil
}
