package aws

import (
	"errors"

	"github.com/aws/smithy-go"

	"github.com/driftguard/driftguard/internal/domain"
)

// classifyAPIError maps an SDK failure onto the domain error taxonomy.
// Not-found codes get their own kind; everything else (throttling, access
// denied, network faults) is a transient API error.
func classifyAPIError(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "InvalidGroup.NotFound", "InvalidGroupId.Malformed",
			"NoSuchBucket", "NoSuchKey", "ParameterNotFound":
			return domain.NewNotFoundError(op, err)
		}
	}
	return domain.NewTransientAPIError(op, err)
}
