package aws

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"

	"github.com/driftguard/driftguard/internal/domain"
)

func TestClassifyAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.ErrorKind
	}{
		{
			name: "missing security group",
			err:  &smithy.GenericAPIError{Code: "InvalidGroup.NotFound", Message: "does not exist"},
			want: domain.KindNotFound,
		},
		{
			name: "malformed group id",
			err:  &smithy.GenericAPIError{Code: "InvalidGroupId.Malformed", Message: "bad id"},
			want: domain.KindNotFound,
		},
		{
			name: "missing bucket",
			err:  &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "no bucket"},
			want: domain.KindNotFound,
		},
		{
			name: "missing baseline object",
			err:  &smithy.GenericAPIError{Code: "NoSuchKey", Message: "no key"},
			want: domain.KindNotFound,
		},
		{
			name: "missing webhook parameter",
			err:  &smithy.GenericAPIError{Code: "ParameterNotFound", Message: "no parameter"},
			want: domain.KindNotFound,
		},
		{
			name: "throttled call",
			err:  &smithy.GenericAPIError{Code: "RequestLimitExceeded", Message: "slow down"},
			want: domain.KindTransientAPI,
		},
		{
			name: "plain transport error",
			err:  errors.New("connection reset"),
			want: domain.KindTransientAPI,
		},
		{
			name: "wrapped api error",
			err:  fmt.Errorf("send request: %w", &smithy.GenericAPIError{Code: "NoSuchKey"}),
			want: domain.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyAPIError("DescribeSecurityGroups", tt.err)

			kind, ok := domain.KindOf(got)
			if !ok {
				t.Fatal("expected a classified error")
			}
			if kind != tt.want {
				t.Errorf("expected kind %s, got %s", tt.want, kind)
			}
			if !errors.Is(got, tt.err) {
				t.Error("expected original error preserved in the chain")
			}
		})
	}
}

func TestNewRetryer(t *testing.T) {
	r := newRetryer()
	if r == nil {
		t.Fatal("expected a retryer")
	}
	if got := r.MaxAttempts(); got != 5 {
		t.Errorf("expected 5 max attempts, got %d", got)
	}
}
