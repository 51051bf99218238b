package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/driftguard/driftguard/internal/domain"
)

func (c *Client) GetSecurityGroupRules(ctx context.Context, securityGroupID string) (*domain.RuleSet, error) {
	out, err := c.ec2Client.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		GroupIds: []string{securityGroupID},
	})
	if err != nil {
		return nil, classifyAPIError(fmt.Sprintf("describe security group %s", securityGroupID), err)
	}
	if len(out.SecurityGroups) == 0 {
		return nil, domain.NewNotFoundError(fmt.Sprintf("security group %s not found", securityGroupID), nil)
	}
	return toRuleSet(&out.SecurityGroups[0]), nil
}

func (c *Client) RevokeRule(ctx context.Context, securityGroupID string, direction domain.Direction, rule domain.Rule) error {
	perms := []ec2types.IpPermission{toIPPermission(rule)}

	var err error
	switch direction {
	case domain.DirectionIngress:
		_, err = c.ec2Client.RevokeSecurityGroupIngress(ctx, &ec2.RevokeSecurityGroupIngressInput{
			GroupId:       aws.String(securityGroupID),
			IpPermissions: perms,
		})
	case domain.DirectionEgress:
		_, err = c.ec2Client.RevokeSecurityGroupEgress(ctx, &ec2.RevokeSecurityGroupEgressInput{
			GroupId:       aws.String(securityGroupID),
			IpPermissions: perms,
		})
	default:
		return domain.NewTransientAPIError(fmt.Sprintf("unsupported rule direction %q", direction), nil)
	}
	if err != nil {
		return classifyAPIError(fmt.Sprintf("revoke %s rule on %s", direction, securityGroupID), err)
	}
	return nil
}
