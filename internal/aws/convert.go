package aws

import (
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/driftguard/driftguard/internal/domain"
)

func toRuleSet(sg *ec2types.SecurityGroup) *domain.RuleSet {
	return &domain.RuleSet{
		Ingress: toRules(sg.IpPermissions),
		Egress:  toRules(sg.IpPermissionsEgress),
	}
}

func toRules(perms []ec2types.IpPermission) []domain.Rule {
	var rules []domain.Rule
	for _, perm := range perms {
		rules = append(rules, toRule(perm))
	}
	return rules
}

func toRule(perm ec2types.IpPermission) domain.Rule {
	rule := domain.Rule{
		Protocol: derefString(perm.IpProtocol),
		FromPort: perm.FromPort,
		ToPort:   perm.ToPort,
	}

	for _, r := range perm.IpRanges {
		rule.IPRanges = append(rule.IPRanges, domain.IPRange{
			CIDRIP:      derefString(r.CidrIp),
			Description: derefString(r.Description),
		})
	}
	for _, r := range perm.Ipv6Ranges {
		rule.IPv6Ranges = append(rule.IPv6Ranges, domain.IPv6Range{
			CIDRIPv6:    derefString(r.CidrIpv6),
			Description: derefString(r.Description),
		})
	}
	for _, pl := range perm.PrefixListIds {
		rule.PrefixListIDs = append(rule.PrefixListIDs, domain.PrefixListID{
			PrefixListID: derefString(pl.PrefixListId),
			Description:  derefString(pl.Description),
		})
	}
	for _, pair := range perm.UserIdGroupPairs {
		rule.UserIDGroupPairs = append(rule.UserIDGroupPairs, domain.UserIDGroupPair{
			GroupID:     derefString(pair.GroupId),
			UserID:      derefString(pair.UserId),
			Description: derefString(pair.Description),
		})
	}

	return rule
}

// toIPPermission maps a rule back to the wire shape the revoke APIs expect.
// The full original source structure is kept so the API matches the exact
// rule being removed.
func toIPPermission(rule domain.Rule) ec2types.IpPermission {
	perm := ec2types.IpPermission{
		IpProtocol: stringPtr(rule.Protocol),
		FromPort:   rule.FromPort,
		ToPort:     rule.ToPort,
	}

	for _, r := range rule.IPRanges {
		perm.IpRanges = append(perm.IpRanges, ec2types.IpRange{
			CidrIp:      stringPtr(r.CIDRIP),
			Description: optionalStringPtr(r.Description),
		})
	}
	for _, r := range rule.IPv6Ranges {
		perm.Ipv6Ranges = append(perm.Ipv6Ranges, ec2types.Ipv6Range{
			CidrIpv6:    stringPtr(r.CIDRIPv6),
			Description: optionalStringPtr(r.Description),
		})
	}
	for _, pl := range rule.PrefixListIDs {
		perm.PrefixListIds = append(perm.PrefixListIds, ec2types.PrefixListId{
			PrefixListId: stringPtr(pl.PrefixListID),
			Description:  optionalStringPtr(pl.Description),
		})
	}
	for _, pair := range rule.UserIDGroupPairs {
		perm.UserIdGroupPairs = append(perm.UserIdGroupPairs, ec2types.UserIdGroupPair{
			GroupId:     stringPtr(pair.GroupID),
			UserId:      optionalStringPtr(pair.UserID),
			Description: optionalStringPtr(pair.Description),
		})
	}

	return perm
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func stringPtr(s string) *string {
	return &s
}

func optionalStringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
