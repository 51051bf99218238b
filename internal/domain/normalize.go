package domain

import "sort"

// NormalizedRule is a Rule reduced to its canonical comparison form: each
// source collection projected to its identifying string, sorted ascending,
// and left nil when empty so that "absent" and "present but empty" are
// indistinguishable.
type NormalizedRule struct {
	Protocol      string
	FromPort      *int32
	ToPort        *int32
	CIDRs         []string
	IPv6CIDRs     []string
	PrefixListIDs []string
	GroupIDs      []string
}

// Normalize canonicalizes a rule for comparison. It is pure: the input is not
// modified, and identical inputs always produce identical output regardless
// of source-list order.
func Normalize(r Rule) NormalizedRule {
	n := NormalizedRule{
		Protocol: r.Protocol,
		FromPort: r.FromPort,
		ToPort:   r.ToPort,
	}

	for _, ipr := range r.IPRanges {
		if ipr.CIDRIP != "" {
			n.CIDRs = append(n.CIDRs, ipr.CIDRIP)
		}
	}
	for _, ipr := range r.IPv6Ranges {
		if ipr.CIDRIPv6 != "" {
			n.IPv6CIDRs = append(n.IPv6CIDRs, ipr.CIDRIPv6)
		}
	}
	for _, pl := range r.PrefixListIDs {
		if pl.PrefixListID != "" {
			n.PrefixListIDs = append(n.PrefixListIDs, pl.PrefixListID)
		}
	}
	for _, pair := range r.UserIDGroupPairs {
		if pair.GroupID != "" {
			n.GroupIDs = append(n.GroupIDs, pair.GroupID)
		}
	}

	sort.Strings(n.CIDRs)
	sort.Strings(n.IPv6CIDRs)
	sort.Strings(n.PrefixListIDs)
	sort.Strings(n.GroupIDs)

	return n
}

// Equal reports whether two normalized rules are deeply equal. Two Rules are
// equivalent iff their normalized forms are Equal.
func (n NormalizedRule) Equal(other NormalizedRule) bool {
	return n.Protocol == other.Protocol &&
		portEqual(n.FromPort, other.FromPort) &&
		portEqual(n.ToPort, other.ToPort) &&
		stringsEqual(n.CIDRs, other.CIDRs) &&
		stringsEqual(n.IPv6CIDRs, other.IPv6CIDRs) &&
		stringsEqual(n.PrefixListIDs, other.PrefixListIDs) &&
		stringsEqual(n.GroupIDs, other.GroupIDs)
}

func portEqual(a, b *int32) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
