package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Summarize renders a rule into the human-readable form used for revocation
// reporting and audit logging:
//
//	All traffic from 0.0.0.0/0
//	Protocol tcp, Port 22 from 10.0.0.0/8
//	Protocol tcp, Ports 8000-8080 from unknown
//
// Sources list IPv4 CIDRs, then IPv6 CIDRs, then referenced group IDs, comma
// joined; "unknown" when a rule carries none of these.
func Summarize(r Rule) string {
	var sources []string
	for _, ipr := range r.IPRanges {
		if ipr.CIDRIP != "" {
			sources = append(sources, ipr.CIDRIP)
		}
	}
	for _, ipr := range r.IPv6Ranges {
		if ipr.CIDRIPv6 != "" {
			sources = append(sources, ipr.CIDRIPv6)
		}
	}
	for _, pair := range r.UserIDGroupPairs {
		if pair.GroupID != "" {
			sources = append(sources, pair.GroupID)
		}
	}

	sourcesStr := strings.Join(sources, ", ")
	if sourcesStr == "" {
		sourcesStr = "unknown"
	}

	if r.Protocol == ProtocolAll {
		return fmt.Sprintf("All traffic from %s", sourcesStr)
	}
	if portEqual(r.FromPort, r.ToPort) {
		return fmt.Sprintf("Protocol %s, Port %s from %s", r.Protocol, portString(r.FromPort), sourcesStr)
	}
	return fmt.Sprintf("Protocol %s, Ports %s-%s from %s", r.Protocol, portString(r.FromPort), portString(r.ToPort), sourcesStr)
}

func portString(p *int32) string {
	if p == nil {
		return "all"
	}
	return strconv.Itoa(int(*p))
}
