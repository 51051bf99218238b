package domain

import "testing"

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		want string
	}{
		{
			name: "all traffic",
			rule: Rule{
				Protocol: "-1",
				IPRanges: []IPRange{{CIDRIP: "0.0.0.0/0"}},
			},
			want: "All traffic from 0.0.0.0/0",
		},
		{
			name: "single port",
			rule: Rule{
				Protocol: "tcp",
				FromPort: int32Ptr(22),
				ToPort:   int32Ptr(22),
				IPRanges: []IPRange{{CIDRIP: "10.0.0.0/8"}},
			},
			want: "Protocol tcp, Port 22 from 10.0.0.0/8",
		},
		{
			name: "port range no sources",
			rule: Rule{
				Protocol: "tcp",
				FromPort: int32Ptr(8000),
				ToPort:   int32Ptr(8080),
			},
			want: "Protocol tcp, Ports 8000-8080 from unknown",
		},
		{
			name: "mixed sources in fixed order",
			rule: Rule{
				Protocol:         "tcp",
				FromPort:         int32Ptr(443),
				ToPort:           int32Ptr(443),
				IPRanges:         []IPRange{{CIDRIP: "10.0.0.0/8"}},
				IPv6Ranges:       []IPv6Range{{CIDRIPv6: "2001:db8::/32"}},
				UserIDGroupPairs: []UserIDGroupPair{{GroupID: "sg-123"}},
			},
			want: "Protocol tcp, Port 443 from 10.0.0.0/8, 2001:db8::/32, sg-123",
		},
		{
			name: "blank sources filtered",
			rule: Rule{
				Protocol: "tcp",
				FromPort: int32Ptr(80),
				ToPort:   int32Ptr(80),
				IPRanges: []IPRange{{CIDRIP: ""}},
			},
			want: "Protocol tcp, Port 80 from unknown",
		},
		{
			name: "ports absent on specific protocol",
			rule: Rule{
				Protocol: "icmp",
				IPRanges: []IPRange{{CIDRIP: "10.0.0.0/8"}},
			},
			want: "Protocol icmp, Port all from 10.0.0.0/8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.rule); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
