package domain

import "testing"

func int32Ptr(v int32) *int32 {
	return &v
}

func TestNormalize_SortsSources(t *testing.T) {
	rule := Rule{
		Protocol: "tcp",
		FromPort: int32Ptr(443),
		ToPort:   int32Ptr(443),
		IPRanges: []IPRange{
			{CIDRIP: "192.168.0.0/16"},
			{CIDRIP: "10.0.0.0/8"},
		},
		UserIDGroupPairs: []UserIDGroupPair{
			{GroupID: "sg-bbb"},
			{GroupID: "sg-aaa"},
		},
	}

	n := Normalize(rule)

	if n.CIDRs[0] != "10.0.0.0/8" || n.CIDRs[1] != "192.168.0.0/16" {
		t.Errorf("expected sorted CIDRs, got %v", n.CIDRs)
	}
	if n.GroupIDs[0] != "sg-aaa" || n.GroupIDs[1] != "sg-bbb" {
		t.Errorf("expected sorted group IDs, got %v", n.GroupIDs)
	}
}

func TestNormalize_SourceOrderIndependent(t *testing.T) {
	a := Rule{
		Protocol: "tcp",
		FromPort: int32Ptr(22),
		ToPort:   int32Ptr(22),
		IPRanges: []IPRange{{CIDRIP: "10.0.0.0/8"}, {CIDRIP: "172.16.0.0/12"}},
	}
	b := Rule{
		Protocol: "tcp",
		FromPort: int32Ptr(22),
		ToPort:   int32Ptr(22),
		IPRanges: []IPRange{{CIDRIP: "172.16.0.0/12"}, {CIDRIP: "10.0.0.0/8"}},
	}

	if !Normalize(a).Equal(Normalize(b)) {
		t.Error("expected shuffled source lists to normalize identically")
	}
}

func TestNormalize_EmptyCollectionsOmitted(t *testing.T) {
	withEmpty := Rule{
		Protocol:   "tcp",
		FromPort:   int32Ptr(80),
		ToPort:     int32Ptr(80),
		IPRanges:   []IPRange{{CIDRIP: "10.0.0.0/8"}},
		IPv6Ranges: []IPv6Range{},
	}
	withAbsent := Rule{
		Protocol: "tcp",
		FromPort: int32Ptr(80),
		ToPort:   int32Ptr(80),
		IPRanges: []IPRange{{CIDRIP: "10.0.0.0/8"}},
	}

	na := Normalize(withEmpty)
	nb := Normalize(withAbsent)

	if na.IPv6CIDRs != nil {
		t.Errorf("expected nil IPv6 CIDRs, got %v", na.IPv6CIDRs)
	}
	if !na.Equal(nb) {
		t.Error("expected empty and absent collections to normalize identically")
	}
}

func TestNormalize_DiscardsBlankValues(t *testing.T) {
	rule := Rule{
		Protocol: "tcp",
		FromPort: int32Ptr(443),
		ToPort:   int32Ptr(443),
		IPRanges: []IPRange{{CIDRIP: ""}, {CIDRIP: "10.0.0.0/8"}},
	}

	n := Normalize(rule)

	if len(n.CIDRs) != 1 || n.CIDRs[0] != "10.0.0.0/8" {
		t.Errorf("expected blank CIDR discarded, got %v", n.CIDRs)
	}
}

func TestNormalize_IgnoresDescriptions(t *testing.T) {
	a := Rule{
		Protocol: "tcp",
		FromPort: int32Ptr(22),
		ToPort:   int32Ptr(22),
		IPRanges: []IPRange{{CIDRIP: "10.0.0.0/8", Description: "office"}},
	}
	b := Rule{
		Protocol: "tcp",
		FromPort: int32Ptr(22),
		ToPort:   int32Ptr(22),
		IPRanges: []IPRange{{CIDRIP: "10.0.0.0/8"}},
	}

	if !Normalize(a).Equal(Normalize(b)) {
		t.Error("expected descriptions to be excluded from rule identity")
	}
}

func TestNormalize_DegenerateRule(t *testing.T) {
	a := Rule{Protocol: ProtocolAll}
	b := Rule{Protocol: ProtocolAll}

	na := Normalize(a)
	if na.CIDRs != nil || na.IPv6CIDRs != nil || na.PrefixListIDs != nil || na.GroupIDs != nil {
		t.Errorf("expected degenerate rule to carry no sources, got %+v", na)
	}
	if !na.Equal(Normalize(b)) {
		t.Error("expected degenerate rules to compare equal")
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	rule := Rule{
		Protocol:      "udp",
		FromPort:      int32Ptr(53),
		ToPort:        int32Ptr(53),
		IPRanges:      []IPRange{{CIDRIP: "10.1.0.0/16"}, {CIDRIP: "10.2.0.0/16"}},
		IPv6Ranges:    []IPv6Range{{CIDRIPv6: "2001:db8::/32"}},
		PrefixListIDs: []PrefixListID{{PrefixListID: "pl-123"}},
	}

	first := Normalize(rule)
	second := Normalize(rule)

	if !first.Equal(second) {
		t.Error("expected repeated normalization of the same rule to be equal")
	}
}

func TestNormalizedRule_EqualIsSymmetric(t *testing.T) {
	a := Normalize(Rule{Protocol: "tcp", FromPort: int32Ptr(22), ToPort: int32Ptr(22), IPRanges: []IPRange{{CIDRIP: "10.0.0.0/8"}}})
	b := Normalize(Rule{Protocol: "tcp", FromPort: int32Ptr(22), ToPort: int32Ptr(22), IPRanges: []IPRange{{CIDRIP: "10.0.0.0/8"}}})
	c := Normalize(Rule{Protocol: "tcp", FromPort: int32Ptr(22), ToPort: int32Ptr(22), IPRanges: []IPRange{{CIDRIP: "0.0.0.0/0"}}})

	if !a.Equal(a) {
		t.Error("expected Equal to be reflexive")
	}
	if a.Equal(b) != b.Equal(a) {
		t.Error("expected Equal to be symmetric")
	}
	if a.Equal(c) || c.Equal(a) {
		t.Error("expected rules with different CIDRs to differ")
	}
}

func TestNormalizedRule_PortMismatch(t *testing.T) {
	tests := []struct {
		name string
		a, b Rule
		want bool
	}{
		{
			name: "both ports absent",
			a:    Rule{Protocol: ProtocolAll},
			b:    Rule{Protocol: ProtocolAll},
			want: true,
		},
		{
			name: "one port absent",
			a:    Rule{Protocol: "tcp", FromPort: int32Ptr(22), ToPort: int32Ptr(22)},
			b:    Rule{Protocol: "tcp"},
			want: false,
		},
		{
			name: "different ports",
			a:    Rule{Protocol: "tcp", FromPort: int32Ptr(22), ToPort: int32Ptr(22)},
			b:    Rule{Protocol: "tcp", FromPort: int32Ptr(23), ToPort: int32Ptr(23)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.a).Equal(Normalize(tt.b))
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
