package domain

// ProtocolAll is the wire value EC2 uses for "all protocols".
const ProtocolAll = "-1"

type Direction string

const (
	DirectionIngress Direction = "ingress"
	DirectionEgress  Direction = "egress"
)

type IPRange struct {
	CIDRIP      string `json:"CidrIp"`
	Description string `json:"Description,omitempty"`
}

type IPv6Range struct {
	CIDRIPv6    string `json:"CidrIpv6"`
	Description string `json:"Description,omitempty"`
}

type PrefixListID struct {
	PrefixListID string `json:"PrefixListId"`
	Description  string `json:"Description,omitempty"`
}

type UserIDGroupPair struct {
	GroupID     string `json:"GroupId"`
	UserID      string `json:"UserId,omitempty"`
	Description string `json:"Description,omitempty"`
}

// Rule is one security group permission entry in its original wire shape.
// The JSON field names match the EC2 IpPermission encoding because baseline
// documents embed raw IpPermission objects.
//
// FromPort and ToPort are optional: both absent means "all ports" when the
// protocol is "-1". Descriptions and any other metadata the live API attaches
// play no part in rule identity.
type Rule struct {
	Protocol         string            `json:"IpProtocol"`
	FromPort         *int32            `json:"FromPort,omitempty"`
	ToPort           *int32            `json:"ToPort,omitempty"`
	IPRanges         []IPRange         `json:"IpRanges,omitempty"`
	IPv6Ranges       []IPv6Range       `json:"Ipv6Ranges,omitempty"`
	PrefixListIDs    []PrefixListID    `json:"PrefixListIds,omitempty"`
	UserIDGroupPairs []UserIDGroupPair `json:"UserIdGroupPairs,omitempty"`
}

// RuleSet holds the full rule listing of one security group. Order is
// insignificant for comparison but preserved for reporting.
type RuleSet struct {
	Ingress []Rule `json:"ingress"`
	Egress  []Rule `json:"egress"`
}

// Baseline is the approved snapshot a drift run compares against.
// It is produced by the export workflow and never written by this system.
type Baseline struct {
	SecurityGroupID string  `json:"security_group_id"`
	BaselineVersion string  `json:"baseline_version"`
	CreatedAt       string  `json:"created_at"`
	Description     string  `json:"description"`
	Rules           RuleSet `json:"baseline_rules"`
}
