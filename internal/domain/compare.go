package domain

// FindUnauthorized returns the live rules that have no equivalent entry in
// the baseline, in their original shape and original order of appearance.
// Rules present in the baseline but missing from the live set are not
// reported; only additions beyond the baseline count as drift.
func FindUnauthorized(baseline, live []Rule) []Rule {
	normBaseline := make([]NormalizedRule, len(baseline))
	for i, r := range baseline {
		normBaseline[i] = Normalize(r)
	}

	var unauthorized []Rule
	for _, r := range live {
		norm := Normalize(r)
		authorized := false
		for _, nb := range normBaseline {
			if norm.Equal(nb) {
				authorized = true
				break
			}
		}
		if !authorized {
			unauthorized = append(unauthorized, r)
		}
	}
	return unauthorized
}

// Compare evaluates both directions of a live rule set against the baseline.
func Compare(baseline, live *RuleSet) DriftReport {
	ingress := FindUnauthorized(baseline.Ingress, live.Ingress)
	egress := FindUnauthorized(baseline.Egress, live.Egress)

	return DriftReport{
		HasDrift:            len(ingress) > 0 || len(egress) > 0,
		UnauthorizedIngress: ingress,
		UnauthorizedEgress:  egress,
		TotalUnauthorized:   len(ingress) + len(egress),
	}
}
