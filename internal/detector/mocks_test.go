package detector

import (
	"context"

	"github.com/driftguard/driftguard/internal/domain"
	"github.com/driftguard/driftguard/internal/notify"
)

type revokeCall struct {
	securityGroupID string
	direction       domain.Direction
	rule            domain.Rule
}

type mockSecurityGroupAPI struct {
	rules    *domain.RuleSet
	rulesErr error

	revokeErrs map[string]error // keyed by rule summary
	revoked    []revokeCall
}

func (m *mockSecurityGroupAPI) GetSecurityGroupRules(_ context.Context, _ string) (*domain.RuleSet, error) {
	if m.rulesErr != nil {
		return nil, m.rulesErr
	}
	return m.rules, nil
}

func (m *mockSecurityGroupAPI) RevokeRule(_ context.Context, securityGroupID string, direction domain.Direction, rule domain.Rule) error {
	m.revoked = append(m.revoked, revokeCall{
		securityGroupID: securityGroupID,
		direction:       direction,
		rule:            rule,
	})
	if err, ok := m.revokeErrs[domain.Summarize(rule)]; ok {
		return err
	}
	return nil
}

type mockBaselineStore struct {
	baseline *domain.Baseline
	err      error

	bucket string
	key    string
}

func (m *mockBaselineStore) GetBaseline(_ context.Context, bucket, key string) (*domain.Baseline, error) {
	m.bucket = bucket
	m.key = key
	if m.err != nil {
		return nil, m.err
	}
	return m.baseline, nil
}

type mockNotifier struct {
	driftCalls []notify.DriftNotification
	errorCalls []error
}

func (m *mockNotifier) NotifyDrift(_ context.Context, d notify.DriftNotification) {
	m.driftCalls = append(m.driftCalls, d)
}

func (m *mockNotifier) NotifyError(_ context.Context, runErr error, _ domain.AuditEvent) {
	m.errorCalls = append(m.errorCalls, runErr)
}
