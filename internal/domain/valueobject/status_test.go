package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
)

func TestNewApplicationStatus(t *testing.T) {
	for _, raw := range []string{"PENDING", "APPROVED", "REJECTED"} {
		status, err := valueobject.NewApplicationStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, status.String())
	}

	_, err := valueobject.NewApplicationStatus("CANCELLED")
	require.Error(t, err)
}

func TestApplicationStatusTerminal(t *testing.T) {
	assert.False(t, valueobject.ApplicationStatusPending.Terminal())
	assert.True(t, valueobject.ApplicationStatusApproved.Terminal())
	assert.True(t, valueobject.ApplicationStatusRejected.Terminal())
}

func TestNewMemberStatus(t *testing.T) {
	active, err := valueobject.NewMemberStatus("ACTIVE")
	require.NoError(t, err)
	assert.True(t, active.Equal(valueobject.MemberStatusActive))

	_, err = valueobject.NewMemberStatus("SUSPENDED")
	require.Error(t, err)
}

func TestRiskLevelFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  valueobject.RiskLevel
	}{
		{300, valueobject.RiskLevelHigh},
		{500, valueobject.RiskLevelHigh},
		{501, valueobject.RiskLevelMedium},
		{700, valueobject.RiskLevelMedium},
		{701, valueobject.RiskLevelLow},
		{950, valueobject.RiskLevelLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, valueobject.RiskLevelFromScore(tt.score), "score %d", tt.score)
	}
}

func TestRiskLevelFromScoreMonotonic(t *testing.T) {
	// Bucket severity never increases as the score rises.
	rank := map[valueobject.RiskLevel]int{
		valueobject.RiskLevelHigh:   2,
		valueobject.RiskLevelMedium: 1,
		valueobject.RiskLevelLow:    0,
	}

	prev := rank[valueobject.RiskLevelFromScore(valueobject.MinRiskScore)]
	for score := valueobject.MinRiskScore + 1; score <= valueobject.MaxRiskScore; score++ {
		cur := rank[valueobject.RiskLevelFromScore(score)]
		require.LessOrEqual(t, cur, prev, "risk level worsened at score %d", score)
		prev = cur
	}
}
