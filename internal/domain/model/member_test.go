package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
)

var testNow = time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestMember(t *testing.T) Member {
	t.Helper()
	m, err := NewMember(
		"1020304050",
		"Laura Pineda",
		decimal.NewFromInt(3_000_000),
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		testNow,
	)
	require.NoError(t, err)
	return m
}

func TestNewMember(t *testing.T) {
	m := newTestMember(t)

	assert.Equal(t, "1020304050", m.DocumentNumber())
	assert.True(t, m.Status().Equal(valueobject.MemberStatusActive))
	assert.Equal(t, 1, m.Version())
	require.Len(t, m.DomainEvents(), 1)
	assert.Equal(t, "credit.member.registered", m.DomainEvents()[0].EventType())
}

func TestNewMemberValidation(t *testing.T) {
	cases := []struct {
		name     string
		document string
		fullName string
		salary   decimal.Decimal
		enrolled time.Time
	}{
		{"empty document", "", "Laura Pineda", decimal.NewFromInt(3_000_000), testNow.AddDate(-1, 0, 0)},
		{"empty name", "1020304050", "", decimal.NewFromInt(3_000_000), testNow.AddDate(-1, 0, 0)},
		{"zero salary", "1020304050", "Laura Pineda", decimal.Zero, testNow.AddDate(-1, 0, 0)},
		{"negative salary", "1020304050", "Laura Pineda", decimal.NewFromInt(-1), testNow.AddDate(-1, 0, 0)},
		{"future enrollment", "1020304050", "Laura Pineda", decimal.NewFromInt(3_000_000), testNow.AddDate(0, 1, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMember(tc.document, tc.fullName, tc.salary, tc.enrolled, testNow)
			assert.Error(t, err)
		})
	}
}

func TestMemberMonthsEnrolled(t *testing.T) {
	cases := []struct {
		name     string
		enrolled time.Time
		now      time.Time
		want     int
	}{
		{
			"exact months",
			time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
			6,
		},
		{
			"partial month rounds down",
			time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
			5,
		},
		{
			"same day",
			time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
			0,
		},
		{
			"years",
			time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
			39,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := ReconstructMember(
				"1020304050", "Laura Pineda", decimal.NewFromInt(3_000_000),
				tc.enrolled, valueobject.MemberStatusActive, 1, tc.enrolled, tc.enrolled,
			)
			assert.Equal(t, tc.want, m.MonthsEnrolled(tc.now))
		})
	}
}

func TestMemberMaximumCreditAmount(t *testing.T) {
	m := newTestMember(t)
	assert.True(t, m.MaximumCreditAmount().Equal(decimal.NewFromInt(36_000_000)))
}

func TestMemberActivateDeactivate(t *testing.T) {
	m := newTestMember(t).ClearEvents()

	inactive := m.Deactivate(testNow)
	assert.True(t, inactive.Status().Equal(valueobject.MemberStatusInactive))
	assert.False(t, inactive.CanApplyForCredit())
	require.Len(t, inactive.DomainEvents(), 1)
	assert.Equal(t, "credit.member.deactivated", inactive.DomainEvents()[0].EventType())

	// Original copy is untouched.
	assert.True(t, m.Status().Equal(valueobject.MemberStatusActive))

	active := inactive.ClearEvents().Activate(testNow)
	assert.True(t, active.Status().Equal(valueobject.MemberStatusActive))
	require.Len(t, active.DomainEvents(), 1)
	assert.Equal(t, "credit.member.activated", active.DomainEvents()[0].EventType())
}

func TestMemberActivateIdempotent(t *testing.T) {
	m := newTestMember(t).ClearEvents()

	again := m.Activate(testNow)
	assert.Empty(t, again.DomainEvents())
	assert.Equal(t, m.UpdatedAt(), again.UpdatedAt())
}

func TestMemberUpdateProfile(t *testing.T) {
	m := newTestMember(t).ClearEvents()

	updated, err := m.UpdateProfile("Laura Pineda Rios", decimal.NewFromInt(4_500_000), testNow)
	require.NoError(t, err)
	assert.Equal(t, "Laura Pineda Rios", updated.Name())
	assert.True(t, updated.MonthlySalary().Equal(decimal.NewFromInt(4_500_000)))

	_, err = m.UpdateProfile("", decimal.NewFromInt(4_500_000), testNow)
	assert.Error(t, err)

	_, err = m.UpdateProfile("Laura Pineda", decimal.Zero, testNow)
	assert.Error(t, err)
}
