package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopcredit/credit-application-service/internal/domain/event"
	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
)

// SalaryMultiplierCap bounds the requested amount relative to monthly salary.
const SalaryMultiplierCap = 12

// Member is an immutable aggregate representing a cooperative member. Every
// mutation returns a new copy. The document number is the natural identifier.
type Member struct {
	documentNumber string
	name           string
	monthlySalary  decimal.Decimal
	enrollmentDate time.Time
	status         valueobject.MemberStatus
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	domainEvents   []event.DomainEvent
}

// NewMember registers a new cooperative member in ACTIVE status.
func NewMember(
	documentNumber, name string,
	monthlySalary decimal.Decimal,
	enrollmentDate time.Time,
	now time.Time,
) (Member, error) {
	if documentNumber == "" {
		return Member{}, errors.New("document number is required")
	}
	if name == "" {
		return Member{}, errors.New("name is required")
	}
	if monthlySalary.LessThanOrEqual(decimal.Zero) {
		return Member{}, errors.New("monthly salary must be positive")
	}
	if enrollmentDate.After(now) {
		return Member{}, errors.New("enrollment date cannot be in the future")
	}

	m := Member{
		documentNumber: documentNumber,
		name:           name,
		monthlySalary:  monthlySalary,
		enrollmentDate: enrollmentDate,
		status:         valueobject.MemberStatusActive,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}
	m.domainEvents = append(m.domainEvents, event.NewMemberRegistered(
		documentNumber, name, monthlySalary, enrollmentDate,
	))
	return m, nil
}

// ReconstructMember rebuilds the aggregate from persistence without side-effects.
func ReconstructMember(
	documentNumber, name string,
	monthlySalary decimal.Decimal,
	enrollmentDate time.Time,
	status valueobject.MemberStatus,
	version int,
	createdAt, updatedAt time.Time,
) Member {
	return Member{
		documentNumber: documentNumber,
		name:           name,
		monthlySalary:  monthlySalary,
		enrollmentDate: enrollmentDate,
		status:         status,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// Activate transitions the member to ACTIVE. Activating an already active
// member is a no-op and emits no event.
func (m Member) Activate(now time.Time) Member {
	if m.status.Equal(valueobject.MemberStatusActive) {
		return m
	}
	next := m
	next.status = valueobject.MemberStatusActive
	next.updatedAt = now
	next.domainEvents = copyEvents(m.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewMemberActivated(m.documentNumber))
	return next
}

// Deactivate transitions the member to INACTIVE. Deactivating an already
// inactive member is a no-op and emits no event.
func (m Member) Deactivate(now time.Time) Member {
	if m.status.Equal(valueobject.MemberStatusInactive) {
		return m
	}
	next := m
	next.status = valueobject.MemberStatusInactive
	next.updatedAt = now
	next.domainEvents = copyEvents(m.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewMemberDeactivated(m.documentNumber))
	return next
}

// UpdateProfile replaces the member's name and monthly salary.
func (m Member) UpdateProfile(name string, monthlySalary decimal.Decimal, now time.Time) (Member, error) {
	if name == "" {
		return m, errors.New("name is required")
	}
	if monthlySalary.LessThanOrEqual(decimal.Zero) {
		return m, errors.New("monthly salary must be positive")
	}
	next := m
	next.name = name
	next.monthlySalary = monthlySalary
	next.updatedAt = now
	next.domainEvents = copyEvents(m.domainEvents)
	return next, nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// MonthsEnrolled returns the number of whole months elapsed since enrollment.
func (m Member) MonthsEnrolled(now time.Time) int {
	if now.Before(m.enrollmentDate) {
		return 0
	}
	months := (now.Year()-m.enrollmentDate.Year())*12 + int(now.Month()) - int(m.enrollmentDate.Month())
	if now.Day() < m.enrollmentDate.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// CanApplyForCredit reports whether the member's status admits new credit
// applications.
func (m Member) CanApplyForCredit() bool {
	return m.status.Equal(valueobject.MemberStatusActive)
}

// MaximumCreditAmount returns the largest amount this member may request,
// capped at SalaryMultiplierCap times the monthly salary.
func (m Member) MaximumCreditAmount() decimal.Decimal {
	return m.monthlySalary.Mul(decimal.NewFromInt(SalaryMultiplierCap))
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (m Member) DocumentNumber() string                { return m.documentNumber }
func (m Member) Name() string                          { return m.name }
func (m Member) MonthlySalary() decimal.Decimal        { return m.monthlySalary }
func (m Member) EnrollmentDate() time.Time             { return m.enrollmentDate }
func (m Member) Status() valueobject.MemberStatus      { return m.status }
func (m Member) Version() int                          { return m.version }
func (m Member) CreatedAt() time.Time                  { return m.createdAt }
func (m Member) UpdatedAt() time.Time                  { return m.updatedAt }
func (m Member) DomainEvents() []event.DomainEvent     { return m.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (m Member) ClearEvents() Member {
	next := m
	next.domainEvents = nil
	return next
}
