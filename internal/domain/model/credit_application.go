package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coopcredit/credit-application-service/internal/domain/domainerr"
	"github.com/coopcredit/credit-application-service/internal/domain/event"
	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
)

// Stage is the compound lifecycle position of an application, derived from
// status plus evaluation presence. It is never stored.
type Stage string

const (
	StagePending          Stage = "PENDING"
	StageAwaitingDecision Stage = "AWAITING_DECISION"
	StageApproved         Stage = "APPROVED"
	StageRejected         Stage = "REJECTED"
)

// CreditApplication is an immutable aggregate. Every mutation returns a new
// copy; the stored status only ever moves PENDING -> APPROVED or
// PENDING -> REJECTED.
type CreditApplication struct {
	id                   string
	memberDocumentNumber string
	requestedAmount      decimal.Decimal
	termMonths           int
	monthlyRatePercent   decimal.Decimal
	status               valueobject.ApplicationStatus
	evaluation           RiskEvaluation
	decidedBy            string
	decisionReason       string
	decidedAt            time.Time
	version              int
	createdAt            time.Time
	updatedAt            time.Time
	domainEvents         []event.DomainEvent
}

// NewCreditApplication creates a brand-new application in PENDING status.
// Business ranges on amount, term and rate are enforced by the eligibility
// rules in the use case layer, not here.
func NewCreditApplication(
	memberDocumentNumber string,
	requestedAmount decimal.Decimal,
	termMonths int,
	monthlyRatePercent decimal.Decimal,
	now time.Time,
) (CreditApplication, error) {
	if memberDocumentNumber == "" {
		return CreditApplication{}, errors.New("member document number is required")
	}
	if requestedAmount.LessThanOrEqual(decimal.Zero) {
		return CreditApplication{}, errors.New("requested amount must be positive")
	}
	if termMonths <= 0 {
		return CreditApplication{}, errors.New("term months must be positive")
	}
	if monthlyRatePercent.LessThanOrEqual(decimal.Zero) {
		return CreditApplication{}, errors.New("monthly rate must be positive")
	}

	id := uuid.New().String()
	app := CreditApplication{
		id:                   id,
		memberDocumentNumber: memberDocumentNumber,
		requestedAmount:      requestedAmount,
		termMonths:           termMonths,
		monthlyRatePercent:   monthlyRatePercent,
		status:               valueobject.ApplicationStatusPending,
		version:              1,
		createdAt:            now,
		updatedAt:            now,
	}
	app.domainEvents = append(app.domainEvents, event.NewApplicationSubmitted(
		id, memberDocumentNumber, requestedAmount, termMonths, monthlyRatePercent,
	))
	return app, nil
}

// ReconstructCreditApplication rebuilds an aggregate from persistence without
// side-effects.
func ReconstructCreditApplication(
	id, memberDocumentNumber string,
	requestedAmount decimal.Decimal,
	termMonths int,
	monthlyRatePercent decimal.Decimal,
	status valueobject.ApplicationStatus,
	evaluation RiskEvaluation,
	decidedBy, decisionReason string,
	decidedAt time.Time,
	version int,
	createdAt, updatedAt time.Time,
) CreditApplication {
	return CreditApplication{
		id:                   id,
		memberDocumentNumber: memberDocumentNumber,
		requestedAmount:      requestedAmount,
		termMonths:           termMonths,
		monthlyRatePercent:   monthlyRatePercent,
		status:               status,
		evaluation:           evaluation,
		decidedBy:            decidedBy,
		decisionReason:       decisionReason,
		decidedAt:            decidedAt,
		version:              version,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// AttachRiskEvaluation records the single risk scoring outcome for this
// application. An application that already carries an evaluation, or that has
// reached a terminal status, never accepts another one.
func (a CreditApplication) AttachRiskEvaluation(eval RiskEvaluation, now time.Time) (CreditApplication, error) {
	if a.status.Terminal() {
		return a, domainerr.ErrAlreadyFinalized
	}
	if !a.evaluation.IsZero() {
		return a, domainerr.ErrAlreadyEvaluated
	}

	next := a
	next.evaluation = eval
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationRiskEvaluated(
		a.id, a.memberDocumentNumber, eval.Score(), eval.RiskLevel().String(),
		eval.DebtToIncomeRatio(), eval.RecommendedApproval(),
	))
	return next, nil
}

// Decide records the human decision. It requires a completed risk evaluation
// and a still-pending application; the decision is final.
func (a CreditApplication) Decide(approve bool, decidedBy, reason string, now time.Time) (CreditApplication, error) {
	if a.status.Terminal() {
		return a, domainerr.ErrAlreadyFinalized
	}
	if a.evaluation.IsZero() {
		return a, domainerr.ErrEvaluationRequired
	}
	if decidedBy == "" {
		return a, errors.New("decided by is required")
	}

	next := a
	next.decidedBy = decidedBy
	next.decisionReason = reason
	next.decidedAt = now
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	if approve {
		next.status = valueobject.ApplicationStatusApproved
		next.domainEvents = append(next.domainEvents, event.NewApplicationApproved(
			a.id, a.memberDocumentNumber, decidedBy, reason,
		))
	} else {
		next.status = valueobject.ApplicationStatusRejected
		next.domainEvents = append(next.domainEvents, event.NewApplicationRejected(
			a.id, a.memberDocumentNumber, decidedBy, reason,
		))
	}
	return next, nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// HasEvaluation reports whether a risk scoring round has completed.
func (a CreditApplication) HasEvaluation() bool {
	return !a.evaluation.IsZero()
}

// Stage derives the compound lifecycle position from status and evaluation.
func (a CreditApplication) Stage() Stage {
	switch {
	case a.status.Equal(valueobject.ApplicationStatusApproved):
		return StageApproved
	case a.status.Equal(valueobject.ApplicationStatusRejected):
		return StageRejected
	case a.HasEvaluation():
		return StageAwaitingDecision
	default:
		return StagePending
	}
}

// MonthlyInstallment returns the fixed annuity payment for this application's
// terms.
func (a CreditApplication) MonthlyInstallment() decimal.Decimal {
	return MonthlyInstallment(a.requestedAmount, a.termMonths, a.monthlyRatePercent)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a CreditApplication) ID() string                              { return a.id }
func (a CreditApplication) MemberDocumentNumber() string            { return a.memberDocumentNumber }
func (a CreditApplication) RequestedAmount() decimal.Decimal        { return a.requestedAmount }
func (a CreditApplication) TermMonths() int                         { return a.termMonths }
func (a CreditApplication) MonthlyRatePercent() decimal.Decimal     { return a.monthlyRatePercent }
func (a CreditApplication) Status() valueobject.ApplicationStatus   { return a.status }
func (a CreditApplication) Evaluation() RiskEvaluation              { return a.evaluation }
func (a CreditApplication) DecidedBy() string                       { return a.decidedBy }
func (a CreditApplication) DecisionReason() string                  { return a.decisionReason }
func (a CreditApplication) DecidedAt() time.Time                    { return a.decidedAt }
func (a CreditApplication) Version() int                            { return a.version }
func (a CreditApplication) CreatedAt() time.Time                    { return a.createdAt }
func (a CreditApplication) UpdatedAt() time.Time                    { return a.updatedAt }
func (a CreditApplication) DomainEvents() []event.DomainEvent       { return a.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (a CreditApplication) ClearEvents() CreditApplication {
	next := a
	next.domainEvents = nil
	return next
}

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
