package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopcredit/credit-application-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Credit Application Events
// ---------------------------------------------------------------------------

// ApplicationSubmitted is raised when a new application enters the system.
type ApplicationSubmitted struct {
	events.BaseEvent
	MemberDocumentNumber string          `json:"member_document_number"`
	RequestedAmount      decimal.Decimal `json:"requested_amount"`
	TermMonths           int             `json:"term_months"`
	MonthlyRatePercent   decimal.Decimal `json:"monthly_rate_percent"`
}

func NewApplicationSubmitted(
	applicationID, memberDocumentNumber string,
	amount decimal.Decimal, termMonths int, monthlyRatePercent decimal.Decimal,
) ApplicationSubmitted {
	return ApplicationSubmitted{
		BaseEvent:            events.NewBaseEvent("credit.application.submitted", applicationID, "CreditApplication"),
		MemberDocumentNumber: memberDocumentNumber,
		RequestedAmount:      amount,
		TermMonths:           termMonths,
		MonthlyRatePercent:   monthlyRatePercent,
	}
}

// ApplicationRiskEvaluated is raised when the risk scoring round completes.
type ApplicationRiskEvaluated struct {
	events.BaseEvent
	MemberDocumentNumber string          `json:"member_document_number"`
	Score                int             `json:"score"`
	RiskLevel            string          `json:"risk_level"`
	DebtToIncomeRatio    decimal.Decimal `json:"debt_to_income_ratio"`
	RecommendedApproval  bool            `json:"recommended_approval"`
}

func NewApplicationRiskEvaluated(
	applicationID, memberDocumentNumber string,
	score int, riskLevel string,
	debtToIncomeRatio decimal.Decimal, recommendedApproval bool,
) ApplicationRiskEvaluated {
	return ApplicationRiskEvaluated{
		BaseEvent:            events.NewBaseEvent("credit.application.risk_evaluated", applicationID, "CreditApplication"),
		MemberDocumentNumber: memberDocumentNumber,
		Score:                score,
		RiskLevel:            riskLevel,
		DebtToIncomeRatio:    debtToIncomeRatio,
		RecommendedApproval:  recommendedApproval,
	}
}

// ApplicationApproved is raised when an analyst approves an application.
type ApplicationApproved struct {
	events.BaseEvent
	MemberDocumentNumber string `json:"member_document_number"`
	DecidedBy            string `json:"decided_by"`
	Reason               string `json:"reason"`
}

func NewApplicationApproved(applicationID, memberDocumentNumber, decidedBy, reason string) ApplicationApproved {
	return ApplicationApproved{
		BaseEvent:            events.NewBaseEvent("credit.application.approved", applicationID, "CreditApplication"),
		MemberDocumentNumber: memberDocumentNumber,
		DecidedBy:            decidedBy,
		Reason:               reason,
	}
}

// ApplicationRejected is raised when an analyst rejects an application.
type ApplicationRejected struct {
	events.BaseEvent
	MemberDocumentNumber string `json:"member_document_number"`
	DecidedBy            string `json:"decided_by"`
	Reason               string `json:"reason"`
}

func NewApplicationRejected(applicationID, memberDocumentNumber, decidedBy, reason string) ApplicationRejected {
	return ApplicationRejected{
		BaseEvent:            events.NewBaseEvent("credit.application.rejected", applicationID, "CreditApplication"),
		MemberDocumentNumber: memberDocumentNumber,
		DecidedBy:            decidedBy,
		Reason:               reason,
	}
}

// ---------------------------------------------------------------------------
// Member Events
// ---------------------------------------------------------------------------

// MemberRegistered is raised when a new cooperative member is registered.
type MemberRegistered struct {
	events.BaseEvent
	Name           string          `json:"name"`
	MonthlySalary  decimal.Decimal `json:"monthly_salary"`
	EnrollmentDate time.Time       `json:"enrollment_date"`
}

func NewMemberRegistered(
	documentNumber, name string,
	monthlySalary decimal.Decimal, enrollmentDate time.Time,
) MemberRegistered {
	return MemberRegistered{
		BaseEvent:      events.NewBaseEvent("credit.member.registered", documentNumber, "Member"),
		Name:           name,
		MonthlySalary:  monthlySalary,
		EnrollmentDate: enrollmentDate,
	}
}

// MemberActivated is raised when a member becomes eligible to apply again.
type MemberActivated struct {
	events.BaseEvent
}

func NewMemberActivated(documentNumber string) MemberActivated {
	return MemberActivated{
		BaseEvent: events.NewBaseEvent("credit.member.activated", documentNumber, "Member"),
	}
}

// MemberDeactivated is raised when a member is barred from applying.
type MemberDeactivated struct {
	events.BaseEvent
}

func NewMemberDeactivated(documentNumber string) MemberDeactivated {
	return MemberDeactivated{
		BaseEvent: events.NewBaseEvent("credit.member.deactivated", documentNumber, "Member"),
	}
}
