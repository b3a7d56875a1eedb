package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopcredit/credit-application-service/internal/domain/authz"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateApplicationRequest carries the data needed to open a credit application.
type CreateApplicationRequest struct {
	Actor                authz.Actor     `json:"-"`
	MemberDocumentNumber string          `json:"member_document_number"`
	RequestedAmount      decimal.Decimal `json:"requested_amount"`
	TermMonths           int             `json:"term_months"`
	MonthlyRatePercent   decimal.Decimal `json:"monthly_rate_percent"`
}

// RequestEvaluationRequest triggers one risk scoring round. RequestID is an
// optional caller-supplied idempotency key used to recognize retries of the
// same round.
type RequestEvaluationRequest struct {
	Actor         authz.Actor `json:"-"`
	ApplicationID string      `json:"application_id"`
	RequestID     string      `json:"request_id,omitempty"`
}

// RecordDecisionRequest finalizes an evaluated application.
type RecordDecisionRequest struct {
	Actor         authz.Actor `json:"-"`
	ApplicationID string      `json:"application_id"`
	Approved      bool        `json:"approved"`
	Comments      string      `json:"comments,omitempty"`
}

// GetApplicationRequest identifies an application to retrieve.
type GetApplicationRequest struct {
	Actor         authz.Actor `json:"-"`
	ApplicationID string      `json:"application_id"`
}

// ListApplicationsRequest selects an application listing surface.
type ListApplicationsRequest struct {
	Actor                authz.Actor `json:"-"`
	PendingOnly          bool        `json:"pending_only,omitempty"`
	MemberDocumentNumber string      `json:"member_document_number,omitempty"`
}

// PreviewAmortizationRequest computes an installment and schedule without
// creating an application.
type PreviewAmortizationRequest struct {
	Actor              authz.Actor     `json:"-"`
	Principal          decimal.Decimal `json:"principal"`
	TermMonths         int             `json:"term_months"`
	MonthlyRatePercent decimal.Decimal `json:"monthly_rate_percent"`
	StartDate          time.Time       `json:"start_date,omitempty"`
}

// RegisterMemberRequest enrolls a new cooperative member.
type RegisterMemberRequest struct {
	Actor          authz.Actor     `json:"-"`
	DocumentNumber string          `json:"document_number"`
	Name           string          `json:"name"`
	MonthlySalary  decimal.Decimal `json:"monthly_salary"`
	EnrollmentDate time.Time       `json:"enrollment_date"`
}

// UpdateMemberRequest replaces a member's profile data.
type UpdateMemberRequest struct {
	Actor          authz.Actor     `json:"-"`
	DocumentNumber string          `json:"document_number"`
	Name           string          `json:"name"`
	MonthlySalary  decimal.Decimal `json:"monthly_salary"`
}

// SetMemberStatusRequest activates or deactivates a member.
type SetMemberStatusRequest struct {
	Actor          authz.Actor `json:"-"`
	DocumentNumber string      `json:"document_number"`
	Active         bool        `json:"active"`
}

// GetMemberRequest identifies a member to retrieve.
type GetMemberRequest struct {
	Actor          authz.Actor `json:"-"`
	DocumentNumber string      `json:"document_number"`
}

// ListMembersRequest lists the member directory.
type ListMembersRequest struct {
	Actor authz.Actor `json:"-"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// RiskEvaluationResponse is the external representation of a risk evaluation.
type RiskEvaluationResponse struct {
	Score               int             `json:"score"`
	RiskLevel           string          `json:"risk_level"`
	DebtToIncomeRatio   decimal.Decimal `json:"debt_to_income_ratio"`
	RecommendedApproval bool            `json:"recommended_approval"`
	Rationale           string          `json:"rationale"`
	EvaluatedAt         time.Time       `json:"evaluated_at"`
}

// CreditApplicationResponse is the external representation of an application.
type CreditApplicationResponse struct {
	ID                   string                  `json:"id"`
	MemberDocumentNumber string                  `json:"member_document_number"`
	RequestedAmount      decimal.Decimal         `json:"requested_amount"`
	TermMonths           int                     `json:"term_months"`
	MonthlyRatePercent   decimal.Decimal         `json:"monthly_rate_percent"`
	MonthlyInstallment   decimal.Decimal         `json:"monthly_installment"`
	Status               string                  `json:"status"`
	Stage                string                  `json:"stage"`
	RiskEvaluation       *RiskEvaluationResponse `json:"risk_evaluation,omitempty"`
	DecidedBy            string                  `json:"decided_by,omitempty"`
	DecisionReason       string                  `json:"decision_reason,omitempty"`
	DecidedAt            *time.Time              `json:"decided_at,omitempty"`
	CreatedAt            time.Time               `json:"created_at"`
	UpdatedAt            time.Time               `json:"updated_at"`
}

// MemberResponse is the external representation of a cooperative member.
type MemberResponse struct {
	DocumentNumber string          `json:"document_number"`
	Name           string          `json:"name"`
	MonthlySalary  decimal.Decimal `json:"monthly_salary"`
	EnrollmentDate time.Time       `json:"enrollment_date"`
	MonthsEnrolled int             `json:"months_enrolled"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AmortizationEntryResponse represents a single amortization schedule entry.
type AmortizationEntryResponse struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"due_date"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// AmortizationPreviewResponse carries the computed installment and schedule.
type AmortizationPreviewResponse struct {
	Principal          decimal.Decimal             `json:"principal"`
	TermMonths         int                         `json:"term_months"`
	MonthlyRatePercent decimal.Decimal             `json:"monthly_rate_percent"`
	MonthlyInstallment decimal.Decimal             `json:"monthly_installment"`
	TotalPayment       decimal.Decimal             `json:"total_payment"`
	Schedule           []AmortizationEntryResponse `json:"schedule,omitempty"`
}
