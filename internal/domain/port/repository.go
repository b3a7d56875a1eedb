package port

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/coopcredit/credit-application-service/internal/domain/model"
	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
	"github.com/coopcredit/credit-application-service/pkg/events"
)

// CreditApplicationRepository persists credit application aggregates with
// optimistic concurrency control.
type CreditApplicationRepository interface {
	// Save upserts the aggregate. It returns domainerr.ErrConflict when
	// another writer advanced the stored version first.
	Save(ctx context.Context, app model.CreditApplication) error
	FindByID(ctx context.Context, id string) (model.CreditApplication, error)
	FindByMemberDocument(ctx context.Context, documentNumber string) ([]model.CreditApplication, error)
	FindByStatus(ctx context.Context, status valueobject.ApplicationStatus) ([]model.CreditApplication, error)
	FindAll(ctx context.Context) ([]model.CreditApplication, error)
}

// MemberRepository persists cooperative member aggregates.
type MemberRepository interface {
	// Save upserts the aggregate. Registering a second member with the same
	// document number returns domainerr.ErrDuplicateDocument.
	Save(ctx context.Context, member model.Member) error
	FindByDocumentNumber(ctx context.Context, documentNumber string) (model.Member, error)
	ExistsByDocumentNumber(ctx context.Context, documentNumber string) (bool, error)
	FindAll(ctx context.Context) ([]model.Member, error)
}

// EventPublisher publishes domain events after a successful state change.
// Publishing failures must not roll back the state change.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}

// RiskScoreRequest carries the applicant profile sent to the external risk
// scoring provider.
type RiskScoreRequest struct {
	DocumentNumber    string
	RequestedAmount   decimal.Decimal
	TermMonths        int
	DebtToIncomeRatio decimal.Decimal
	MonthsEnrolled    int
}

// RiskScoreResult is the provider's verdict.
type RiskScoreResult struct {
	Score               int
	RiskLevel           valueobject.RiskLevel
	RecommendedApproval bool
	Rationale           string
}

// RiskCentralClient talks to the external risk scoring provider.
type RiskCentralClient interface {
	Evaluate(ctx context.Context, req RiskScoreRequest) (RiskScoreResult, error)
}
