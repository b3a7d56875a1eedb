package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/coopcredit/credit-application-service/internal/domain/domainerr"
	"github.com/coopcredit/credit-application-service/internal/domain/model"
	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
	pkgpostgres "github.com/coopcredit/credit-application-service/pkg/postgres"
)

// CreditApplicationRepo implements port.CreditApplicationRepository.
type CreditApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewCreditApplicationRepo creates a new repository backed by PostgreSQL.
func NewCreditApplicationRepo(pool *pgxpool.Pool) *CreditApplicationRepo {
	return &CreditApplicationRepo{pool: pool}
}

const applicationColumns = `
	a.id, a.member_document_number, a.requested_amount, a.term_months,
	a.monthly_rate_percent, a.status, a.decided_by, a.decision_reason,
	a.decided_at, a.version, a.created_at, a.updated_at,
	e.request_id, e.score, e.risk_level, e.debt_to_income_ratio,
	e.recommended_approval, e.rationale, e.evaluated_at
`

// Save persists the aggregate and, when present, its risk evaluation in one
// transaction. The upsert is guarded by a version compare-and-swap; losing the
// race surfaces as domainerr.ErrConflict.
func (r *CreditApplicationRepo) Save(ctx context.Context, app model.CreditApplication) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO credit_applications (
				id, member_document_number, requested_amount, term_months,
				monthly_rate_percent, status, decided_by, decision_reason,
				decided_at, version, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10 + 1,$11,$12)
			ON CONFLICT (id) DO UPDATE SET
				status          = EXCLUDED.status,
				decided_by      = EXCLUDED.decided_by,
				decision_reason = EXCLUDED.decision_reason,
				decided_at      = EXCLUDED.decided_at,
				version         = credit_applications.version + 1,
				updated_at      = EXCLUDED.updated_at
			WHERE credit_applications.version = $10
		`
		var decidedAt *time.Time
		if !app.DecidedAt().IsZero() {
			t := app.DecidedAt()
			decidedAt = &t
		}
		tag, err := tx.Exec(ctx, query,
			app.ID(), app.MemberDocumentNumber(),
			app.RequestedAmount(), app.TermMonths(), app.MonthlyRatePercent(),
			app.Status().String(), app.DecidedBy(), app.DecisionReason(), decidedAt,
			app.Version(), app.CreatedAt(), app.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("save credit application: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domainerr.ErrConflict
		}

		if !app.HasEvaluation() {
			return nil
		}
		eval := app.Evaluation()
		evalQuery := `
			INSERT INTO risk_evaluations (
				application_id, request_id, score, risk_level,
				debt_to_income_ratio, recommended_approval, rationale, evaluated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			ON CONFLICT (application_id) DO NOTHING
		`
		if _, err := tx.Exec(ctx, evalQuery,
			app.ID(), eval.RequestID(), eval.Score(), eval.RiskLevel().String(),
			eval.DebtToIncomeRatio(), eval.RecommendedApproval(), eval.Rationale(), eval.EvaluatedAt(),
		); err != nil {
			return fmt.Errorf("save risk evaluation: %w", err)
		}
		return nil
	})
}

// FindByID retrieves a single application with its evaluation if present.
func (r *CreditApplicationRepo) FindByID(ctx context.Context, id string) (model.CreditApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM credit_applications a
		LEFT JOIN risk_evaluations e ON e.application_id = a.id
		WHERE a.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	app, err := scanApplication(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.CreditApplication{}, domainerr.ErrApplicationNotFound
	}
	return app, err
}

// FindByMemberDocument retrieves all applications submitted by one member.
func (r *CreditApplicationRepo) FindByMemberDocument(ctx context.Context, documentNumber string) ([]model.CreditApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM credit_applications a
		LEFT JOIN risk_evaluations e ON e.application_id = a.id
		WHERE a.member_document_number = $1
		ORDER BY a.created_at DESC
	`
	return r.scanMany(ctx, query, documentNumber)
}

// FindByStatus retrieves all applications in the given status.
func (r *CreditApplicationRepo) FindByStatus(ctx context.Context, status valueobject.ApplicationStatus) ([]model.CreditApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM credit_applications a
		LEFT JOIN risk_evaluations e ON e.application_id = a.id
		WHERE a.status = $1
		ORDER BY a.created_at DESC
	`
	return r.scanMany(ctx, query, status.String())
}

// FindAll retrieves every application.
func (r *CreditApplicationRepo) FindAll(ctx context.Context) ([]model.CreditApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM credit_applications a
		LEFT JOIN risk_evaluations e ON e.application_id = a.id
		ORDER BY a.created_at DESC
	`
	return r.scanMany(ctx, query)
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func (r *CreditApplicationRepo) scanMany(ctx context.Context, query string, args ...any) ([]model.CreditApplication, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query credit applications: %w", err)
	}
	defer rows.Close()

	var result []model.CreditApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}

func scanApplication(s scannable) (model.CreditApplication, error) {
	var (
		id, memberDocumentNumber string
		requestedAmount          decimal.Decimal
		termMonths               int
		monthlyRatePercent       decimal.Decimal
		statusStr                string
		decidedBy                string
		decisionReason           string
		decidedAt                *time.Time
		version                  int
		createdAt, updatedAt     time.Time

		evalRequestID        *string
		evalScore            *int
		evalRiskLevel        *string
		evalDTI              *decimal.Decimal
		evalRecommended      *bool
		evalRationale        *string
		evalEvaluatedAt      *time.Time
	)

	err := s.Scan(
		&id, &memberDocumentNumber, &requestedAmount, &termMonths,
		&monthlyRatePercent, &statusStr, &decidedBy, &decisionReason,
		&decidedAt, &version, &createdAt, &updatedAt,
		&evalRequestID, &evalScore, &evalRiskLevel, &evalDTI,
		&evalRecommended, &evalRationale, &evalEvaluatedAt,
	)
	if err != nil {
		return model.CreditApplication{}, fmt.Errorf("scan credit application: %w", err)
	}

	status, err := valueobject.NewApplicationStatus(statusStr)
	if err != nil {
		return model.CreditApplication{}, fmt.Errorf("parse status: %w", err)
	}

	var evaluation model.RiskEvaluation
	if evalScore != nil {
		riskLevel, err := valueobject.NewRiskLevel(*evalRiskLevel)
		if err != nil {
			return model.CreditApplication{}, fmt.Errorf("parse risk level: %w", err)
		}
		evaluation = model.ReconstructRiskEvaluation(
			*evalRequestID, *evalScore, riskLevel, *evalDTI,
			*evalRecommended, *evalRationale, *evalEvaluatedAt,
		)
	}

	var decided time.Time
	if decidedAt != nil {
		decided = *decidedAt
	}

	return model.ReconstructCreditApplication(
		id, memberDocumentNumber, requestedAmount, termMonths, monthlyRatePercent,
		status, evaluation, decidedBy, decisionReason, decided,
		version, createdAt, updatedAt,
	), nil
}
