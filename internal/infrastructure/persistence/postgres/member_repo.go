package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/coopcredit/credit-application-service/internal/domain/domainerr"
	"github.com/coopcredit/credit-application-service/internal/domain/model"
	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
)

// MemberRepo implements port.MemberRepository.
type MemberRepo struct {
	pool *pgxpool.Pool
}

// NewMemberRepo creates a new repository backed by PostgreSQL.
func NewMemberRepo(pool *pgxpool.Pool) *MemberRepo {
	return &MemberRepo{pool: pool}
}

// Save persists a member (upsert by document number with optimistic locking).
func (r *MemberRepo) Save(ctx context.Context, member model.Member) error {
	query := `
		INSERT INTO members (
			document_number, name, monthly_salary, enrollment_date,
			status, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6 + 1,$7,$8)
		ON CONFLICT (document_number) DO UPDATE SET
			name           = EXCLUDED.name,
			monthly_salary = EXCLUDED.monthly_salary,
			status         = EXCLUDED.status,
			version        = members.version + 1,
			updated_at     = EXCLUDED.updated_at
		WHERE members.version = $6
	`
	tag, err := r.pool.Exec(ctx, query,
		member.DocumentNumber(), member.Name(), member.MonthlySalary(),
		member.EnrollmentDate(), member.Status().String(),
		member.Version(), member.CreatedAt(), member.UpdatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainerr.ErrDuplicateDocument
		}
		return fmt.Errorf("save member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainerr.ErrConflict
	}
	return nil
}

// FindByDocumentNumber retrieves a single member.
func (r *MemberRepo) FindByDocumentNumber(ctx context.Context, documentNumber string) (model.Member, error) {
	query := `
		SELECT document_number, name, monthly_salary, enrollment_date,
		       status, version, created_at, updated_at
		FROM members
		WHERE document_number = $1
	`
	row := r.pool.QueryRow(ctx, query, documentNumber)
	member, err := scanMember(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Member{}, domainerr.ErrMemberNotFound
	}
	return member, err
}

// ExistsByDocumentNumber reports whether a member is already registered.
func (r *MemberRepo) ExistsByDocumentNumber(ctx context.Context, documentNumber string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM members WHERE document_number = $1)`,
		documentNumber,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check member existence: %w", err)
	}
	return exists, nil
}

// FindAll retrieves the whole member directory.
func (r *MemberRepo) FindAll(ctx context.Context) ([]model.Member, error) {
	query := `
		SELECT document_number, name, monthly_salary, enrollment_date,
		       status, version, created_at, updated_at
		FROM members
		ORDER BY enrollment_date
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	var result []model.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, member)
	}
	return result, rows.Err()
}

func scanMember(s scannable) (model.Member, error) {
	var (
		documentNumber, name string
		monthlySalary        decimal.Decimal
		enrollmentDate       time.Time
		statusStr            string
		version              int
		createdAt, updatedAt time.Time
	)

	err := s.Scan(
		&documentNumber, &name, &monthlySalary, &enrollmentDate,
		&statusStr, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Member{}, fmt.Errorf("scan member: %w", err)
	}

	status, err := valueobject.NewMemberStatus(statusStr)
	if err != nil {
		return model.Member{}, fmt.Errorf("parse status: %w", err)
	}

	return model.ReconstructMember(
		documentNumber, name, monthlySalary, enrollmentDate,
		status, version, createdAt, updatedAt,
	), nil
}
