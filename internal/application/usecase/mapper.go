package usecase

import (
	"github.com/coopcredit/credit-application-service/internal/application/dto"
	"github.com/coopcredit/credit-application-service/internal/domain/model"
)

func toApplicationResponse(app model.CreditApplication) dto.CreditApplicationResponse {
	resp := dto.CreditApplicationResponse{
		ID:                   app.ID(),
		MemberDocumentNumber: app.MemberDocumentNumber(),
		RequestedAmount:      app.RequestedAmount(),
		TermMonths:           app.TermMonths(),
		MonthlyRatePercent:   app.MonthlyRatePercent(),
		MonthlyInstallment:   app.MonthlyInstallment(),
		Status:               app.Status().String(),
		Stage:                string(app.Stage()),
		DecidedBy:            app.DecidedBy(),
		DecisionReason:       app.DecisionReason(),
		CreatedAt:            app.CreatedAt(),
		UpdatedAt:            app.UpdatedAt(),
	}
	if !app.DecidedAt().IsZero() {
		decidedAt := app.DecidedAt()
		resp.DecidedAt = &decidedAt
	}
	if app.HasEvaluation() {
		eval := app.Evaluation()
		resp.RiskEvaluation = &dto.RiskEvaluationResponse{
			Score:               eval.Score(),
			RiskLevel:           eval.RiskLevel().String(),
			DebtToIncomeRatio:   eval.DebtToIncomeRatio(),
			RecommendedApproval: eval.RecommendedApproval(),
			Rationale:           eval.Rationale(),
			EvaluatedAt:         eval.EvaluatedAt(),
		}
	}
	return resp
}

func toApplicationResponses(apps []model.CreditApplication) []dto.CreditApplicationResponse {
	responses := make([]dto.CreditApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, toApplicationResponse(app))
	}
	return responses
}

func toMemberResponse(member model.Member, monthsEnrolled int) dto.MemberResponse {
	return dto.MemberResponse{
		DocumentNumber: member.DocumentNumber(),
		Name:           member.Name(),
		MonthlySalary:  member.MonthlySalary(),
		EnrollmentDate: member.EnrollmentDate(),
		MonthsEnrolled: monthsEnrolled,
		Status:         member.Status().String(),
		CreatedAt:      member.CreatedAt(),
		UpdatedAt:      member.UpdatedAt(),
	}
}
