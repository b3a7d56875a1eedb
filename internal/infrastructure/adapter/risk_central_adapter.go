package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopcredit/credit-application-service/internal/domain/port"
	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
)

// RiskCentralConfig holds configuration for the Risk Central HTTP adapter.
type RiskCentralConfig struct {
	// BaseURL is the base URL of the Risk Central API.
	BaseURL string
	// APIKey authenticates against the provider.
	APIKey string
	// Timeout bounds each evaluation call.
	Timeout time.Duration
}

// RiskCentralAdapter calls the external Risk Central scoring API over HTTP.
// It implements port.RiskCentralClient.
type RiskCentralAdapter struct {
	config RiskCentralConfig
	client *http.Client
}

// NewRiskCentralAdapter creates a new HTTP-backed adapter.
func NewRiskCentralAdapter(config RiskCentralConfig) *RiskCentralAdapter {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	return &RiskCentralAdapter{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

type riskCentralRequest struct {
	DocumentNumber    string          `json:"document_number"`
	RequestedAmount   decimal.Decimal `json:"requested_amount"`
	TermMonths        int             `json:"term_months"`
	DebtToIncomeRatio decimal.Decimal `json:"debt_to_income_ratio"`
	MonthsEnrolled    int             `json:"months_enrolled"`
}

type riskCentralResponse struct {
	Score               int    `json:"score"`
	RiskLevel           string `json:"risk_level"`
	RecommendedApproval bool   `json:"recommended_approval"`
	Rationale           string `json:"rationale"`
}

// Evaluate posts the applicant profile to /risk-evaluation and parses the
// verdict.
func (a *RiskCentralAdapter) Evaluate(ctx context.Context, req port.RiskScoreRequest) (port.RiskScoreResult, error) {
	body, err := json.Marshal(riskCentralRequest{
		DocumentNumber:    req.DocumentNumber,
		RequestedAmount:   req.RequestedAmount,
		TermMonths:        req.TermMonths,
		DebtToIncomeRatio: req.DebtToIncomeRatio,
		MonthsEnrolled:    req.MonthsEnrolled,
	})
	if err != nil {
		return port.RiskScoreResult{}, fmt.Errorf("marshal risk request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.config.BaseURL+"/risk-evaluation", bytes.NewReader(body))
	if err != nil {
		return port.RiskScoreResult{}, fmt.Errorf("build risk request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if a.config.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+a.config.APIKey)
	}

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return port.RiskScoreResult{}, fmt.Errorf("call risk central: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return port.RiskScoreResult{}, fmt.Errorf("risk central returned status %d", resp.StatusCode)
	}

	var parsed riskCentralResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return port.RiskScoreResult{}, fmt.Errorf("decode risk response: %w", err)
	}

	riskLevel, err := valueobject.NewRiskLevel(parsed.RiskLevel)
	if err != nil {
		return port.RiskScoreResult{}, fmt.Errorf("invalid risk level %q: %w", parsed.RiskLevel, err)
	}

	return port.RiskScoreResult{
		Score:               parsed.Score,
		RiskLevel:           riskLevel,
		RecommendedApproval: parsed.RecommendedApproval,
		Rationale:           parsed.Rationale,
	}, nil
}
