package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopcredit/credit-application-service/internal/domain/authz"
	"github.com/coopcredit/credit-application-service/internal/domain/domainerr"
	"github.com/coopcredit/credit-application-service/internal/domain/model"
	"github.com/coopcredit/credit-application-service/internal/domain/port"
	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
	"github.com/coopcredit/credit-application-service/pkg/auth"
	"github.com/coopcredit/credit-application-service/pkg/events"
)

// --- Mock implementations ---

// mockApplicationRepository is an in-memory store with the same optimistic
// version discipline as the real repository: a save whose version does not
// advance past the stored one loses the race.
type mockApplicationRepository struct {
	mu       sync.Mutex
	apps     map[string]model.CreditApplication
	versions map[string]int
	saveFunc func(ctx context.Context, app model.CreditApplication) error
}

func newMockApplicationRepository() *mockApplicationRepository {
	return &mockApplicationRepository{
		apps:     make(map[string]model.CreditApplication),
		versions: make(map[string]int),
	}
}

func (m *mockApplicationRepository) Save(ctx context.Context, app model.CreditApplication) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, app)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if stored, ok := m.versions[app.ID()]; ok && stored != app.Version() {
		return domainerr.ErrConflict
	}
	m.apps[app.ID()] = reconstructWithVersion(app, app.Version()+1)
	m.versions[app.ID()] = app.Version() + 1
	return nil
}

func reconstructWithVersion(app model.CreditApplication, version int) model.CreditApplication {
	return model.ReconstructCreditApplication(
		app.ID(), app.MemberDocumentNumber(), app.RequestedAmount(), app.TermMonths(),
		app.MonthlyRatePercent(), app.Status(), app.Evaluation(), app.DecidedBy(),
		app.DecisionReason(), app.DecidedAt(), version, app.CreatedAt(), app.UpdatedAt(),
	)
}

func (m *mockApplicationRepository) FindByID(_ context.Context, id string) (model.CreditApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	app, ok := m.apps[id]
	if !ok {
		return model.CreditApplication{}, domainerr.ErrApplicationNotFound
	}
	return app, nil
}

func (m *mockApplicationRepository) FindByMemberDocument(_ context.Context, documentNumber string) ([]model.CreditApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.CreditApplication
	for _, app := range m.apps {
		if app.MemberDocumentNumber() == documentNumber {
			out = append(out, app)
		}
	}
	return out, nil
}

func (m *mockApplicationRepository) FindByStatus(_ context.Context, status valueobject.ApplicationStatus) ([]model.CreditApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.CreditApplication
	for _, app := range m.apps {
		if app.Status().Equal(status) {
			out = append(out, app)
		}
	}
	return out, nil
}

func (m *mockApplicationRepository) FindAll(_ context.Context) ([]model.CreditApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.CreditApplication, 0, len(m.apps))
	for _, app := range m.apps {
		out = append(out, app)
	}
	return out, nil
}

// put seeds the store bypassing the version check.
func (m *mockApplicationRepository) put(app model.CreditApplication) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apps[app.ID()] = app.ClearEvents()
	m.versions[app.ID()] = app.Version()
}

type mockMemberRepository struct {
	mu       sync.Mutex
	members  map[string]model.Member
	saveFunc func(ctx context.Context, member model.Member) error
}

func newMockMemberRepository() *mockMemberRepository {
	return &mockMemberRepository{members: make(map[string]model.Member)}
}

func (m *mockMemberRepository) Save(ctx context.Context, member model.Member) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, member)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[member.DocumentNumber()] = member.ClearEvents()
	return nil
}

func (m *mockMemberRepository) FindByDocumentNumber(_ context.Context, documentNumber string) (model.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	member, ok := m.members[documentNumber]
	if !ok {
		return model.Member{}, domainerr.ErrMemberNotFound
	}
	return member, nil
}

func (m *mockMemberRepository) ExistsByDocumentNumber(_ context.Context, documentNumber string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.members[documentNumber]
	return ok, nil
}

func (m *mockMemberRepository) FindAll(_ context.Context) ([]model.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Member, 0, len(m.members))
	for _, member := range m.members {
		out = append(out, member)
	}
	return out, nil
}

type mockEventPublisher struct {
	mu              sync.Mutex
	publishFunc     func(ctx context.Context, evts ...events.DomainEvent) error
	publishedEvents []events.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

func (m *mockEventPublisher) eventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, 0, len(m.publishedEvents))
	for _, e := range m.publishedEvents {
		types = append(types, e.EventType())
	}
	return types
}

type mockRiskCentralClient struct {
	evaluateFunc func(ctx context.Context, req port.RiskScoreRequest) (port.RiskScoreResult, error)
	calls        int
	mu           sync.Mutex
}

func (m *mockRiskCentralClient) Evaluate(ctx context.Context, req port.RiskScoreRequest) (port.RiskScoreResult, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.evaluateFunc != nil {
		return m.evaluateFunc(ctx, req)
	}
	return port.RiskScoreResult{
		Score:               720,
		RiskLevel:           valueobject.RiskLevelLow,
		RecommendedApproval: true,
		Rationale:           "low risk profile",
	}, nil
}

type mockMetricsRecorder struct {
	mu        sync.Mutex
	created   int
	evaluated int
	approved  int
	rejected  int
	members   int
}

func (m *mockMetricsRecorder) ApplicationCreated(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func (m *mockMetricsRecorder) ApplicationEvaluated(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evaluated++
}

func (m *mockMetricsRecorder) ApplicationDecided(_ context.Context, approved bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if approved {
		m.approved++
	} else {
		m.rejected++
	}
}

func (m *mockMetricsRecorder) MemberRegistered(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members++
}

// --- Shared fixtures ---

var fixedNow = time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

func affiliateActor(documentNumber string) authz.Actor {
	return authz.Actor{Username: "laura", DocumentNumber: documentNumber, Roles: []string{auth.RoleAffiliate}}
}

func analystActor() authz.Actor {
	return authz.Actor{Username: "ana", Roles: []string{auth.RoleAnalyst}}
}

func adminActor() authz.Actor {
	return authz.Actor{Username: "root", Roles: []string{auth.RoleAdmin}}
}

// seedMember enrolls the member tenureMonths before the wall clock, since the
// use cases evaluate tenure against time.Now.
func seedMember(repo *mockMemberRepository, salary int64, tenureMonths int, active bool) model.Member {
	now := time.Now().UTC()
	enrolled := now.AddDate(0, -tenureMonths, 0)
	member, _ := model.NewMember("1020304050", "Laura Pineda", decimal.NewFromInt(salary), enrolled, now)
	member = member.ClearEvents()
	if !active {
		member = member.Deactivate(now).ClearEvents()
	}
	repo.members[member.DocumentNumber()] = member
	return member
}

func seedApplication(repo *mockApplicationRepository, amount int64) model.CreditApplication {
	app, _ := model.NewCreditApplication(
		"1020304050", decimal.NewFromInt(amount), 24, decimal.NewFromFloat(1.5), fixedNow,
	)
	app = app.ClearEvents()
	repo.put(app)
	return app
}
