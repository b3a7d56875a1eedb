package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopcredit/credit-application-service/internal/application/dto"
	"github.com/coopcredit/credit-application-service/internal/application/usecase"
	"github.com/coopcredit/credit-application-service/internal/domain/domainerr"
)

func TestGetApplication_Execute(t *testing.T) {
	t.Run("owner views their own application", func(t *testing.T) {
		appRepo := newMockApplicationRepository()
		app := seedApplication(appRepo, 10_000_000)

		uc := usecase.NewGetApplicationUseCase(appRepo)
		resp, err := uc.Execute(context.Background(), dto.GetApplicationRequest{
			Actor:         affiliateActor("1020304050"),
			ApplicationID: app.ID(),
		})

		require.NoError(t, err)
		assert.Equal(t, app.ID(), resp.ID)
	})

	t.Run("another affiliate is refused", func(t *testing.T) {
		appRepo := newMockApplicationRepository()
		app := seedApplication(appRepo, 10_000_000)

		uc := usecase.NewGetApplicationUseCase(appRepo)
		_, err := uc.Execute(context.Background(), dto.GetApplicationRequest{
			Actor:         affiliateActor("555"),
			ApplicationID: app.ID(),
		})

		assert.ErrorIs(t, err, domainerr.ErrForbidden)
	})

	t.Run("analyst views pending applications only", func(t *testing.T) {
		appRepo := newMockApplicationRepository()
		memberRepo := newMockMemberRepository()
		pending := seedApplication(appRepo, 10_000_000)

		uc := usecase.NewGetApplicationUseCase(appRepo)
		_, err := uc.Execute(context.Background(), dto.GetApplicationRequest{
			Actor:         analystActor(),
			ApplicationID: pending.ID(),
		})
		require.NoError(t, err)

		// Finalize it; the analyst loses visibility.
		evaluated := seedEvaluated(t, appRepo, memberRepo)
		decideUC := usecase.NewRecordDecisionUseCase(appRepo, &mockEventPublisher{}, &mockMetricsRecorder{})
		_, err = decideUC.Execute(context.Background(), dto.RecordDecisionRequest{
			Actor: analystActor(), ApplicationID: evaluated.ID(), Approved: true,
		})
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), dto.GetApplicationRequest{
			Actor:         analystActor(),
			ApplicationID: evaluated.ID(),
		})
		assert.ErrorIs(t, err, domainerr.ErrForbidden)
	})

	t.Run("admin views anything", func(t *testing.T) {
		appRepo := newMockApplicationRepository()
		app := seedApplication(appRepo, 10_000_000)

		uc := usecase.NewGetApplicationUseCase(appRepo)
		_, err := uc.Execute(context.Background(), dto.GetApplicationRequest{
			Actor:         adminActor(),
			ApplicationID: app.ID(),
		})
		require.NoError(t, err)
	})

	t.Run("unknown id fails not found", func(t *testing.T) {
		uc := usecase.NewGetApplicationUseCase(newMockApplicationRepository())
		_, err := uc.Execute(context.Background(), dto.GetApplicationRequest{
			Actor:         adminActor(),
			ApplicationID: "missing",
		})
		assert.ErrorIs(t, err, domainerr.ErrApplicationNotFound)
	})
}

func TestListApplications_Execute(t *testing.T) {
	t.Run("admin lists everything", func(t *testing.T) {
		appRepo := newMockApplicationRepository()
		seedApplication(appRepo, 10_000_000)
		seedApplication(appRepo, 5_000_000)

		uc := usecase.NewListApplicationsUseCase(appRepo)
		resp, err := uc.Execute(context.Background(), dto.ListApplicationsRequest{Actor: adminActor()})

		require.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("analyst cannot list everything", func(t *testing.T) {
		uc := usecase.NewListApplicationsUseCase(newMockApplicationRepository())
		_, err := uc.Execute(context.Background(), dto.ListApplicationsRequest{Actor: analystActor()})
		assert.ErrorIs(t, err, domainerr.ErrForbidden)
	})

	t.Run("analyst lists the pending queue", func(t *testing.T) {
		appRepo := newMockApplicationRepository()
		memberRepo := newMockMemberRepository()
		seedApplication(appRepo, 10_000_000)

		evaluated := seedEvaluated(t, appRepo, memberRepo)
		decideUC := usecase.NewRecordDecisionUseCase(appRepo, &mockEventPublisher{}, &mockMetricsRecorder{})
		_, err := decideUC.Execute(context.Background(), dto.RecordDecisionRequest{
			Actor: analystActor(), ApplicationID: evaluated.ID(), Approved: false,
		})
		require.NoError(t, err)

		uc := usecase.NewListApplicationsUseCase(appRepo)
		resp, err := uc.Execute(context.Background(), dto.ListApplicationsRequest{
			Actor:       analystActor(),
			PendingOnly: true,
		})

		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "PENDING", resp[0].Status)
	})

	t.Run("member lists their own applications", func(t *testing.T) {
		appRepo := newMockApplicationRepository()
		seedApplication(appRepo, 10_000_000)

		uc := usecase.NewListApplicationsUseCase(appRepo)
		resp, err := uc.Execute(context.Background(), dto.ListApplicationsRequest{
			Actor:                affiliateActor("1020304050"),
			MemberDocumentNumber: "1020304050",
		})

		require.NoError(t, err)
		assert.Len(t, resp, 1)

		_, err = uc.Execute(context.Background(), dto.ListApplicationsRequest{
			Actor:                affiliateActor("555"),
			MemberDocumentNumber: "1020304050",
		})
		assert.ErrorIs(t, err, domainerr.ErrForbidden)
	})
}
