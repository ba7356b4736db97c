package impl

import (
	"context"
	"testing"
	"time"

	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/repository"
	"foodbank/internal/domain/session"
	"foodbank/internal/infra/metrics"
	"foodbank/internal/infra/persistence/postgres"
	mockRepo "foodbank/internal/mocks/repository"
	mockUsecase "foodbank/internal/mocks/usecase"
	"foodbank/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type requestMocks struct {
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	requestRepo *mockRepo.MockRequestRepository
	logs        *mockUsecase.MockLogUsecase
}

func newMockedRequestService(t *testing.T) (*requestService, *requestMocks) {
	t.Helper()

	mocks := &requestMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		repoFactory: mockRepo.NewMockRepositoryFactory(t),
		requestRepo: mockRepo.NewMockRequestRepository(t),
		logs:        mockUsecase.NewMockLogUsecase(t),
	}

	srv := NewRequestService(RequestServiceParams{
		TxManager:   mocks.txManager,
		RequestRepo: mocks.requestRepo,
		Metrics:     metrics.NewNoopRecorder(),
		Logs:        mocks.logs,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*requestService)
	srv.now = fixedClock(testNow)

	return srv, mocks
}

// expectTransaction runs the transaction callback against the mocked factory.
func (m *requestMocks) expectTransaction() {
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.repoFactory)
		})
	m.repoFactory.EXPECT().NewRequestRepository().Return(m.requestRepo).Maybe()
}

func TestRequestService_UpdateRequestStatus_AllowedTransition(t *testing.T) {
	srv, mocks := newMockedRequestService(t)
	ctx := session.WithSession(context.Background(), &session.Session{UserID: "U1", DisplayName: "倉庫担当"})
	mocks.expectTransaction()

	mocks.requestRepo.EXPECT().
		FindByID(ctx, "R250401001").
		Return(&entity.Request{ID: "R250401001", Status: entity.RequestStatusPending}, nil)
	mocks.requestRepo.EXPECT().
		UpdateStatus(ctx, "R250401001", entity.RequestStatusApproved, "倉庫担当").
		Return(nil)
	mocks.logs.EXPECT().
		Record(ctx, entity.LogLevelInfo, "Request Status Updated", mock.Anything).
		Return(nil)

	request, err := srv.UpdateRequestStatus(ctx, "R250401001", "approved")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, request.Status)
	assert.Equal(t, "倉庫担当", request.UpdatedBy)
}

func TestRequestService_UpdateRequestStatus_RejectedTransitions(t *testing.T) {
	tests := []struct {
		name string
		from entity.RequestStatus
		to   string
	}{
		{"completed is terminal", entity.RequestStatusCompleted, "approved"},
		{"cancelled is terminal", entity.RequestStatusCancelled, "pending"},
		{"same status", entity.RequestStatusApproved, "approved"},
		{"skipping ready", entity.RequestStatusApproved, "completed"},
		{"ready cannot be cancelled", entity.RequestStatusReady, "cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mocks := newMockedRequestService(t)
			ctx := context.Background()
			mocks.expectTransaction()

			mocks.requestRepo.EXPECT().
				FindByID(ctx, "R1").
				Return(&entity.Request{ID: "R1", Status: tt.from}, nil)

			_, err := srv.UpdateRequestStatus(ctx, "R1", tt.to)
			require.Error(t, err)

			var transitionErr *domainerrors.TransitionError
			require.True(t, errors.As(err, &transitionErr))
			assert.Equal(t, string(tt.from), transitionErr.From)
			assert.Equal(t, tt.to, transitionErr.To)
			assert.Equal(t, domainerrors.KindTransition, domainerrors.KindOf(err))
		})
	}
}

func TestRequestService_UpdateRequestStatus_UnknownStatus(t *testing.T) {
	srv, _ := newMockedRequestService(t)

	_, err := srv.UpdateRequestStatus(context.Background(), "R1", "shipped")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestRequestService_UpdateRequestStatus_NotFound(t *testing.T) {
	srv, mocks := newMockedRequestService(t)
	ctx := context.Background()
	mocks.expectTransaction()

	mocks.requestRepo.EXPECT().
		FindByID(ctx, "R404").
		Return(nil, repository.ErrRequestNotFound)

	_, err := srv.UpdateRequestStatus(ctx, "R404", "approved")
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
}

func TestRequestService_UpdateRequestStatus_StorageFailure(t *testing.T) {
	srv, mocks := newMockedRequestService(t)
	ctx := context.Background()
	mocks.expectTransaction()

	mocks.requestRepo.EXPECT().
		FindByID(ctx, "R1").
		Return(&entity.Request{ID: "R1", Status: entity.RequestStatusPending}, nil)
	mocks.requestRepo.EXPECT().
		UpdateStatus(ctx, "R1", entity.RequestStatusCancelled, "").
		Return(errors.New("connection reset"))

	_, err := srv.UpdateRequestStatus(ctx, "R1", "cancelled")
	assert.Equal(t, domainerrors.KindStorage, domainerrors.KindOf(err))
}

func TestRequestService_GetRequests(t *testing.T) {
	srv, mocks := newMockedRequestService(t)
	ctx := context.Background()

	all := []*entity.Request{{ID: "R1"}, {ID: "R2"}}
	own := []*entity.Request{{ID: "R2"}}

	mocks.requestRepo.EXPECT().List(ctx).Return(all, nil)
	mocks.requestRepo.EXPECT().FindByRequester(ctx, "U2").Return(own, nil)

	got, err := srv.GetRequests(ctx, "ignored", true)
	require.NoError(t, err)
	assert.Equal(t, all, got)

	got, err = srv.GetRequests(ctx, "U2", false)
	require.NoError(t, err)
	assert.Equal(t, own, got)

	_, err = srv.GetRequests(ctx, "", false)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestRequestService_GetWarehouseDashboard(t *testing.T) {
	srv, mocks := newMockedRequestService(t)
	ctx := context.Background()

	mocks.requestRepo.EXPECT().List(ctx).Return([]*entity.Request{
		{ID: "R1", Status: entity.RequestStatusPending, FoodType: "米・穀物", BeneficiaryCount: 10},
		{ID: "R2", Status: entity.RequestStatusCompleted, FoodType: "米・穀物", BeneficiaryCount: 5},
		{ID: "R3", Status: entity.RequestStatusPending, FoodType: "冷凍食品", BeneficiaryCount: 3},
	}, nil)

	dashboard, err := srv.GetWarehouseDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.TotalRequests)
	assert.Equal(t, 2, dashboard.PendingRequests)
	assert.Equal(t, 1, dashboard.CompletedRequests)
	assert.Equal(t, 18, dashboard.TotalBeneficiaries)
	assert.Equal(t, 2, dashboard.CategoryCounts["米・穀物"])
	assert.Equal(t, 2, dashboard.StatusCounts[entity.RequestStatusPending])
}

func TestRequestService_CreateRequest(t *testing.T) {
	ctx := session.WithSession(context.Background(), &session.Session{UserID: "U100", DisplayName: "こども食堂"})
	db := newTestDB(t)

	srv := NewRequestService(RequestServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		RequestRepo: postgres.NewRequestRepository(db),
		Metrics:     metrics.NewNoopRecorder(),
		Logs:        newLogService(db, testNow),
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*requestService)
	srv.now = fixedClock(testNow)

	input := &usecase.CreateRequestInput{
		OrganizationName: "市川こども食堂",
		BeneficiaryCount: "３０名",
		FoodType:         "米・穀物",
		PickupDate:       "2025-04-20",
		UsagePurpose:     "週末の配食",
	}

	first, err := srv.CreateRequest(ctx, input)
	require.NoError(t, err)
	second, err := srv.CreateRequest(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, "R250401001", first.ID)
	assert.Equal(t, "R250401002", second.ID)
	assert.Equal(t, 30, first.BeneficiaryCount)
	assert.Equal(t, entity.RequestStatusPending, first.Status)
	assert.Equal(t, "web", first.Platform)
	assert.Equal(t, "U100", first.RequesterUserID)
	assert.True(t, first.PickupDate.Equal(time.Date(2025, 4, 20, 0, 0, 0, 0, tokyo)))

	own, err := srv.GetRequests(ctx, "U100", false)
	require.NoError(t, err)
	assert.Len(t, own, 2)
}

func TestRequestService_CreateRequest_Validation(t *testing.T) {
	srv, _ := newMockedRequestService(t)
	ctx := context.Background()

	valid := func() *usecase.CreateRequestInput {
		return &usecase.CreateRequestInput{
			OrganizationName: "市川こども食堂",
			BeneficiaryCount: "30",
			FoodType:         "米・穀物",
			PickupDate:       "2025-04-20",
			UsagePurpose:     "配食",
		}
	}

	_, err := srv.CreateRequest(ctx, &usecase.CreateRequestInput{OrganizationName: "x"})
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"beneficiary_count", "food_type", "pickup_date", "usage_purpose"}, validationErr.Fields)

	tests := []struct {
		name   string
		mutate func(in *usecase.CreateRequestInput)
	}{
		{"beneficiaries without digits", func(in *usecase.CreateRequestInput) { in.BeneficiaryCount = "たくさん" }},
		{"unknown food type", func(in *usecase.CreateRequestInput) { in.FoodType = "飲料" }},
		{"malformed pickup date", func(in *usecase.CreateRequestInput) { in.PickupDate = "4/20" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid()
			tt.mutate(input)

			_, err := srv.CreateRequest(ctx, input)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}
