package impl

import (
	"context"
	"testing"

	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/repository"
	"foodbank/internal/domain/service"
	"foodbank/internal/infra/metrics"
	"foodbank/internal/infra/persistence/postgres"
	mockRepo "foodbank/internal/mocks/repository"
	mockSvc "foodbank/internal/mocks/service"
	"foodbank/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const responsesCSV = `タイムスタンプ,参加イベント,氏名（カナ）,住所,メール,世帯人数
2025/04/02 10:00:00,4月12日（土）市役所,ヤマダ　ハナコ,市川市真間2丁目,hanako@example.org,3名
2025/04/03 11:00:00,5月10日（土）大和田ニコット,スズキ,市川市大和田3丁目,,2
2025/04/03 12:00:00,未定,タナカ,,,
2025/04/04 09:00:00,4月12日（土）市役所,,,,
2025/04/04 09:30:00,4月12日（土）市役所,サトウ,,,""
`

func TestImportService_ImportResponses(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	pantry := testPantry(50)
	seedPantry(t, db, pantry)

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishRecordEvent(mock.Anything, mock.MatchedBy(func(event *service.RecordEvent) bool {
			return event.Operation == "imported" && event.RecordID == "import:3"
		})).
		Return(nil).
		Once()

	srv := NewImportService(ImportServiceParams{
		TxManager:  postgres.NewTransactionManager(db),
		Normalizer: newTestNormalizer(t),
		Publisher:  publisher,
		Metrics:    metrics.NewNoopRecorder(),
		Logs:       newLogService(db, testNow),
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	}).(*importService)
	srv.now = fixedClock(testNow)

	result, err := srv.ImportResponses(ctx, responsesCSV)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, []string{"25.05.10.ニコット"}, result.CreatedPantries)
	assert.Equal(t, []*usecase.ImportSkip{
		{Row: 4, Reason: "開催日を読み取れません"},
		{Row: 5, Reason: "氏名（カナ）がありません"},
	}, result.Skipped)

	reservations := postgres.NewReservationRepository(db)

	first, err := reservations.FindByID(ctx, "250412001")
	require.NoError(t, err)
	assert.Equal(t, "ヤマダ ハナコ", first.NameKana)
	assert.Equal(t, "市川真間", first.NormalizedArea)
	assert.Equal(t, 3, first.HouseholdSize)
	assert.Equal(t, pantry.PantryID, first.PantryID)

	last, err := reservations.FindByID(ctx, "250412002")
	require.NoError(t, err)
	assert.Equal(t, 1, last.HouseholdSize)

	created, err := reservations.FindByID(ctx, "250510001")
	require.NoError(t, err)
	assert.Equal(t, "ニコット", created.Location)

	pantries := postgres.NewPantryRepository(db)

	stored, err := pantries.FindByID(ctx, pantry.PantryID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.ReservationCount)

	newPantry, err := pantries.FindByID(ctx, "25.05.10.ニコット")
	require.NoError(t, err)
	assert.Equal(t, 1, newPantry.ReservationCount)
	assert.Equal(t, 50, newPantry.CapacityTotal)
}

func TestImportService_ImportResponses_Empty(t *testing.T) {
	srv := NewImportService(ImportServiceParams{
		Normalizer: newTestNormalizer(t),
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	_, err := srv.ImportResponses(context.Background(), "  \n")
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestImportService_ImportResponses_RowFailureReason(t *testing.T) {
	const row = "2025/04/02 10:00:00,4月12日（土）市役所,ヤマダ,,,\n"

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "storage failure hides driver text",
			err:  domainerrors.NewStorageError(errors.New(`pq: relation "reservations" does not exist`), "create reservation"),
			want: "データの保存または読み込みに失敗しました",
		},
		{
			name: "unclassified failure",
			err:  errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			want: importRowFailedReason,
		},
		{
			name: "validation failure keeps its message",
			err:  domainerrors.NewValidationErrorf("世帯人数が不正です"),
			want: domainerrors.NewValidationErrorf("世帯人数が不正です").Message(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager := mockRepo.NewMockTransactionManager(t)
			txManager.EXPECT().
				Execute(mock.Anything, mock.Anything).
				RunAndReturn(func(context.Context, func(repository.RepositoryFactory) error) error {
					return tt.err
				}).
				Once()

			srv := NewImportService(ImportServiceParams{
				TxManager:  txManager,
				Normalizer: newTestNormalizer(t),
				Metrics:    metrics.NewNoopRecorder(),
				Logs:       newLogService(newTestDB(t), testNow),
				Config:     newTestConfig(),
				Logger:     newDiscardLogger(),
			}).(*importService)
			srv.now = fixedClock(testNow)

			result, err := srv.ImportResponses(context.Background(), row)
			require.NoError(t, err)

			assert.Zero(t, result.Imported)
			require.Len(t, result.Skipped, 1)
			assert.Equal(t, 1, result.Skipped[0].Row)
			assert.Equal(t, tt.want, result.Skipped[0].Reason)
			assert.NotContains(t, result.Skipped[0].Reason, "pq:")
			assert.NotContains(t, result.Skipped[0].Reason, "5432")
		})
	}
}
