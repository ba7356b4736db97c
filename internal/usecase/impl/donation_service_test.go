package impl

import (
	"context"
	"testing"

	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/service"
	"foodbank/internal/domain/session"
	"foodbank/internal/infra/metrics"
	"foodbank/internal/infra/persistence/postgres"
	"foodbank/internal/infra/storage"
	mockSvc "foodbank/internal/mocks/service"
	"foodbank/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"gorm.io/gorm"
)

func newTestDonationService(t *testing.T, db *gorm.DB, photos service.PhotoStore) *donationService {
	t.Helper()

	srv := NewDonationService(DonationServiceParams{
		TxManager:    postgres.NewTransactionManager(db),
		DonationRepo: postgres.NewDonationRepository(db),
		PhotoStore:   photos,
		Metrics:      metrics.NewNoopRecorder(),
		Logs:         newLogService(db, testNow),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*donationService)
	srv.now = fixedClock(testNow)

	return srv
}

func TestDonationService_CreateDonation(t *testing.T) {
	ctx := session.WithSession(context.Background(), &session.Session{UserID: "U7", DisplayName: "受付 太郎"})
	db := newTestDB(t)
	srv := newTestDonationService(t, db, nil)

	tests := []struct {
		name        string
		input       *usecase.CreateDonationInput
		wantID      string
		wantDonator string
		wantWeight  float64
		wantTweet   string
	}{
		{
			name:        "named donor",
			input:       &usecase.CreateDonationInput{Donator: "市川商店", Weight: "3.5kg", Contents: "米", Tweet: "on"},
			wantID:      "D250401001",
			wantDonator: "市川商店",
			wantWeight:  3.5,
			wantTweet:   "する",
		},
		{
			name:        "other donor uses free text",
			input:       &usecase.CreateDonationInput{Donator: "その他", OtherDonator: "匿名の方", Weight: "１，２００", Contents: "缶詰"},
			wantID:      "D250401002",
			wantDonator: "匿名の方",
			wantWeight:  1200,
			wantTweet:   "しない",
		},
		{
			name:        "other donor without free text keeps choice",
			input:       &usecase.CreateDonationInput{Donator: "その他", Weight: "2", Contents: "野菜"},
			wantID:      "D250401003",
			wantDonator: "その他",
			wantWeight:  2,
			wantTweet:   "しない",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			donation, err := srv.CreateDonation(ctx, tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.wantID, donation.ID)
			assert.Equal(t, tt.wantDonator, donation.Donator)
			assert.InDelta(t, tt.wantWeight, donation.WeightKg, 0.001)
			assert.Equal(t, tt.wantTweet, donation.Tweet)
			assert.Equal(t, "受付 太郎", donation.InputUser)
			assert.Equal(t, "U7", donation.InputUserID)
		})
	}

	donations, err := srv.ListDonations(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, donations, 2)
}

func TestDonationService_CreateDonation_Validation(t *testing.T) {
	srv := newTestDonationService(t, newTestDB(t), nil)
	ctx := context.Background()

	_, err := srv.CreateDonation(ctx, &usecase.CreateDonationInput{Contents: "米"})
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"donator", "weight"}, validationErr.Fields)

	_, err = srv.CreateDonation(ctx, &usecase.CreateDonationInput{Donator: "A", Weight: "重い", Contents: "米"})
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestDonationService_CreateDonation_StoresPhoto(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	srv := newTestDonationService(t, db, storage.NewBlobPhotoStore(bucket, "https://photos.example.org"))

	donation, err := srv.CreateDonation(ctx, &usecase.CreateDonationInput{
		Donator:  "市川 商店",
		Weight:   "1",
		Contents: "パン",
		Photo:    []byte("jpeg-bytes"),
	})
	require.NoError(t, err)

	wantKey := "fooddrive_20250401_100000_市川_商店.jpg"
	stored, err := bucket.ReadAll(ctx, wantKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), stored)
	assert.Contains(t, donation.PhotoRef, "https://photos.example.org/")

	persisted, err := postgres.NewDonationRepository(db).FindByID(ctx, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, donation.PhotoRef, persisted.PhotoRef)
}

func TestDonationService_CreateDonation_PhotoFailureKeepsRecord(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	photos := mockSvc.NewMockPhotoStore(t)
	photos.EXPECT().
		Put(mock.Anything, mock.AnythingOfType("string"), []byte("jpeg-bytes"), "image/jpeg").
		Return("", errors.New("bucket unavailable"))

	srv := newTestDonationService(t, db, photos)

	donation, err := srv.CreateDonation(ctx, &usecase.CreateDonationInput{
		Donator:  "市川商店",
		Weight:   "1",
		Contents: "パン",
		Photo:    []byte("jpeg-bytes"),
	})
	require.NoError(t, err)
	assert.Empty(t, donation.PhotoRef)

	persisted, err := postgres.NewDonationRepository(db).FindByID(ctx, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, "D250401001", persisted.ID)

	entries, err := newLogService(db, testNow).Latest(ctx, "WARN", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Donation Photo Failed", entries[0].Message)
}

func TestTweetChoice(t *testing.T) {
	assert.Equal(t, "する", tweetChoice("true"))
	assert.Equal(t, "する", tweetChoice(" YES "))
	assert.Equal(t, "する", tweetChoice("する"))
	assert.Equal(t, "しない", tweetChoice(""))
	assert.Equal(t, "しない", tweetChoice("no"))
}
