package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"foodbank/config"
	deliverycontext "foodbank/internal/delivery/context"
	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/repository"
	"foodbank/internal/domain/service"
	"foodbank/internal/domain/session"
	"foodbank/internal/normalize"
	"foodbank/internal/usecase"

	"go.uber.org/fx"
)

const (
	donationScopePrefix = "donation:"
	photoKeyTimeLayout  = "20060102_150405"
	defaultPhotoType    = "image/jpeg"
)

type donationService struct {
	txManager    repository.TransactionManager
	donationRepo repository.DonationRepository
	photoStore   service.PhotoStore
	config       *config.Config
	notifier     *recordNotifier
	audit        *auditor
	logger       *slog.Logger
	now          func() time.Time
}

// DonationServiceParams holds dependencies for DonationService, injected by Fx.
type DonationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DonationRepo repository.DonationRepository
	PhotoStore   service.PhotoStore
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder
	Logs         usecase.LogUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDonationService creates a new donation service instance
func NewDonationService(params DonationServiceParams) usecase.DonationUsecase {
	return &donationService{
		txManager:    params.TxManager,
		donationRepo: params.DonationRepo,
		photoStore:   params.PhotoStore,
		config:       params.Config,
		notifier:     newRecordNotifier(params.Publisher, params.Metrics, params.Logger),
		audit:        &auditor{logs: params.Logs, logger: params.Logger},
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *donationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDonation stores a donation with a DYYMMDDNNN id. The photo is
// uploaded after the record commits; an upload failure is only logged.
func (srv *donationService) CreateDonation(ctx context.Context, input *usecase.CreateDonationInput) (*entity.Donation, error) {
	missing := missingFields(
		"donator", input.Donator,
		"weight", input.Weight,
		"contents", input.Contents,
	)
	if len(missing) > 0 {
		return nil, domainerrors.NewValidationError(missing...)
	}

	weight, ok := normalize.ParseWeight(input.Weight)
	if !ok {
		return nil, domainerrors.NewValidationErrorf("重量の形式が正しくありません: %s", input.Weight)
	}

	now := srv.now()
	caller := session.FromContext(ctx)
	donation := &entity.Donation{
		Donator:     entity.ResolveDonator(strings.TrimSpace(input.Donator), strings.TrimSpace(input.OtherDonator)),
		WeightKg:    weight,
		Contents:    strings.TrimSpace(input.Contents),
		Tweet:       tweetChoice(input.Tweet),
		Memo:        strings.TrimSpace(input.Memo),
		InputUser:   caller.DisplayName,
		InputUserID: caller.UserID,
		CreatedAt:   now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		prefix := entity.DatePrefix(now.In(srv.config.Location()))
		id, err := nextID(ctx, repoFactory.NewSequenceRepository(), donationScopePrefix+prefix, donationIDPrefix+prefix)
		if err != nil {
			return err
		}
		donation.ID = id

		if err := repoFactory.NewDonationRepository().Create(ctx, donation); err != nil {
			return storageError(err, "create donation")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(input.Photo) > 0 {
		srv.attachPhoto(ctx, donation, input)
	}

	srv.log(ctx).Info("Donation created", slog.String("donationID", donation.ID), slog.Float64("weightKg", donation.WeightKg))
	srv.audit.record(ctx, entity.LogLevelInfo, "Donation Created", map[string]any{
		"record_id": donation.ID,
		"donator":   donation.Donator,
		"weight":    donation.WeightKg,
		"photo":     donation.PhotoRef != "",
	})
	srv.notifier.notify(ctx, service.RecordKindDonation, donation.ID, operationCreated)

	return donation, nil
}

func (srv *donationService) attachPhoto(ctx context.Context, donation *entity.Donation, input *usecase.CreateDonationInput) {
	contentType := input.PhotoContentType
	if contentType == "" {
		contentType = defaultPhotoType
	}

	key := photoKey(donation.CreatedAt.In(srv.config.Location()), donation.Donator)

	ref, err := srv.photoStore.Put(ctx, key, input.Photo, contentType)
	if err != nil {
		srv.log(ctx).Warn("Failed to store donation photo", slog.String("donationID", donation.ID), slog.Any("error", err))
		srv.audit.record(ctx, entity.LogLevelWarn, "Donation Photo Failed", map[string]any{
			"record_id": donation.ID,
			"error":     err.Error(),
		})

		return
	}

	if err := srv.donationRepo.SetPhotoRef(ctx, donation.ID, ref); err != nil {
		srv.log(ctx).Warn("Failed to attach donation photo", slog.String("donationID", donation.ID), slog.Any("error", err))

		return
	}

	donation.PhotoRef = ref
}

// ListDonations returns donations newest first
func (srv *donationService) ListDonations(ctx context.Context, limit int) ([]*entity.Donation, error) {
	donations, err := srv.donationRepo.List(ctx, limit)
	if err != nil {
		return nil, storageError(err, "list donations")
	}

	return donations, nil
}

// tweetChoice maps the form checkbox onto する/しない, defaulting to しない.
func tweetChoice(raw string) string {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "true", "1", "on", "yes", entity.TweetYes:
		return entity.TweetYes
	default:
		return entity.TweetNo
	}
}

func photoKey(t time.Time, donator string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', '　':
			return '_'
		}

		return r
	}, donator)

	return fmt.Sprintf("fooddrive_%s_%s.jpg", t.Format(photoKeyTimeLayout), name)
}
