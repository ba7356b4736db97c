package impl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"foodbank/config"
	deliverycontext "foodbank/internal/delivery/context"
	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/repository"
	"foodbank/internal/domain/service"
	"foodbank/internal/normalize"
	"foodbank/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	operationImported = "imported"

	importColumns = 6

	importRowFailedReason = "この行を取り込めませんでした"
)

// Form response columns.
const (
	colTimestamp = iota
	colEvent
	colNameKana
	colAddress
	colEmail
	colHousehold
)

//nolint:gochecknoglobals
var responseTimestampLayouts = []string{
	time.RFC3339,
	"2006/01/02 15:04:05",
	"2006/1/2 15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2006-01-02",
}

type importService struct {
	txManager  repository.TransactionManager
	normalizer *normalize.Normalizer
	config     *config.Config
	notifier   *recordNotifier
	audit      *auditor
	logger     *slog.Logger
	now        func() time.Time
}

// ImportServiceParams holds dependencies for ImportService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Normalizer *normalize.Normalizer
	Publisher  service.EventPublisher
	Metrics    service.MetricsRecorder
	Logs       usecase.LogUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// NewImportService creates a new form response import service instance
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &importService{
		txManager:  params.TxManager,
		normalizer: params.Normalizer,
		config:     params.Config,
		notifier:   newRecordNotifier(params.Publisher, params.Metrics, params.Logger),
		audit:      &auditor{logs: params.Logs, logger: params.Logger},
		logger:     params.Logger,
		now:        time.Now,
	}
}

// ImportResponses loads form responses row by row. Each row commits on its
// own, so a bad row is reported in Skipped without undoing the others. A
// first row whose event column has no date is treated as a header.
func (srv *importService) ImportResponses(ctx context.Context, csvText string) (*usecase.ImportResult, error) {
	if strings.TrimSpace(csvText) == "" {
		return nil, domainerrors.NewValidationError("csv")
	}

	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &usecase.ImportResult{CreatedPantries: []string{}, Skipped: []*usecase.ImportSkip{}}
	loc := srv.config.Location()

	for rowNum := 1; ; rowNum++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewValidationErrorf("CSVの読み込みに失敗しました (%d行目): %v", rowNum, err)
		}

		if len(row) < importColumns {
			row = append(row, make([]string, importColumns-len(row))...)
		}

		createdAt := srv.responseTime(row[colTimestamp], loc)
		eventDate, ok := normalize.ParseEventDate(row[colEvent], createdAt.Year(), loc)
		if !ok {
			if rowNum == 1 {
				continue
			}
			result.Skipped = append(result.Skipped, &usecase.ImportSkip{Row: rowNum, Reason: "開催日を読み取れません"})

			continue
		}

		if strings.TrimSpace(row[colNameKana]) == "" {
			result.Skipped = append(result.Skipped, &usecase.ImportSkip{Row: rowNum, Reason: "氏名（カナ）がありません"})

			continue
		}

		location := srv.normalizer.ExtractLocation(normalize.EventVenue(row[colEvent]))
		created, err := srv.importRow(ctx, row, eventDate, location, createdAt)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Import row failed", slog.Int("row", rowNum), slog.Any("error", err))
			result.Skipped = append(result.Skipped, &usecase.ImportSkip{Row: rowNum, Reason: skipReason(err)})

			continue
		}

		result.Imported++
		if created != "" {
			result.CreatedPantries = append(result.CreatedPantries, created)
		}
	}

	srv.audit.record(ctx, entity.LogLevelInfo, "Responses Imported", map[string]any{
		"imported":         result.Imported,
		"created_pantries": result.CreatedPantries,
		"skipped":          len(result.Skipped),
	})
	if result.Imported > 0 {
		srv.notifier.notify(ctx, service.RecordKindReservation, fmt.Sprintf("import:%d", result.Imported), operationImported)
	}

	return result, nil
}

// importRow stores one reservation and returns the id of a pantry it had
// to create, if any.
func (srv *importService) importRow(ctx context.Context, row []string, eventDate time.Time, location string, createdAt time.Time) (string, error) {
	var createdPantry string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pantryRepo := repoFactory.NewPantryRepository()
		reservationRepo := repoFactory.NewReservationRepository()

		pantryID := entity.PantryID(eventDate, location)
		pantry, err := pantryRepo.FindByID(ctx, pantryID)
		if errors.Is(err, repository.ErrPantryNotFound) {
			pantry = defaultPantry(srv.config.Pantry, eventDate, location, srv.now())
			if err := pantryRepo.Create(ctx, pantry); err != nil {
				return storageError(err, "create pantry")
			}
			createdPantry = pantry.PantryID
		} else if err != nil {
			return storageError(err, "find pantry")
		}

		prefix := entity.DatePrefix(eventDate)
		id, err := nextID(ctx, repoFactory.NewSequenceRepository(), reservationScopePrefix+prefix, prefix)
		if err != nil {
			return err
		}

		reservation := &entity.Reservation{
			ID:             id,
			PantryID:       pantry.PantryID,
			EventDate:      pantry.EventDate,
			Location:       pantry.Location,
			NameKana:       normalize.NormalizeKanaName(row[colNameKana]),
			Email:          strings.TrimSpace(row[colEmail]),
			HouseholdSize:  max(normalize.ParseHouseholdSize(row[colHousehold]), srv.config.Pantry.DefaultHouseholdSize),
			RawArea:        strings.TrimSpace(row[colAddress]),
			NormalizedArea: srv.normalizer.NormalizeAddress(row[colAddress]),
			Status:         entity.ReservationStatusConfirmed,
			CreatedAt:      createdAt,
			UpdatedAt:      createdAt,
		}

		if err := reservationRepo.Create(ctx, reservation); err != nil {
			return storageError(err, "create reservation")
		}

		return recountPantry(ctx, repoFactory, pantry.PantryID)
	})

	return createdPantry, err
}

// skipReason returns the user-facing reason for a failed row. Storage and
// unclassified failures stay in the log only.
func skipReason(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Kind() != domainerrors.KindInternal {
		return appErr.Message()
	}

	return importRowFailedReason
}

// responseTime parses the form timestamp, falling back to now.
func (srv *importService) responseTime(raw string, loc *time.Location) time.Time {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range responseTimestampLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
			return t
		}
	}

	return srv.now().In(loc)
}
