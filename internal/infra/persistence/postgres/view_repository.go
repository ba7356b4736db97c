package postgres

import (
	"context"

	"foodbank/internal/domain/entity"
	"foodbank/internal/domain/repository"
	"foodbank/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const viewInsertBatchSize = 200

// viewRepository implements repository.ViewRepository. Rows keep the
// position they were materialized in so reads return the rebuild order.
type viewRepository struct {
	db *gorm.DB
}

// NewViewRepository is the constructor for viewRepository.
func NewViewRepository(db *gorm.DB) repository.ViewRepository {
	return &viewRepository{
		db: db,
	}
}

// Replace clears the three view tables and writes the new rows. Call it
// through the transaction manager so readers never see a partial rebuild.
func (repo *viewRepository) Replace(ctx context.Context, views *entity.Views) error {
	db := repo.db.WithContext(ctx)

	for _, table := range []any{&model.PantryViewModel{}, &model.UserViewModel{}, &model.DashboardMetricModel{}} {
		if err := db.Where("1 = 1").Delete(table).Error; err != nil {
			return errors.Wrap(err, "failed to clear view table")
		}
	}

	pantryRows := make([]*model.PantryViewModel, 0, len(views.Pantries))
	for i, row := range views.Pantries {
		pantryRows = append(pantryRows, &model.PantryViewModel{
			PantryID:         row.PantryID,
			Position:         i,
			EventDate:        row.EventDate.UTC(),
			Location:         row.Location,
			ReservationCount: row.ReservationCount,
			UniqueUsers:      row.UniqueUsers,
			LastUpdated:      row.LastUpdated.UTC(),
		})
	}
	if err := createInBatches(db, pantryRows); err != nil {
		return errors.Wrap(err, "failed to write pantry view")
	}

	userRows := make([]*model.UserViewModel, 0, len(views.Users))
	for i, row := range views.Users {
		userRows = append(userRows, &model.UserViewModel{
			NameKana:      row.NameKana,
			Position:      i,
			TotalVisits:   row.TotalVisits,
			FirstVisit:    row.FirstVisit.UTC(),
			LastVisit:     row.LastVisit.UTC(),
			Areas:         row.Areas,
			HouseholdSize: row.HouseholdSize,
			LastUpdated:   row.LastUpdated.UTC(),
		})
	}
	if err := createInBatches(db, userRows); err != nil {
		return errors.Wrap(err, "failed to write user view")
	}

	metricRows := make([]*model.DashboardMetricModel, 0, len(views.Dashboard))
	for i, row := range views.Dashboard {
		metricRows = append(metricRows, &model.DashboardMetricModel{
			Metric:      row.Metric,
			Position:    i,
			Value:       row.Value,
			Category:    row.Category,
			LastUpdated: row.LastUpdated.UTC(),
		})
	}
	if err := createInBatches(db, metricRows); err != nil {
		return errors.Wrap(err, "failed to write dashboard view")
	}

	return nil
}

// PantryViews returns the pantry view in materialized order.
func (repo *viewRepository) PantryViews(ctx context.Context) ([]*entity.PantryView, error) {
	var rows []*model.PantryViewModel

	if err := repo.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read pantry view")
	}

	views := make([]*entity.PantryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &entity.PantryView{
			PantryID:         row.PantryID,
			EventDate:        row.EventDate.UTC(),
			Location:         row.Location,
			ReservationCount: row.ReservationCount,
			UniqueUsers:      row.UniqueUsers,
			LastUpdated:      row.LastUpdated.UTC(),
		})
	}

	return views, nil
}

// UserViews returns the user view in materialized order.
func (repo *viewRepository) UserViews(ctx context.Context) ([]*entity.UserView, error) {
	var rows []*model.UserViewModel

	if err := repo.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read user view")
	}

	views := make([]*entity.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &entity.UserView{
			NameKana:      row.NameKana,
			TotalVisits:   row.TotalVisits,
			FirstVisit:    row.FirstVisit.UTC(),
			LastVisit:     row.LastVisit.UTC(),
			Areas:         row.Areas,
			HouseholdSize: row.HouseholdSize,
			LastUpdated:   row.LastUpdated.UTC(),
		})
	}

	return views, nil
}

// DashboardMetrics returns the dashboard view in materialized order.
func (repo *viewRepository) DashboardMetrics(ctx context.Context) ([]*entity.DashboardMetric, error) {
	var rows []*model.DashboardMetricModel

	if err := repo.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read dashboard view")
	}

	metrics := make([]*entity.DashboardMetric, 0, len(rows))
	for _, row := range rows {
		metrics = append(metrics, &entity.DashboardMetric{
			Metric:      row.Metric,
			Value:       row.Value,
			Category:    row.Category,
			LastUpdated: row.LastUpdated.UTC(),
		})
	}

	return metrics, nil
}

func createInBatches[T any](db *gorm.DB, rows []*T) error {
	if len(rows) == 0 {
		return nil
	}

	return db.CreateInBatches(rows, viewInsertBatchSize).Error
}
