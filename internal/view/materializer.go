// Package view derives the aggregate tables from a reservation snapshot.
// Every function is a pure function of its input and clock value: records
// are sorted before grouping, so the same snapshot always yields the same
// rows in the same order.
package view

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"

	"foodbank/internal/domain/entity"
)

// Dashboard metric names.
const (
	MetricTotalReservations   = "total_reservations"
	MetricUniqueUsers         = "unique_users"
	MetricHouseholdSize1      = "household_size_1"
	MetricHouseholdSize2To3   = "household_size_2_3"
	MetricHouseholdSize4Plus  = "household_size_4_plus"
	metricLocationPrefix      = "location_"
	areaSeparator             = ", "
	minimumHouseholdSize      = 1
	largeHouseholdLowerBound  = 4
	mediumHouseholdLowerBound = 2
)

// LocationMetric returns the dashboard metric name for a location.
func LocationMetric(location string) string {
	return metricLocationPrefix + location
}

// active returns the confirmed reservations sorted by creation time then id.
func active(records []*entity.Reservation) []*entity.Reservation {
	out := make([]*entity.Reservation, 0, len(records))
	for _, r := range records {
		if r != nil && r.IsActive() {
			out = append(out, r)
		}
	}

	slices.SortStableFunc(out, func(a, b *entity.Reservation) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return out
}

// RebuildPantryView groups reservations by pantry id.
func RebuildPantryView(records []*entity.Reservation, now time.Time) []*entity.PantryView {
	byPantry := make(map[string]*entity.PantryView)
	users := make(map[string]map[string]struct{})

	for _, r := range active(records) {
		row, ok := byPantry[r.PantryID]
		if !ok {
			row = &entity.PantryView{
				PantryID:    r.PantryID,
				EventDate:   r.EventDate,
				Location:    r.Location,
				LastUpdated: now,
			}
			byPantry[r.PantryID] = row
			users[r.PantryID] = make(map[string]struct{})
		}

		row.ReservationCount++
		users[r.PantryID][r.NameKana] = struct{}{}
	}

	rows := make([]*entity.PantryView, 0, len(byPantry))
	for id, row := range byPantry {
		row.UniqueUsers = len(users[id])
		rows = append(rows, row)
	}

	slices.SortFunc(rows, func(a, b *entity.PantryView) int {
		if c := a.EventDate.Compare(b.EventDate); c != 0 {
			return c
		}

		return cmp.Compare(a.PantryID, b.PantryID)
	})

	return rows
}

// RebuildUserView groups reservations by kana name.
func RebuildUserView(records []*entity.Reservation, now time.Time) []*entity.UserView {
	type accumulator struct {
		row       *entity.UserView
		areas     []string
		household int
	}

	byName := make(map[string]*accumulator)
	for _, r := range active(records) {
		acc, ok := byName[r.NameKana]
		if !ok {
			acc = &accumulator{row: &entity.UserView{
				NameKana:    r.NameKana,
				FirstVisit:  r.CreatedAt,
				LastVisit:   r.CreatedAt,
				LastUpdated: now,
			}}
			byName[r.NameKana] = acc
		}

		acc.row.TotalVisits++
		if r.CreatedAt.Before(acc.row.FirstVisit) {
			acc.row.FirstVisit = r.CreatedAt
		}
		if r.CreatedAt.After(acc.row.LastVisit) {
			acc.row.LastVisit = r.CreatedAt
		}
		if r.NormalizedArea != "" && !slices.Contains(acc.areas, r.NormalizedArea) {
			acc.areas = append(acc.areas, r.NormalizedArea)
		}
		acc.household += max(r.HouseholdSize, minimumHouseholdSize)
	}

	rows := make([]*entity.UserView, 0, len(byName))
	for _, acc := range byName {
		acc.row.Areas = strings.Join(acc.areas, areaSeparator)
		acc.row.HouseholdSize = roundHalfUp(acc.household, acc.row.TotalVisits)
		rows = append(rows, acc.row)
	}

	slices.SortFunc(rows, func(a, b *entity.UserView) int {
		return cmp.Compare(a.NameKana, b.NameKana)
	})

	return rows
}

// RebuildDashboardView emits scalar metrics over the snapshot.
func RebuildDashboardView(records []*entity.Reservation, now time.Time) []*entity.DashboardMetric {
	rows := active(records)

	users := make(map[string]struct{})
	locations := make(map[string]int)
	var single, medium, large int

	for _, r := range rows {
		users[r.NameKana] = struct{}{}
		locations[r.Location]++

		switch size := max(r.HouseholdSize, minimumHouseholdSize); {
		case size >= largeHouseholdLowerBound:
			large++
		case size >= mediumHouseholdLowerBound:
			medium++
		default:
			single++
		}
	}

	metric := func(name string, value int, category string) *entity.DashboardMetric {
		return &entity.DashboardMetric{Metric: name, Value: value, Category: category, LastUpdated: now}
	}

	metrics := []*entity.DashboardMetric{
		metric(MetricTotalReservations, len(rows), entity.MetricCategoryBasic),
		metric(MetricUniqueUsers, len(users), entity.MetricCategoryBasic),
		metric(MetricHouseholdSize1, single, entity.MetricCategoryHousehold),
		metric(MetricHouseholdSize2To3, medium, entity.MetricCategoryHousehold),
		metric(MetricHouseholdSize4Plus, large, entity.MetricCategoryHousehold),
	}

	names := make([]string, 0, len(locations))
	for name := range locations {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		metrics = append(metrics, metric(LocationMetric(name), locations[name], entity.MetricCategoryLocation))
	}

	return metrics
}

// RebuildAll runs the three rebuilds over one snapshot and clock value.
func RebuildAll(records []*entity.Reservation, now time.Time) *entity.Views {
	return &entity.Views{
		Pantries:  RebuildPantryView(records, now),
		Users:     RebuildUserView(records, now),
		Dashboard: RebuildDashboardView(records, now),
	}
}

// roundHalfUp returns round(sum/count) with halves rounded up, and the
// minimum household size for an empty group.
func roundHalfUp(sum, count int) int {
	if count == 0 {
		return minimumHouseholdSize
	}

	return int(math.Floor(float64(sum)/float64(count) + 0.5))
}
