package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jarad-ux/eccocontrol-center/internal/application/dto"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/repository"
)

// StatsUseCase aggregate counters and revenue sums for the dashboard.
//
// Counting happens in-process over the filtered listing, mirroring the
// listing endpoint exactly; at this data volume a SQL GROUP BY buys nothing
// and would duplicate the filter logic.
type StatsUseCase struct {
	repo repository.SubmissionRepository
	// now is swappable in tests.
	now func() time.Time
}

// NewStatsUseCase builds the use case.
func NewStatsUseCase(repo repository.SubmissionRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo, now: time.Now}
}

// Get computes the dashboard figures, optionally filtered by division
// ("all" or empty means no filter).
//
// Bucket boundaries in local time: today = midnight, week = most recent
// Sunday's midnight, month = first of the current month.
func (uc *StatsUseCase) Get(ctx context.Context, division string) (*dto.StatsResponse, error) {
	filters := repository.SubmissionFilters{}
	if division != "" && division != entity.DivisionAll {
		filters.Division = division
	}
	subs, err := uc.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -int(now.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	out := &dto.StatsResponse{
		TotalRevenue: decimal.Zero,
		TodayRevenue: decimal.Zero,
		WeekRevenue:  decimal.Zero,
		MonthRevenue: decimal.Zero,
	}
	for _, s := range subs {
		out.TotalSales++
		out.TotalRevenue = out.TotalRevenue.Add(s.SaleAmount)

		if !s.SubmittedAt.Before(todayStart) {
			out.TodaySales++
			out.TodayRevenue = out.TodayRevenue.Add(s.SaleAmount)
		}
		if !s.SubmittedAt.Before(weekStart) {
			out.WeekSales++
			out.WeekRevenue = out.WeekRevenue.Add(s.SaleAmount)
		}
		if !s.SubmittedAt.Before(monthStart) {
			out.MonthSales++
			out.MonthRevenue = out.MonthRevenue.Add(s.SaleAmount)
		}

		switch s.Status {
		case entity.StatusPending:
			out.PendingSync++
		case entity.StatusSynced:
			out.SyncedCount++
		case entity.StatusError:
			out.ErrorCount++
		}
	}
	return out, nil
}
