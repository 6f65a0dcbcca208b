package dto

import "github.com/shopspring/decimal"

// StatsResponse aggregate sales figures for GET /api/stats.
// Boundaries: today = local midnight, week = most recent Sunday,
// month = first of the current month.
type StatsResponse struct {
	TotalSales   int             `json:"totalSales"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`

	TodaySales   int             `json:"todaySales"`
	TodayRevenue decimal.Decimal `json:"todayRevenue"`

	WeekSales   int             `json:"weekSales"`
	WeekRevenue decimal.Decimal `json:"weekRevenue"`

	MonthSales   int             `json:"monthSales"`
	MonthRevenue decimal.Decimal `json:"monthRevenue"`

	PendingSync int `json:"pendingSync"`
	SyncedCount int `json:"syncedCount"`
	ErrorCount  int `json:"errorCount"`
}
