package admin

import (
	"testing"
	"time"

	"sifted_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateCountsRevenueFromPaidOrdersOnly(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{Status: models.OrderStatusPaid, Total: 64380, CreatedAt: now},
		{Status: models.OrderStatusPending, Total: 29000, CreatedAt: now},
		{Status: models.OrderStatusExpired, Total: 15000, CreatedAt: now},
		{Status: models.OrderStatusPaid, Total: 8000, CreatedAt: now.AddDate(0, 0, -2)},
	}

	analytics := Aggregate(orders, now)

	assert.Equal(t, 4, analytics.TotalOrders)
	assert.InDelta(t, 72380, analytics.TotalRevenue, 0.001)
	assert.Equal(t, map[string]int{
		models.OrderStatusPaid:    2,
		models.OrderStatusPending: 1,
		models.OrderStatusExpired: 1,
	}, analytics.StatusSummary)
}

func TestAggregateEmitsStableSevenDaySeries(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{Status: models.OrderStatusPaid, Total: 64380, CreatedAt: now},
		{Status: models.OrderStatusPaid, Total: 29000, CreatedAt: now.AddDate(0, 0, -3)},
		// Outside the window, must not appear in the series.
		{Status: models.OrderStatusPaid, Total: 99999, CreatedAt: now.AddDate(0, 0, -10)},
	}

	analytics := Aggregate(orders, now)

	require.Len(t, analytics.DailyRevenue, 7)
	assert.Equal(t, "2025-03-04", analytics.DailyRevenue[0].Date, "series starts six days back")
	assert.Equal(t, "2025-03-10", analytics.DailyRevenue[6].Date, "series ends today")

	byDate := map[string]float64{}
	for _, day := range analytics.DailyRevenue {
		byDate[day.Date] = day.Revenue
	}
	assert.InDelta(t, 64380, byDate["2025-03-10"], 0.001)
	assert.InDelta(t, 29000, byDate["2025-03-07"], 0.001)
	assert.Zero(t, byDate["2025-03-05"], "days without sales chart as zero")

	// Old revenue still counts toward the total, just not the chart.
	assert.InDelta(t, 64380+29000+99999, analytics.TotalRevenue, 0.001)
}

func TestAggregateEmptyOrders(t *testing.T) {
	analytics := Aggregate(nil, time.Now())

	assert.Zero(t, analytics.TotalOrders)
	assert.Zero(t, analytics.TotalRevenue)
	assert.Len(t, analytics.DailyRevenue, 7)
	assert.Empty(t, analytics.StatusSummary)
}
