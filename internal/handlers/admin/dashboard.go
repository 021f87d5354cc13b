package admin

import (
	"net/http"
	"sort"
	"time"

	"sifted_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type Analytics struct {
	TotalRevenue  float64        `json:"totalRevenue"`
	TotalOrders   int            `json:"totalOrders"`
	DailyRevenue  []DailyRevenue `json:"dailyRevenue"`
	StatusSummary map[string]int `json:"statusSummary"`
}

// Dashboard aggregates every order into the numbers and the 7-day revenue
// series the admin dashboard charts.
//
// GET /api/admin/dashboard → {success, data: {payments, analytics}}
func (h *Handler) Dashboard(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal memuat data dashboard"})
		return
	}

	analytics := Aggregate(orders, time.Now())

	if orders == nil {
		orders = []models.Order{}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"payments":  orders,
			"analytics": analytics,
		},
	})
}

// Aggregate computes the dashboard analytics. Revenue only counts paid
// orders; the status summary and order count cover everything.
func Aggregate(orders []models.Order, now time.Time) Analytics {
	analytics := Analytics{
		StatusSummary: make(map[string]int),
	}

	today := now.Truncate(24 * time.Hour)
	revenueByDay := make(map[string]float64)

	for _, order := range orders {
		analytics.TotalOrders++
		analytics.StatusSummary[order.Status]++

		if order.Status != models.OrderStatusPaid {
			continue
		}
		analytics.TotalRevenue += order.Total

		day := order.CreatedAt.Truncate(24 * time.Hour)
		if !day.Before(today.AddDate(0, 0, -6)) && !day.After(today) {
			revenueByDay[day.Format("2006-01-02")] += order.Total
		}
	}

	// Always emit all 7 days, oldest first, zeros included, so the chart's
	// x-axis stays stable.
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		analytics.DailyRevenue = append(analytics.DailyRevenue, DailyRevenue{
			Date:    date,
			Revenue: revenueByDay[date],
		})
	}

	return analytics
}
