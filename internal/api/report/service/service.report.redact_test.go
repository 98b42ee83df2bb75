// Package reportsvc - Test cắt doanh thu khỏi báo cáo cho staff.
package reportsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	reportdto "mango_commerce/internal/api/report/dto"
)

func TestRedactDashboard(t *testing.T) {
	full := &reportdto.AdminDashboardStats{
		TotalOrders:       120,
		TodayOrders:       8,
		StatusCounts:      map[string]int64{"Confirmed": 5, "Delivered": 100},
		PaymentModeCounts: map[string]int64{"cod": 70, "online": 50},
		PaymentModeBoxes:  map[string]int64{"cod": 210, "online": 180},
		TotalRevenue:      45000000,
		TodayRevenue:      1200000,
		AvgOrderValue:     375000,
		WeeklyOrders: []reportdto.DailyOrderPoint{
			{Date: "2026-08-27", Count: 12, Revenue: 3600000},
		},
		ProductBreakdown: []reportdto.ProductStat{
			{Name: "Xoài Cát 5kg", Quantity: 40, Revenue: 10000000},
		},
	}

	staff := redactDashboard(full)

	assert.Equal(t, int64(120), staff.TotalOrders)
	assert.Equal(t, int64(8), staff.TodayOrders)
	assert.Equal(t, full.StatusCounts, staff.StatusCounts)
	assert.Equal(t, full.PaymentModeCounts, staff.PaymentModeCounts)
	assert.Equal(t, full.PaymentModeBoxes, staff.PaymentModeBoxes)

	// Số đếm giữ nguyên, các điểm dữ liệu không còn doanh thu
	assert.Len(t, staff.WeeklyOrders, 1)
	assert.Equal(t, "2026-08-27", staff.WeeklyOrders[0].Date)
	assert.Equal(t, int64(12), staff.WeeklyOrders[0].Count)
	assert.Len(t, staff.ProductBreakdown, 1)
	assert.Equal(t, int64(40), staff.ProductBreakdown[0].Quantity)
}

func TestRedactSalesRows(t *testing.T) {
	full := []reportdto.AdminSalesRow{
		{ProductID: "656f1e8f2a3b4c5d6e7f8091", Name: "Xoài Cát 5kg", SoldToday: 7, CancelledToday: 1, CurrentStock: 43, StartOfDayStock: 50, Revenue: 1750000},
	}

	rows := redactSalesRows(full)

	assert.Len(t, rows, 1)
	assert.Equal(t, full[0].ProductID, rows[0].ProductID)
	assert.Equal(t, int64(7), rows[0].SoldToday)
	assert.Equal(t, int64(1), rows[0].CancelledToday)
	assert.Equal(t, int64(43), rows[0].CurrentStock)
	assert.Equal(t, int64(50), rows[0].StartOfDayStock)
}

func TestRedactSalesRows_Empty(t *testing.T) {
	rows := redactSalesRows(nil)
	assert.NotNil(t, rows, "staff luôn nhận mảng, không nhận null")
	assert.Empty(t, rows)
}

func TestRedactStallRollup(t *testing.T) {
	full := &reportdto.AdminStallRollup{
		Window: "week",
		Stalls: []reportdto.AdminStallRollupRow{
			{StallID: "656f1e8f2a3b4c5d6e7f8093", StallName: "Gian chợ Cao Lãnh", Units: 320, Revenue: 16000000},
		},
		Varieties: []reportdto.AdminVarietyRollupRow{
			{Variety: "Cát Hòa Lộc", Units: 200, Revenue: 12000000, CurrentQuantity: 55},
		},
	}

	staff := redactStallRollup(full)

	assert.Equal(t, "week", staff.Window)
	assert.Len(t, staff.Stalls, 1)
	assert.Equal(t, int64(320), staff.Stalls[0].Units)
	assert.Equal(t, "Gian chợ Cao Lãnh", staff.Stalls[0].StallName)
	assert.Len(t, staff.Varieties, 1)
	assert.Equal(t, int64(200), staff.Varieties[0].Units)
	assert.Equal(t, int64(55), staff.Varieties[0].CurrentQuantity)
}
