package reportsvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	ordermodels "mango_commerce/internal/api/order/models"
	reportdto "mango_commerce/internal/api/report/dto"
	"mango_commerce/internal/common"
)

// DashboardAdmin tính số liệu dashboard đầy đủ (kèm doanh thu).
// start/end giới hạn chuỗi xu hướng; truyền 0 để lấy 7 ngày gần nhất.
func (s *ReportService) DashboardAdmin(ctx context.Context, start int64, end int64) (*reportdto.AdminDashboardStats, error) {
	now := time.Now()
	todayStart := startOfDay(now)
	if start == 0 {
		start = now.AddDate(0, 0, -7).UnixMilli()
	}
	if end == 0 {
		end = now.UnixMilli()
	}

	stats := &reportdto.AdminDashboardStats{
		StatusCounts:      map[string]int64{},
		PaymentModeCounts: map[string]int64{},
		PaymentModeBoxes:  map[string]int64{},
		WeeklyOrders:      []reportdto.DailyOrderPoint{},
		ProductBreakdown:  []reportdto.ProductStat{},
	}

	// Đếm theo trạng thái và tổng số đơn
	statusCursor, err := s.orders.Aggregate(ctx, []bson.M{
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer statusCursor.Close(ctx)
	for statusCursor.Next(ctx) {
		var doc struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := statusCursor.Decode(&doc); err != nil {
			continue
		}
		stats.StatusCounts[doc.ID] = doc.Count
		stats.TotalOrders += doc.Count
	}

	// Đếm theo phương thức thanh toán
	paymentCursor, err := s.orders.Aggregate(ctx, []bson.M{
		{"$group": bson.M{"_id": "$paymentMode", "count": bson.M{"$sum": 1}}},
	}, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer paymentCursor.Close(ctx)
	for paymentCursor.Next(ctx) {
		var doc struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := paymentCursor.Decode(&doc); err != nil {
			continue
		}
		stats.PaymentModeCounts[doc.ID] = doc.Count
	}

	// Tổng số thùng theo phương thức thanh toán: bung từng dòng hàng và cộng số lượng
	boxesCursor, err := s.orders.Aggregate(ctx, []bson.M{
		{"$unwind": "$items"},
		{"$group": bson.M{"_id": "$paymentMode", "boxes": bson.M{"$sum": "$items.quantity"}}},
	}, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer boxesCursor.Close(ctx)
	for boxesCursor.Next(ctx) {
		var doc struct {
			ID    string `bson:"_id"`
			Boxes int64  `bson:"boxes"`
		}
		if err := boxesCursor.Decode(&doc); err != nil {
			continue
		}
		stats.PaymentModeBoxes[doc.ID] = doc.Boxes
	}

	// Số đơn hôm nay
	todayOrders, err := s.orders.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": todayStart}})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	stats.TodayOrders = todayOrders

	// Doanh thu toàn thời gian và hôm nay, không tính đơn hủy
	revenueCursor, err := s.orders.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"status": bson.M{"$ne": ordermodels.OrderStatusCancelled}}},
		{"$group": bson.M{
			"_id":     nil,
			"total":   bson.M{"$sum": "$totalAmount"},
			"count":   bson.M{"$sum": 1},
			"today": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$gte": bson.A{"$createdAt", todayStart}},
				"$totalAmount",
				0,
			}}},
		}},
	}, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer revenueCursor.Close(ctx)
	if revenueCursor.Next(ctx) {
		var doc struct {
			Total float64 `bson:"total"`
			Count int64   `bson:"count"`
			Today float64 `bson:"today"`
		}
		if err := revenueCursor.Decode(&doc); err == nil {
			stats.TotalRevenue = doc.Total
			stats.TodayRevenue = doc.Today
			if doc.Count > 0 {
				stats.AvgOrderValue = doc.Total / float64(doc.Count)
			}
		}
	}

	// Chuỗi xu hướng theo ngày trong khoảng [start, end]
	trendCursor, err := s.orders.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": start, "$lte": end}}},
		{"$group": bson.M{
			"_id":     bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": bson.M{"$toDate": "$createdAt"}}},
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$ne": bson.A{"$status", ordermodels.OrderStatusCancelled}},
				"$totalAmount",
				0,
			}}},
		}},
		{"$sort": bson.M{"_id": 1}},
	}, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer trendCursor.Close(ctx)
	for trendCursor.Next(ctx) {
		var doc struct {
			ID      string  `bson:"_id"`
			Count   int64   `bson:"count"`
			Revenue float64 `bson:"revenue"`
		}
		if err := trendCursor.Decode(&doc); err != nil {
			continue
		}
		stats.WeeklyOrders = append(stats.WeeklyOrders, reportdto.DailyOrderPoint{
			Date:    doc.ID,
			Count:   doc.Count,
			Revenue: doc.Revenue,
		})
	}

	// Top sản phẩm theo số lượng, không tính đơn hủy
	productCursor, err := s.orders.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"status": bson.M{"$ne": ordermodels.OrderStatusCancelled}}},
		{"$unwind": "$items"},
		{"$group": bson.M{
			"_id":      "$items.name",
			"quantity": bson.M{"$sum": "$items.quantity"},
			"revenue":  bson.M{"$sum": bson.M{"$multiply": bson.A{"$items.price", "$items.quantity"}}},
		}},
		{"$sort": bson.M{"quantity": -1}},
		{"$limit": 10},
	}, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer productCursor.Close(ctx)
	for productCursor.Next(ctx) {
		var doc struct {
			ID       string  `bson:"_id"`
			Quantity int64   `bson:"quantity"`
			Revenue  float64 `bson:"revenue"`
		}
		if err := productCursor.Decode(&doc); err != nil {
			continue
		}
		stats.ProductBreakdown = append(stats.ProductBreakdown, reportdto.ProductStat{
			Name:     doc.ID,
			Quantity: doc.Quantity,
			Revenue:  doc.Revenue,
		})
	}

	return stats, nil
}

// DashboardStaff tính số liệu dashboard cho staff: cùng nguồn số liệu nhưng
// kết quả là kiểu riêng không mang trường doanh thu nào.
func (s *ReportService) DashboardStaff(ctx context.Context, start int64, end int64) (*reportdto.StaffDashboardStats, error) {
	full, err := s.DashboardAdmin(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return redactDashboard(full), nil
}

// redactDashboard chuyển số liệu admin sang kiểu dành cho staff.
// Kiểu staff không có trường doanh thu nên không thể lộ qua serialization.
func redactDashboard(full *reportdto.AdminDashboardStats) *reportdto.StaffDashboardStats {
	staff := &reportdto.StaffDashboardStats{
		TotalOrders:       full.TotalOrders,
		TodayOrders:       full.TodayOrders,
		StatusCounts:      full.StatusCounts,
		PaymentModeCounts: full.PaymentModeCounts,
		PaymentModeBoxes:  full.PaymentModeBoxes,
		WeeklyOrders:      make([]reportdto.DailyOrderCountPoint, 0, len(full.WeeklyOrders)),
		ProductBreakdown:  make([]reportdto.ProductQuantityStat, 0, len(full.ProductBreakdown)),
	}
	for _, point := range full.WeeklyOrders {
		staff.WeeklyOrders = append(staff.WeeklyOrders, reportdto.DailyOrderCountPoint{
			Date:  point.Date,
			Count: point.Count,
		})
	}
	for _, product := range full.ProductBreakdown {
		staff.ProductBreakdown = append(staff.ProductBreakdown, reportdto.ProductQuantityStat{
			Name:     product.Name,
			Quantity: product.Quantity,
		})
	}
	return staff
}
