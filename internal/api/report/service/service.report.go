// Package reportsvc - các báo cáo chỉ đọc, query trực tiếp MongoDB bằng aggregation.
package reportsvc

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"mango_commerce/internal/common"
	"mango_commerce/internal/global"
)

// ReportService giữ các collection cần cho báo cáo.
// Báo cáo không ghi gì, dùng thẳng *mongo.Collection để chạy aggregation.
type ReportService struct {
	orders      *mongo.Collection
	products    *mongo.Collection
	stalls      *mongo.Collection
	stallMangos *mongo.Collection
	stallSales  *mongo.Collection
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	collections := map[string]**mongo.Collection{}
	service := &ReportService{}
	collections[global.MongoDB_ColNames.Orders] = &service.orders
	collections[global.MongoDB_ColNames.Products] = &service.products
	collections[global.MongoDB_ColNames.Stalls] = &service.stalls
	collections[global.MongoDB_ColNames.StallMangoes] = &service.stallMangos
	collections[global.MongoDB_ColNames.StallSales] = &service.stallSales

	for name, target := range collections {
		coll, exist := global.RegistryCollections.Get(name)
		if !exist {
			return nil, fmt.Errorf("failed to get %s collection: %v", name, common.ErrNotFound)
		}
		*target = coll
	}
	return service, nil
}

// startOfDay trả về 0h hôm nay theo giờ server (unix milli)
func startOfDay(now time.Time) int64 {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()).UnixMilli()
}

// windowStart trả về mốc bắt đầu cửa sổ báo cáo gian hàng.
// Cửa sổ "season" tính theo mùa xoài, lấy 120 ngày gần nhất.
func windowStart(window string, now time.Time) int64 {
	switch window {
	case "week":
		return now.AddDate(0, 0, -7).UnixMilli()
	case "month":
		return now.AddDate(0, -1, 0).UnixMilli()
	case "season":
		return now.AddDate(0, 0, -120).UnixMilli()
	default: // today
		return startOfDay(now)
	}
}
