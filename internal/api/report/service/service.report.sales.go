package reportsvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	ordermodels "mango_commerce/internal/api/order/models"
	reportdto "mango_commerce/internal/api/report/dto"
	"mango_commerce/internal/common"
)

// SalesToday tính báo cáo bán hàng trong ngày theo từng sản phẩm.
// Tồn đầu ngày suy ra từ tồn hiện tại cộng lại số đã bán hôm nay,
// vì hệ thống không chụp snapshot tồn kho lúc 0h.
func (s *ReportService) SalesToday(ctx context.Context) ([]reportdto.AdminSalesRow, error) {
	todayStart := startOfDay(time.Now())

	cursor, err := s.orders.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": todayStart}}},
		{"$unwind": "$items"},
		{"$group": bson.M{
			"_id":  "$items.productId",
			"name": bson.M{"$last": "$items.name"},
			"sold": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$ne": bson.A{"$status", ordermodels.OrderStatusCancelled}},
				"$items.quantity",
				0,
			}}},
			"cancelled": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", ordermodels.OrderStatusCancelled}},
				"$items.quantity",
				0,
			}}},
			"revenue": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$ne": bson.A{"$status", ordermodels.OrderStatusCancelled}},
				bson.M{"$multiply": bson.A{"$items.price", "$items.quantity"}},
				0,
			}}},
		}},
		{"$sort": bson.M{"sold": -1}},
	}, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	// Tồn kho hiện tại của từng sản phẩm để suy ra tồn đầu ngày
	stockByID := map[primitive.ObjectID]int64{}
	stockCursor, err := s.products.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"stock": 1}))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer stockCursor.Close(ctx)
	for stockCursor.Next(ctx) {
		var doc struct {
			ID    primitive.ObjectID `bson:"_id"`
			Stock int64              `bson:"stock"`
		}
		if err := stockCursor.Decode(&doc); err != nil {
			continue
		}
		stockByID[doc.ID] = doc.Stock
	}

	rows := []reportdto.AdminSalesRow{}
	for cursor.Next(ctx) {
		var doc struct {
			ID        primitive.ObjectID `bson:"_id"`
			Name      string             `bson:"name"`
			Sold      int64              `bson:"sold"`
			Cancelled int64              `bson:"cancelled"`
			Revenue   float64            `bson:"revenue"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		currentStock := stockByID[doc.ID]
		rows = append(rows, reportdto.AdminSalesRow{
			ProductID:       doc.ID.Hex(),
			Name:            doc.Name,
			SoldToday:       doc.Sold,
			CancelledToday:  doc.Cancelled,
			CurrentStock:    currentStock,
			StartOfDayStock: currentStock + doc.Sold,
			Revenue:         doc.Revenue,
		})
	}
	return rows, nil
}

// SalesTodayStaff biến thể cho staff, cắt doanh thu ngay tại service
func (s *ReportService) SalesTodayStaff(ctx context.Context) ([]reportdto.StaffSalesRow, error) {
	full, err := s.SalesToday(ctx)
	if err != nil {
		return nil, err
	}
	return redactSalesRows(full), nil
}

// redactSalesRows chuyển các dòng bán hàng admin sang kiểu dành cho staff (không doanh thu)
func redactSalesRows(full []reportdto.AdminSalesRow) []reportdto.StaffSalesRow {
	rows := make([]reportdto.StaffSalesRow, 0, len(full))
	for _, row := range full {
		rows = append(rows, reportdto.StaffSalesRow{
			ProductID:       row.ProductID,
			Name:            row.Name,
			SoldToday:       row.SoldToday,
			CancelledToday:  row.CancelledToday,
			CurrentStock:    row.CurrentStock,
			StartOfDayStock: row.StartOfDayStock,
		})
	}
	return rows
}
