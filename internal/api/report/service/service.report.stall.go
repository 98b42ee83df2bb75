package reportsvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	reportdto "mango_commerce/internal/api/report/dto"
	"mango_commerce/internal/common"
)

// StallRollup tổng hợp bán hàng tại gian theo cửa sổ thời gian (today/week/month/season):
// số lượng và doanh thu theo gian, theo giống xoài kèm tồn hiện tại làm ngữ cảnh giá.
func (s *ReportService) StallRollup(ctx context.Context, window string) (*reportdto.AdminStallRollup, error) {
	since := windowStart(window, time.Now())
	if window == "" {
		window = "today"
	}

	rollup := &reportdto.AdminStallRollup{
		Window:    window,
		Stalls:    []reportdto.AdminStallRollupRow{},
		Varieties: []reportdto.AdminVarietyRollupRow{},
	}

	// Tổng hợp theo gian hàng
	stallCursor, err := s.stallSales.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"soldAt": bson.M{"$gte": since}}},
		{"$group": bson.M{
			"_id":     "$stall",
			"units":   bson.M{"$sum": "$quantity"},
			"revenue": bson.M{"$sum": "$amount"},
		}},
		{"$sort": bson.M{"units": -1}},
	}, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer stallCursor.Close(ctx)

	// Tên gian để gắn vào kết quả
	nameByID := map[primitive.ObjectID]string{}
	nameCursor, err := s.stalls.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"stallName": 1}))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer nameCursor.Close(ctx)
	for nameCursor.Next(ctx) {
		var doc struct {
			ID        primitive.ObjectID `bson:"_id"`
			StallName string             `bson:"stallName"`
		}
		if err := nameCursor.Decode(&doc); err != nil {
			continue
		}
		nameByID[doc.ID] = doc.StallName
	}

	for stallCursor.Next(ctx) {
		var doc struct {
			ID      primitive.ObjectID `bson:"_id"`
			Units   int64              `bson:"units"`
			Revenue float64            `bson:"revenue"`
		}
		if err := stallCursor.Decode(&doc); err != nil {
			continue
		}
		rollup.Stalls = append(rollup.Stalls, reportdto.AdminStallRollupRow{
			StallID:   doc.ID.Hex(),
			StallName: nameByID[doc.ID],
			Units:     doc.Units,
			Revenue:   doc.Revenue,
		})
	}

	// Tồn hiện tại theo giống trên mọi gian (ngữ cảnh giá cho rollup)
	quantityByVariety := map[string]int64{}
	inventoryCursor, err := s.stallMangos.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"isGlobalTemplate": false}},
		{"$group": bson.M{"_id": "$variety", "quantity": bson.M{"$sum": "$quantity"}}},
	}, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer inventoryCursor.Close(ctx)
	for inventoryCursor.Next(ctx) {
		var doc struct {
			ID       string `bson:"_id"`
			Quantity int64  `bson:"quantity"`
		}
		if err := inventoryCursor.Decode(&doc); err != nil {
			continue
		}
		quantityByVariety[doc.ID] = doc.Quantity
	}

	// Tổng hợp theo giống xoài
	varietyCursor, err := s.stallSales.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"soldAt": bson.M{"$gte": since}, "variety": bson.M{"$ne": ""}}},
		{"$group": bson.M{
			"_id":     "$variety",
			"units":   bson.M{"$sum": "$quantity"},
			"revenue": bson.M{"$sum": "$amount"},
		}},
		{"$sort": bson.M{"units": -1}},
	}, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer varietyCursor.Close(ctx)
	for varietyCursor.Next(ctx) {
		var doc struct {
			ID      string  `bson:"_id"`
			Units   int64   `bson:"units"`
			Revenue float64 `bson:"revenue"`
		}
		if err := varietyCursor.Decode(&doc); err != nil {
			continue
		}
		rollup.Varieties = append(rollup.Varieties, reportdto.AdminVarietyRollupRow{
			Variety:         doc.ID,
			Units:           doc.Units,
			Revenue:         doc.Revenue,
			CurrentQuantity: quantityByVariety[doc.ID],
		})
	}

	return rollup, nil
}

// StallRollupStaff biến thể cho staff, cắt doanh thu ngay tại service
func (s *ReportService) StallRollupStaff(ctx context.Context, window string) (*reportdto.StaffStallRollup, error) {
	full, err := s.StallRollup(ctx, window)
	if err != nil {
		return nil, err
	}
	return redactStallRollup(full), nil
}

// redactStallRollup chuyển rollup admin sang kiểu dành cho staff (không doanh thu)
func redactStallRollup(full *reportdto.AdminStallRollup) *reportdto.StaffStallRollup {
	staff := &reportdto.StaffStallRollup{
		Window:    full.Window,
		Stalls:    make([]reportdto.StaffStallRollupRow, 0, len(full.Stalls)),
		Varieties: make([]reportdto.StaffVarietyRollupRow, 0, len(full.Varieties)),
	}
	for _, row := range full.Stalls {
		staff.Stalls = append(staff.Stalls, reportdto.StaffStallRollupRow{
			StallID:   row.StallID,
			StallName: row.StallName,
			Units:     row.Units,
		})
	}
	for _, row := range full.Varieties {
		staff.Varieties = append(staff.Varieties, reportdto.StaffVarietyRollupRow{
			Variety:         row.Variety,
			Units:           row.Units,
			CurrentQuantity: row.CurrentQuantity,
		})
	}
	return staff
}
