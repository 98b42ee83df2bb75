// Package catalogsvc - service sản phẩm thuộc domain catalog.
package catalogsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "mango_commerce/internal/api/base/service"
	catalogdto "mango_commerce/internal/api/catalog/dto"
	models "mango_commerce/internal/api/catalog/models"
	"mango_commerce/internal/common"
	"mango_commerce/internal/global"
	"mango_commerce/internal/logger"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](productCollection),
	}, nil
}

// Create tạo sản phẩm mới, khởi tạo lịch sử giá với giá ban đầu.
func (s *ProductService) Create(ctx context.Context, input *catalogdto.ProductCreateInput) (*models.Product, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	product := models.Product{
		Name:     input.Name,
		Variety:  input.Variety,
		Weight:   input.Weight,
		Price:    input.Price,
		Stock:    input.Stock,
		IsActive: isActive,
		PriceHistory: []models.PriceHistoryEntry{
			{Price: input.Price, ChangedAt: time.Now().UnixMilli()},
		},
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"product_id": created.ID.Hex(),
		"name":       created.Name,
	}).Info("🥭 [CATALOG] Tạo sản phẩm mới")

	return &created, nil
}

// Update cập nhật sản phẩm. Nếu giá thay đổi thì ghi thêm một entry vào lịch sử giá
// trong cùng một lệnh update để không bị lệch giữa price và priceHistory.
func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, input *catalogdto.ProductUpdateInput) (*models.Product, error) {
	current, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{},
	}
	if input.Name != "" {
		updateData.Set["name"] = input.Name
	}
	if input.Variety != "" {
		updateData.Set["variety"] = input.Variety
	}
	if input.Weight != "" {
		updateData.Set["weight"] = input.Weight
	}
	if input.Stock != nil {
		updateData.Set["stock"] = *input.Stock
	}
	if input.IsActive != nil {
		updateData.Set["isActive"] = *input.IsActive
	}
	if input.Price != nil && *input.Price != current.Price {
		updateData.Set["price"] = *input.Price
		updateData.Push = map[string]interface{}{
			"priceHistory": models.PriceHistoryEntry{
				Price:     *input.Price,
				ChangedAt: time.Now().UnixMilli(),
			},
		}
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SoftDelete ẩn sản phẩm khỏi storefront nhưng giữ document cho các đơn hàng cũ.
func (s *ProductService) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isDeleted": true,
			"isActive":  false,
		},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	return err
}

// StorefrontList trả về danh sách sản phẩm đang bán (active và chưa bị xóa mềm).
func (s *ProductService) StorefrontList(ctx context.Context) ([]models.Product, error) {
	filter := bson.M{
		"isActive":  true,
		"isDeleted": bson.M{"$ne": true},
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return s.BaseServiceMongoImpl.Find(ctx, filter, opts)
}

// sufficientStockFilter khớp sản phẩm còn đủ tồn kho để trừ nguyên tử
func sufficientStockFilter(id primitive.ObjectID, quantity int64) bson.M {
	return bson.M{
		"_id":   id,
		"stock": bson.M{"$gte": quantity},
	}
}

// insufficientStockFilter khớp sản phẩm tồn kho không đủ. Điều kiện stock < quantity
// phải nằm trong filter kẹp: nếu tồn kho vừa được bổ sung giữa hai bước thì
// lệnh kẹp không được ghi đè lên số lượng mới.
func insufficientStockFilter(id primitive.ObjectID, quantity int64) bson.M {
	return bson.M{
		"_id":   id,
		"stock": bson.M{"$lt": quantity},
	}
}

// DecrementStock trừ tồn kho nguyên tử khi tạo đơn hàng.
// Điều kiện stock >= quantity nằm ngay trong filter nên hai request đồng thời
// không thể cùng trừ vượt quá tồn kho. Nếu tồn kho không đủ thì kẹp về 0
// thay vì để âm, đơn hàng vẫn được ghi nhận.
func (s *ProductService) DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int64) (*models.Product, error) {
	updateData := &basesvc.UpdateData{
		Inc: map[string]interface{}{
			"stock": -quantity,
		},
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	updated, err := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, sufficientStockFilter(id, quantity), updateData, after)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	// Không khớp filter: hoặc sản phẩm không tồn tại, hoặc tồn kho không đủ.
	// Trường hợp thứ hai kẹp tồn kho về 0, vẫn với điều kiện trong filter.
	clampData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"stock": int64(0),
		},
	}
	clamped, clampErr := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, insufficientStockFilter(id, quantity), clampData, after)
	if clampErr == nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"product_id": id.Hex(),
			"requested":  quantity,
		}).Warn("🥭 [CATALOG] Tồn kho không đủ, đã kẹp về 0")
		return &clamped, nil
	}
	if !errors.Is(clampErr, common.ErrNotFound) {
		return nil, clampErr
	}

	// Cả hai filter cùng trượt: tồn kho vừa được bổ sung giữa hai bước,
	// thử trừ có điều kiện thêm một lần. Vẫn trượt nghĩa là sản phẩm không tồn tại.
	retried, retryErr := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, sufficientStockFilter(id, quantity), updateData, after)
	if retryErr != nil {
		return nil, retryErr
	}
	return &retried, nil
}
