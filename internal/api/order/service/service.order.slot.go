package ordersvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "mango_commerce/internal/api/base/service"
	models "mango_commerce/internal/api/order/models"
	"mango_commerce/internal/common"
	"mango_commerce/internal/global"
)

// SlotService là cấu trúc chứa các phương thức liên quan đến khung giờ giao hàng
type SlotService struct {
	*basesvc.BaseServiceMongoImpl[models.Slot]
}

// NewSlotService tạo mới SlotService
func NewSlotService() (*SlotService, error) {
	slotCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Slots)
	if !exist {
		return nil, fmt.Errorf("failed to get slots collection: %v", common.ErrNotFound)
	}

	return &SlotService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Slot](slotCollection),
	}, nil
}

// EnabledList trả về các khung giờ đang mở cho khách chọn (route công khai)
func (s *SlotService) EnabledList(ctx context.Context) ([]models.Slot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"isEnabled": true}, opts)
}
