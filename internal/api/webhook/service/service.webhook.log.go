// Package webhooksvc chứa service cho domain webhook vận chuyển.
package webhooksvc

import (
	"context"
	"fmt"
	"time"

	basesvc "mango_commerce/internal/api/base/service"
	webhookmodels "mango_commerce/internal/api/webhook/models"
	"mango_commerce/internal/common"
	"mango_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WebhookLogService là cấu trúc chứa các phương thức liên quan đến webhook logs
type WebhookLogService struct {
	*basesvc.BaseServiceMongoImpl[webhookmodels.WebhookLog]
}

// NewWebhookLogService tạo mới WebhookLogService
func NewWebhookLogService() (*WebhookLogService, error) {
	webhookLogCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.WebhookLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get webhook_logs collection: %v", common.ErrNotFound)
	}

	return &WebhookLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[webhookmodels.WebhookLog](webhookLogCollection),
	}, nil
}

// CreateWebhookLog tạo mới webhook log
func (s *WebhookLogService) CreateWebhookLog(ctx context.Context, log webhookmodels.WebhookLog) (*webhookmodels.WebhookLog, error) {
	result, err := s.InsertOne(ctx, log)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateProcessedStatus cập nhật trạng thái đã xử lý của webhook log
func (s *WebhookLogService) UpdateProcessedStatus(ctx context.Context, logID primitive.ObjectID, processed bool, errorMsg string) error {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"processed":    processed,
			"processError": errorMsg,
		},
	}
	if processed {
		updateData.Set["processedAt"] = time.Now().UnixMilli()
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, logID, updateData)
	return err
}

// DeleteOlderThan xóa các log đã nhận trước mốc thời gian cho trước (worker dọn dẹp gọi)
func (s *WebhookLogService) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	filter := bson.M{"receivedAt": bson.M{"$lt": before.UnixMilli()}}
	return s.BaseServiceMongoImpl.DeleteMany(ctx, filter)
}
