// Package subscribersvc - service người đăng ký nhận tin.
package subscribersvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "mango_commerce/internal/api/base/service"
	subscriberdto "mango_commerce/internal/api/subscriber/dto"
	models "mango_commerce/internal/api/subscriber/models"
	"mango_commerce/internal/common"
	"mango_commerce/internal/global"
	"mango_commerce/internal/logger"
)

// SubscriberService là cấu trúc chứa các phương thức liên quan đến người đăng ký nhận tin
type SubscriberService struct {
	*basesvc.BaseServiceMongoImpl[models.Subscriber]
}

// NewSubscriberService tạo mới SubscriberService
func NewSubscriberService() (*SubscriberService, error) {
	subscriberCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscribers)
	if !exist {
		return nil, fmt.Errorf("failed to get subscribers collection: %v", common.ErrNotFound)
	}

	return &SubscriberService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Subscriber](subscriberCollection),
	}, nil
}

// duplicateFilter dựng filter tìm bản ghi hiện có khi insert bị trùng,
// khớp theo bất kỳ trường định danh nào được cung cấp
func duplicateFilter(email string, phone string) bson.M {
	or := []bson.M{}
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if phone != "" {
		or = append(or, bson.M{"phone": phone})
	}
	return bson.M{"$or": or}
}

// Signup đăng ký nhận tin. Đăng ký trùng email hoặc phone được coi là thành công
// (idempotent với khách), không trả lỗi duplicate ra storefront.
func (s *SubscriberService) Signup(ctx context.Context, input *subscriberdto.SubscriberSignupInput) (*models.Subscriber, error) {
	if input.Email == "" && input.Phone == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "Cần ít nhất email hoặc số điện thoại", common.StatusBadRequest, nil)
	}

	source := input.Source
	if source == "" {
		source = "storefront"
	}

	subscriber := models.Subscriber{
		Email:  input.Email,
		Phone:  input.Phone,
		Source: source,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, subscriber)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"email": input.Email,
				"phone": input.Phone,
			}).Info("📣 [SUBSCRIBER] Đăng ký trùng, trả về bản ghi hiện có")
			// Trả về document đang lưu để response có _id như nhánh thành công
			existing, findErr := s.BaseServiceMongoImpl.FindOne(ctx, duplicateFilter(input.Email, input.Phone), nil)
			if findErr != nil {
				return nil, findErr
			}
			return &existing, nil
		}
		return nil, err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"subscriber_id": created.ID.Hex(),
		"source":        source,
	}).Info("📣 [SUBSCRIBER] Đăng ký nhận tin mới")

	return &created, nil
}
