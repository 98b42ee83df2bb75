// Package stallsvc - service gian hàng: vòng đời gian, mặt hàng, khách mua.
package stallsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	authdto "mango_commerce/internal/api/auth/dto"
	authmodels "mango_commerce/internal/api/auth/models"
	authsvc "mango_commerce/internal/api/auth/service"
	basesvc "mango_commerce/internal/api/base/service"
	models "mango_commerce/internal/api/stall/models"
	stalldto "mango_commerce/internal/api/stall/dto"
	"mango_commerce/internal/common"
	"mango_commerce/internal/global"
	"mango_commerce/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StallService là cấu trúc chứa các phương thức liên quan đến gian hàng
type StallService struct {
	*basesvc.BaseServiceMongoImpl[models.Stall]
	userService  *authsvc.UserService
	mangoService *StallMangoService
}

// NewStallService tạo mới StallService
func NewStallService() (*StallService, error) {
	stallCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Stalls)
	if !exist {
		return nil, fmt.Errorf("failed to get stalls collection: %v", common.ErrNotFound)
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	mangoService, err := NewStallMangoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create stall mango service: %v", err)
	}

	return &StallService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Stall](stallCollection),
		userService:          userService,
		mangoService:         mangoService,
	}, nil
}

// CreateWithOwner tạo gian hàng mới cùng tài khoản stall_owner cho chủ gian,
// rồi nhân bản các template toàn cục thành mặt hàng khởi điểm của gian.
// Tạo tài khoản thất bại thì gỡ gian vừa tạo để không có gian mồ côi.
func (s *StallService) CreateWithOwner(ctx context.Context, input *stalldto.StallCreateInput) (*models.Stall, error) {
	status := input.Status
	if status == "" {
		status = models.StallStatusActive
	}

	stall := models.Stall{
		StallName:   input.StallName,
		StallID:     input.StallID,
		OwnerName:   input.OwnerName,
		OwnerMobile: input.OwnerMobile,
		Location:    input.Location,
		Type:        input.Type,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      status,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, stall)
	if err != nil {
		return nil, err
	}

	_, err = s.userService.Create(ctx, &authdto.UserCreateInput{
		Name:          input.OwnerName,
		Phone:         input.OwnerMobile,
		Password:      input.OwnerPassword,
		Role:          authmodels.RoleStallOwner,
		AssignedStall: created.ID.Hex(),
	})
	if err != nil {
		if delErr := s.BaseServiceMongoImpl.DeleteById(ctx, created.ID); delErr != nil {
			logger.GetAppLogger().WithError(delErr).WithFields(logrus.Fields{
				"stall_id": created.ID.Hex(),
			}).Error("🏪 [STALL] Không gỡ được gian hàng sau khi tạo tài khoản thất bại")
		}
		return nil, err
	}

	if err := s.mangoService.SeedFromTemplates(ctx, created.ID); err != nil {
		logger.GetAppLogger().WithError(err).WithFields(logrus.Fields{
			"stall_id": created.ID.Hex(),
		}).Warn("🏪 [STALL] Không nhân bản được template mặt hàng cho gian mới")
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"stall_id":     created.ID.Hex(),
		"stall_code":   created.StallID,
		"owner_mobile": created.OwnerMobile,
	}).Info("🏪 [STALL] Tạo gian hàng mới cùng tài khoản chủ gian")

	return &created, nil
}

// SetLocked khóa hoặc mở khóa thao tác của chủ gian (chỉ admin gọi)
func (s *StallService) SetLocked(ctx context.Context, id primitive.ObjectID, locked bool) (*models.Stall, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isLocked": locked,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	if err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"stall_id": id.Hex(),
		"locked":   locked,
	}).Info("🏪 [STALL] Thay đổi trạng thái khóa gian hàng")

	return &updated, nil
}
