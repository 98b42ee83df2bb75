package stallsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "mango_commerce/internal/api/auth/models"
	basesvc "mango_commerce/internal/api/base/service"
	stalldto "mango_commerce/internal/api/stall/dto"
	models "mango_commerce/internal/api/stall/models"
	"mango_commerce/internal/common"
	"mango_commerce/internal/global"
	"mango_commerce/internal/logger"
)

// StallMangoService là cấu trúc chứa các phương thức liên quan đến mặt hàng xoài tại gian
type StallMangoService struct {
	*basesvc.BaseServiceMongoImpl[models.StallMango]
}

// NewStallMangoService tạo mới StallMangoService
func NewStallMangoService() (*StallMangoService, error) {
	mangoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.StallMangoes)
	if !exist {
		return nil, fmt.Errorf("failed to get stall_mangoes collection: %v", common.ErrNotFound)
	}

	return &StallMangoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.StallMango](mangoCollection),
	}, nil
}

// resolveStallForOperator xác định gian hàng mà thao tác áp vào.
// Chủ gian luôn dùng gian được gán, admin phải chỉ định tường minh.
// Không xác định được gian là lỗi phân quyền, không phải lỗi validate.
func resolveStallForOperator(operator *authmodels.User, explicitStall string) (primitive.ObjectID, error) {
	if operator.Role == authmodels.RoleStallOwner {
		if operator.AssignedStall.IsZero() {
			return primitive.NilObjectID, common.ErrNoAssignedStall
		}
		return operator.AssignedStall, nil
	}

	if explicitStall == "" {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuthRole, "Không xác định được gian hàng cho thao tác", common.StatusForbidden, nil)
	}
	stallID, err := primitive.ObjectIDFromHex(explicitStall)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuthRole, "Mã gian hàng không đúng định dạng", common.StatusForbidden, err)
	}
	return stallID, nil
}

// Create tạo mặt hàng xoài cho gian hoặc template toàn cục.
// Template không gắn gian nào, admin mới được tạo (router gate).
func (s *StallMangoService) Create(ctx context.Context, operator *authmodels.User, input *stalldto.StallMangoCreateInput) (*models.StallMango, error) {
	mango := models.StallMango{
		Variety:      input.Variety,
		RipeningType: input.RipeningType,
		Price:        input.Price,
		PriceUnit:    input.PriceUnit,
		Quantity:     input.Quantity,
		QualityGrade: input.QualityGrade,
		Status:       input.Status,
	}

	if input.IsGlobalTemplate {
		if input.Stall != "" {
			return nil, common.NewError(common.ErrCodeValidationInput, "Template toàn cục không được gắn gian hàng", common.StatusBadRequest, nil)
		}
		mango.IsGlobalTemplate = true
	} else {
		stallID, err := resolveStallForOperator(operator, input.Stall)
		if err != nil {
			return nil, err
		}
		mango.Stall = stallID
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, mango)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// SeedFromTemplates nhân bản toàn bộ template toàn cục thành mặt hàng khởi điểm của gian mới
func (s *StallMangoService) SeedFromTemplates(ctx context.Context, stallID primitive.ObjectID) error {
	templates, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{"isGlobalTemplate": true}, nil)
	if err != nil {
		return err
	}
	if len(templates) == 0 {
		return nil
	}

	var listings []models.StallMango
	for _, template := range templates {
		listing := template
		listing.ID = primitive.NilObjectID
		listing.IsGlobalTemplate = false
		listing.Stall = stallID
		listing.CreatedAt = 0
		listing.UpdatedAt = 0
		listings = append(listings, listing)
	}

	_, err = s.BaseServiceMongoImpl.InsertMany(ctx, listings)
	if err != nil {
		return err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"stall_id": stallID.Hex(),
		"count":    len(listings),
	}).Info("🏪 [STALL] Nhân bản template mặt hàng cho gian mới")

	return nil
}

// ListForStall trả về các mặt hàng của một gian
func (s *StallMangoService) ListForStall(ctx context.Context, stallID primitive.ObjectID) ([]models.StallMango, error) {
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"stall": stallID}, nil)
}

// sufficientQuantityFilter khớp mặt hàng của gian còn đủ số lượng để trừ nguyên tử
func sufficientQuantityFilter(mangoID primitive.ObjectID, stallID primitive.ObjectID, quantity int64) bson.M {
	return bson.M{
		"_id":      mangoID,
		"stall":    stallID,
		"quantity": bson.M{"$gte": quantity},
	}
}

// insufficientQuantityFilter khớp mặt hàng không đủ số lượng. Điều kiện quantity < số yêu cầu
// giữ cho lệnh kẹp không ghi đè lên tồn kho vừa được bổ sung giữa hai bước.
func insufficientQuantityFilter(mangoID primitive.ObjectID, stallID primitive.ObjectID, quantity int64) bson.M {
	return bson.M{
		"_id":      mangoID,
		"stall":    stallID,
		"quantity": bson.M{"$lt": quantity},
	}
}

// DecrementQuantity trừ tồn kho mặt hàng tại gian, kẹp về 0 khi không đủ.
// Cùng primitive với trừ tồn kho catalog: điều kiện nằm trong filter để giữ tính nguyên tử.
func (s *StallMangoService) DecrementQuantity(ctx context.Context, mangoID primitive.ObjectID, stallID primitive.ObjectID, quantity int64) (*models.StallMango, error) {
	updateData := &basesvc.UpdateData{
		Inc: map[string]interface{}{
			"quantity": -quantity,
		},
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	updated, err := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, sufficientQuantityFilter(mangoID, stallID, quantity), updateData, after)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	clampData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"quantity": int64(0),
		},
	}
	clamped, clampErr := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, insufficientQuantityFilter(mangoID, stallID, quantity), clampData, after)
	if clampErr == nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"mango_id":  mangoID.Hex(),
			"stall_id":  stallID.Hex(),
			"requested": quantity,
		}).Warn("🏪 [STALL] Tồn kho mặt hàng không đủ, đã kẹp về 0")
		return &clamped, nil
	}
	if !errors.Is(clampErr, common.ErrNotFound) {
		return nil, clampErr
	}

	// Cả hai filter cùng trượt: số lượng vừa được bổ sung giữa hai bước,
	// thử trừ có điều kiện thêm một lần. Vẫn trượt nghĩa là mặt hàng không tồn tại.
	retried, retryErr := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, sufficientQuantityFilter(mangoID, stallID, quantity), updateData, after)
	if retryErr != nil {
		return nil, retryErr
	}
	return &retried, nil
}
