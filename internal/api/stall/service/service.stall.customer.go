package stallsvc

import (
	"context"
	"fmt"
	"time"

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

// StallCustomerService là cấu trúc chứa các phương thức liên quan đến khách mua tại gian
type StallCustomerService struct {
	*basesvc.BaseServiceMongoImpl[models.StallCustomer]
	mangoService *StallMangoService
	saleService  *basesvc.BaseServiceMongoImpl[models.StallSale]
}

// NewStallCustomerService tạo mới StallCustomerService
func NewStallCustomerService() (*StallCustomerService, error) {
	customerCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.StallCustomers)
	if !exist {
		return nil, fmt.Errorf("failed to get stall_customers collection: %v", common.ErrNotFound)
	}
	saleCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.StallSales)
	if !exist {
		return nil, fmt.Errorf("failed to get stall_sales collection: %v", common.ErrNotFound)
	}

	mangoService, err := NewStallMangoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create stall mango service: %v", err)
	}

	return &StallCustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.StallCustomer](customerCollection),
		mangoService:         mangoService,
		saleService:          basesvc.NewBaseServiceMongo[models.StallSale](saleCollection),
	}, nil
}

// RecordSale ghi nhận một lượt bán tại gian hàng.
// Khách được upsert theo cặp (mobile, stall): các trường được truyền sẽ ghi đè,
// bản ghi mới luôn khởi tạo loại "New". Số lượng mua dương trừ tồn kho mặt hàng
// (kẹp về 0) và sinh một bản ghi StallSale cho báo cáo.
func (s *StallCustomerService) RecordSale(ctx context.Context, operator *authmodels.User, input *stalldto.RecordSaleInput) (*models.StallCustomer, error) {
	stallID, err := resolveStallForOperator(operator, input.Stall)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	setFields := map[string]interface{}{}
	if input.Name != "" {
		setFields["name"] = input.Name
	}
	if input.Address != "" {
		setFields["address"] = input.Address
	}
	if input.Notes != "" {
		setFields["notes"] = input.Notes
	}
	if input.Type != "" {
		setFields["type"] = input.Type
	}

	updateData := &basesvc.UpdateData{
		Set: setFields,
		SetOnInsert: map[string]interface{}{
			"mobile":    input.Mobile,
			"stall":     stallID,
			"createdAt": now,
		},
	}
	// Bản ghi mới mặc định là khách "New", trừ khi người bán truyền loại khác
	if input.Type == "" {
		updateData.SetOnInsert["type"] = models.StallCustomerTypeNew
	}
	if input.PurchasedQuantity > 0 {
		updateData.Set["lastPurchaseAt"] = now
		updateData.Inc = map[string]interface{}{
			"totalPurchases":    int64(1),
			"purchasedQuantity": input.PurchasedQuantity,
		}
	}

	filter := bson.M{"mobile": input.Mobile, "stall": stallID}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	customer, err := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, filter, updateData, opts)
	if err != nil {
		return nil, err
	}

	if input.PurchasedQuantity > 0 {
		sale := models.StallSale{
			Stall:    stallID,
			Mobile:   input.Mobile,
			Quantity: input.PurchasedQuantity,
			Price:    input.Price,
			Amount:   input.Price * float64(input.PurchasedQuantity),
			SoldAt:   now,
		}

		if input.Mango != "" {
			mangoID, err := primitive.ObjectIDFromHex(input.Mango)
			if err != nil {
				return nil, common.NewError(common.ErrCodeValidationFormat, "Mã mặt hàng không đúng định dạng", common.StatusBadRequest, err)
			}
			mango, err := s.mangoService.DecrementQuantity(ctx, mangoID, stallID, input.PurchasedQuantity)
			if err != nil {
				logger.GetAppLogger().WithError(err).WithFields(logrus.Fields{
					"mango_id": mangoID.Hex(),
					"stall_id": stallID.Hex(),
				}).Warn("🏪 [STALL] Không trừ được tồn kho mặt hàng khi ghi nhận bán")
			} else {
				sale.Mango = mango.ID
				sale.Variety = mango.Variety
				if input.Price == 0 {
					sale.Price = mango.Price
					sale.Amount = mango.Price * float64(input.PurchasedQuantity)
				}
			}
		}

		if _, err := s.saleService.InsertOne(ctx, sale); err != nil {
			logger.GetAppLogger().WithError(err).WithFields(logrus.Fields{
				"stall_id": stallID.Hex(),
				"mobile":   input.Mobile,
			}).Warn("🏪 [STALL] Không lưu được bản ghi bán hàng")
		}
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"stall_id": stallID.Hex(),
		"mobile":   input.Mobile,
		"quantity": input.PurchasedQuantity,
	}).Info("🏪 [STALL] Ghi nhận lượt bán tại gian")

	return &customer, nil
}

// ListForStall trả về khách của một gian
func (s *StallCustomerService) ListForStall(ctx context.Context, stallID primitive.ObjectID) ([]models.StallCustomer, error) {
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"stall": stallID}, nil)
}
