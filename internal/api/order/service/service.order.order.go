// Package ordersvc - service đơn hàng: checkout, trạng thái giao hàng, điều phối vận chuyển.
package ordersvc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "mango_commerce/internal/api/base/service"
	catalogsvc "mango_commerce/internal/api/catalog/service"
	orderdto "mango_commerce/internal/api/order/dto"
	models "mango_commerce/internal/api/order/models"
	shippingdto "mango_commerce/internal/api/shipping/dto"
	shippingsvc "mango_commerce/internal/api/shipping/service"
	"mango_commerce/internal/common"
	"mango_commerce/internal/delivery/channels"
	"mango_commerce/internal/global"
	"mango_commerce/internal/logger"
	"mango_commerce/internal/utility"
)

// Cache token đối tác vận chuyển dùng chung cho mọi instance của OrderService.
// Token sống nhiều ngày nên không muốn mỗi instance đăng nhập riêng.
var (
	shippingCacheOnce sync.Once
	shippingCache     *utility.Cache
)

func sharedShippingCache() *utility.Cache {
	shippingCacheOnce.Do(func() {
		shippingCache = utility.NewCache(time.Hour, time.Hour)
	})
	return shippingCache
}

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
	productService *catalogsvc.ProductService
	shippingClient *shippingsvc.Client
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}

	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}

	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](orderCollection),
		productService:       productService,
		shippingClient:       shippingsvc.NewClient(global.MongoDB_ServerConfig, sharedShippingCache()),
	}, nil
}

// buildOrder dựng document đơn hàng từ dữ liệu checkout
func buildOrder(input *orderdto.CheckoutInput, paymentID string) (*models.Order, error) {
	paymentMode := input.PaymentMode
	if paymentMode == "" {
		paymentMode = models.PaymentModeOnline
	}

	paymentStatus := models.PaymentStatusPaid
	if paymentMode == models.PaymentModeCOD {
		paymentStatus = models.PaymentStatusPending
	}

	var items []models.OrderItem
	var total float64
	for _, item := range input.Items {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "productId không đúng định dạng ObjectID", common.StatusBadRequest, err)
		}
		items = append(items, models.OrderItem{
			ProductID: productID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
		total += item.Price * float64(item.Quantity)
	}

	return &models.Order{
		CustomerName:  input.CustomerName,
		Phone:         input.Phone,
		Email:         input.Email,
		Address:       input.Address,
		Items:         items,
		TotalAmount:   total,
		PaymentMode:   paymentMode,
		PaymentStatus: paymentStatus,
		PaymentID:     paymentID,
		Status:        models.OrderStatusConfirmed,
		SlotLabel:     input.SlotLabel,
		ParcelWeight:  ComputeParcelWeight(items),
	}, nil
}

// CreateOrder chạy toàn bộ pipeline tạo đơn: ghi đơn, trừ tồn kho,
// đẩy vận đơn và email xác nhận chạy nền best-effort.
// paymentID rỗng với đơn COD, là mã giao dịch gateway với đơn online đã xác minh.
func (s *OrderService) CreateOrder(ctx context.Context, input *orderdto.CheckoutInput, paymentID string) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, common.ErrEmptyOrderItems
	}

	order, err := buildOrder(input, paymentID)
	if err != nil {
		return nil, err
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, *order)
	if err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"order_id":     created.ID.Hex(),
		"payment_mode": created.PaymentMode,
		"total":        created.TotalAmount,
	}).Info("📦 [ORDER] Tạo đơn hàng mới")

	// Trừ tồn kho sau khi đơn đã được ghi. Sản phẩm không còn trong catalog
	// thì chỉ cảnh báo, đơn vẫn giữ nguyên.
	for _, item := range created.Items {
		if _, err := s.productService.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			logger.GetAppLogger().WithError(err).WithFields(logrus.Fields{
				"order_id":   created.ID.Hex(),
				"product_id": item.ProductID.Hex(),
			}).Warn("📦 [ORDER] Không trừ được tồn kho cho sản phẩm")
		}
	}

	go utility.GoProtect(func() {
		s.dispatchFulfillment(&created)
	})
	go utility.GoProtect(func() {
		channels.SendOrderConfirmation(global.MongoDB_ServerConfig, &created)
	})

	return &created, nil
}

// dispatchFulfillment tạo vận đơn với đối tác và lưu mã vận đơn vào đơn hàng.
// Chạy trong goroutine riêng, mọi lỗi chỉ được log.
func (s *OrderService) dispatchFulfillment(order *models.Order) {
	if global.MongoDB_ServerConfig.ShippingBaseURL == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	paymentMethod := "Prepaid"
	if order.PaymentMode == models.PaymentModeCOD {
		paymentMethod = "COD"
	}

	var items []shippingdto.ShipmentItem
	for _, item := range order.Items {
		items = append(items, shippingdto.ShipmentItem{
			Name:     item.Name,
			SKU:      item.ProductID.Hex(),
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	request := &shippingdto.ShipmentRequest{
		OrderID:       order.ID.Hex(),
		CustomerName:  order.CustomerName,
		Phone:         order.Phone,
		Address:       order.Address,
		PaymentMethod: paymentMethod,
		Weight:        order.ParcelWeight,
		Items:         items,
	}

	result, err := s.shippingClient.CreateShipment(ctx, request)
	if err != nil {
		logger.GetAppLogger().WithError(err).WithFields(logrus.Fields{
			"order_id": order.ID.Hex(),
		}).Error("📦 [ORDER] Tạo vận đơn thất bại, đơn hàng chờ xử lý tay")
		return
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"partnerOrderId": result.PartnerOrderID,
			"trackingCode":   result.TrackingCode,
		},
	}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, order.ID, updateData); err != nil {
		logger.GetAppLogger().WithError(err).WithFields(logrus.Fields{
			"order_id": order.ID.Hex(),
		}).Error("📦 [ORDER] Không lưu được mã vận đơn vào đơn hàng")
	}
}

// UpdateStatus admin cập nhật trạng thái đơn hàng.
// Khác với webhook, admin được phép lùi trạng thái.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	if models.OrderStatusIndex(status) < 0 {
		return nil, common.ErrInvalidOrderStatus
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status": status,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	if err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"order_id": id.Hex(),
		"status":   status,
	}).Info("📦 [ORDER] Admin cập nhật trạng thái đơn hàng")

	return &updated, nil
}

// shouldApplyStatus quyết định luật tiến triển trạng thái của webhook:
// trạng thái mới chỉ được áp khi đứng sau trạng thái hiện tại trong chuỗi giao hàng,
// riêng Cancelled luôn được áp. Webhook gửi lại cùng một trạng thái thì bị bỏ qua.
func shouldApplyStatus(current string, next string) bool {
	if next == models.OrderStatusCancelled {
		return true
	}
	return models.OrderStatusIndex(next) > models.OrderStatusIndex(current)
}

// ApplyForwardStatus áp trạng thái mới theo luật tiến triển của webhook.
// Trả về true nếu trạng thái được ghi, false nếu bị bỏ qua.
func (s *OrderService) ApplyForwardStatus(ctx context.Context, order *models.Order, nextStatus string) (bool, error) {
	if models.OrderStatusIndex(nextStatus) < 0 {
		return false, common.ErrInvalidOrderStatus
	}
	if !shouldApplyStatus(order.Status, nextStatus) {
		return false, nil
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status": nextStatus,
		},
	}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, order.ID, updateData); err != nil {
		return false, err
	}
	return true, nil
}

// FindByTrackingCode tìm đơn theo mã vận đơn, fallback sang mã đơn phía đối tác
func (s *OrderService) FindByTrackingCode(ctx context.Context, trackingCode string, partnerOrderID string) (*models.Order, error) {
	if trackingCode != "" {
		order, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"trackingCode": trackingCode}, nil)
		if err == nil {
			return &order, nil
		}
	}
	if partnerOrderID != "" {
		order, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"partnerOrderId": partnerOrderID}, nil)
		if err == nil {
			return &order, nil
		}
	}
	return nil, common.ErrNotFound
}
