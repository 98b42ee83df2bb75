package webhooksvc

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	orderdmodels "mango_commerce/internal/api/order/models"
	ordersvc "mango_commerce/internal/api/order/service"
	webhookdto "mango_commerce/internal/api/webhook/dto"
	"mango_commerce/internal/common"
	"mango_commerce/internal/logger"
)

// courierStatusMap ánh xạ từ khóa trạng thái của đối tác sang trạng thái đơn hàng nội bộ.
// UNDELIVERED vẫn là "Out for delivery" vì đối tác sẽ thử giao lại.
var courierStatusMap = map[string]string{
	"PICKED UP":        orderdmodels.OrderStatusConfirmed,
	"IN TRANSIT":       orderdmodels.OrderStatusOutForDelivery,
	"OUT FOR DELIVERY": orderdmodels.OrderStatusOutForDelivery,
	"UNDELIVERED":      orderdmodels.OrderStatusOutForDelivery,
	"DELIVERED":        orderdmodels.OrderStatusDelivered,
	"CANCELLED":        orderdmodels.OrderStatusCancelled,
	"RTO INITIATED":    orderdmodels.OrderStatusCancelled,
	"RTO DELIVERED":    orderdmodels.OrderStatusCancelled,
}

// MapCourierStatus dịch từ khóa trạng thái đối tác sang trạng thái nội bộ.
// Trả về chuỗi rỗng nếu từ khóa không nằm trong bảng ánh xạ.
func MapCourierStatus(keyword string) string {
	return courierStatusMap[strings.ToUpper(strings.TrimSpace(keyword))]
}

// CourierWebhookService xử lý cập nhật trạng thái đơn hàng từ webhook vận chuyển
type CourierWebhookService struct {
	orderService *ordersvc.OrderService
}

// NewCourierWebhookService tạo mới CourierWebhookService
func NewCourierWebhookService() (*CourierWebhookService, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, err
	}
	return &CourierWebhookService{orderService: orderService}, nil
}

// Process áp trạng thái từ webhook vào đơn hàng theo luật tiến triển.
// Trả về true nếu trạng thái đơn được thay đổi. Lỗi trả về chỉ để ghi log,
// handler luôn ack 200 với đối tác.
func (s *CourierWebhookService) Process(ctx context.Context, input *webhookdto.CourierStatusRequest) (bool, error) {
	nextStatus := MapCourierStatus(input.CurrentStatus)
	if nextStatus == "" {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"status_keyword": input.CurrentStatus,
			"tracking_code":  input.AWB,
		}).Warn("🚚 [WEBHOOK] Từ khóa trạng thái không nằm trong bảng ánh xạ, bỏ qua")
		return false, nil
	}

	order, err := s.orderService.FindByTrackingCode(ctx, input.AWB, input.PartnerOrderID)
	if err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"tracking_code":    input.AWB,
			"partner_order_id": input.PartnerOrderID,
		}).Warn("🚚 [WEBHOOK] Không tìm thấy đơn hàng cho vận đơn")
		return false, common.ErrNotFound
	}

	applied, err := s.orderService.ApplyForwardStatus(ctx, order, nextStatus)
	if err != nil {
		return false, err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"order_id":    order.ID.Hex(),
		"from_status": order.Status,
		"to_status":   nextStatus,
		"applied":     applied,
	}).Info("🚚 [WEBHOOK] Xử lý cập nhật trạng thái vận chuyển")

	return applied, nil
}
