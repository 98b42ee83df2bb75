package ordersvc

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/sirupsen/logrus"

	orderdto "mango_commerce/internal/api/order/dto"
	models "mango_commerce/internal/api/order/models"
	"mango_commerce/internal/common"
	"mango_commerce/internal/global"
	"mango_commerce/internal/logger"
)

// PaymentService xác minh chữ ký thanh toán online và ghi nhận đơn hàng sau khi xác minh
type PaymentService struct {
	orderService *OrderService
	secret       string
}

// NewPaymentService tạo mới PaymentService
func NewPaymentService() (*PaymentService, error) {
	orderService, err := NewOrderService()
	if err != nil {
		return nil, err
	}
	return &PaymentService{
		orderService: orderService,
		secret:       global.MongoDB_ServerConfig.PaymentKeySecret,
	}, nil
}

// ComputeSignature tính HMAC-SHA256 hex của "orderId|paymentId" với bí mật cho trước
func ComputeSignature(secret string, orderID string, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature so sánh chữ ký client gửi lên với chữ ký server tự tính.
// So sánh constant-time để không lộ thông tin qua thời gian phản hồi.
func VerifySignature(secret string, orderID string, paymentID string, signature string) bool {
	expected := ComputeSignature(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// PaymentVerifyResult kết quả xác minh thanh toán trả cho client
type PaymentVerifyResult struct {
	Verified bool          `json:"verified"`        // Chữ ký hợp lệ
	Order    *models.Order `json:"order,omitempty"` // Đơn hàng đã ghi nhận (nil nếu ghi thất bại)
	Note     string        `json:"note,omitempty"`  // Ghi chú khi tiền đã nhận nhưng ghi đơn thất bại
}

// VerifyAndRecord xác minh chữ ký thanh toán rồi ghi nhận đơn hàng online.
// Chữ ký sai: trả lỗi, không ghi gì cả.
// Chữ ký đúng nhưng ghi đơn thất bại: tiền đã về tài khoản nên vẫn trả xác nhận
// thành công kèm ghi chú cho khách liên hệ hỗ trợ, không bắt khách trả thêm lần nữa.
func (s *PaymentService) VerifyAndRecord(ctx context.Context, input *orderdto.PaymentVerifyInput) (*PaymentVerifyResult, error) {
	if !VerifySignature(s.secret, input.OrderID, input.PaymentID, input.Signature) {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"gateway_order_id": input.OrderID,
			"payment_id":       input.PaymentID,
		}).Warn("💳 [PAYMENT] Chữ ký thanh toán không khớp")
		return nil, common.ErrSignatureMismatch
	}

	checkout := input.Order
	checkout.PaymentMode = models.PaymentModeOnline
	if len(checkout.Items) == 0 {
		return nil, common.ErrEmptyOrderItems
	}

	order, err := s.orderService.CreateOrder(ctx, &checkout, input.PaymentID)
	if err != nil {
		logger.GetAppLogger().WithError(err).WithFields(logrus.Fields{
			"gateway_order_id": input.OrderID,
			"payment_id":       input.PaymentID,
		}).Error("💳 [PAYMENT] Thanh toán hợp lệ nhưng ghi đơn thất bại")
		return &PaymentVerifyResult{
			Verified: true,
			Note:     "Thanh toán đã được xác nhận nhưng ghi nhận đơn hàng thất bại, vui lòng liên hệ hỗ trợ",
		}, nil
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"order_id":   order.ID.Hex(),
		"payment_id": input.PaymentID,
	}).Info("💳 [PAYMENT] Xác minh thanh toán và ghi đơn thành công")

	return &PaymentVerifyResult{Verified: true, Order: order}, nil
}
