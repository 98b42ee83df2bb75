// Package orderhdl - handler checkout, thanh toán và trạng thái đơn hàng.
package orderhdl

import (
	"fmt"

	basehdl "mango_commerce/internal/api/base/handler"
	orderdto "mango_commerce/internal/api/order/dto"
	models "mango_commerce/internal/api/order/models"
	ordersvc "mango_commerce/internal/api/order/service"
	"mango_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler xử lý các request liên quan đến đơn hàng
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, orderdto.CheckoutInput, orderdto.OrderStatusUpdateInput]
	orderService   *ordersvc.OrderService
	paymentService *ordersvc.PaymentService
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	paymentService, err := ordersvc.NewPaymentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create payment service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Order, orderdto.CheckoutInput, orderdto.OrderStatusUpdateInput](orderService)
	return &OrderHandler{
		BaseHandler:    baseHandler,
		orderService:   orderService,
		paymentService: paymentService,
	}, nil
}

// HandleCheckout tạo đơn hàng từ storefront (COD hoặc đơn online chưa qua gateway)
func (h *OrderHandler) HandleCheckout(c fiber.Ctx) error {
	var input orderdto.CheckoutInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	order, err := h.orderService.CreateOrder(c.Context(), &input, "")
	h.HandleResponse(c, order, err)
	return nil
}

// HandleVerifyPayment xác minh chữ ký thanh toán online và ghi nhận đơn hàng
func (h *OrderHandler) HandleVerifyPayment(c fiber.Ctx) error {
	var input orderdto.PaymentVerifyInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.paymentService.VerifyAndRecord(c.Context(), &input)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleUpdateStatus admin cập nhật trạng thái đơn hàng
func (h *OrderHandler) HandleUpdateStatus(c fiber.Ctx) error {
	id := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID đơn hàng không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	var input orderdto.OrderStatusUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	order, err := h.orderService.UpdateStatus(c.Context(), objID, input.Status)
	h.HandleResponse(c, order, err)
	return nil
}
