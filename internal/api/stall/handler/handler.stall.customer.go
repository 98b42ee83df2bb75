package stallhdl

import (
	"fmt"

	basehdl "mango_commerce/internal/api/base/handler"
	stalldto "mango_commerce/internal/api/stall/dto"
	models "mango_commerce/internal/api/stall/models"
	stallsvc "mango_commerce/internal/api/stall/service"
	"mango_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
)

// StallCustomerHandler xử lý các request liên quan đến khách mua tại gian
type StallCustomerHandler struct {
	*basehdl.BaseHandler[models.StallCustomer, stalldto.RecordSaleInput, stalldto.RecordSaleInput]
	customerService *stallsvc.StallCustomerService
}

// NewStallCustomerHandler tạo instance mới của StallCustomerHandler
func NewStallCustomerHandler() (*StallCustomerHandler, error) {
	customerService, err := stallsvc.NewStallCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create stall customer service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.StallCustomer, stalldto.RecordSaleInput, stalldto.RecordSaleInput](customerService)
	return &StallCustomerHandler{
		BaseHandler:     baseHandler,
		customerService: customerService,
	}, nil
}

// HandleRecordSale ghi nhận lượt bán tại gian (chủ gian dùng gian được gán, admin truyền gian)
func (h *StallCustomerHandler) HandleRecordSale(c fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input stalldto.RecordSaleInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	customer, err := h.customerService.RecordSale(c.Context(), user, &input)
	h.HandleResponse(c, customer, err)
	return nil
}

// HandleMyCustomers chủ gian xem khách của gian mình
func (h *StallCustomerHandler) HandleMyCustomers(c fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if user.AssignedStall.IsZero() {
		h.HandleResponse(c, nil, common.ErrNoAssignedStall)
		return nil
	}
	customers, err := h.customerService.ListForStall(c.Context(), user.AssignedStall)
	h.HandleResponse(c, customers, err)
	return nil
}
