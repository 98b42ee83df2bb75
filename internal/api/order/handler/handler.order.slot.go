package orderhdl

import (
	"fmt"

	basehdl "mango_commerce/internal/api/base/handler"
	orderdto "mango_commerce/internal/api/order/dto"
	models "mango_commerce/internal/api/order/models"
	ordersvc "mango_commerce/internal/api/order/service"

	"github.com/gofiber/fiber/v3"
)

// SlotHandler xử lý các request liên quan đến khung giờ giao hàng
type SlotHandler struct {
	*basehdl.BaseHandler[models.Slot, orderdto.SlotCreateInput, orderdto.SlotUpdateInput]
	slotService *ordersvc.SlotService
}

// NewSlotHandler tạo instance mới của SlotHandler
func NewSlotHandler() (*SlotHandler, error) {
	slotService, err := ordersvc.NewSlotService()
	if err != nil {
		return nil, fmt.Errorf("failed to create slot service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Slot, orderdto.SlotCreateInput, orderdto.SlotUpdateInput](slotService)
	return &SlotHandler{
		BaseHandler: baseHandler,
		slotService: slotService,
	}, nil
}

// HandleEnabledList trả về danh sách khung giờ đang mở (route công khai)
func (h *SlotHandler) HandleEnabledList(c fiber.Ctx) error {
	slots, err := h.slotService.EnabledList(c.Context())
	h.HandleResponse(c, slots, err)
	return nil
}
