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

// StallMangoHandler xử lý các request liên quan đến mặt hàng xoài tại gian
type StallMangoHandler struct {
	*basehdl.BaseHandler[models.StallMango, stalldto.StallMangoCreateInput, stalldto.StallMangoUpdateInput]
	mangoService *stallsvc.StallMangoService
}

// NewStallMangoHandler tạo instance mới của StallMangoHandler
func NewStallMangoHandler() (*StallMangoHandler, error) {
	mangoService, err := stallsvc.NewStallMangoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create stall mango service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.StallMango, stalldto.StallMangoCreateInput, stalldto.StallMangoUpdateInput](mangoService)
	return &StallMangoHandler{
		BaseHandler:  baseHandler,
		mangoService: mangoService,
	}, nil
}

// HandleCreateMango tạo mặt hàng tại gian (chủ gian) hoặc template toàn cục (admin)
func (h *StallMangoHandler) HandleCreateMango(c fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input stalldto.StallMangoCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	mango, err := h.mangoService.Create(c.Context(), user, &input)
	h.HandleResponse(c, mango, err)
	return nil
}

// HandleMyListings chủ gian xem các mặt hàng của gian mình
func (h *StallMangoHandler) HandleMyListings(c fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if user.AssignedStall.IsZero() {
		h.HandleResponse(c, nil, common.ErrNoAssignedStall)
		return nil
	}
	listings, err := h.mangoService.ListForStall(c.Context(), user.AssignedStall)
	h.HandleResponse(c, listings, err)
	return nil
}
