// Package stallhdl - handler gian hàng, mặt hàng và khách mua tại gian.
package stallhdl

import (
	"fmt"

	authmodels "mango_commerce/internal/api/auth/models"
	basehdl "mango_commerce/internal/api/base/handler"
	stalldto "mango_commerce/internal/api/stall/dto"
	models "mango_commerce/internal/api/stall/models"
	stallsvc "mango_commerce/internal/api/stall/service"
	"mango_commerce/internal/common"
	"mango_commerce/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUser lấy user từ context (AuthMiddleware đã set)
func currentUser(c fiber.Ctx) (*authmodels.User, error) {
	user, ok := c.Locals("user").(authmodels.User)
	if !ok {
		return nil, common.ErrTokenMissing
	}
	return &user, nil
}

// pathObjectID lấy ObjectID từ path param :id
func pathObjectID(c fiber.Ctx) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng ObjectID", common.StatusBadRequest, err)
	}
	return objID, nil
}

// StallHandler xử lý các request liên quan đến gian hàng
type StallHandler struct {
	*basehdl.BaseHandler[models.Stall, stalldto.StallCreateInput, stalldto.StallUpdateInput]
	stallService *stallsvc.StallService
}

// NewStallHandler tạo instance mới của StallHandler
func NewStallHandler() (*StallHandler, error) {
	stallService, err := stallsvc.NewStallService()
	if err != nil {
		return nil, fmt.Errorf("failed to create stall service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Stall, stalldto.StallCreateInput, stalldto.StallUpdateInput](stallService)
	return &StallHandler{
		BaseHandler:  baseHandler,
		stallService: stallService,
	}, nil
}

// HandleCreateStall admin tạo gian hàng mới kèm tài khoản chủ gian.
// Dùng riêng thay vì CRUD InsertOne vì phải tạo user và nhân bản template cùng lúc.
func (h *StallHandler) HandleCreateStall(c fiber.Ctx) error {
	var input stalldto.StallCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	stall, err := h.stallService.CreateWithOwner(c.Context(), &input)
	h.HandleResponse(c, stall, err)
	return nil
}

// HandleLock admin khóa thao tác của chủ gian
func (h *StallHandler) HandleLock(c fiber.Ctx) error {
	objID, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	stall, err := h.stallService.SetLocked(c.Context(), objID, true)
	if err == nil {
		logger.LogAction("stall_lock", c, map[string]interface{}{"stall_id": objID.Hex()})
	}
	h.HandleResponse(c, stall, err)
	return nil
}

// HandleUnlock admin mở khóa gian hàng
func (h *StallHandler) HandleUnlock(c fiber.Ctx) error {
	objID, err := pathObjectID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	stall, err := h.stallService.SetLocked(c.Context(), objID, false)
	if err == nil {
		logger.LogAction("stall_unlock", c, map[string]interface{}{"stall_id": objID.Hex()})
	}
	h.HandleResponse(c, stall, err)
	return nil
}

// HandleMyStall chủ gian xem thông tin gian của mình
func (h *StallHandler) HandleMyStall(c fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if user.AssignedStall.IsZero() {
		h.HandleResponse(c, nil, common.ErrNoAssignedStall)
		return nil
	}
	stall, err := h.stallService.BaseServiceMongoImpl.FindOneById(c.Context(), user.AssignedStall)
	h.HandleResponse(c, stall, err)
	return nil
}
