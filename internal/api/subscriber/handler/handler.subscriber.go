// Package subscriberhdl - handler người đăng ký nhận tin.
package subscriberhdl

import (
	"fmt"

	basehdl "mango_commerce/internal/api/base/handler"
	subscriberdto "mango_commerce/internal/api/subscriber/dto"
	models "mango_commerce/internal/api/subscriber/models"
	subscribersvc "mango_commerce/internal/api/subscriber/service"

	"github.com/gofiber/fiber/v3"
)

// SubscriberHandler xử lý các request liên quan đến người đăng ký nhận tin
type SubscriberHandler struct {
	*basehdl.BaseHandler[models.Subscriber, subscriberdto.SubscriberSignupInput, subscriberdto.SubscriberUpdateInput]
	subscriberService *subscribersvc.SubscriberService
}

// NewSubscriberHandler tạo instance mới của SubscriberHandler
func NewSubscriberHandler() (*SubscriberHandler, error) {
	subscriberService, err := subscribersvc.NewSubscriberService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriber service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Subscriber, subscriberdto.SubscriberSignupInput, subscriberdto.SubscriberUpdateInput](subscriberService)
	return &SubscriberHandler{
		BaseHandler:       baseHandler,
		subscriberService: subscriberService,
	}, nil
}

// HandleSignup đăng ký nhận tin từ storefront (route công khai)
func (h *SubscriberHandler) HandleSignup(c fiber.Ctx) error {
	var input subscriberdto.SubscriberSignupInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	subscriber, err := h.subscriberService.Signup(c.Context(), &input)
	h.HandleResponse(c, subscriber, err)
	return nil
}
