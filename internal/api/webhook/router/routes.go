// Package router đăng ký các route thuộc domain webhook.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	models "mango_commerce/internal/api/auth/models"
	"mango_commerce/internal/api/middleware"
	apirouter "mango_commerce/internal/api/router"
	webhookhdl "mango_commerce/internal/api/webhook/handler"
)

// Register đăng ký route webhook lên v1.
// Endpoint nhận webhook công khai (xác thực bằng shared secret trong header),
// tra cứu log webhook dành cho admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	courierHandler, err := webhookhdl.NewCourierWebhookHandler()
	if err != nil {
		return fmt.Errorf("failed to create courier webhook handler: %w", err)
	}
	logHandler, err := webhookhdl.NewWebhookLogHandler()
	if err != nil {
		return fmt.Errorf("failed to create webhook log handler: %w", err)
	}

	v1.Post("/webhook/courier", courierHandler.HandleCourierStatus)

	authOnlyMiddleware := middleware.AuthMiddleware()
	adminChain := []fiber.Handler{authOnlyMiddleware, middleware.RequireRoles(models.RoleAdmin)}
	r.RegisterCRUDRoutes(v1, "/webhook-log", logHandler, apirouter.ReadOnlyConfig, adminChain, adminChain)
	return nil
}
