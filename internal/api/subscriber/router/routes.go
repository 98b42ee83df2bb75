// Package router đăng ký các route thuộc domain subscriber.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	models "mango_commerce/internal/api/auth/models"
	"mango_commerce/internal/api/middleware"
	apirouter "mango_commerce/internal/api/router"
	subscriberhdl "mango_commerce/internal/api/subscriber/handler"
)

// Register đăng ký route subscriber lên v1: đăng ký công khai, quản lý cho admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	subscriberHandler, err := subscriberhdl.NewSubscriberHandler()
	if err != nil {
		return fmt.Errorf("failed to create subscriber handler: %w", err)
	}

	v1.Post("/subscriber/signup", subscriberHandler.HandleSignup)

	authOnlyMiddleware := middleware.AuthMiddleware()
	adminChain := []fiber.Handler{authOnlyMiddleware, middleware.RequireRoles(models.RoleAdmin)}
	r.RegisterCRUDRoutes(v1, "/subscriber", subscriberHandler, apirouter.ReadWriteConfig, adminChain, adminChain)
	return nil
}
