// Package router đăng ký các route thuộc domain auth: System, Auth, quản lý người dùng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "mango_commerce/internal/api/auth/handler"
	models "mango_commerce/internal/api/auth/models"
	basehdl "mango_commerce/internal/api/base/handler"
	"mango_commerce/internal/api/middleware"
	apirouter "mango_commerce/internal/api/router"
)

// Register đăng ký tất cả route auth (system, auth, user) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Route công khai
	router.Post("/auth/register", userHandler.HandleRegister)
	router.Post("/auth/login", userHandler.HandleLogin)

	// Route yêu cầu đăng nhập
	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/change-password", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleChangePassword)

	// Quản lý người dùng (admin): đọc qua CRUD, tạo qua route riêng (băm password)
	adminMiddleware := middleware.RequireRoles(models.RoleAdmin)
	adminChain := []fiber.Handler{authOnlyMiddleware, adminMiddleware}
	r.RegisterCRUDRoutes(router, "/user", userHandler, apirouter.ReadOnlyConfig, adminChain, adminChain)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "POST", "/create", adminChain, userHandler.HandleCreateUser)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "PUT", "/update-by-id/:id", adminChain, userHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "DELETE", "/delete-by-id/:id", adminChain, userHandler.DeleteById)
	return nil
}
