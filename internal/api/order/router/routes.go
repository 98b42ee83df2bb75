// Package router đăng ký các route thuộc domain order: checkout, thanh toán, khung giờ giao.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	models "mango_commerce/internal/api/auth/models"
	"mango_commerce/internal/api/middleware"
	orderhdl "mango_commerce/internal/api/order/handler"
	apirouter "mango_commerce/internal/api/router"
)

// Register đăng ký các route đơn hàng và khung giờ giao lên v1.
// Checkout và xác minh thanh toán công khai (khách chưa đăng nhập vẫn đặt được),
// quản trị đơn hàng dành cho admin và staff.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %w", err)
	}
	slotHandler, err := orderhdl.NewSlotHandler()
	if err != nil {
		return fmt.Errorf("failed to create slot handler: %w", err)
	}

	// Route công khai cho storefront
	v1.Post("/order/checkout", orderHandler.HandleCheckout)
	v1.Post("/order/verify-payment", orderHandler.HandleVerifyPayment)
	v1.Get("/slot/enabled", slotHandler.HandleEnabledList)

	authOnlyMiddleware := middleware.AuthMiddleware()
	staffChain := []fiber.Handler{authOnlyMiddleware, middleware.RequireRoles(models.RoleAdmin, models.RoleStaff)}
	adminChain := []fiber.Handler{authOnlyMiddleware, middleware.RequireRoles(models.RoleAdmin)}

	// Đơn hàng: staff được xem, admin được sửa trạng thái và xóa
	r.RegisterCRUDRoutes(v1, "/order", orderHandler, apirouter.ReadOnlyConfig, staffChain, adminChain)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "PUT", "/update-status/:id", adminChain, orderHandler.HandleUpdateStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "DELETE", "/delete-by-id/:id", adminChain, orderHandler.DeleteById)

	// Khung giờ giao: admin CRUD đầy đủ
	r.RegisterCRUDRoutes(v1, "/slot", slotHandler, apirouter.ReadWriteConfig, adminChain, adminChain)
	return nil
}
