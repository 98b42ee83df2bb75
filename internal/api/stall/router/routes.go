// Package router đăng ký các route thuộc domain stall.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	models "mango_commerce/internal/api/auth/models"
	"mango_commerce/internal/api/middleware"
	stallhdl "mango_commerce/internal/api/stall/handler"
	apirouter "mango_commerce/internal/api/router"
)

// Register đăng ký các route gian hàng lên v1.
// Admin quản lý toàn bộ gian; chủ gian chỉ thao tác trên gian được gán,
// và bị middleware khóa gian chặn khi admin khóa.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	stallHandler, err := stallhdl.NewStallHandler()
	if err != nil {
		return fmt.Errorf("failed to create stall handler: %w", err)
	}
	mangoHandler, err := stallhdl.NewStallMangoHandler()
	if err != nil {
		return fmt.Errorf("failed to create stall mango handler: %w", err)
	}
	customerHandler, err := stallhdl.NewStallCustomerHandler()
	if err != nil {
		return fmt.Errorf("failed to create stall customer handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware()
	stallLockMiddleware := middleware.StallLockMiddleware()
	adminChain := []fiber.Handler{authOnlyMiddleware, middleware.RequireRoles(models.RoleAdmin)}
	operatorReadChain := []fiber.Handler{authOnlyMiddleware, middleware.RequireRoles(models.RoleAdmin, models.RoleStallOwner)}
	operatorWriteChain := []fiber.Handler{authOnlyMiddleware, middleware.RequireRoles(models.RoleAdmin, models.RoleStallOwner), stallLockMiddleware}

	// Gian hàng: admin quản lý, chủ gian chỉ xem gian của mình
	r.RegisterCRUDRoutes(v1, "/stall", stallHandler, apirouter.ReadOnlyConfig, adminChain, adminChain)
	apirouter.RegisterRouteWithMiddleware(v1, "/stall", "POST", "/create", adminChain, stallHandler.HandleCreateStall)
	apirouter.RegisterRouteWithMiddleware(v1, "/stall", "PUT", "/update-by-id/:id", adminChain, stallHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(v1, "/stall", "PUT", "/lock/:id", adminChain, stallHandler.HandleLock)
	apirouter.RegisterRouteWithMiddleware(v1, "/stall", "PUT", "/unlock/:id", adminChain, stallHandler.HandleUnlock)
	apirouter.RegisterRouteWithMiddleware(v1, "/stall", "GET", "/my-stall", operatorReadChain, stallHandler.HandleMyStall)

	// Mặt hàng: đọc cho admin và chủ gian, ghi qua route riêng có kiểm tra khóa gian
	r.RegisterCRUDRoutes(v1, "/stall-mango", mangoHandler, apirouter.ReadOnlyConfig, operatorReadChain, adminChain)
	apirouter.RegisterRouteWithMiddleware(v1, "/stall-mango", "POST", "/create", operatorWriteChain, mangoHandler.HandleCreateMango)
	apirouter.RegisterRouteWithMiddleware(v1, "/stall-mango", "PUT", "/update-by-id/:id", operatorWriteChain, mangoHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(v1, "/stall-mango", "DELETE", "/delete-by-id/:id", operatorWriteChain, mangoHandler.DeleteById)
	apirouter.RegisterRouteWithMiddleware(v1, "/stall-mango", "GET", "/my-listings", operatorReadChain, mangoHandler.HandleMyListings)

	// Khách mua tại gian: ghi nhận bán hàng có kiểm tra khóa gian
	r.RegisterCRUDRoutes(v1, "/stall-customer", customerHandler, apirouter.ReadOnlyConfig, operatorReadChain, adminChain)
	apirouter.RegisterRouteWithMiddleware(v1, "/stall-customer", "POST", "/record-sale", operatorWriteChain, customerHandler.HandleRecordSale)
	apirouter.RegisterRouteWithMiddleware(v1, "/stall-customer", "GET", "/my-customers", operatorReadChain, customerHandler.HandleMyCustomers)
	return nil
}
