// Package router đăng ký các route thuộc domain catalog.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	models "mango_commerce/internal/api/auth/models"
	cataloghdl "mango_commerce/internal/api/catalog/handler"
	"mango_commerce/internal/api/middleware"
	apirouter "mango_commerce/internal/api/router"
)

// Register đăng ký các route sản phẩm lên v1.
// Storefront đọc công khai, các thao tác ghi chỉ dành cho admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}

	// Route công khai cho storefront
	v1.Get("/product/storefront", productHandler.HandleStorefrontList)

	// Quản lý sản phẩm (admin): đọc qua CRUD, ghi qua route riêng (lịch sử giá, xóa mềm)
	authOnlyMiddleware := middleware.AuthMiddleware()
	adminChain := []fiber.Handler{authOnlyMiddleware, middleware.RequireRoles(models.RoleAdmin)}
	r.RegisterCRUDRoutes(v1, "/product", productHandler, apirouter.ReadOnlyConfig, adminChain, adminChain)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "POST", "/create", adminChain, productHandler.HandleCreateProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "PUT", "/update-by-id/:id", adminChain, productHandler.HandleUpdateProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "DELETE", "/delete-by-id/:id", adminChain, productHandler.HandleDeleteProduct)
	return nil
}
