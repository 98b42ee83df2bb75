// Package router đăng ký các route thuộc domain report.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	models "mango_commerce/internal/api/auth/models"
	"mango_commerce/internal/api/middleware"
	reporthdl "mango_commerce/internal/api/report/handler"
	apirouter "mango_commerce/internal/api/router"
)

// Register đăng ký các route báo cáo lên v1.
// Admin và staff cùng gọi một endpoint, biến thể kết quả chọn theo role trong handler.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("failed to create report handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware()
	reportChain := []fiber.Handler{authOnlyMiddleware, middleware.RequireRoles(models.RoleAdmin, models.RoleStaff)}

	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/dashboard", reportChain, reportHandler.HandleDashboard)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/sales-today", reportChain, reportHandler.HandleSalesToday)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/stall-rollup", reportChain, reportHandler.HandleStallRollup)
	return nil
}
