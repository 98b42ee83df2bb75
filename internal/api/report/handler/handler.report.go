// Package reporthdl - handler báo cáo, chọn biến thể kết quả theo role người gọi.
package reporthdl

import (
	"fmt"
	"strconv"

	authmodels "mango_commerce/internal/api/auth/models"
	basehdl "mango_commerce/internal/api/base/handler"
	reportsvc "mango_commerce/internal/api/report/service"
	"mango_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
)

// ReportHandler xử lý các request báo cáo
type ReportHandler struct {
	reportService *reportsvc.ReportService
}

// NewReportHandler tạo mới ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}
	return &ReportHandler{reportService: reportService}, nil
}

// callerRole lấy role của người gọi từ context (AuthMiddleware đã set)
func callerRole(c fiber.Ctx) (string, error) {
	user, ok := c.Locals("user").(authmodels.User)
	if !ok {
		return "", common.ErrTokenMissing
	}
	return user.Role, nil
}

// HandleDashboard trả về số liệu dashboard.
// Staff nhận biến thể không có doanh thu, admin nhận đầy đủ.
// Query start/end (unix milli) giới hạn chuỗi xu hướng, mặc định 7 ngày gần nhất.
func (h *ReportHandler) HandleDashboard(c fiber.Ctx) error {
	role, err := callerRole(c)
	if err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}

	start, _ := strconv.ParseInt(c.Query("start", "0"), 10, 64)
	end, _ := strconv.ParseInt(c.Query("end", "0"), 10, 64)

	if role == authmodels.RoleStaff {
		stats, err := h.reportService.DashboardStaff(c.Context(), start, end)
		basehdl.WriteResponse(c, stats, err)
		return nil
	}
	stats, err := h.reportService.DashboardAdmin(c.Context(), start, end)
	basehdl.WriteResponse(c, stats, err)
	return nil
}

// HandleSalesToday trả về báo cáo bán hàng trong ngày theo sản phẩm
func (h *ReportHandler) HandleSalesToday(c fiber.Ctx) error {
	role, err := callerRole(c)
	if err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}

	if role == authmodels.RoleStaff {
		rows, err := h.reportService.SalesTodayStaff(c.Context())
		basehdl.WriteResponse(c, rows, err)
		return nil
	}
	rows, err := h.reportService.SalesToday(c.Context())
	basehdl.WriteResponse(c, rows, err)
	return nil
}

// HandleStallRollup trả về tổng hợp bán hàng tại gian theo cửa sổ (query window)
func (h *ReportHandler) HandleStallRollup(c fiber.Ctx) error {
	role, err := callerRole(c)
	if err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}

	window := c.Query("window", "today")
	if role == authmodels.RoleStaff {
		rollup, err := h.reportService.StallRollupStaff(c.Context(), window)
		basehdl.WriteResponse(c, rollup, err)
		return nil
	}
	rollup, err := h.reportService.StallRollup(c.Context(), window)
	basehdl.WriteResponse(c, rollup, err)
	return nil
}
