// Package reportdto - các kiểu dữ liệu trả về của domain report.
// Mỗi role có một kiểu riêng: biến thể staff không mang bất kỳ trường doanh thu nào,
// tính ngay tại tầng service thay vì xóa trường lúc serialize.
package reportdto

// DailyOrderPoint một điểm trong chuỗi xu hướng đơn hàng theo ngày (biến thể admin)
type DailyOrderPoint struct {
	Date    string  `json:"date"`    // Ngày (YYYY-MM-DD)
	Count   int64   `json:"count"`   // Số đơn trong ngày
	Revenue float64 `json:"revenue"` // Doanh thu trong ngày
}

// DailyOrderCountPoint điểm xu hướng không kèm doanh thu (biến thể staff)
type DailyOrderCountPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// ProductStat thống kê theo sản phẩm kèm doanh thu (biến thể admin)
type ProductStat struct {
	Name     string  `json:"name"`     // Tên sản phẩm
	Quantity int64   `json:"quantity"` // Tổng số lượng bán
	Revenue  float64 `json:"revenue"`  // Tổng doanh thu
}

// ProductQuantityStat thống kê theo sản phẩm chỉ có số lượng (biến thể staff)
type ProductQuantityStat struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// AdminDashboardStats số liệu dashboard đầy đủ cho admin
type AdminDashboardStats struct {
	TotalOrders       int64                 `json:"totalOrders"`       // Tổng số đơn toàn thời gian
	TodayOrders       int64                 `json:"todayOrders"`       // Số đơn hôm nay
	StatusCounts      map[string]int64      `json:"statusCounts"`      // Số đơn theo trạng thái
	PaymentModeCounts map[string]int64      `json:"paymentModeCounts"` // Số đơn theo phương thức thanh toán
	PaymentModeBoxes  map[string]int64      `json:"paymentModeBoxes"`  // Tổng số thùng theo phương thức thanh toán
	TotalRevenue      float64               `json:"totalRevenue"`      // Doanh thu toàn thời gian (trừ đơn hủy)
	TodayRevenue      float64               `json:"todayRevenue"`      // Doanh thu hôm nay (trừ đơn hủy)
	AvgOrderValue     float64               `json:"avgOrderValue"`     // Giá trị đơn trung bình
	WeeklyOrders      []DailyOrderPoint     `json:"weeklyOrders"`      // Xu hướng theo ngày (7 ngày hoặc khoảng tùy chọn)
	ProductBreakdown  []ProductStat         `json:"productBreakdown"`  // Top sản phẩm theo số lượng
}

// StaffDashboardStats số liệu dashboard cho staff, không có trường doanh thu
type StaffDashboardStats struct {
	TotalOrders       int64                  `json:"totalOrders"`
	TodayOrders       int64                  `json:"todayOrders"`
	StatusCounts      map[string]int64       `json:"statusCounts"`
	PaymentModeCounts map[string]int64       `json:"paymentModeCounts"`
	PaymentModeBoxes  map[string]int64       `json:"paymentModeBoxes"`
	WeeklyOrders      []DailyOrderCountPoint `json:"weeklyOrders"`
	ProductBreakdown  []ProductQuantityStat  `json:"productBreakdown"`
}
