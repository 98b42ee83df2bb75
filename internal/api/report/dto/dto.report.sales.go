package reportdto

// AdminSalesRow một dòng báo cáo bán hàng trong ngày (biến thể admin, có doanh thu)
type AdminSalesRow struct {
	ProductID       string  `json:"productId"`       // ID sản phẩm
	Name            string  `json:"name"`            // Tên sản phẩm
	SoldToday       int64   `json:"soldToday"`       // Số lượng bán hôm nay (trừ đơn hủy)
	CancelledToday  int64   `json:"cancelledToday"`  // Số lượng trong các đơn hủy hôm nay
	CurrentStock    int64   `json:"currentStock"`    // Tồn kho hiện tại
	StartOfDayStock int64   `json:"startOfDayStock"` // Tồn đầu ngày = tồn hiện tại + đã bán hôm nay
	Revenue         float64 `json:"revenue"`         // Doanh thu hôm nay của sản phẩm
}

// StaffSalesRow dòng báo cáo bán hàng cho staff, không có doanh thu
type StaffSalesRow struct {
	ProductID       string `json:"productId"`
	Name            string `json:"name"`
	SoldToday       int64  `json:"soldToday"`
	CancelledToday  int64  `json:"cancelledToday"`
	CurrentStock    int64  `json:"currentStock"`
	StartOfDayStock int64  `json:"startOfDayStock"`
}

// AdminStallRollupRow tổng hợp theo gian hàng (biến thể admin)
type AdminStallRollupRow struct {
	StallID   string  `json:"stallId"`   // ID gian hàng
	StallName string  `json:"stallName"` // Tên gian hàng
	Units     int64   `json:"units"`     // Tổng số lượng bán trong cửa sổ
	Revenue   float64 `json:"revenue"`   // Tổng doanh thu trong cửa sổ
}

// StaffStallRollupRow tổng hợp theo gian hàng cho staff
type StaffStallRollupRow struct {
	StallID   string `json:"stallId"`
	StallName string `json:"stallName"`
	Units     int64  `json:"units"`
}

// AdminVarietyRollupRow tổng hợp theo giống xoài (biến thể admin)
type AdminVarietyRollupRow struct {
	Variety         string  `json:"variety"`         // Giống xoài
	Units           int64   `json:"units"`           // Tổng số lượng bán trong cửa sổ
	Revenue         float64 `json:"revenue"`         // Tổng doanh thu trong cửa sổ
	CurrentQuantity int64   `json:"currentQuantity"` // Tồn hiện tại của giống này trên mọi gian
}

// StaffVarietyRollupRow tổng hợp theo giống xoài cho staff
type StaffVarietyRollupRow struct {
	Variety         string `json:"variety"`
	Units           int64  `json:"units"`
	CurrentQuantity int64  `json:"currentQuantity"`
}

// AdminStallRollup báo cáo gian hàng đầy đủ cho admin
type AdminStallRollup struct {
	Window    string                  `json:"window"` // today | week | month | season
	Stalls    []AdminStallRollupRow   `json:"stalls"`
	Varieties []AdminVarietyRollupRow `json:"varieties"`
}

// StaffStallRollup báo cáo gian hàng cho staff, không có doanh thu
type StaffStallRollup struct {
	Window    string                  `json:"window"`
	Stalls    []StaffStallRollupRow   `json:"stalls"`
	Varieties []StaffVarietyRollupRow `json:"varieties"`
}
