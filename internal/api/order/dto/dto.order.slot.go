package orderdto

// SlotCreateInput dữ liệu đầu vào để tạo khung giờ giao hàng
type SlotCreateInput struct {
	Label         string `json:"label" validate:"required,no_xss"`
	StartTime     string `json:"startTime" validate:"required"`
	EndTime       string `json:"endTime" validate:"required"`
	MaxOrders     int64  `json:"maxOrders" validate:"gte=0"`
	CurrentOrders int64  `json:"currentOrders" validate:"gte=0"`
	IsEnabled     *bool  `json:"isEnabled" validate:"omitempty"`
}

// SlotUpdateInput dữ liệu đầu vào để cập nhật khung giờ giao hàng
type SlotUpdateInput struct {
	Label         string `json:"label" validate:"omitempty,no_xss"`
	StartTime     string `json:"startTime" validate:"omitempty"`
	EndTime       string `json:"endTime" validate:"omitempty"`
	MaxOrders     *int64 `json:"maxOrders" validate:"omitempty,gte=0"`
	CurrentOrders *int64 `json:"currentOrders" validate:"omitempty,gte=0"`
	IsEnabled     *bool  `json:"isEnabled" validate:"omitempty"`
}
