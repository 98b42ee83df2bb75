package stalldto

// StallMangoCreateInput tạo mặt hàng xoài tại gian hoặc template toàn cục.
// IsGlobalTemplate true thì không truyền stall, ngược lại stall là bắt buộc
// (với stall_owner hệ thống tự lấy gian được gán, không nhận từ input).
type StallMangoCreateInput struct {
	Variety          string  `json:"variety" validate:"required,no_xss"`
	RipeningType     string  `json:"ripeningType" validate:"omitempty,no_xss"`
	Price            float64 `json:"price" validate:"required,gt=0"`
	PriceUnit        string  `json:"priceUnit" validate:"omitempty,no_xss"`
	Quantity         int64   `json:"quantity" validate:"gte=0"`
	QualityGrade     string  `json:"qualityGrade" validate:"omitempty,no_xss"`
	Status           string  `json:"status" validate:"omitempty,no_xss"`
	IsGlobalTemplate bool    `json:"isGlobalTemplate"`
	Stall            string  `json:"stall" validate:"omitempty,len=24"`
}

// StallMangoUpdateInput cập nhật mặt hàng xoài
type StallMangoUpdateInput struct {
	Variety      string   `json:"variety" validate:"omitempty,no_xss"`
	RipeningType string   `json:"ripeningType" validate:"omitempty,no_xss"`
	Price        *float64 `json:"price" validate:"omitempty,gt=0"`
	PriceUnit    string   `json:"priceUnit" validate:"omitempty,no_xss"`
	Quantity     *int64   `json:"quantity" validate:"omitempty,gte=0"`
	QualityGrade string   `json:"qualityGrade" validate:"omitempty,no_xss"`
	Status       string   `json:"status" validate:"omitempty,no_xss"`
}

// RecordSaleInput ghi nhận một lượt bán tại gian hàng.
// Stall chỉ có nghĩa khi người gọi là admin, chủ gian luôn dùng gian được gán.
type RecordSaleInput struct {
	Mobile            string `json:"mobile" validate:"required,mobile"`
	Name              string `json:"name" validate:"omitempty,no_xss"`
	Address           string `json:"address" validate:"omitempty,no_xss"`
	Notes             string `json:"notes" validate:"omitempty,no_xss"`
	Type              string `json:"type" validate:"omitempty,oneof=New Regular VIP"`
	Stall             string `json:"stall" validate:"omitempty,len=24"`
	Mango             string `json:"mango" validate:"omitempty,len=24"`
	PurchasedQuantity int64  `json:"purchasedQuantity" validate:"gte=0"`
	Price             float64 `json:"price" validate:"omitempty,gte=0"`
}
