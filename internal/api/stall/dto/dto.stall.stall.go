// Package stalldto - DTO cho domain stall.
package stalldto

// StallCreateInput admin tạo gian hàng mới kèm tài khoản chủ gian
type StallCreateInput struct {
	StallName     string `json:"stallName" validate:"required,no_xss"`
	StallID       string `json:"stallId" validate:"required,no_xss"`
	OwnerName     string `json:"ownerName" validate:"required,no_xss"`
	OwnerMobile   string `json:"ownerMobile" validate:"required,mobile"`
	OwnerPassword string `json:"ownerPassword" validate:"required,strong_password"`
	Location      string `json:"location" validate:"omitempty,no_xss"`
	Type          string `json:"type" validate:"omitempty,no_xss"`
	StartDate     int64  `json:"startDate" validate:"omitempty,gte=0"`
	EndDate       int64  `json:"endDate" validate:"omitempty,gte=0"`
	Status        string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// StallUpdateInput admin cập nhật thông tin gian hàng
type StallUpdateInput struct {
	StallName string `json:"stallName" validate:"omitempty,no_xss"`
	OwnerName string `json:"ownerName" validate:"omitempty,no_xss"`
	Location  string `json:"location" validate:"omitempty,no_xss"`
	Type      string `json:"type" validate:"omitempty,no_xss"`
	StartDate *int64 `json:"startDate" validate:"omitempty,gte=0"`
	EndDate   *int64 `json:"endDate" validate:"omitempty,gte=0"`
	Status    string `json:"status" validate:"omitempty,oneof=Active Inactive"`
	IsLocked  *bool  `json:"isLocked" validate:"omitempty"`
}
