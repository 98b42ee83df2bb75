// Package catalogdto - DTO cho domain catalog.
package catalogdto

// ProductCreateInput dữ liệu đầu vào để tạo sản phẩm mới
type ProductCreateInput struct {
	Name     string  `json:"name" validate:"required,no_xss"`    // Tên sản phẩm
	Variety  string  `json:"variety" validate:"omitempty,no_xss"` // Giống xoài
	Weight   string  `json:"weight" validate:"omitempty"`         // Mô tả trọng lượng
	Price    float64 `json:"price" validate:"required,gt=0"`      // Giá bán
	Stock    int64   `json:"stock" validate:"gte=0"`              // Tồn kho ban đầu
	IsActive *bool   `json:"isActive" validate:"omitempty"`       // Mặc định true nếu không truyền
}

// ProductUpdateInput dữ liệu đầu vào để cập nhật sản phẩm
type ProductUpdateInput struct {
	Name     string   `json:"name" validate:"omitempty,no_xss"`
	Variety  string   `json:"variety" validate:"omitempty,no_xss"`
	Weight   string   `json:"weight" validate:"omitempty"`
	Price    *float64 `json:"price" validate:"omitempty,gt=0"`
	Stock    *int64   `json:"stock" validate:"omitempty,gte=0"`
	IsActive *bool    `json:"isActive" validate:"omitempty"`
}
