package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Phân loại khách mua tại gian hàng
const (
	StallCustomerTypeNew     = "New"
	StallCustomerTypeRegular = "Regular"
	StallCustomerTypeVIP     = "VIP"
)

// StallCustomer khách mua tại gian hàng, duy nhất theo cặp (mobile, stall).
// Cùng một số điện thoại ở hai gian khác nhau là hai bản ghi độc lập.
type StallCustomer struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID trong MongoDB
	Name              string             `json:"name" bson:"name"`                  // Tên khách
	Mobile            string             `json:"mobile" bson:"mobile" index:"compound:mobile_stall_unique"` // Số điện thoại khách
	Stall             primitive.ObjectID `json:"stall" bson:"stall" index:"compound:mobile_stall_unique"`   // Gian hàng ghi nhận khách
	Type              string             `json:"type" bson:"type"`                  // New | Regular | VIP
	Address           string             `json:"address,omitempty" bson:"address,omitempty"` // Địa chỉ (tùy chọn)
	Notes             string             `json:"notes,omitempty" bson:"notes,omitempty"`     // Ghi chú của người bán
	TotalPurchases    int64              `json:"totalPurchases" bson:"totalPurchases"`       // Số lần mua đã ghi nhận
	PurchasedQuantity int64              `json:"purchasedQuantity" bson:"purchasedQuantity"` // Tổng số lượng đã mua
	LastPurchaseAt    int64              `json:"lastPurchaseAt,omitempty" bson:"lastPurchaseAt,omitempty"` // Lần mua gần nhất
	CreatedAt         int64              `json:"createdAt" bson:"createdAt"`        // Thời gian tạo
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`        // Thời gian cập nhật
}
