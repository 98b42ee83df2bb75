package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StallSale một lần bán hàng tại gian, nguồn số liệu cho báo cáo gian hàng.
type StallSale struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID trong MongoDB
	Stall    primitive.ObjectID `json:"stall" bson:"stall" index:"single:1"` // Gian hàng bán
	Mango    primitive.ObjectID `json:"mango,omitempty" bson:"mango,omitempty"` // Mặt hàng được bán (nếu xác định)
	Variety  string             `json:"variety,omitempty" bson:"variety,omitempty"` // Giống xoài tại thời điểm bán
	Mobile   string             `json:"mobile" bson:"mobile"`              // Số điện thoại khách
	Quantity int64              `json:"quantity" bson:"quantity"`          // Số lượng bán
	Price    float64            `json:"price" bson:"price"`                // Đơn giá tại thời điểm bán
	Amount   float64            `json:"amount" bson:"amount"`              // Thành tiền
	SoldAt   int64              `json:"soldAt" bson:"soldAt" index:"single:1"` // Thời điểm bán (unix milli)
	CreatedAt int64             `json:"createdAt" bson:"createdAt"`        // Thời gian tạo
	UpdatedAt int64             `json:"updatedAt" bson:"updatedAt"`        // Thời gian cập nhật
}
