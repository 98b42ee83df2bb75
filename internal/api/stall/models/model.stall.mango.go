package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StallMango một mặt hàng xoài tại gian hàng, hoặc một template toàn cục.
// IsGlobalTemplate và Stall loại trừ lẫn nhau: template không thuộc gian nào,
// còn mặt hàng của gian luôn tham chiếu về gian đó. Khi admin tạo gian mới,
// các template được nhân bản thành mặt hàng khởi điểm của gian.
type StallMango struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID trong MongoDB
	Variety          string             `json:"variety" bson:"variety"`            // Giống xoài
	RipeningType     string             `json:"ripeningType" bson:"ripeningType"`  // Cách ủ chín (tự nhiên, giấm...)
	Price            float64            `json:"price" bson:"price"`                // Giá bán tại gian
	PriceUnit        string             `json:"priceUnit" bson:"priceUnit"`        // Đơn vị giá (kg, thùng)
	Quantity         int64              `json:"quantity" bson:"quantity"`          // Tồn kho tại gian
	QualityGrade     string             `json:"qualityGrade" bson:"qualityGrade"`  // Phân hạng chất lượng
	Status           string             `json:"status" bson:"status"`              // Trạng thái bày bán
	IsGlobalTemplate bool               `json:"isGlobalTemplate" bson:"isGlobalTemplate"` // Template toàn cục
	Stall            primitive.ObjectID `json:"stall,omitempty" bson:"stall,omitempty" index:"single:1"` // Gian hàng sở hữu (rỗng với template)
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`        // Thời gian tạo
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`        // Thời gian cập nhật
}
