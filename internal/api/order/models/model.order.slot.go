package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Slot khung giờ giao hàng khách chọn khi checkout.
// CurrentOrders do admin tự cập nhật, hệ thống không tự đếm.
type Slot struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của slot trong MongoDB
	Label         string             `json:"label" bson:"label"`                // Nhãn hiển thị, ví dụ "Sáng 8h-11h"
	StartTime     string             `json:"startTime" bson:"startTime"`        // Giờ bắt đầu (HH:mm)
	EndTime       string             `json:"endTime" bson:"endTime"`            // Giờ kết thúc (HH:mm)
	MaxOrders     int64              `json:"maxOrders" bson:"maxOrders"`        // Số đơn tối đa trong khung giờ
	CurrentOrders int64              `json:"currentOrders" bson:"currentOrders"` // Số đơn hiện tại (admin cập nhật tay)
	IsEnabled     bool               `json:"isEnabled" bson:"isEnabled"`        // Còn mở cho khách chọn
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`        // Thời gian tạo
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`        // Thời gian cập nhật
}
