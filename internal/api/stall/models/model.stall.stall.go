// Package models - model gian hàng và dữ liệu CRM tại gian hàng.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái hoạt động của gian hàng
const (
	StallStatusActive   = "Active"
	StallStatusInactive = "Inactive"
)

// Stall gian hàng bán xoài trực tiếp, mỗi gian có một tài khoản stall_owner vận hành.
// IsLocked chặn mọi thao tác ghi của chủ gian, admin không bị ảnh hưởng.
type Stall struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`  // ID của stall trong MongoDB
	StallName   string             `json:"stallName" bson:"stallName"`         // Tên gian hàng
	StallID     string             `json:"stallId" bson:"stallId" index:"unique"` // Mã gian hàng duy nhất
	OwnerName   string             `json:"ownerName" bson:"ownerName"`         // Tên chủ gian
	OwnerMobile string             `json:"ownerMobile" bson:"ownerMobile"`     // Số điện thoại chủ gian (dùng làm tài khoản đăng nhập)
	Location    string             `json:"location" bson:"location"`           // Địa điểm đặt gian
	Type        string             `json:"type" bson:"type"`                   // Loại gian (chợ, hội chợ, lề đường)
	StartDate   int64              `json:"startDate" bson:"startDate"`         // Ngày bắt đầu hoạt động (unix milli)
	EndDate     int64              `json:"endDate,omitempty" bson:"endDate,omitempty"` // Ngày kết thúc (0 = chưa định)
	Status      string             `json:"status" bson:"status" default:"Active"` // Active | Inactive
	IsLocked    bool               `json:"isLocked" bson:"isLocked"`           // Khóa thao tác của chủ gian
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`         // Thời gian tạo
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`         // Thời gian cập nhật
}
