// Package models - model người đăng ký nhận tin.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber người đăng ký nhận tin từ storefront.
// Email và Phone dùng sparse unique index: mỗi giá trị chỉ đăng ký một lần,
// nhưng bản ghi chỉ có một trong hai trường vẫn hợp lệ.
type Subscriber struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`              // ID trong MongoDB
	Email     string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"` // Email đăng ký
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"` // Số điện thoại đăng ký
	Source    string             `json:"source" bson:"source"`                           // Nguồn đăng ký (storefront, gian hàng...)
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`                     // Thời gian tạo
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`                     // Thời gian cập nhật
}
