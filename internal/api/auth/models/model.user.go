// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các vai trò của người dùng trong hệ thống
const (
	RoleAdmin      = "admin"       // Quản trị viên, toàn quyền
	RoleStaff      = "staff"       // Nhân viên vận hành, không xem được doanh thu
	RoleUser       = "user"        // Khách hàng
	RoleStallOwner = "stall_owner" // Chủ sạp, thao tác trên sạp được gán
)

// Trạng thái tài khoản
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// User định nghĩa mô hình người dùng.
// Phone là định danh đăng nhập (unique), Email tùy chọn.
// Token chứa token xác thực mới nhất của người dùng, mỗi lần login sẽ được thay mới.
type User struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password      string             `json:"-" bson:"password,omitempty"`
	Role          string             `json:"role" bson:"role" default:"user"`
	AssignedStall primitive.ObjectID `json:"assignedStall,omitempty" bson:"assignedStall,omitempty"`
	Status        string             `json:"status" bson:"status" default:"active"`
	Token         string             `json:"token,omitempty" bson:"token,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}

// ValidRoles danh sách các role hợp lệ
var ValidRoles = []string{RoleAdmin, RoleStaff, RoleUser, RoleStallOwner}
