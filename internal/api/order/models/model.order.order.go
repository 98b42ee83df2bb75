// Package models - model đơn hàng và khung giờ giao thuộc domain order.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái đơn hàng, sắp theo thứ tự tiến triển giao hàng.
// Webhook vận chuyển chỉ được phép đẩy trạng thái tiến lên (hoặc sang Cancelled).
const (
	OrderStatusPending        = "Pending"
	OrderStatusConfirmed      = "Confirmed"
	OrderStatusOutForDelivery = "Out for delivery"
	OrderStatusDelivered      = "Delivered"
	OrderStatusCancelled      = "Cancelled"
)

// OrderStatusSequence thứ tự tiến triển của trạng thái đơn hàng
var OrderStatusSequence = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// OrderStatusIndex trả về vị trí của trạng thái trong chuỗi tiến triển, -1 nếu không hợp lệ
func OrderStatusIndex(status string) int {
	for i, s := range OrderStatusSequence {
		if s == status {
			return i
		}
	}
	return -1
}

// Phương thức và trạng thái thanh toán
const (
	PaymentModeCOD    = "cod"
	PaymentModeOnline = "online"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// OrderItem một dòng sản phẩm trong đơn hàng
type OrderItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"` // ID sản phẩm trong catalog
	Name      string             `json:"name" bson:"name"`           // Tên sản phẩm tại thời điểm đặt
	Quantity  int64              `json:"quantity" bson:"quantity"`   // Số lượng
	Price     float64            `json:"price" bson:"price"`         // Đơn giá tại thời điểm đặt
}

// Order đơn hàng của khách trên storefront
type Order struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`              // ID của order trong MongoDB
	CustomerName  string             `json:"customerName" bson:"customerName"`               // Tên khách hàng
	Phone         string             `json:"phone" bson:"phone"`                             // Số điện thoại nhận hàng
	Email         string             `json:"email,omitempty" bson:"email,omitempty"`         // Email nhận xác nhận (tùy chọn)
	Address       string             `json:"address" bson:"address"`                         // Địa chỉ giao hàng
	Items         []OrderItem        `json:"items" bson:"items"`                             // Danh sách sản phẩm
	TotalAmount   float64            `json:"totalAmount" bson:"totalAmount"`                 // Tổng tiền
	PaymentMode   string             `json:"paymentMode" bson:"paymentMode" default:"online"` // cod | online
	PaymentStatus string             `json:"paymentStatus" bson:"paymentStatus"`             // pending | paid
	PaymentID     string             `json:"paymentId,omitempty" bson:"paymentId,omitempty"` // ID giao dịch từ gateway (online)
	Status        string             `json:"status" bson:"status"`                           // Trạng thái giao hàng
	SlotLabel     string             `json:"slotLabel,omitempty" bson:"slotLabel,omitempty"` // Khung giờ giao khách chọn
	ParcelWeight  float64            `json:"parcelWeight" bson:"parcelWeight"`               // Trọng lượng kiện hàng (đơn vị ước tính)
	PartnerOrderID string            `json:"partnerOrderId,omitempty" bson:"partnerOrderId,omitempty" index:"single:1"` // Mã đơn phía đối tác vận chuyển
	TrackingCode  string             `json:"trackingCode,omitempty" bson:"trackingCode,omitempty" index:"single:1"`     // Mã vận đơn, dùng tra cứu webhook
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`                     // Thời gian tạo
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`                     // Thời gian cập nhật
}
