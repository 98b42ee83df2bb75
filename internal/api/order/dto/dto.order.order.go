// Package orderdto - DTO cho domain order.
package orderdto

// CheckoutItemInput một dòng sản phẩm khách đặt
type CheckoutItemInput struct {
	ProductID string  `json:"productId" validate:"required,len=24"` // ID sản phẩm (hex ObjectID)
	Name      string  `json:"name" validate:"required,no_xss"`      // Tên hiển thị
	Quantity  int64   `json:"quantity" validate:"required,gt=0"`    // Số lượng
	Price     float64 `json:"price" validate:"required,gt=0"`       // Đơn giá
}

// CheckoutInput dữ liệu checkout từ storefront.
// Items rỗng bị chặn ở service để trả lỗi nghiệp vụ thay vì lỗi validate chung.
type CheckoutInput struct {
	CustomerName string              `json:"customerName" validate:"required,no_xss"`
	Phone        string              `json:"phone" validate:"required,mobile"`
	Email        string              `json:"email" validate:"omitempty,email"`
	Address      string              `json:"address" validate:"required,no_xss"`
	Items        []CheckoutItemInput `json:"items" validate:"omitempty,dive"`
	PaymentMode  string              `json:"paymentMode" validate:"omitempty,oneof=cod online"`
	SlotLabel    string              `json:"slotLabel" validate:"omitempty,no_xss"`
}

// PaymentVerifyInput callback xác minh thanh toán online.
// Signature là HMAC-SHA256 của "orderId|paymentId" ký bằng bí mật gateway.
type PaymentVerifyInput struct {
	OrderID   string        `json:"orderId" validate:"required"`   // Mã order phía gateway
	PaymentID string        `json:"paymentId" validate:"required"` // Mã giao dịch phía gateway
	Signature string        `json:"signature" validate:"required"` // Chữ ký HMAC hex
	Order     CheckoutInput `json:"order" validate:"required"`     // Nội dung đơn hàng cần ghi nhận
}

// OrderStatusUpdateInput admin cập nhật trạng thái đơn hàng
type OrderStatusUpdateInput struct {
	Status string `json:"status" validate:"required"`
}
