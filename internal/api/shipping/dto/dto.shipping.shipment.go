// Package shippingdto - DTO trao đổi với đối tác vận chuyển.
package shippingdto

// ShipmentItem một dòng hàng gửi sang đối tác vận chuyển
type ShipmentItem struct {
	Name     string  `json:"name"`     // Tên sản phẩm
	SKU      string  `json:"sku"`      // Mã sản phẩm (dùng ID catalog)
	Quantity int64   `json:"units"`    // Số lượng
	Price    float64 `json:"selling_price"` // Đơn giá
}

// ShipmentRequest yêu cầu tạo vận đơn
type ShipmentRequest struct {
	OrderID       string         `json:"order_id"`       // Mã đơn hàng nội bộ
	CustomerName  string         `json:"customer_name"`  // Tên người nhận
	Phone         string         `json:"phone"`          // Số điện thoại người nhận
	Address       string         `json:"address"`        // Địa chỉ giao
	PaymentMethod string         `json:"payment_method"` // COD | Prepaid
	Weight        float64        `json:"weight"`         // Trọng lượng kiện hàng
	Items         []ShipmentItem `json:"order_items"`    // Danh sách hàng
}

// ShipmentResult kết quả tạo vận đơn từ đối tác
type ShipmentResult struct {
	PartnerOrderID string `json:"order_id"`     // Mã đơn phía đối tác
	TrackingCode   string `json:"awb_code"`     // Mã vận đơn để tra cứu
	Status         string `json:"status"`       // Trạng thái ban đầu phía đối tác
}

// loginRequest thông tin đăng nhập đối tác
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse phản hồi đăng nhập, chứa bearer token
type LoginResponse struct {
	Token string `json:"token"`
}
