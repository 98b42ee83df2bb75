// Package webhookdto - DTO cho webhook trạng thái vận chuyển.
package webhookdto

// CourierStatusRequest payload đối tác vận chuyển gửi khi trạng thái vận đơn thay đổi.
// Đối tác có thể gửi awb hoặc order_id (hoặc cả hai), tra cứu ưu tiên awb trước.
type CourierStatusRequest struct {
	AWB            string `json:"awb"`            // Mã vận đơn
	PartnerOrderID string `json:"order_id"`       // Mã đơn phía đối tác
	CurrentStatus  string `json:"current_status"` // Từ khóa trạng thái, ví dụ "IN TRANSIT"
}
