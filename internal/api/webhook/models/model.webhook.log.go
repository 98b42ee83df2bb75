// Package models - model log webhook vận chuyển.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WebhookLog lưu vết mọi lần đối tác vận chuyển gọi webhook, kể cả khi payload hỏng.
// Dùng để đối soát khi trạng thái đơn hàng lệch với hệ thống đối tác.
type WebhookLog struct {
	ID             primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"` // ID của log trong MongoDB
	Source         string                 `json:"source" bson:"source"`              // Nguồn webhook (courier)
	TrackingCode   string                 `json:"trackingCode,omitempty" bson:"trackingCode,omitempty"` // Mã vận đơn trong payload
	StatusKeyword  string                 `json:"statusKeyword,omitempty" bson:"statusKeyword,omitempty"` // Từ khóa trạng thái đối tác gửi
	RequestHeaders map[string]string      `json:"requestHeaders" bson:"requestHeaders"` // Headers của request
	RequestBody    map[string]interface{} `json:"requestBody" bson:"requestBody"`       // Body đã parse (nếu parse được)
	RawBody        string                 `json:"rawBody" bson:"rawBody"`               // Body nguyên văn
	Processed      bool                   `json:"processed" bson:"processed"`           // Đã xử lý thành công
	ProcessError   string                 `json:"processError,omitempty" bson:"processError,omitempty"` // Lỗi khi xử lý
	ProcessedAt    int64                  `json:"processedAt,omitempty" bson:"processedAt,omitempty"`   // Thời điểm xử lý xong
	IPAddress      string                 `json:"ipAddress" bson:"ipAddress"`           // IP nguồn
	UserAgent      string                 `json:"userAgent" bson:"userAgent"`           // User agent nguồn
	ReceivedAt     int64                  `json:"receivedAt" bson:"receivedAt" index:"single:1"` // Thời điểm nhận
	CreatedAt      int64                  `json:"createdAt" bson:"createdAt"`           // Thời gian tạo
	UpdatedAt      int64                  `json:"updatedAt" bson:"updatedAt"`           // Thời gian cập nhật
}
