// Package models - model sản phẩm (Product) thuộc domain catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceHistoryEntry một lần thay đổi giá của sản phẩm
type PriceHistoryEntry struct {
	Price     float64 `json:"price" bson:"price"`         // Giá mới sau thay đổi
	ChangedAt int64   `json:"changedAt" bson:"changedAt"` // Thời điểm thay đổi (unix milli)
}

// Product định nghĩa mô hình sản phẩm xoài bán trên storefront.
// Stock được trừ nguyên tử khi tạo đơn, không bao giờ âm.
// IsDeleted là soft-delete: sản phẩm ẩn khỏi storefront nhưng vẫn giữ cho đơn cũ.
type Product struct {
	ID           primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"` // ID của product trong MongoDB
	Name         string              `json:"name" bson:"name" index:"text"`     // Tên hiển thị, ví dụ "Alphonso 5kg box"
	Variety      string              `json:"variety" bson:"variety"`            // Giống xoài
	Weight       string              `json:"weight" bson:"weight"`              // Mô tả trọng lượng hiển thị
	Price        float64             `json:"price" bson:"price"`                // Giá bán hiện tại
	Stock        int64               `json:"stock" bson:"stock"`                // Tồn kho hiện tại
	IsActive     bool                `json:"isActive" bson:"isActive"`          // Còn bán trên storefront
	PriceHistory []PriceHistoryEntry `json:"priceHistory" bson:"priceHistory"`  // Lịch sử thay đổi giá
	IsDeleted    bool                `json:"-" bson:"isDeleted"`                // Soft-delete
	CreatedAt    int64               `json:"createdAt" bson:"createdAt"`        // Thời gian tạo
	UpdatedAt    int64               `json:"updatedAt" bson:"updatedAt"`        // Thời gian cập nhật
}
