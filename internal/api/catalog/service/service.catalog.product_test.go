// Package catalogsvc - Test điều kiện trừ và kẹp tồn kho.
package catalogsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSufficientStockFilter(t *testing.T) {
	id := primitive.NewObjectID()
	filter := sufficientStockFilter(id, 5)

	if filter["_id"] != id {
		t.Errorf("filter phải khớp đúng _id, got %v", filter["_id"])
	}
	guard, ok := filter["stock"].(bson.M)
	if !ok {
		t.Fatalf("filter phải có điều kiện trên stock, got %v", filter["stock"])
	}
	if guard["$gte"] != int64(5) {
		t.Errorf("trừ tồn kho phải yêu cầu stock >= số lượng, got %v", guard)
	}
}

func TestInsufficientStockFilter(t *testing.T) {
	id := primitive.NewObjectID()
	filter := insufficientStockFilter(id, 5)

	if filter["_id"] != id {
		t.Errorf("filter phải khớp đúng _id, got %v", filter["_id"])
	}
	// Lệnh kẹp về 0 chỉ được chạm vào document thật sự thiếu hàng.
	// Thiếu điều kiện này thì một lần bổ sung tồn kho xen giữa hai bước sẽ bị ghi đè mất.
	guard, ok := filter["stock"].(bson.M)
	if !ok {
		t.Fatalf("filter kẹp phải có điều kiện trên stock, got %v", filter["stock"])
	}
	if guard["$lt"] != int64(5) {
		t.Errorf("filter kẹp phải yêu cầu stock < số lượng, got %v", guard)
	}
}
