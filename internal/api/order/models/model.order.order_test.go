// Package models - Test thứ tự tiến triển trạng thái đơn hàng.
package models

import (
	"testing"
)

func TestOrderStatusIndex(t *testing.T) {
	cases := []struct {
		status string
		want   int
	}{
		{OrderStatusPending, 0},
		{OrderStatusConfirmed, 1},
		{OrderStatusOutForDelivery, 2},
		{OrderStatusDelivered, 3},
		{OrderStatusCancelled, 4},
		{"Shipped", -1},
		{"confirmed", -1}, // phân biệt hoa thường
		{"", -1},
	}

	for _, c := range cases {
		if got := OrderStatusIndex(c.status); got != c.want {
			t.Errorf("OrderStatusIndex(%q) = %d, want %d", c.status, got, c.want)
		}
	}
}

func TestOrderStatusSequence_Progression(t *testing.T) {
	// Delivered phải đứng sau Out for delivery để webhook không lùi trạng thái
	if OrderStatusIndex(OrderStatusDelivered) <= OrderStatusIndex(OrderStatusOutForDelivery) {
		t.Error("Delivered phải đứng sau Out for delivery trong chuỗi tiến triển")
	}
	if OrderStatusIndex(OrderStatusOutForDelivery) <= OrderStatusIndex(OrderStatusConfirmed) {
		t.Error("Out for delivery phải đứng sau Confirmed trong chuỗi tiến triển")
	}
}
