// Package webhooksvc - Test ánh xạ trạng thái đối tác vận chuyển.
package webhooksvc

import (
	"testing"

	ordermodels "mango_commerce/internal/api/order/models"
)

func TestMapCourierStatus(t *testing.T) {
	cases := []struct {
		keyword string
		want    string
	}{
		{"PICKED UP", ordermodels.OrderStatusConfirmed},
		{"IN TRANSIT", ordermodels.OrderStatusOutForDelivery},
		{"OUT FOR DELIVERY", ordermodels.OrderStatusOutForDelivery},
		{"UNDELIVERED", ordermodels.OrderStatusOutForDelivery},
		{"DELIVERED", ordermodels.OrderStatusDelivered},
		{"CANCELLED", ordermodels.OrderStatusCancelled},
		{"RTO INITIATED", ordermodels.OrderStatusCancelled},
		{"RTO DELIVERED", ordermodels.OrderStatusCancelled},
		// Đối tác gửi không chuẩn hoa thường và khoảng trắng
		{"delivered", ordermodels.OrderStatusDelivered},
		{"  Picked Up  ", ordermodels.OrderStatusConfirmed},
		// Từ khóa lạ không được ánh xạ
		{"LOST", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := MapCourierStatus(c.keyword); got != c.want {
			t.Errorf("MapCourierStatus(%q) = %q, want %q", c.keyword, got, c.want)
		}
	}
}
