// Package ordersvc - Test luật tiến triển trạng thái đơn hàng từ webhook vận chuyển.
package ordersvc

import (
	"testing"

	models "mango_commerce/internal/api/order/models"
)

func TestShouldApplyStatus_ForwardOnly(t *testing.T) {
	cases := []struct {
		current string
		next    string
		want    bool
	}{
		// Tiến về phía trước được áp
		{models.OrderStatusPending, models.OrderStatusConfirmed, true},
		{models.OrderStatusConfirmed, models.OrderStatusOutForDelivery, true},
		{models.OrderStatusOutForDelivery, models.OrderStatusDelivered, true},
		{models.OrderStatusConfirmed, models.OrderStatusDelivered, true},
		// Lùi lại bị bỏ qua
		{models.OrderStatusOutForDelivery, models.OrderStatusConfirmed, false},
		{models.OrderStatusDelivered, models.OrderStatusOutForDelivery, false},
	}

	for _, c := range cases {
		if got := shouldApplyStatus(c.current, c.next); got != c.want {
			t.Errorf("shouldApplyStatus(%q, %q) = %v, want %v", c.current, c.next, got, c.want)
		}
	}
}

func TestShouldApplyStatus_Idempotent(t *testing.T) {
	// Đối tác gửi lại cùng một trạng thái (retry webhook) thì không ghi lại
	statuses := []string{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusOutForDelivery,
		models.OrderStatusDelivered,
	}
	for _, status := range statuses {
		if shouldApplyStatus(status, status) {
			t.Errorf("gửi lại trạng thái %q phải bị bỏ qua", status)
		}
	}
}

func TestShouldApplyStatus_CancelledAlwaysApplies(t *testing.T) {
	// Cancelled áp được từ mọi trạng thái, kể cả Delivered (RTO sau giao hàng)
	for _, current := range []string{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusOutForDelivery,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		if !shouldApplyStatus(current, models.OrderStatusCancelled) {
			t.Errorf("Cancelled phải được áp từ trạng thái %q", current)
		}
	}
}
