// Package ordersvc - Test suy ra trọng lượng kiện hàng từ tên sản phẩm.
package ordersvc

import (
	"testing"

	models "mango_commerce/internal/api/order/models"
)

func TestParseItemWeight(t *testing.T) {
	cases := []struct {
		name string
		want float64
	}{
		{"Xoài Cát Hòa Lộc 5kg", 5},
		{"Alphonso 2.5kg box", 2.5},
		{"Combo 10", 10},                        // không có kg, lấy con số trần
		{"Xoài Keo", DefaultItemWeight},         // không có con số
		{"", DefaultItemWeight},                 // tên rỗng
		{"Hộp quà 0kg", DefaultItemWeight},      // số 0 không phải trọng lượng hợp lệ
		{"Xoài 3kg thùng 2 lớp", 3},             // con số gắn kg thắng
		{"Combo 2 hộp 5kg", 5},                  // con số gắn kg thắng dù đứng sau
		{"Thùng 7.5KG xoài tượng", 7.5},         // đơn vị viết hoa
		{"Hộp 6 trái", 6},                       // không có kg, fallback con số trần
	}

	for _, c := range cases {
		if got := ParseItemWeight(c.name); got != c.want {
			t.Errorf("ParseItemWeight(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestComputeParcelWeight(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Xoài Cát 5kg", Quantity: 2},  // 10
		{Name: "Xoài Keo", Quantity: 1},      // 3 (mặc định)
		{Name: "Alphonso 2.5kg", Quantity: 4}, // 10
	}
	if got := ComputeParcelWeight(items); got != 23 {
		t.Errorf("ComputeParcelWeight = %v, want 23", got)
	}

	if got := ComputeParcelWeight(nil); got != 0 {
		t.Errorf("ComputeParcelWeight(nil) = %v, want 0", got)
	}
}
