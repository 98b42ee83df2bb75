package ordersvc

import (
	"regexp"
	"strconv"

	models "mango_commerce/internal/api/order/models"
)

// DefaultItemWeight trọng lượng mặc định khi tên sản phẩm không chứa con số
const DefaultItemWeight = 3.0

var (
	weightKgPattern    = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*kg`)
	weightTokenPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParseItemWeight đọc trọng lượng từ tên hiển thị của sản phẩm.
// Ưu tiên con số gắn đơn vị kg ("Combo 2 hộp 5kg" cho ra 5), không có kg
// thì lấy con số trần đầu tiên, không có con số nào thì dùng mặc định.
func ParseItemWeight(name string) float64 {
	var token string
	if m := weightKgPattern.FindStringSubmatch(name); m != nil {
		token = m[1]
	} else {
		token = weightTokenPattern.FindString(name)
	}
	if token == "" {
		return DefaultItemWeight
	}
	weight, err := strconv.ParseFloat(token, 64)
	if err != nil || weight <= 0 {
		return DefaultItemWeight
	}
	return weight
}

// ComputeParcelWeight tính trọng lượng kiện hàng: trọng lượng từng dòng nhân số lượng rồi cộng dồn
func ComputeParcelWeight(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += ParseItemWeight(item.Name) * float64(item.Quantity)
	}
	return total
}
