// Package ordersvc - Test chữ ký thanh toán HMAC.
package ordersvc

import (
	"testing"
)

func TestComputeSignature_KnownVector(t *testing.T) {
	// Vector tính sẵn: HMAC-SHA256("order_1|pay_1") với khóa "K"
	got := ComputeSignature("K", "order_1", "pay_1")
	want := "269505f59780c3d287e3e3c169475581bfe53dd26582273cad72f9c4f7bf1261"
	if got != want {
		t.Errorf("ComputeSignature sai: got %s, want %s", got, want)
	}
}

func TestVerifySignature_Valid(t *testing.T) {
	sig := ComputeSignature("mango-secret", "ord_42", "pay_42")
	if !VerifySignature("mango-secret", "ord_42", "pay_42", sig) {
		t.Error("VerifySignature phải chấp nhận chữ ký do chính ComputeSignature tạo ra")
	}
}

func TestVerifySignature_MutationFails(t *testing.T) {
	sig := ComputeSignature("mango-secret", "ord_42", "pay_42")

	// Đổi một ký tự bất kỳ trong chữ ký thì phải bị từ chối
	mutated := []byte(sig)
	if mutated[0] == 'a' {
		mutated[0] = 'b'
	} else {
		mutated[0] = 'a'
	}
	if VerifySignature("mango-secret", "ord_42", "pay_42", string(mutated)) {
		t.Error("VerifySignature phải từ chối chữ ký bị sửa một ký tự")
	}

	if VerifySignature("khac-secret", "ord_42", "pay_42", sig) {
		t.Error("VerifySignature phải từ chối khi khóa bí mật khác")
	}
	if VerifySignature("mango-secret", "ord_43", "pay_42", sig) {
		t.Error("VerifySignature phải từ chối khi orderId khác")
	}
	if VerifySignature("mango-secret", "ord_42", "pay_42", "") {
		t.Error("VerifySignature phải từ chối chữ ký rỗng")
	}
}
