// Package middleware - Test thu hồi token khỏi cache xác thực.
package middleware

import (
	"testing"
	"time"

	models "mango_commerce/internal/api/auth/models"
	"mango_commerce/internal/utility"
)

func TestInvalidateToken(t *testing.T) {
	am := &AuthManager{Cache: utility.NewCache(5*time.Minute, 10*time.Minute)}
	defer am.Cache.Stop()

	am.Cache.Set("auth_token:tok-cu", models.User{Phone: "0901234567"})
	am.Cache.Set("auth_token:tok-khac", models.User{Phone: "0907654321"})

	am.InvalidateToken("tok-cu")

	// Token đã thu hồi (logout, đổi mật khẩu) không được xác thực tiếp từ cache
	if _, found := am.Cache.Get("auth_token:tok-cu"); found {
		t.Error("token đã thu hồi phải bị xóa khỏi cache xác thực")
	}
	if _, found := am.Cache.Get("auth_token:tok-khac"); !found {
		t.Error("token của phiên khác không được bị ảnh hưởng")
	}
}
