package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	models "mango_commerce/internal/api/auth/models"
	authsvc "mango_commerce/internal/api/auth/service"
	"mango_commerce/internal/common"
	"mango_commerce/internal/logger"
	"mango_commerce/internal/utility"
)

// AuthManager quản lý xác thực và phân quyền người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	newManager.UserCRUD = userService

	// Cache user theo token 5 phút để giảm số lần query DB khi xác thực
	newManager.Cache = utility.NewCache(5*time.Minute, 10*time.Minute)

	return newManager, nil
}

// resolveUserByToken tìm user theo token, ưu tiên cache trước khi query DB.
func (am *AuthManager) resolveUserByToken(token string) (models.User, error) {
	cacheKey := "auth_token:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(models.User), nil
	}

	user, err := am.UserCRUD.FindOne(context.Background(), bson.M{"token": token}, nil)
	if err != nil {
		return models.User{}, err
	}

	am.Cache.Set(cacheKey, user)
	return user, nil
}

// InvalidateToken xóa token khỏi cache (gọi khi logout hoặc đổi mật khẩu)
func (am *AuthManager) InvalidateToken(token string) {
	am.Cache.Delete("auth_token:" + token)
}

// bearerToken tách token từ header Authorization
func bearerToken(c fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", common.ErrTokenMissing
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", common.ErrTokenInvalid
	}
	return parts[1], nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// Xác thực bearer token bằng cách đối chiếu với token đang lưu trên user document,
// từ chối tài khoản bị vô hiệu hóa, và lưu user vào context cho các handler phía sau.
func AuthMiddleware() fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		token, err := bearerToken(c)
		if err != nil {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing or malformed Authorization header")
			HandleErrorResponse(c, err)
			return nil
		}

		user, err := authManager.resolveUserByToken(token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra tài khoản có bị vô hiệu hóa không
		if user.Status == models.UserStatusDisabled {
			HandleErrorResponse(c, common.ErrUserDisabled)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		return c.Next()
	}
}

// RequireRoles middleware kiểm tra user có một trong các role yêu cầu.
// Phải đứng sau AuthMiddleware trong chain (cần Locals "user").
func RequireRoles(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		if !utility.Contains(roles, user.Role) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":        user.ID.Hex(),
				"role":           user.Role,
				"required_roles": roles,
				"path":           c.Path(),
			}).Warn("❌ [AUTH] User does not have required role")
			HandleErrorResponse(c, common.ErrForbidden)
			return nil
		}

		return c.Next()
	}
}
