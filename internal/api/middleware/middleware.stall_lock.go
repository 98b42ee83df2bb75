package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	authmodels "mango_commerce/internal/api/auth/models"
	stallsvc "mango_commerce/internal/api/stall/service"
	"mango_commerce/internal/common"
	"mango_commerce/internal/logger"
)

var (
	stallLockServiceOnce sync.Once
	stallLockService     *stallsvc.StallService
)

func getStallLockService() *stallsvc.StallService {
	stallLockServiceOnce.Do(func() {
		service, err := stallsvc.NewStallService()
		if err != nil {
			panic(err)
		}
		stallLockService = service
	})
	return stallLockService
}

// StallLockMiddleware chặn thao tác ghi của chủ gian khi gian đang bị khóa.
// Phải đứng sau AuthMiddleware trong chain. Các role khác đi qua không bị kiểm tra,
// admin vẫn thao tác được trên gian bị khóa.
func StallLockMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		user, ok := c.Locals("user").(authmodels.User)
		if !ok {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		if user.Role != authmodels.RoleStallOwner {
			return c.Next()
		}
		if user.AssignedStall.IsZero() {
			HandleErrorResponse(c, common.ErrNoAssignedStall)
			return nil
		}

		stall, err := getStallLockService().BaseServiceMongoImpl.FindOneById(c.Context(), user.AssignedStall)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}
		if stall.IsLocked {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":  user.ID.Hex(),
				"stall_id": stall.ID.Hex(),
				"path":     c.Path(),
			}).Warn("🏪 [STALL] Chặn thao tác vì gian hàng đang bị khóa")
			HandleErrorResponse(c, common.ErrStallLocked)
			return nil
		}

		return c.Next()
	}
}
