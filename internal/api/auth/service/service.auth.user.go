// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	authdto "mango_commerce/internal/api/auth/dto"
	models "mango_commerce/internal/api/auth/models"
	basesvc "mango_commerce/internal/api/base/service"
	"mango_commerce/internal/common"
	"mango_commerce/internal/global"
	"mango_commerce/internal/logger"
	"mango_commerce/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// issueToken sinh JWT token mới cho user và lưu vào document.
// Mỗi lần login token cũ bị thay thế, các phiên cũ sẽ hết hiệu lực.
func (s *UserService) issueToken(ctx context.Context, user *models.User) (*models.User, error) {
	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	token, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token": token,
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// Register đăng ký tài khoản khách hàng mới.
// Role luôn là "user", muốn role khác phải qua admin.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		Password: hashed,
		Role:     models.RoleUser,
		Status:   models.UserStatusActive,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"user_id": created.ID.Hex(),
		"phone":   created.Phone,
	}).Info("👤 [AUTH] Đăng ký tài khoản mới")

	return s.issueToken(ctx, &created)
}

// Login đăng nhập bằng số điện thoại và mật khẩu.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"phone": input.Phone}, nil)
	if err != nil {
		// Không phân biệt "không tồn tại" với "sai mật khẩu" trong response
		return nil, common.ErrInvalidCredentials
	}

	if err := utility.CheckPassword(user.Password, input.Password); err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"phone": input.Phone,
		}).Warn("❌ [AUTH] Sai mật khẩu")
		return nil, common.ErrInvalidCredentials
	}

	if user.Status == models.UserStatusDisabled {
		return nil, common.ErrUserDisabled
	}

	updatedUser, err := s.issueToken(ctx, &user)
	if err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"user_id": updatedUser.ID.Hex(),
		"role":    updatedUser.Role,
	}).Info("👤 [AUTH] Đăng nhập thành công")

	return updatedUser, nil
}

// Logout đăng xuất người dùng (xóa token hiện tại)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token": "",
		},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// ChangePassword đổi mật khẩu, yêu cầu mật khẩu cũ đúng. Token hiện tại bị thu hồi.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangePasswordInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := utility.CheckPassword(user.Password, input.OldPassword); err != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không đúng", common.StatusUnauthorized, nil)
	}

	hashed, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": hashed,
			"token":    "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// Create tạo người dùng với role chỉ định (chỉ dành cho admin).
// Dùng riêng thay vì CRUD InsertOne vì password cần được băm trước khi lưu.
func (s *UserService) Create(ctx context.Context, input *authdto.UserCreateInput) (*models.User, error) {
	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	status := input.Status
	if status == "" {
		status = models.UserStatusActive
	}

	user := models.User{
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		Password: hashed,
		Role:     role,
		Status:   status,
	}
	if input.AssignedStall != "" {
		stallID, err := primitive.ObjectIDFromHex(input.AssignedStall)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "assignedStall không đúng định dạng ObjectID", common.StatusBadRequest, err)
		}
		user.AssignedStall = stallID
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	return &created, nil
}
