// Package initsvc chứa InitService dùng để khởi tạo dữ liệu ban đầu
// (tài khoản admin, khung giờ giao hàng, template mặt hàng gian).
// Tách ra package riêng để tránh import cycle giữa các domain service.
package initsvc

import (
	"context"

	"github.com/sirupsen/logrus"

	authdto "mango_commerce/internal/api/auth/dto"
	authmodels "mango_commerce/internal/api/auth/models"
	authsvc "mango_commerce/internal/api/auth/service"
	ordermodels "mango_commerce/internal/api/order/models"
	ordersvc "mango_commerce/internal/api/order/service"
	stallmodels "mango_commerce/internal/api/stall/models"
	stallsvc "mango_commerce/internal/api/stall/service"
	"mango_commerce/internal/global"
	"mango_commerce/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitService khởi tạo dữ liệu mặc định cho hệ thống
type InitService struct {
	userService  *authsvc.UserService
	slotService  *ordersvc.SlotService
	mangoService *stallsvc.StallMangoService
}

// NewInitService tạo mới InitService
func NewInitService() (*InitService, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	slotService, err := ordersvc.NewSlotService()
	if err != nil {
		return nil, err
	}
	mangoService, err := stallsvc.NewStallMangoService()
	if err != nil {
		return nil, err
	}
	return &InitService{
		userService:  userService,
		slotService:  slotService,
		mangoService: mangoService,
	}, nil
}

// InitAdminAccount tạo tài khoản admin đầu tiên từ ADMIN_PHONE / ADMIN_PASSWORD.
// Bỏ qua nếu thiếu config hoặc đã có admin trong hệ thống.
func (s *InitService) InitAdminAccount(ctx context.Context) error {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	if cfg.AdminPhone == "" || cfg.AdminPassword == "" {
		log.Info("ADMIN_PHONE / ADMIN_PASSWORD chưa được cấu hình, bỏ qua tạo admin mặc định")
		return nil
	}

	exists, err := s.userService.DocumentExists(ctx, bson.M{"role": authmodels.RoleAdmin})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	admin, err := s.userService.Create(ctx, &authdto.UserCreateInput{
		Name:     "Administrator",
		Phone:    cfg.AdminPhone,
		Password: cfg.AdminPassword,
		Role:     authmodels.RoleAdmin,
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"user_id": admin.ID.Hex(),
		"phone":   admin.Phone,
	}).Info("👤 [AUTH] Đã tạo tài khoản admin mặc định")
	return nil
}

// InitDefaultSlots tạo các khung giờ giao hàng mẫu khi chạy INITMODE.
// Chỉ seed khi collection slots còn trống để không ghi đè dữ liệu admin đã sửa.
func (s *InitService) InitDefaultSlots(ctx context.Context) error {
	count, err := s.slotService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	slots := []ordermodels.Slot{
		{Label: "Sáng 8h-11h", StartTime: "08:00", EndTime: "11:00", MaxOrders: 30, IsEnabled: true},
		{Label: "Chiều 14h-17h", StartTime: "14:00", EndTime: "17:00", MaxOrders: 30, IsEnabled: true},
		{Label: "Tối 18h-21h", StartTime: "18:00", EndTime: "21:00", MaxOrders: 20, IsEnabled: true},
	}
	if _, err := s.slotService.InsertMany(ctx, slots); err != nil {
		return err
	}

	logger.GetAppLogger().Infof("Đã seed %d khung giờ giao hàng mặc định", len(slots))
	return nil
}

// InitMangoTemplates tạo các template mặt hàng xoài toàn cục khi chạy INITMODE.
// Gian hàng mới sẽ được nhân bản các template này làm mặt hàng khởi điểm.
func (s *InitService) InitMangoTemplates(ctx context.Context) error {
	count, err := s.mangoService.CountDocuments(ctx, bson.M{"isGlobalTemplate": true})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	templates := []stallmodels.StallMango{
		{Variety: "Cát Hòa Lộc", RipeningType: "Chín cây", Price: 85000, PriceUnit: "kg", QualityGrade: "A", Status: "available", IsGlobalTemplate: true},
		{Variety: "Cát Chu", RipeningType: "Ủ tự nhiên", Price: 55000, PriceUnit: "kg", QualityGrade: "A", Status: "available", IsGlobalTemplate: true},
		{Variety: "Keo", RipeningType: "Xanh", Price: 30000, PriceUnit: "kg", QualityGrade: "B", Status: "available", IsGlobalTemplate: true},
	}
	if _, err := s.mangoService.InsertMany(ctx, templates); err != nil {
		return err
	}

	logger.GetAppLogger().Infof("Đã seed %d template mặt hàng xoài", len(templates))
	return nil
}
