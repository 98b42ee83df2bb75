package main

import (
	"context"

	"mango_commerce/internal/api/initsvc"
	"mango_commerce/internal/global"
	"mango_commerce/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định: tài khoản admin đầu tiên,
// và dữ liệu mẫu (khung giờ giao hàng, template mặt hàng) khi chạy INITMODE.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	ctx := context.Background()

	// 1. Tài khoản admin đầu tiên (từ ADMIN_PHONE / ADMIN_PASSWORD, nếu có)
	if err := initService.InitAdminAccount(ctx); err != nil {
		log.Fatalf("Failed to initialize admin account: %v", err)
	}
	log.Info("✅ [INIT] Admin account checked")

	// 2. Dữ liệu mẫu, chỉ khi bật INITMODE
	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("✅ [INIT] InitDefaultData completed (INITMODE off, skipped sample data)")
		return
	}

	if err := initService.InitDefaultSlots(ctx); err != nil {
		log.Warnf("Failed to seed default slots: %v", err)
	}
	if err := initService.InitMangoTemplates(ctx); err != nil {
		log.Warnf("Failed to seed mango templates: %v", err)
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
