package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"mango_commerce/config"
	authmodels "mango_commerce/internal/api/auth/models"
	catalogmodels "mango_commerce/internal/api/catalog/models"
	ordermodels "mango_commerce/internal/api/order/models"
	stallmodels "mango_commerce/internal/api/stall/models"
	subscribermodels "mango_commerce/internal/api/subscriber/models"
	webhookmodels "mango_commerce/internal/api/webhook/models"
	"mango_commerce/internal/database"
	"mango_commerce/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, mobile)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	ctx := context.TODO()
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Products), catalogmodels.Product{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Orders), ordermodels.Order{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Slots), ordermodels.Slot{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Stalls), stallmodels.Stall{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.StallMangoes), stallmodels.StallMango{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.StallCustomers), stallmodels.StallCustomer{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.StallSales), stallmodels.StallSale{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Subscribers), subscribermodels.Subscriber{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.WebhookLogs), webhookmodels.WebhookLog{})
}
