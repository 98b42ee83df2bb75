package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"mango_commerce/config"
	"mango_commerce/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users          string // Tên collection cho người dùng
	Products       string // Tên collection cho sản phẩm xoài
	Orders         string // Tên collection cho đơn hàng
	Slots          string // Tên collection cho khung giờ giao hàng
	Stalls         string // Tên collection cho gian hàng
	StallMangoes   string // Tên collection cho tồn kho xoài tại gian hàng
	StallCustomers string // Tên collection cho khách mua tại gian hàng
	StallSales     string // Tên collection cho lượt bán tại gian hàng
	Subscribers    string // Tên collection cho người đăng ký nhận tin
	WebhookLogs    string // Tên collection cho log webhook vận chuyển
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{
	Users:          "users",
	Products:       "products",
	Orders:         "orders",
	Slots:          "slots",
	Stalls:         "stalls",
	StallMangoes:   "stall_mangoes",
	StallCustomers: "stall_customers",
	StallSales:     "stall_sales",
	Subscribers:    "subscribers",
	WebhookLogs:    "webhook_logs",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
