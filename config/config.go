package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng:
// cơ sở dữ liệu, bí mật thanh toán, đối tác vận chuyển và email.
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Chế độ khởi tạo dữ liệu mẫu
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật ký JWT
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Payment gateway (ký và xác minh chữ ký callback)
	PaymentKeyID     string `env:"PAYMENT_KEY_ID"`              // Key ID của gateway thanh toán
	PaymentKeySecret string `env:"PAYMENT_KEY_SECRET,required"` // Bí mật dùng để xác minh chữ ký HMAC

	// Fulfillment partner (đối tác vận chuyển)
	ShippingBaseURL  string `env:"SHIPPING_BASE_URL"`                     // Base URL API của đối tác vận chuyển
	ShippingEmail    string `env:"SHIPPING_EMAIL"`                        // Email đăng nhập đối tác
	ShippingPassword string `env:"SHIPPING_PASSWORD"`                     // Mật khẩu đăng nhập đối tác
	ShippingTokenTTL int    `env:"SHIPPING_TOKEN_TTL" envDefault:"216"`   // TTL token đối tác (giờ), mặc định 9 ngày
	WebhookToken     string `env:"COURIER_WEBHOOK_TOKEN"`                 // Shared secret của webhook trạng thái vận chuyển (rỗng = không kiểm tra)
	WebhookLogMaxAge int    `env:"WEBHOOK_LOG_MAX_AGE" envDefault:"30"`   // Số ngày giữ webhook log trước khi worker dọn

	// SMTP (email xác nhận đơn hàng)
	SMTPHost     string `env:"SMTP_HOST"`                              // SMTP server
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`             // SMTP port
	SMTPUser     string `env:"SMTP_USER"`                              // Tài khoản SMTP
	SMTPPassword string `env:"SMTP_PASSWORD"`                          // Mật khẩu SMTP
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"no-reply@mango"`  // Địa chỉ gửi

	// Tài khoản admin khởi tạo (tùy chọn, chỉ tạo khi chưa có admin nào)
	AdminPhone    string `env:"ADMIN_PHONE"`    // Số điện thoại đăng nhập admin đầu tiên
	AdminPassword string `env:"ADMIN_PASSWORD"` // Mật khẩu admin đầu tiên

	// Frontend URL (dùng trong email và CORS dev)
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Dùng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Đi lên từng cấp tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env của môi trường hiện tại
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Dùng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
