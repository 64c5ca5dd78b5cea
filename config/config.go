package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Chế độ khởi tạo dữ liệu mặc định
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Dashboard / Reporting
	Dashboard_TTLMinutes           int  `env:"DASHBOARD_TTL_MINUTES" envDefault:"60"`            // TTL của snapshot dashboard (phút)
	Dashboard_RefreshMinutes       int  `env:"DASHBOARD_REFRESH_MINUTES" envDefault:"15"`        // Chu kỳ worker kiểm tra staleness (phút)
	Dashboard_StrictPaymentMethods bool `env:"DASHBOARD_STRICT_PAYMENT_METHODS" envDefault:"false"` // true: paymentMethod lạ được gộp vào bucket "other" thay vì bỏ qua

	// SMTP (cảnh báo tồn kho thấp)
	SMTP_Host      string `env:"SMTP_HOST"`                                  // SMTP host (rỗng = tắt cảnh báo email)
	SMTP_Port      int    `env:"SMTP_PORT" envDefault:"587"`                 // SMTP port
	SMTP_Username  string `env:"SMTP_USERNAME"`                              // SMTP username
	SMTP_Password  string `env:"SMTP_PASSWORD"`                              // SMTP password
	SMTP_FromName  string `env:"SMTP_FROM_NAME" envDefault:"Liberty Commerce"` // Tên người gửi
	SMTP_FromEmail string `env:"SMTP_FROM_EMAIL"`                            // Email người gửi
	AlertEmails    string `env:"ALERT_EMAILS"`                               // Danh sách email admin nhận cảnh báo, phân cách bởi dấu phẩy

	// Tài khoản admin mặc định (chỉ tạo khi INITMODE=true và chưa có admin nào)
	Admin_Email    string `env:"ADMIN_EMAIL" envDefault:"admin@libertycommerce.lr"` // Email admin mặc định
	Admin_Password string `env:"ADMIN_PASSWORD"`                                    // Mật khẩu admin mặc định (rỗng = bỏ qua)

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
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
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ working directory
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

// NewConfig sẽ đọc dữ liệu cấu hình từ file env theo GO_ENV
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
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
