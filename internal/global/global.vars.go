package global

import (
	"liberty_commerce/config"
	"liberty_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users        string // Tên collection cho người dùng
	Products     string // Tên collection cho sản phẩm
	Carts        string // Tên collection cho giỏ hàng
	Orders       string // Tên collection cho đơn hàng
	Transactions string // Tên collection cho giao dịch bán hàng
	Messages     string // Tên collection cho tin nhắn
	Comments     string // Tên collection cho bình luận sản phẩm
	Dashboards   string // Tên collection cho snapshot dashboard (singleton)
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName    // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
