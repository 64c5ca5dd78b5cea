package main

import (
	"context"

	"liberty_commerce/config"
	authmodels "liberty_commerce/internal/api/auth/models"
	cartmodels "liberty_commerce/internal/api/cart/models"
	commentmodels "liberty_commerce/internal/api/comment/models"
	messagemodels "liberty_commerce/internal/api/message/models"
	ordermodels "liberty_commerce/internal/api/order/models"
	productmodels "liberty_commerce/internal/api/product/models"
	reportmodels "liberty_commerce/internal/api/report/models"
	transactionmodels "liberty_commerce/internal/api/transaction/models"
	"liberty_commerce/internal/database"
	"liberty_commerce/internal/global"

	"github.com/sirupsen/logrus"
)

// InitGlobal khởi tạo các biến toàn cục theo đúng thứ tự phụ thuộc
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// initColNames khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.Carts = "carts"
	global.MongoDB_ColNames.Orders = "orders"
	global.MongoDB_ColNames.Transactions = "transactions"
	global.MongoDB_ColNames.Messages = "messages"
	global.MongoDB_ColNames.Comments = "comments"
	global.MongoDB_ColNames.Dashboards = "dashboards"

	logrus.Info("Initialized collection names")
}

// initValidator đăng ký các custom validator (no_xss, strong_password, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig khởi tạo cấu hình server từ file env
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB khởi tạo kết nối database và index cho các collection
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Products), productmodels.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Carts), cartmodels.Cart{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Orders), ordermodels.Order{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Transactions), transactionmodels.Transaction{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Messages), messagemodels.Message{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Comments), commentmodels.Comment{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Dashboards), reportmodels.Dashboard{})
	logrus.Info("Ensured collection indexes")
}
