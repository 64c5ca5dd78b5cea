package main

import (
	"context"

	authmodels "liberty_commerce/internal/api/auth/models"
	authsvc "liberty_commerce/internal/api/auth/service"
	"liberty_commerce/internal/global"
	"liberty_commerce/internal/logger"
	"liberty_commerce/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData tạo tài khoản admin mặc định khi chạy ở chế độ INITMODE
// và hệ thống chưa có admin nào. Các lần chạy sau là no-op.
func InitDefaultData() {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	if !cfg.InitMode {
		return
	}
	if cfg.Admin_Password == "" {
		log.Info("🔄 [INIT] ADMIN_PASSWORD chưa cấu hình, bỏ qua tạo admin mặc định")
		return
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	ctx := context.Background()
	exists, err := userService.DocumentExists(ctx, bson.M{"role": authmodels.RoleAdmin})
	if err != nil {
		log.Fatalf("Failed to check existing admin: %v", err)
	}
	if exists {
		log.Info("🔄 [INIT] Admin đã tồn tại, bỏ qua tạo admin mặc định")
		return
	}

	salt, err := utility.GenerateSalt()
	if err != nil {
		log.Fatalf("Failed to generate salt for admin: %v", err)
	}
	admin := authmodels.User{
		Name:     "Administrator",
		Email:    cfg.Admin_Email,
		Password: utility.HashPassword(cfg.Admin_Password, salt),
		Salt:     salt,
		Role:     authmodels.RoleAdmin,
	}
	created, err := userService.InsertOne(ctx, admin)
	if err != nil {
		log.Fatalf("Failed to create default admin: %v", err)
	}

	log.Infof("✅ [INIT] Đã tạo admin mặc định: %s (ID: %s)", created.Email, created.ID.Hex())
}
