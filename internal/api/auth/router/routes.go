// Package router đăng ký các route thuộc domain auth: Auth, Admin, System, User CRUD.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "liberty_commerce/internal/api/auth/handler"
	basehdl "liberty_commerce/internal/api/base/handler"
	"liberty_commerce/internal/api/middleware"
	apirouter "liberty_commerce/internal/api/router"
	models "liberty_commerce/internal/api/auth/models"
)

// Register đăng ký tất cả route auth (system, auth, admin, user CRUD) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	if err := registerAdminRoutes(v1); err != nil {
		return err
	}
	if err := registerUserCRUDRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Route công khai, không cần xác thực
	router.Post("/auth/register", userHandler.HandleRegister)
	router.Post("/auth/login", userHandler.HandleLogin)

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/password", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleChangePassword)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/wishlist", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetWishlist)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/wishlist", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleAddToWishlist)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "DELETE", "/wishlist/:productId", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleRemoveFromWishlist)
	return nil
}

func registerAdminRoutes(router fiber.Router) error {
	adminHandler, err := authhdl.NewAdminHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin handler: %w", err)
	}
	adminMiddleware := middleware.AuthMiddleware(models.RoleAdmin)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/block", []fiber.Handler{adminMiddleware}, adminHandler.HandleBlockUser)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/unblock", []fiber.Handler{adminMiddleware}, adminHandler.HandleUnBlockUser)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/role", []fiber.Handler{adminMiddleware}, adminHandler.HandleSetRole)
	return nil
}

func registerUserCRUDRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	// Danh sách user chỉ dành cho admin / employee; ghi chỉ dành cho admin
	r.RegisterCRUDRoutes(router, "/user", userHandler, apirouter.ReadWriteConfig,
		[]string{models.RoleEmployee}, []string{models.RoleAdmin})
	return nil
}
