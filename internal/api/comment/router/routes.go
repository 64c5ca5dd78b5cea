// Package router đăng ký các route thuộc domain comment.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	commenthdl "liberty_commerce/internal/api/comment/handler"
	"liberty_commerce/internal/api/middleware"
	apirouter "liberty_commerce/internal/api/router"
)

// Register đăng ký tất cả route comment lên v1.
// Đọc là công khai; tạo / sửa / xóa yêu cầu đăng nhập (chủ bình luận hoặc admin).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	commentHandler, err := commenthdl.NewCommentHandler()
	if err != nil {
		return fmt.Errorf("failed to create comment handler: %w", err)
	}

	// Route công khai
	v1.Get("/comment/by-product/:productId", commentHandler.HandleListByProduct)
	v1.Get("/comment/stats/:productId", commentHandler.HandleStats)

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/comment", "POST", "/insert-one", []fiber.Handler{authOnlyMiddleware}, commentHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/comment", "PUT", "/update-by-id/:id", []fiber.Handler{authOnlyMiddleware}, commentHandler.HandleUpdateOwn)
	apirouter.RegisterRouteWithMiddleware(v1, "/comment", "DELETE", "/delete-by-id/:id", []fiber.Handler{authOnlyMiddleware}, commentHandler.HandleDeleteOwn)
	return nil
}
