// Package router đăng ký các route thuộc domain message.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	messagehdl "liberty_commerce/internal/api/message/handler"
	"liberty_commerce/internal/api/middleware"
	apirouter "liberty_commerce/internal/api/router"
)

// Register đăng ký tất cả route message lên v1.
// Tất cả yêu cầu đăng nhập; phân quyền chi tiết nằm trong handler (khách chỉ thấy hội thoại của mình).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	messageHandler, err := messagehdl.NewMessageHandler()
	if err != nil {
		return fmt.Errorf("failed to create message handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/message", "POST", "/send", []fiber.Handler{authOnlyMiddleware}, messageHandler.HandleSend)
	apirouter.RegisterRouteWithMiddleware(v1, "/message", "GET", "/conversations", []fiber.Handler{authOnlyMiddleware}, messageHandler.HandleConversations)
	apirouter.RegisterRouteWithMiddleware(v1, "/message", "GET", "/conversation/:conversationId", []fiber.Handler{authOnlyMiddleware}, messageHandler.HandleListByConversation)
	apirouter.RegisterRouteWithMiddleware(v1, "/message", "PUT", "/mark-read", []fiber.Handler{authOnlyMiddleware}, messageHandler.HandleMarkRead)
	return nil
}
