// Package router đăng ký các route thuộc domain order.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "liberty_commerce/internal/api/auth/models"
	"liberty_commerce/internal/api/middleware"
	orderhdl "liberty_commerce/internal/api/order/handler"
	apirouter "liberty_commerce/internal/api/router"
)

// Register đăng ký tất cả route order lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %w", err)
	}

	// Đơn hàng của chính người dùng
	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "POST", "/from-cart", []fiber.Handler{authOnlyMiddleware}, orderHandler.HandleCreateFromCart)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "GET", "/me", []fiber.Handler{authOnlyMiddleware}, orderHandler.HandleMyOrders)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "POST", "/payment-proof/:id", []fiber.Handler{authOnlyMiddleware}, orderHandler.HandleAddPaymentProof)

	// Quản trị đơn hàng
	staffMiddleware := middleware.AuthMiddleware(authmodels.RoleEmployee)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "GET", "/find", []fiber.Handler{staffMiddleware}, orderHandler.Find)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "GET", "/find-by-id/:id", []fiber.Handler{staffMiddleware}, orderHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "GET", "/find-with-pagination", []fiber.Handler{staffMiddleware}, orderHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "GET", "/count", []fiber.Handler{staffMiddleware}, orderHandler.CountDocuments)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "PUT", "/status/:id", []fiber.Handler{staffMiddleware}, orderHandler.HandleSetStatus)
	return nil
}
