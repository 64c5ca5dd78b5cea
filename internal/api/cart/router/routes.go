// Package router đăng ký các route thuộc domain cart.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "liberty_commerce/internal/api/auth/models"
	carthdl "liberty_commerce/internal/api/cart/handler"
	"liberty_commerce/internal/api/middleware"
	apirouter "liberty_commerce/internal/api/router"
)

// Register đăng ký tất cả route cart lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	cartHandler, err := carthdl.NewCartHandler()
	if err != nil {
		return fmt.Errorf("failed to create cart handler: %w", err)
	}

	// Giỏ hàng của chính người dùng
	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/cart", "GET", "/me", []fiber.Handler{authOnlyMiddleware}, cartHandler.HandleGetMyCart)
	apirouter.RegisterRouteWithMiddleware(v1, "/cart", "POST", "/items", []fiber.Handler{authOnlyMiddleware}, cartHandler.HandleAddItem)
	apirouter.RegisterRouteWithMiddleware(v1, "/cart", "PUT", "/items", []fiber.Handler{authOnlyMiddleware}, cartHandler.HandleUpdateItem)
	apirouter.RegisterRouteWithMiddleware(v1, "/cart", "DELETE", "/items/:productId", []fiber.Handler{authOnlyMiddleware}, cartHandler.HandleRemoveItem)
	apirouter.RegisterRouteWithMiddleware(v1, "/cart", "POST", "/checkout", []fiber.Handler{authOnlyMiddleware}, cartHandler.HandleCheckout)

	// Quản trị giỏ hàng
	staffMiddleware := middleware.AuthMiddleware(authmodels.RoleEmployee)
	apirouter.RegisterRouteWithMiddleware(v1, "/cart", "GET", "/find", []fiber.Handler{staffMiddleware}, cartHandler.Find)
	apirouter.RegisterRouteWithMiddleware(v1, "/cart", "GET", "/find-by-id/:id", []fiber.Handler{staffMiddleware}, cartHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(v1, "/cart", "GET", "/find-with-pagination", []fiber.Handler{staffMiddleware}, cartHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(v1, "/cart", "PUT", "/status/:id", []fiber.Handler{staffMiddleware}, cartHandler.HandleSetStatus)
	return nil
}
