// Package router đăng ký các route thuộc domain product.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "liberty_commerce/internal/api/auth/models"
	"liberty_commerce/internal/api/middleware"
	producthdl "liberty_commerce/internal/api/product/handler"
	apirouter "liberty_commerce/internal/api/router"
)

// Register đăng ký tất cả route product lên v1.
// Đọc sản phẩm là công khai (khách vãng lai xem được catalog); ghi dành cho admin / employee.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := producthdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}

	// Route công khai
	v1.Get("/product/find", productHandler.Find)
	v1.Get("/product/find-by-id/:id", productHandler.FindOneById)
	v1.Get("/product/find-with-pagination", productHandler.FindWithPagination)
	v1.Get("/product/search", productHandler.HandleSearch)
	v1.Get("/product/categories", productHandler.HandleCategories)

	// Route quản trị
	staffMiddleware := middleware.AuthMiddleware(authmodels.RoleEmployee)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "POST", "/insert-one", []fiber.Handler{staffMiddleware}, productHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "PUT", "/update-by-id/:id", []fiber.Handler{staffMiddleware}, productHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "DELETE", "/delete-by-id/:id", []fiber.Handler{staffMiddleware}, productHandler.DeleteById)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "GET", "/count", []fiber.Handler{staffMiddleware}, productHandler.CountDocuments)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "GET", "/low-stock", []fiber.Handler{staffMiddleware}, productHandler.HandleLowStock)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "PUT", "/adjust-stock/:id", []fiber.Handler{staffMiddleware}, productHandler.HandleAdjustStock)
	return nil
}
