// Package router đăng ký các route thuộc domain report.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "liberty_commerce/internal/api/auth/models"
	"liberty_commerce/internal/api/middleware"
	reporthdl "liberty_commerce/internal/api/report/handler"
	apirouter "liberty_commerce/internal/api/router"
)

// Register đăng ký tất cả route dashboard lên v1.
// Toàn bộ báo cáo dành cho admin / employee.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	dashboardHandler, err := reporthdl.NewDashboardHandler()
	if err != nil {
		return fmt.Errorf("failed to create dashboard handler: %w", err)
	}

	staff := []fiber.Handler{middleware.AuthMiddleware(authmodels.RoleEmployee)}
	prefix := "/dashboard"

	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/", staff, dashboardHandler.HandleGetDashboard)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/refresh", staff, dashboardHandler.HandleRefresh)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/summary", staff, dashboardHandler.HandleSummary)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/sales/:period", staff, dashboardHandler.HandleSalesByPeriod)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/top-products", staff, dashboardHandler.HandleTopProducts)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/sales-by-category", staff, dashboardHandler.HandleSalesByCategory)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/low-stock", staff, dashboardHandler.HandleLowStock)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/payment-methods", staff, dashboardHandler.HandlePaymentMethods)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/recent-sales", staff, dashboardHandler.HandleRecentSales)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/custom-range", staff, dashboardHandler.HandleCustomRange)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/currency-rate", staff, dashboardHandler.HandleGetCurrencyRate)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/currency-rate", staff, dashboardHandler.HandleSetCurrencyRate)
	return nil
}
