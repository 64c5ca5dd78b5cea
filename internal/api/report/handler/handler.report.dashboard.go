// Package handler - HTTP handler cho dashboard báo cáo.
package reporthdl

import (
	"fmt"

	basehdl "liberty_commerce/internal/api/base/handler"
	reportdto "liberty_commerce/internal/api/report/dto"
	reportsvc "liberty_commerce/internal/api/report/service"
	"liberty_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
)

// DashboardHandler xử lý các request đọc báo cáo và quản lý snapshot dashboard
type DashboardHandler struct {
	dashboardService *reportsvc.DashboardService
}

// NewDashboardHandler tạo instance mới của DashboardHandler
func NewDashboardHandler() (*DashboardHandler, error) {
	dashboardService, err := reportsvc.NewDashboardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %v", err)
	}
	return &DashboardHandler{dashboardService: dashboardService}, nil
}

// HandleGetDashboard trả về snapshot đầy đủ, tự refresh nếu snapshot đã cũ
func (h *DashboardHandler) HandleGetDashboard(c fiber.Ctx) error {
	snapshot, err := h.dashboardService.Current(c.Context())
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, snapshot)
	return nil
}

// HandleRefresh tính lại snapshot ngay lập tức, bỏ qua TTL
func (h *DashboardHandler) HandleRefresh(c fiber.Ctx) error {
	snapshot, err := h.dashboardService.Refresh(c.Context())
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, snapshot)
	return nil
}

// HandleSummary trả về phần tổng quan của snapshot
func (h *DashboardHandler) HandleSummary(c fiber.Ctx) error {
	summary, err := h.dashboardService.GetSummary(c.Context())
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, summary)
	return nil
}

// HandleSalesByPeriod trả về doanh thu theo chu kỳ :period (daily / weekly / monthly)
func (h *DashboardHandler) HandleSalesByPeriod(c fiber.Ctx) error {
	items, err := h.dashboardService.GetByPeriod(c.Context(), c.Params("period"))
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, items)
	return nil
}

// HandleTopProducts trả về bảng xếp hạng sản phẩm theo doanh thu
func (h *DashboardHandler) HandleTopProducts(c fiber.Ctx) error {
	items, err := h.dashboardService.GetTopProducts(c.Context())
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, items)
	return nil
}

// HandleSalesByCategory trả về doanh thu theo danh mục
func (h *DashboardHandler) HandleSalesByCategory(c fiber.Ctx) error {
	items, err := h.dashboardService.GetSalesByCategory(c.Context())
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, items)
	return nil
}

// HandleLowStock trả về danh sách sản phẩm sắp hết hàng
func (h *DashboardHandler) HandleLowStock(c fiber.Ctx) error {
	items, err := h.dashboardService.GetLowStock(c.Context())
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, items)
	return nil
}

// HandlePaymentMethods trả về thống kê phương thức thanh toán
func (h *DashboardHandler) HandlePaymentMethods(c fiber.Ctx) error {
	stats, err := h.dashboardService.GetPaymentMethodStats(c.Context())
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, stats)
	return nil
}

// HandleRecentSales trả về các giao dịch gần đây
func (h *DashboardHandler) HandleRecentSales(c fiber.Ctx) error {
	items, err := h.dashboardService.GetRecentSales(c.Context())
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, items)
	return nil
}

// HandleCustomRange gộp doanh thu theo ngày trong khoảng ?startDate=&endDate=
func (h *DashboardHandler) HandleCustomRange(c fiber.Ctx) error {
	input := reportdto.DateRangeInput{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	if err := basehdl.ValidateInput(&input); err != nil {
		basehdl.HandleErrorResponse(c, common.NewError(
			common.ErrCodeValidationInput,
			"Thiếu tham số startDate hoặc endDate",
			common.StatusBadRequest,
			nil,
		))
		return nil
	}
	items, err := h.dashboardService.RangeQuery(c.Context(), input.StartDate, input.EndDate)
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, items)
	return nil
}

// HandleGetCurrencyRate trả về tỷ giá USD→LRD hiện tại
func (h *DashboardHandler) HandleGetCurrencyRate(c fiber.Ctx) error {
	rate, err := h.dashboardService.GetCurrencyRate(c.Context())
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, fiber.Map{"rate": rate})
	return nil
}

// HandleSetCurrencyRate cập nhật tỷ giá và cascade giá LRD xuống toàn bộ sản phẩm
func (h *DashboardHandler) HandleSetCurrencyRate(c fiber.Ctx) error {
	var input reportdto.CurrencyRateInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleErrorResponse(c, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
			common.StatusBadRequest,
			err,
		))
		return nil
	}
	if err := basehdl.ValidateInput(&input); err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	result, err := h.dashboardService.SetCurrencyRate(c.Context(), input.Rate)
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, result)
	return nil
}
