package reportsvc

import (
	"context"
	"time"

	models "liberty_commerce/internal/api/report/models"
	"liberty_commerce/internal/common"
)

// Các chu kỳ hợp lệ cho GetByPeriod
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Current trả về snapshot còn tươi: refresh trước khi trả nếu snapshot
// chưa có, dirty hoặc quá TTL.
func (s *DashboardService) Current(ctx context.Context) (*models.Dashboard, error) {
	snapshot, err := s.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if s.IsStale(snapshot, time.Now()) {
		return s.Refresh(ctx)
	}
	return snapshot, nil
}

// GetSummary trả về phần tổng quan của snapshot hiện có
func (s *DashboardService) GetSummary(ctx context.Context) (*models.DashboardSummary, error) {
	snapshot, err := s.findSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &models.DashboardSummary{
		TotalRevenue:   snapshot.TotalRevenue,
		TotalOrders:    snapshot.TotalOrders,
		TotalProducts:  snapshot.TotalProducts,
		TotalCustomers: snapshot.TotalCustomers,
		InventoryValue: snapshot.InventoryValue,
		OrdersByStatus: snapshot.OrdersByStatus,
		LastUpdated:    snapshot.LastUpdated,
	}, nil
}

// GetTopProducts trả về bảng xếp hạng sản phẩm theo doanh thu từ snapshot hiện có
func (s *DashboardService) GetTopProducts(ctx context.Context) ([]models.TopProduct, error) {
	snapshot, err := s.findSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.TopProducts, nil
}

// GetSalesByCategory trả về doanh thu theo danh mục từ snapshot hiện có
func (s *DashboardService) GetSalesByCategory(ctx context.Context) ([]models.CategorySales, error) {
	snapshot, err := s.findSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.SalesByCategory, nil
}

// GetLowStock trả về danh sách sản phẩm sắp hết hàng từ snapshot hiện có
func (s *DashboardService) GetLowStock(ctx context.Context) ([]models.LowStockProduct, error) {
	snapshot, err := s.findSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.LowStockProducts, nil
}

// GetPaymentMethodStats trả về thống kê phương thức thanh toán từ snapshot hiện có
func (s *DashboardService) GetPaymentMethodStats(ctx context.Context) (map[string]models.PaymentMethodStat, error) {
	snapshot, err := s.findSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.PaymentMethodStats, nil
}

// GetRecentSales trả về các giao dịch gần đây từ snapshot hiện có
func (s *DashboardService) GetRecentSales(ctx context.Context) ([]models.RecentSale, error) {
	snapshot, err := s.findSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.RecentSales, nil
}

// ValidatePeriod kiểm tra chu kỳ hợp lệ (daily / weekly / monthly)
func ValidatePeriod(period string) error {
	switch period {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return nil
	}
	return common.NewError(
		common.ErrCodeValidationInput,
		"Chu kỳ phải là daily, weekly hoặc monthly",
		common.StatusBadRequest,
		map[string]interface{}{"period": period},
	)
}

// GetByPeriod trả về doanh thu theo chu kỳ từ snapshot hiện có.
// Chu kỳ không hợp lệ bị từ chối trước khi đọc snapshot.
func (s *DashboardService) GetByPeriod(ctx context.Context, period string) ([]models.PeriodSales, error) {
	if err := ValidatePeriod(period); err != nil {
		return nil, err
	}
	snapshot, err := s.findSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	switch period {
	case PeriodWeekly:
		return snapshot.SalesByPeriod.Weekly, nil
	case PeriodMonthly:
		return snapshot.SalesByPeriod.Monthly, nil
	default:
		return snapshot.SalesByPeriod.Daily, nil
	}
}
