package reportsvc

import (
	"context"
	"math"
	"sync"
	"sync/atomic"

	basesvc "liberty_commerce/internal/api/base/service"
	productmodels "liberty_commerce/internal/api/product/models"
	models "liberty_commerce/internal/api/report/models"
	"liberty_commerce/internal/common"
	"liberty_commerce/internal/logger"
	"liberty_commerce/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
)

// Số goroutine tối đa khi cascade tỷ giá xuống sản phẩm
const cascadeWorkers = 8

// ValidateCurrencyRate kiểm tra tỷ giá hợp lệ: số hữu hạn và dương
func ValidateCurrencyRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Tỷ giá phải là số dương hữu hạn",
			common.StatusBadRequest,
			map[string]interface{}{"rate": rate},
		)
	}
	return nil
}

// GetCurrencyRate trả về tỷ giá USD→LRD hiện tại.
// Trả về ErrNotFound nếu chưa từng có snapshot.
func (s *DashboardService) GetCurrencyRate(ctx context.Context) (float64, error) {
	snapshot, err := s.findSnapshot(ctx)
	if err != nil {
		return 0, err
	}
	return snapshot.CurrencyConversionRate, nil
}

// SetCurrencyRate cập nhật tỷ giá USD→LRD rồi cascade xuống toàn bộ sản phẩm:
// priceLRD = priceUSD * rate, totalValueLRD = priceLRD * quantityInStock.
// Cascade là best-effort: sản phẩm lỗi được log và bỏ qua, không rollback.
// Tỷ giá không hợp lệ bị từ chối trước khi ghi bất kỳ thứ gì.
func (s *DashboardService) SetCurrencyRate(ctx context.Context, rate float64) (*models.CascadeResult, error) {
	if err := ValidateCurrencyRate(rate); err != nil {
		return nil, err
	}

	now := utility.CurrentTimeInMilli()
	_, err := s.dashboardService.Upsert(ctx, bson.M{"key": models.DashboardKey}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"currencyConversionRate": rate,
			"lastUpdated":            now,
		},
	})
	if err != nil {
		return nil, err
	}

	result := s.cascadeRate(ctx, rate)

	// Giá LRD đã thay đổi, snapshot kế tiếp phải tính lại inventory value
	MarkDirty()

	logger.GetAppLogger().WithFields(logrus.Fields{
		"rate":    rate,
		"updated": result.UpdatedCount,
		"failed":  result.FailedCount,
	}).Info("💱 [DASHBOARD] Cập nhật tỷ giá hoàn tất")
	return result, nil
}

// CascadeValues tính giá LRD và tổng giá trị tồn kho LRD của một sản phẩm theo tỷ giá
func CascadeValues(priceUSD float64, quantityInStock int64, rate float64) (priceLRD, totalValueLRD float64) {
	priceLRD = priceUSD * rate
	return priceLRD, priceLRD * float64(quantityInStock)
}

// cascadeRate cập nhật giá LRD của toàn bộ sản phẩm theo tỷ giá mới,
// chạy song song với số worker giới hạn
func (s *DashboardService) cascadeRate(ctx context.Context, rate float64) *models.CascadeResult {
	result := &models.CascadeResult{Rate: rate}

	products, err := s.productService.Find(ctx, bson.M{}, nil)
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("❌ [DASHBOARD] Không đọc được danh sách sản phẩm khi cascade tỷ giá")
		return result
	}
	result.TotalProducts = int64(len(products))

	var updated, failed int64
	var wg sync.WaitGroup
	sem := make(chan struct{}, cascadeWorkers)
	for _, product := range products {
		wg.Add(1)
		sem <- struct{}{}
		go func(p productmodels.Product) {
			defer wg.Done()
			defer func() { <-sem }()

			priceLRD, totalValueLRD := CascadeValues(p.PriceUSD, p.QuantityInStock, rate)
			_, err := s.productService.UpdateById(ctx, p.ID, &basesvc.UpdateData{
				Set: map[string]interface{}{
					"priceLRD":      priceLRD,
					"totalValueLRD": totalValueLRD,
				},
			})
			if err != nil {
				atomic.AddInt64(&failed, 1)
				logger.GetErrorLogger().WithFields(logrus.Fields{
					"product_id": p.ID.Hex(),
				}).WithError(err).Warn("⚠️ [DASHBOARD] Cascade tỷ giá lỗi, bỏ qua sản phẩm")
				return
			}
			atomic.AddInt64(&updated, 1)
		}(product)
	}
	wg.Wait()

	result.UpdatedCount = atomic.LoadInt64(&updated)
	result.FailedCount = atomic.LoadInt64(&failed)
	return result
}
