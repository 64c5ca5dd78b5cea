package worker

import (
	"context"
	"time"

	reportsvc "liberty_commerce/internal/api/report/service"
	"liberty_commerce/internal/logger"
)

// DashboardRefreshWorker giữ snapshot dashboard luôn tươi: chạy định kỳ,
// chỉ refresh khi snapshot chưa có, dirty hoặc quá TTL. Request đọc dashboard
// nhờ đó hiếm khi phải trả giá cho một lần refresh đồng bộ.
type DashboardRefreshWorker struct {
	dashboardService *reportsvc.DashboardService
	interval         time.Duration // Khoảng thời gian giữa các lần kiểm tra
}

// NewDashboardRefreshWorker tạo mới DashboardRefreshWorker.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần kiểm tra (mặc định: 15 phút)
func NewDashboardRefreshWorker(interval time.Duration) (*DashboardRefreshWorker, error) {
	dashboardService, err := reportsvc.NewDashboardService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 15 * time.Minute
	}
	return &DashboardRefreshWorker{
		dashboardService: dashboardService,
		interval:         interval,
	}, nil
}

// Start chạy worker trong vòng lặp: mỗi interval kiểm tra staleness và refresh nếu cần
func (w *DashboardRefreshWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("📊 [DASHBOARD_REFRESH] Starting Dashboard Refresh Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📊 [DASHBOARD_REFRESH] Dashboard Refresh Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("📊 [DASHBOARD_REFRESH] Panic khi refresh snapshot, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				snapshot, err := w.dashboardService.GetSnapshot(ctx)
				if err != nil {
					log.WithError(err).Error("📊 [DASHBOARD_REFRESH] Lỗi đọc snapshot")
					return
				}
				if !w.dashboardService.IsStale(snapshot, time.Now()) {
					return
				}

				if _, err := w.dashboardService.Refresh(ctx); err != nil {
					log.WithError(err).Warn("📊 [DASHBOARD_REFRESH] Refresh thất bại, sẽ thử lại lần sau")
				}
			}()
		}
	}
}
