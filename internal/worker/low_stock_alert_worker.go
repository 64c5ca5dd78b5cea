package worker

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	reportmodels "liberty_commerce/internal/api/report/models"
	reportsvc "liberty_commerce/internal/api/report/service"
	"liberty_commerce/internal/global"
	"liberty_commerce/internal/logger"
	"liberty_commerce/internal/utility"
)

// LowStockAlertWorker gửi email cảnh báo cho admin khi có sản phẩm sắp hết hàng.
// Chỉ gửi khi danh sách sản phẩm thay đổi so với lần cảnh báo trước để
// không spam hộp thư mỗi chu kỳ.
type LowStockAlertWorker struct {
	dashboardService *reportsvc.DashboardService
	mailSender       *utility.MailSender
	recipients       []string
	interval         time.Duration // Khoảng thời gian giữa các lần kiểm tra
	lastAlerted      string        // Fingerprint danh sách sản phẩm của lần cảnh báo gần nhất
}

// NewLowStockAlertWorker tạo mới LowStockAlertWorker từ cấu hình SMTP toàn cục.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần kiểm tra (mặc định: 30 phút)
func NewLowStockAlertWorker(interval time.Duration) (*LowStockAlertWorker, error) {
	dashboardService, err := reportsvc.NewDashboardService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 30 * time.Minute
	}

	cfg := global.MongoDB_ServerConfig
	sender := &utility.MailSender{
		Host:      cfg.SMTP_Host,
		Port:      cfg.SMTP_Port,
		Username:  cfg.SMTP_Username,
		Password:  cfg.SMTP_Password,
		FromName:  cfg.SMTP_FromName,
		FromEmail: cfg.SMTP_FromEmail,
	}
	recipients := make([]string, 0)
	for _, addr := range strings.Split(cfg.AlertEmails, ",") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			recipients = append(recipients, addr)
		}
	}

	return &LowStockAlertWorker{
		dashboardService: dashboardService,
		mailSender:       sender,
		recipients:       recipients,
		interval:         interval,
	}, nil
}

// Start chạy worker trong vòng lặp: mỗi interval kiểm tra danh sách sắp hết hàng
// từ snapshot và gửi cảnh báo nếu danh sách thay đổi
func (w *LowStockAlertWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	if !w.mailSender.Enabled() || len(w.recipients) == 0 {
		log.Info("📦 [LOW_STOCK] SMTP chưa cấu hình, tắt cảnh báo email sắp hết hàng")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":   w.interval.String(),
		"recipients": len(w.recipients),
	}).Info("📦 [LOW_STOCK] Starting Low Stock Alert Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📦 [LOW_STOCK] Low Stock Alert Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("📦 [LOW_STOCK] Panic khi kiểm tra tồn kho, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()
				w.checkAndAlert(ctx)
			}()
		}
	}
}

// checkAndAlert đọc danh sách sắp hết hàng và gửi email nếu khác lần trước
func (w *LowStockAlertWorker) checkAndAlert(ctx context.Context) {
	log := logger.GetAppLogger()

	items, err := w.dashboardService.GetLowStock(ctx)
	if err != nil {
		// Chưa có snapshot thì chưa có gì để cảnh báo
		return
	}
	if len(items) == 0 {
		w.lastAlerted = ""
		return
	}

	fingerprint := lowStockFingerprint(items)
	if fingerprint == w.lastAlerted {
		return
	}

	var rows strings.Builder
	for _, item := range items {
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%d</td><td>%d</td></tr>",
			html.EscapeString(item.ProductName), item.CurrentStock, item.Threshold,
		))
	}
	body := fmt.Sprintf(
		"<h3>Cảnh báo tồn kho thấp</h3><table border=\"1\" cellpadding=\"4\"><tr><th>Sản phẩm</th><th>Tồn kho</th><th>Ngưỡng</th></tr>%s</table>",
		rows.String(),
	)
	subject := fmt.Sprintf("[Liberty Commerce] %d sản phẩm sắp hết hàng", len(items))

	if err := w.mailSender.SendHTML(w.recipients, subject, body); err != nil {
		log.WithError(err).Warn("📦 [LOW_STOCK] Gửi email cảnh báo thất bại, sẽ thử lại lần sau")
		return
	}
	w.lastAlerted = fingerprint

	log.WithFields(map[string]interface{}{
		"products": len(items),
	}).Info("📦 [LOW_STOCK] Đã gửi cảnh báo tồn kho thấp")
}

// lowStockFingerprint tạo khóa so sánh từ tập product ID, không phụ thuộc thứ tự
func lowStockFingerprint(items []reportmodels.LowStockProduct) string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}
