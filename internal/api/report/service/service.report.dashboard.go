// Package reportsvc - Dashboard Reporting Aggregator: snapshot tổng hợp doanh thu,
// tồn kho, thống kê thanh toán và doanh thu theo chu kỳ từ dữ liệu giao dịch gốc.
package reportsvc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	basesvc "liberty_commerce/internal/api/base/service"
	ordermodels "liberty_commerce/internal/api/order/models"
	productmodels "liberty_commerce/internal/api/product/models"
	models "liberty_commerce/internal/api/report/models"
	transactionmodels "liberty_commerce/internal/api/transaction/models"
	authmodels "liberty_commerce/internal/api/auth/models"
	"liberty_commerce/internal/common"
	"liberty_commerce/internal/global"
	"liberty_commerce/internal/logger"
	"liberty_commerce/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
)

// Cửa sổ dữ liệu cho doanh thu theo chu kỳ
const (
	dailyWindowDays    = 30
	weeklyWindowWeeks  = 12
	monthlyWindowMonths = 12
)

// Trạng thái dùng chung của snapshot singleton: một refresh tại một thời điểm,
// dirty generation buộc IsStale=true ở lần kiểm tra kế tiếp sau khi dữ liệu
// nguồn thay đổi. Snapshot được coi là dirty khi dirtyGen > cleanedGen, nên một
// MarkDirty đến trong lúc refresh đang compute không bị refresh đó xóa mất.
var (
	refreshMu   sync.Mutex
	dirtyGen    atomic.Int64
	cleanedGen  atomic.Int64
	refreshDone atomic.Int64 // UnixNano của lần refresh thành công gần nhất
)

// DashboardService quản lý snapshot dashboard và các phép tổng hợp trên dữ liệu nguồn
type DashboardService struct {
	dashboardService   *basesvc.BaseServiceMongoImpl[models.Dashboard]
	productService     *basesvc.BaseServiceMongoImpl[productmodels.Product]
	orderService       *basesvc.BaseServiceMongoImpl[ordermodels.Order]
	transactionService *basesvc.BaseServiceMongoImpl[transactionmodels.Transaction]
	userService        *basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewDashboardService tạo mới DashboardService
func NewDashboardService() (*DashboardService, error) {
	names := []string{
		global.MongoDB_ColNames.Dashboards,
		global.MongoDB_ColNames.Products,
		global.MongoDB_ColNames.Orders,
		global.MongoDB_ColNames.Transactions,
		global.MongoDB_ColNames.Users,
	}
	s := &DashboardService{}
	for i, name := range names {
		coll, ok := global.RegistryCollections.Get(name)
		if !ok {
			return nil, fmt.Errorf("không tìm thấy collection %s: %w", name, common.ErrNotFound)
		}
		switch i {
		case 0:
			s.dashboardService = basesvc.NewBaseServiceMongo[models.Dashboard](coll)
		case 1:
			s.productService = basesvc.NewBaseServiceMongo[productmodels.Product](coll)
		case 2:
			s.orderService = basesvc.NewBaseServiceMongo[ordermodels.Order](coll)
		case 3:
			s.transactionService = basesvc.NewBaseServiceMongo[transactionmodels.Transaction](coll)
		case 4:
			s.userService = basesvc.NewBaseServiceMongo[authmodels.User](coll)
		}
	}
	return s, nil
}

// ttl thời gian sống của snapshot trước khi bị coi là cũ
func (s *DashboardService) ttl() time.Duration {
	minutes := 60
	if global.MongoDB_ServerConfig != nil && global.MongoDB_ServerConfig.Dashboard_TTLMinutes > 0 {
		minutes = global.MongoDB_ServerConfig.Dashboard_TTLMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// MarkDirty đánh dấu snapshot cần refresh ở lần kiểm tra kế tiếp
func MarkDirty() {
	dirtyGen.Add(1)
}

func isDirty() bool {
	return dirtyGen.Load() > cleanedGen.Load()
}

// markCleanedThrough ghi nhận refresh đã bao phủ mọi thay đổi tới generation gen.
// MarkDirty đến sau gen vẫn giữ snapshot ở trạng thái dirty.
func markCleanedThrough(gen int64) {
	cleanedGen.Store(gen)
}

func markRefreshCompleted() {
	refreshDone.Store(time.Now().UnixNano())
}

func refreshCompletedSince(nano int64) bool {
	return refreshDone.Load() > nano
}

// GetSnapshot trả về snapshot hiện tại, hoặc snapshot zero-value nếu chưa từng có.
// Không tự refresh.
func (s *DashboardService) GetSnapshot(ctx context.Context) (*models.Dashboard, error) {
	snapshot, err := s.findSnapshot(ctx)
	if err == nil {
		return snapshot, nil
	}
	if errors.Is(err, common.ErrNotFound) {
		return defaultSnapshot(), nil
	}
	return nil, err
}

// findSnapshot trả về snapshot hiện tại hoặc ErrNotFound nếu chưa từng có
func (s *DashboardService) findSnapshot(ctx context.Context) (*models.Dashboard, error) {
	snapshot, err := s.dashboardService.FindOne(ctx, bson.M{"key": models.DashboardKey}, nil)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// defaultSnapshot snapshot zero-value với đủ các bucket thanh toán
func defaultSnapshot() *models.Dashboard {
	return &models.Dashboard{
		Key:                models.DashboardKey,
		OrdersByStatus:     emptyOrderStatusCounts(),
		TopProducts:        []models.TopProduct{},
		SalesByCategory:    []models.CategorySales{},
		LowStockProducts:   []models.LowStockProduct{},
		PaymentMethodStats: emptyPaymentMethodStats(),
		RecentSales:        []models.RecentSale{},
		SalesByPeriod: models.SalesByPeriod{
			Daily:   []models.PeriodSales{},
			Weekly:  []models.PeriodSales{},
			Monthly: []models.PeriodSales{},
		},
	}
}

// IsStale kiểm tra snapshot có cần refresh không: chưa từng có, dữ liệu nguồn
// đã thay đổi (dirty), hoặc quá TTL kể từ lần cập nhật cuối.
func (s *DashboardService) IsStale(snapshot *models.Dashboard, now time.Time) bool {
	if snapshot == nil || snapshot.LastUpdated == 0 {
		return true
	}
	if isDirty() {
		return true
	}
	age := now.Sub(time.UnixMilli(snapshot.LastUpdated))
	return age > s.ttl()
}

// Refresh tính lại toàn bộ snapshot từ dữ liệu nguồn rồi ghi đè trong một lần
// persist duy nhất. Lỗi ở bất kỳ bước đọc nguồn nào hủy toàn bộ refresh, không
// ghi một phần. Chỉ một refresh chạy tại một thời điểm; caller đến sau dùng
// kết quả của refresh vừa hoàn tất thay vì tính lại.
func (s *DashboardService) Refresh(ctx context.Context) (*models.Dashboard, error) {
	entered := time.Now().UnixNano()
	refreshMu.Lock()
	defer refreshMu.Unlock()

	// Một refresh khác vừa hoàn tất trong lúc chờ lock thì dùng luôn kết quả đó.
	// So bằng mốc riêng của refresh, không dùng lastUpdated của snapshot vì
	// cập nhật tỷ giá cũng ghi lastUpdated.
	if refreshCompletedSince(entered) {
		if snapshot, err := s.findSnapshot(ctx); err == nil {
			return snapshot, nil
		}
	}

	coveredGen := dirtyGen.Load()
	snapshot, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx, snapshot); err != nil {
		return nil, err
	}
	markCleanedThrough(coveredGen)
	markRefreshCompleted()

	logger.GetAppLogger().WithFields(logrus.Fields{
		"total_orders":   snapshot.TotalOrders,
		"total_products": snapshot.TotalProducts,
		"revenue_usd":    snapshot.TotalRevenue.USD,
	}).Info("📊 [DASHBOARD] Refresh hoàn tất")
	return snapshot, nil
}

// compute đọc toàn bộ dữ liệu nguồn và dựng snapshot mới trong bộ nhớ
func (s *DashboardService) compute(ctx context.Context) (*models.Dashboard, error) {
	products, err := s.productService.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, upstream("products", err)
	}

	totalOrders, err := s.orderService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, upstream("orders", err)
	}
	ordersByStatus := emptyOrderStatusCounts()
	for _, status := range ordermodels.KnownOrderStatuses {
		count, err := s.orderService.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			return nil, upstream("orders", err)
		}
		ordersByStatus[status] = count
	}

	totalCustomers, err := s.userService.CountDocuments(ctx, bson.M{"role": authmodels.RoleCustomer})
	if err != nil {
		return nil, upstream("users", err)
	}

	transactions, err := s.transactionService.Find(ctx, bson.M{
		"transactionStatus": transactionmodels.TransactionStatusCompleted,
	}, nil)
	if err != nil {
		return nil, upstream("transactions", err)
	}

	// Giữ nguyên tỷ giá hiện tại; tỷ giá thay đổi độc lập với refresh
	rate := float64(0)
	if current, err := s.findSnapshot(ctx); err == nil {
		rate = current.CurrencyConversionRate
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	strict := global.MongoDB_ServerConfig != nil && global.MongoDB_ServerConfig.Dashboard_StrictPaymentMethods
	snapshot := buildSnapshot(products, ordersByStatus, totalOrders, totalCustomers, transactions, rate, strict, time.Now())
	return snapshot, nil
}

// persist ghi đè snapshot trong một lần upsert duy nhất
func (s *DashboardService) persist(ctx context.Context, snapshot *models.Dashboard) error {
	data, err := utility.ToMap(snapshot)
	if err != nil {
		return err
	}
	_, err = s.dashboardService.Upsert(ctx, bson.M{"key": models.DashboardKey}, &basesvc.UpdateData{Set: data})
	return err
}

// upstream gói lỗi đọc dữ liệu nguồn thành lỗi 503 để refresh hủy toàn bộ
func upstream(source string, err error) error {
	return common.NewError(
		common.ErrCodeDatabaseConnection,
		fmt.Sprintf("Không đọc được dữ liệu nguồn %s", source),
		common.StatusServiceUnavailable,
		err.Error(),
	)
}

// emptyOrderStatusCounts khởi tạo đủ bốn trạng thái đơn hàng với count 0
func emptyOrderStatusCounts() map[string]int64 {
	counts := make(map[string]int64, len(ordermodels.KnownOrderStatuses))
	for _, status := range ordermodels.KnownOrderStatuses {
		counts[status] = 0
	}
	return counts
}

// emptyPaymentMethodStats khởi tạo đủ năm bucket thanh toán với giá trị zero
func emptyPaymentMethodStats() map[string]models.PaymentMethodStat {
	stats := make(map[string]models.PaymentMethodStat, len(transactionmodels.KnownPaymentMethods))
	for _, method := range transactionmodels.KnownPaymentMethods {
		stats[method] = models.PaymentMethodStat{}
	}
	return stats
}

// buildSnapshot dựng snapshot từ dữ liệu nguồn đã nạp. Thuần túy và xác định:
// chạy lại với cùng dữ liệu cho cùng kết quả (trừ lastUpdated).
func buildSnapshot(
	products []productmodels.Product,
	ordersByStatus map[string]int64,
	totalOrders int64,
	totalCustomers int64,
	transactions []transactionmodels.Transaction,
	rate float64,
	strictPaymentMethods bool,
	now time.Time,
) *models.Dashboard {
	snapshot := defaultSnapshot()
	snapshot.TotalOrders = totalOrders
	snapshot.TotalCustomers = totalCustomers
	snapshot.TotalProducts = int64(len(products))
	snapshot.OrdersByStatus = ordersByStatus
	snapshot.CurrencyConversionRate = rate

	// Doanh thu tổng và giá trị tồn kho
	for _, t := range transactions {
		snapshot.TotalRevenue = snapshot.TotalRevenue.Add(models.Money{USD: t.TotalBoughtUSD, LRD: t.TotalBoughtLRD})
	}
	for _, p := range products {
		snapshot.InventoryValue = snapshot.InventoryValue.Add(models.Money{USD: p.TotalValueUSD, LRD: p.TotalValueLRD})
	}

	snapshot.TopProducts = buildTopProducts(transactions)
	snapshot.SalesByCategory = buildSalesByCategory(transactions)
	snapshot.LowStockProducts = buildLowStockProducts(products)
	snapshot.PaymentMethodStats = buildPaymentMethodStats(transactions, strictPaymentMethods)
	snapshot.RecentSales = buildRecentSales(transactions)
	snapshot.SalesByPeriod = buildSalesByPeriod(transactions, now)
	snapshot.LastUpdated = now.UnixMilli()
	return snapshot
}

// buildTopProducts gộp giao dịch theo sản phẩm, sắp giảm dần theo doanh thu USD
// (stable sort: doanh thu bằng nhau giữ thứ tự gặp đầu tiên), lấy tối đa 5.
func buildTopProducts(transactions []transactionmodels.Transaction) []models.TopProduct {
	grouped := make(map[string]*models.TopProduct)
	order := make([]string, 0)
	for _, t := range transactions {
		key := t.ProductID.Hex()
		entry, ok := grouped[key]
		if !ok {
			entry = &models.TopProduct{ProductID: key, ProductName: t.ProductName}
			grouped[key] = entry
			order = append(order, key)
		}
		entry.QuantitySold += t.QuantityBought
		entry.Revenue = entry.Revenue.Add(models.Money{USD: t.TotalBoughtUSD, LRD: t.TotalBoughtLRD})
	}

	items := make([]models.TopProduct, 0, len(order))
	for _, key := range order {
		items = append(items, *grouped[key])
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Revenue.USD > items[j].Revenue.USD
	})
	if len(items) > 5 {
		items = items[:5]
	}
	return items
}

// buildSalesByCategory gộp giao dịch theo danh mục, sắp giảm dần theo doanh thu USD, không giới hạn
func buildSalesByCategory(transactions []transactionmodels.Transaction) []models.CategorySales {
	grouped := make(map[string]*models.CategorySales)
	order := make([]string, 0)
	for _, t := range transactions {
		entry, ok := grouped[t.Category]
		if !ok {
			entry = &models.CategorySales{Category: t.Category}
			grouped[t.Category] = entry
			order = append(order, t.Category)
		}
		entry.QuantitySold += t.QuantityBought
		entry.Revenue = entry.Revenue.Add(models.Money{USD: t.TotalBoughtUSD, LRD: t.TotalBoughtLRD})
	}

	items := make([]models.CategorySales, 0, len(order))
	for _, key := range order {
		items = append(items, *grouped[key])
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Revenue.USD > items[j].Revenue.USD
	})
	return items
}

// buildLowStockProducts lấy tối đa 10 sản phẩm đầu tiên (theo thứ tự lưu trữ)
// có tồn kho không vượt quá ngưỡng
func buildLowStockProducts(products []productmodels.Product) []models.LowStockProduct {
	items := make([]models.LowStockProduct, 0, 10)
	for _, p := range products {
		if p.QuantityInStock > productmodels.LowStockThreshold {
			continue
		}
		items = append(items, models.LowStockProduct{
			ProductID:    p.ID.Hex(),
			ProductName:  p.Name,
			CurrentStock: p.QuantityInStock,
			Threshold:    productmodels.LowStockThreshold,
		})
		if len(items) == 10 {
			break
		}
	}
	return items
}

// buildPaymentMethodStats gộp giao dịch vào năm bucket thanh toán cố định.
// Phương thức không xác định: mặc định bỏ qua (giữ hành vi nguồn);
// strict mode gộp vào bucket "other".
func buildPaymentMethodStats(transactions []transactionmodels.Transaction, strict bool) map[string]models.PaymentMethodStat {
	stats := emptyPaymentMethodStats()
	for _, t := range transactions {
		method := t.PaymentMethod
		if !transactionmodels.IsKnownPaymentMethod(method) {
			if !strict {
				continue
			}
			method = transactionmodels.PaymentMethodOther
		}
		entry := stats[method]
		entry.Count++
		entry.Amount = entry.Amount.Add(models.Money{USD: t.TotalBoughtUSD, LRD: t.TotalBoughtLRD})
		stats[method] = entry
	}
	return stats
}

// buildRecentSales lấy 10 giao dịch gần nhất theo transactionDate giảm dần
func buildRecentSales(transactions []transactionmodels.Transaction) []models.RecentSale {
	sorted := make([]transactionmodels.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TransactionDate > sorted[j].TransactionDate
	})
	if len(sorted) > 10 {
		sorted = sorted[:10]
	}

	items := make([]models.RecentSale, 0, len(sorted))
	for _, t := range sorted {
		items = append(items, models.RecentSale{
			Date:        t.TransactionDate,
			Amount:      models.Money{USD: t.TotalBoughtUSD, LRD: t.TotalBoughtLRD},
			ProductID:   t.ProductID.Hex(),
			ProductName: t.ProductName,
		})
	}
	return items
}

// buildSalesByPeriod gộp giao dịch theo ngày / tuần ISO / tháng với cửa sổ
// trailing tương ứng. Mọi bucket key theo giờ UTC (quy ước cố định của hệ thống).
func buildSalesByPeriod(transactions []transactionmodels.Transaction, now time.Time) models.SalesByPeriod {
	dailyFrom := now.UTC().AddDate(0, 0, -dailyWindowDays)
	weeklyFrom := now.UTC().AddDate(0, 0, -weeklyWindowWeeks*7)
	monthlyFrom := now.UTC().AddDate(0, -monthlyWindowMonths, 0)

	return models.SalesByPeriod{
		Daily:   groupByBucket(transactions, dailyFrom, DayKey),
		Weekly:  groupByBucket(transactions, weeklyFrom, WeekKey),
		Monthly: groupByBucket(transactions, monthlyFrom, MonthKey),
	}
}

// groupByBucket gộp giao dịch từ mốc from theo bucket key, tăng dần theo key
func groupByBucket(transactions []transactionmodels.Transaction, from time.Time, keyFn func(time.Time) string) []models.PeriodSales {
	grouped := make(map[string]*models.PeriodSales)
	for _, t := range transactions {
		ts := time.UnixMilli(t.TransactionDate).UTC()
		if ts.Before(from) {
			continue
		}
		key := keyFn(ts)
		entry, ok := grouped[key]
		if !ok {
			entry = &models.PeriodSales{BucketKey: key}
			grouped[key] = entry
		}
		entry.Count++
		entry.Amount = entry.Amount.Add(models.Money{USD: t.TotalBoughtUSD, LRD: t.TotalBoughtLRD})
	}

	items := make([]models.PeriodSales, 0, len(grouped))
	for _, entry := range grouped {
		items = append(items, *entry)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].BucketKey < items[j].BucketKey
	})
	return items
}

// DayKey bucket key theo ngày UTC, dạng 2006-01-02
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WeekKey bucket key theo tuần ISO, dạng 2006-W02
func WeekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthKey bucket key theo tháng, dạng 2006-01
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
