// Package reportsvc - Test các hàm dựng snapshot dashboard từ dữ liệu trong bộ nhớ.
package reportsvc

import (
	"reflect"
	"testing"
	"time"

	productmodels "liberty_commerce/internal/api/product/models"
	transactionmodels "liberty_commerce/internal/api/transaction/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func makeTx(id primitive.ObjectID, name, category string, qty int64, usd, lrd float64, method string, date int64) transactionmodels.Transaction {
	return transactionmodels.Transaction{
		ProductID:         id,
		ProductName:       name,
		Category:          category,
		QuantityBought:    qty,
		TotalBoughtUSD:    usd,
		TotalBoughtLRD:    lrd,
		PaymentMethod:     method,
		TransactionStatus: transactionmodels.TransactionStatusCompleted,
		TransactionDate:   date,
	}
}

func TestBuildSnapshot_RevenueAndInventory(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	idA := primitive.NewObjectID()
	idB := primitive.NewObjectID()

	transactions := []transactionmodels.Transaction{
		makeTx(idA, "Gạo 25kg", "food", 2, 50, 9750, transactionmodels.PaymentMethodCash, now.UnixMilli()),
		makeTx(idB, "Dầu ăn", "food", 1, 10, 1950, transactionmodels.PaymentMethodCard, now.UnixMilli()),
	}
	products := []productmodels.Product{
		{Name: "Gạo 25kg", TotalValueUSD: 500, TotalValueLRD: 97500, QuantityInStock: 20},
		{Name: "Dầu ăn", TotalValueUSD: 100, TotalValueLRD: 19500, QuantityInStock: 10},
	}
	ordersByStatus := map[string]int64{"pending": 1, "processing": 0, "completed": 3, "cancelled": 0}

	snapshot := buildSnapshot(products, ordersByStatus, 4, 7, transactions, 195, false, now)

	if snapshot.TotalRevenue.USD != 60 || snapshot.TotalRevenue.LRD != 11700 {
		t.Errorf("TotalRevenue sai: got USD=%v LRD=%v, want USD=60 LRD=11700", snapshot.TotalRevenue.USD, snapshot.TotalRevenue.LRD)
	}
	if snapshot.InventoryValue.USD != 600 || snapshot.InventoryValue.LRD != 117000 {
		t.Errorf("InventoryValue sai: got USD=%v LRD=%v", snapshot.InventoryValue.USD, snapshot.InventoryValue.LRD)
	}
	if snapshot.TotalOrders != 4 || snapshot.TotalCustomers != 7 || snapshot.TotalProducts != 2 {
		t.Errorf("Tổng số sai: orders=%d customers=%d products=%d", snapshot.TotalOrders, snapshot.TotalCustomers, snapshot.TotalProducts)
	}
	if snapshot.OrdersByStatus["completed"] != 3 {
		t.Errorf("OrdersByStatus sai: %v", snapshot.OrdersByStatus)
	}
	if snapshot.CurrencyConversionRate != 195 {
		t.Errorf("CurrencyConversionRate sai: %v", snapshot.CurrencyConversionRate)
	}
	if snapshot.LastUpdated != now.UnixMilli() {
		t.Errorf("LastUpdated sai: %d", snapshot.LastUpdated)
	}
}

func TestBuildSnapshot_Deterministic(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	id := primitive.NewObjectID()
	transactions := []transactionmodels.Transaction{
		makeTx(id, "Gạo 25kg", "food", 2, 50, 9750, transactionmodels.PaymentMethodCash, now.UnixMilli()),
	}
	products := []productmodels.Product{{Name: "Gạo 25kg", QuantityInStock: 3}}
	ordersByStatus := map[string]int64{"pending": 0, "processing": 0, "completed": 1, "cancelled": 0}

	first := buildSnapshot(products, ordersByStatus, 1, 1, transactions, 195, false, now)
	second := buildSnapshot(products, ordersByStatus, 1, 1, transactions, 195, false, now)
	if !reflect.DeepEqual(first, second) {
		t.Error("buildSnapshot không xác định: hai lần chạy cùng dữ liệu cho kết quả khác nhau")
	}
}

func TestBuildTopProducts_OrderingLimitAndStability(t *testing.T) {
	now := time.Now().UnixMilli()
	ids := make([]primitive.ObjectID, 7)
	for i := range ids {
		ids[i] = primitive.NewObjectID()
	}

	// 7 sản phẩm, hai sản phẩm đầu có doanh thu USD bằng nhau
	transactions := []transactionmodels.Transaction{
		makeTx(ids[0], "A", "c", 1, 100, 0, transactionmodels.PaymentMethodCash, now),
		makeTx(ids[1], "B", "c", 1, 100, 0, transactionmodels.PaymentMethodCash, now),
		makeTx(ids[2], "C", "c", 1, 300, 0, transactionmodels.PaymentMethodCash, now),
		makeTx(ids[3], "D", "c", 1, 50, 0, transactionmodels.PaymentMethodCash, now),
		makeTx(ids[4], "E", "c", 1, 40, 0, transactionmodels.PaymentMethodCash, now),
		makeTx(ids[5], "F", "c", 1, 30, 0, transactionmodels.PaymentMethodCash, now),
		makeTx(ids[6], "G", "c", 1, 20, 0, transactionmodels.PaymentMethodCash, now),
	}

	items := buildTopProducts(transactions)
	if len(items) != 5 {
		t.Fatalf("TopProducts phải giới hạn 5 phần tử, got %d", len(items))
	}
	if items[0].ProductName != "C" {
		t.Errorf("Phần tử đầu phải là sản phẩm doanh thu cao nhất, got %s", items[0].ProductName)
	}
	// Doanh thu bằng nhau giữ thứ tự gặp đầu tiên: A trước B
	if items[1].ProductName != "A" || items[2].ProductName != "B" {
		t.Errorf("Tie-break phải giữ thứ tự gặp đầu tiên, got %s rồi %s", items[1].ProductName, items[2].ProductName)
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Revenue.USD < items[i].Revenue.USD {
			t.Errorf("TopProducts không giảm dần theo USD tại vị trí %d", i)
		}
	}
}

func TestBuildTopProducts_AggregatesSameProduct(t *testing.T) {
	now := time.Now().UnixMilli()
	id := primitive.NewObjectID()
	transactions := []transactionmodels.Transaction{
		makeTx(id, "A", "c", 2, 10, 1950, transactionmodels.PaymentMethodCash, now),
		makeTx(id, "A", "c", 3, 15, 2925, transactionmodels.PaymentMethodCard, now),
	}
	items := buildTopProducts(transactions)
	if len(items) != 1 {
		t.Fatalf("Cùng một sản phẩm phải gộp thành một dòng, got %d", len(items))
	}
	if items[0].QuantitySold != 5 || items[0].Revenue.USD != 25 || items[0].Revenue.LRD != 4875 {
		t.Errorf("Gộp sai: qty=%d USD=%v LRD=%v", items[0].QuantitySold, items[0].Revenue.USD, items[0].Revenue.LRD)
	}
}

func TestBuildSalesByCategory_Ordering(t *testing.T) {
	now := time.Now().UnixMilli()
	transactions := []transactionmodels.Transaction{
		makeTx(primitive.NewObjectID(), "A", "food", 1, 10, 0, transactionmodels.PaymentMethodCash, now),
		makeTx(primitive.NewObjectID(), "B", "electronics", 1, 100, 0, transactionmodels.PaymentMethodCash, now),
		makeTx(primitive.NewObjectID(), "C", "food", 1, 20, 0, transactionmodels.PaymentMethodCash, now),
	}
	items := buildSalesByCategory(transactions)
	if len(items) != 2 {
		t.Fatalf("Phải có 2 danh mục, got %d", len(items))
	}
	if items[0].Category != "electronics" || items[1].Category != "food" {
		t.Errorf("Danh mục phải giảm dần theo doanh thu USD: %v", items)
	}
	if items[1].Revenue.USD != 30 {
		t.Errorf("Doanh thu food phải gộp thành 30, got %v", items[1].Revenue.USD)
	}
}

func TestBuildLowStockProducts_ThresholdAndLimit(t *testing.T) {
	products := make([]productmodels.Product, 0, 14)
	// 12 sản phẩm tồn kho đúng ngưỡng, xen kẽ 2 sản phẩm trên ngưỡng
	for i := 0; i < 12; i++ {
		products = append(products, productmodels.Product{
			ID: primitive.NewObjectID(), Name: "low", QuantityInStock: productmodels.LowStockThreshold,
		})
	}
	products = append(products,
		productmodels.Product{ID: primitive.NewObjectID(), Name: "ok", QuantityInStock: productmodels.LowStockThreshold + 1},
		productmodels.Product{ID: primitive.NewObjectID(), Name: "empty", QuantityInStock: 0},
	)

	items := buildLowStockProducts(products)
	if len(items) != 10 {
		t.Fatalf("LowStock phải giới hạn 10 phần tử, got %d", len(items))
	}
	for _, item := range items {
		if item.CurrentStock > productmodels.LowStockThreshold {
			t.Errorf("Sản phẩm %s vượt ngưỡng vẫn nằm trong danh sách", item.ProductName)
		}
		if item.Threshold != productmodels.LowStockThreshold {
			t.Errorf("Threshold sai: %d", item.Threshold)
		}
	}
}

func TestBuildPaymentMethodStats_ZeroBucketsAlwaysPresent(t *testing.T) {
	stats := buildPaymentMethodStats(nil, false)
	if len(stats) != len(transactionmodels.KnownPaymentMethods) {
		t.Fatalf("Phải có đủ %d bucket, got %d", len(transactionmodels.KnownPaymentMethods), len(stats))
	}
	for _, method := range transactionmodels.KnownPaymentMethods {
		stat, ok := stats[method]
		if !ok {
			t.Errorf("Thiếu bucket %s", method)
			continue
		}
		if stat.Count != 0 || stat.Amount.USD != 0 {
			t.Errorf("Bucket %s phải là zero-value khi không có giao dịch", method)
		}
	}
}

func TestBuildPaymentMethodStats_SumsAndUnknown(t *testing.T) {
	now := time.Now().UnixMilli()
	transactions := []transactionmodels.Transaction{
		makeTx(primitive.NewObjectID(), "A", "c", 1, 10, 1950, transactionmodels.PaymentMethodCash, now),
		makeTx(primitive.NewObjectID(), "B", "c", 1, 20, 3900, transactionmodels.PaymentMethodCash, now),
		makeTx(primitive.NewObjectID(), "C", "c", 1, 5, 975, "crypto", now),
	}

	stats := buildPaymentMethodStats(transactions, false)
	cash := stats[transactionmodels.PaymentMethodCash]
	if cash.Count != 2 || cash.Amount.USD != 30 || cash.Amount.LRD != 5850 {
		t.Errorf("Bucket cash sai: count=%d USD=%v LRD=%v", cash.Count, cash.Amount.USD, cash.Amount.LRD)
	}
	// Mặc định: phương thức lạ bị bỏ qua
	if other := stats[transactionmodels.PaymentMethodOther]; other.Count != 0 {
		t.Errorf("Phương thức lạ phải bị bỏ qua khi không strict, other.Count=%d", other.Count)
	}

	// Strict mode: phương thức lạ gộp vào other
	strictStats := buildPaymentMethodStats(transactions, true)
	if other := strictStats[transactionmodels.PaymentMethodOther]; other.Count != 1 || other.Amount.USD != 5 {
		t.Errorf("Strict mode phải gộp phương thức lạ vào other: count=%d USD=%v", other.Count, other.Amount.USD)
	}
}

func TestBuildRecentSales_MostRecentFirstLimit(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	transactions := make([]transactionmodels.Transaction, 0, 12)
	for i := 0; i < 12; i++ {
		transactions = append(transactions, makeTx(
			primitive.NewObjectID(), "P", "c", 1, float64(i), 0,
			transactionmodels.PaymentMethodCash, base+int64(i)*1000,
		))
	}

	items := buildRecentSales(transactions)
	if len(items) != 10 {
		t.Fatalf("RecentSales phải giới hạn 10 phần tử, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Date < items[i].Date {
			t.Errorf("RecentSales phải giảm dần theo thời gian tại vị trí %d", i)
		}
	}
	if items[0].Date != base+11*1000 {
		t.Errorf("Phần tử đầu phải là giao dịch mới nhất, got %d", items[0].Date)
	}
}

func TestBuildSalesByPeriod_KeysAndWindows(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	inDaily := now.AddDate(0, 0, -3)
	outDaily := now.AddDate(0, 0, -40) // Ngoài cửa sổ 30 ngày nhưng trong cửa sổ tuần / tháng

	transactions := []transactionmodels.Transaction{
		makeTx(primitive.NewObjectID(), "A", "c", 1, 10, 1950, transactionmodels.PaymentMethodCash, inDaily.UnixMilli()),
		makeTx(primitive.NewObjectID(), "B", "c", 1, 20, 3900, transactionmodels.PaymentMethodCash, outDaily.UnixMilli()),
	}

	byPeriod := buildSalesByPeriod(transactions, now)

	if len(byPeriod.Daily) != 1 {
		t.Fatalf("Daily phải chỉ chứa giao dịch trong 30 ngày, got %d bucket", len(byPeriod.Daily))
	}
	if byPeriod.Daily[0].BucketKey != "2026-03-12" {
		t.Errorf("Key ngày sai: %s", byPeriod.Daily[0].BucketKey)
	}
	if len(byPeriod.Weekly) != 2 {
		t.Errorf("Weekly phải chứa cả hai giao dịch, got %d bucket", len(byPeriod.Weekly))
	}
	if len(byPeriod.Monthly) != 2 {
		t.Errorf("Monthly phải chứa cả hai giao dịch, got %d bucket", len(byPeriod.Monthly))
	}
	for i := 1; i < len(byPeriod.Weekly); i++ {
		if byPeriod.Weekly[i-1].BucketKey >= byPeriod.Weekly[i].BucketKey {
			t.Error("Weekly phải tăng dần theo bucket key")
		}
	}
}

func TestPeriodKeys_Formats(t *testing.T) {
	d := time.Date(2026, 3, 5, 23, 59, 0, 0, time.UTC)
	if got := DayKey(d); got != "2026-03-05" {
		t.Errorf("DayKey sai: %s", got)
	}
	if got := MonthKey(d); got != "2026-03" {
		t.Errorf("MonthKey sai: %s", got)
	}
	if got := WeekKey(d); got != "2026-W10" {
		t.Errorf("WeekKey sai: %s", got)
	}
}

func TestWeekKey_ISOYearBoundary(t *testing.T) {
	// 2023-01-01 là Chủ nhật, thuộc tuần 52 của năm ISO 2022
	if got := WeekKey(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)); got != "2022-W52" {
		t.Errorf("Tuần ISO biên năm sai: %s", got)
	}
	// 2024-12-30 là Thứ hai, thuộc tuần 1 của năm ISO 2025
	if got := WeekKey(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)); got != "2025-W01" {
		t.Errorf("Tuần ISO biên năm sai: %s", got)
	}
}
