// Package models - model Dashboard snapshot thuộc domain report.
package models

// Money cặp số tiền USD / LRD luôn đi cùng nhau; mọi tổng tiền là tổng
// từng thành phần của các Money cấu thành.
type Money struct {
	USD float64 `json:"USD" bson:"usd"`
	LRD float64 `json:"LRD" bson:"lrd"`
}

// Add cộng hai Money theo từng thành phần
func (m Money) Add(other Money) Money {
	return Money{USD: m.USD + other.USD, LRD: m.LRD + other.LRD}
}

// TopProduct một sản phẩm trong bảng xếp hạng doanh thu
type TopProduct struct {
	ProductID    string `json:"productId" bson:"productId"`
	ProductName  string `json:"productName" bson:"productName"`
	QuantitySold int64  `json:"quantitySold" bson:"quantitySold"`
	Revenue      Money  `json:"revenue" bson:"revenue"`
}

// CategorySales doanh thu theo danh mục sản phẩm
type CategorySales struct {
	Category     string `json:"category" bson:"category"`
	QuantitySold int64  `json:"quantitySold" bson:"quantitySold"`
	Revenue      Money  `json:"revenue" bson:"revenue"`
}

// LowStockProduct sản phẩm có tồn kho không vượt quá ngưỡng
type LowStockProduct struct {
	ProductID    string `json:"productId" bson:"productId"`
	ProductName  string `json:"productName" bson:"productName"`
	CurrentStock int64  `json:"currentStock" bson:"currentStock"`
	Threshold    int64  `json:"threshold" bson:"threshold"`
}

// PaymentMethodStat thống kê một phương thức thanh toán
type PaymentMethodStat struct {
	Count  int64 `json:"count" bson:"count"`
	Amount Money `json:"amount" bson:"amount"`
}

// RecentSale một giao dịch bán gần đây
type RecentSale struct {
	Date        int64  `json:"date" bson:"date"`
	Amount      Money  `json:"amount" bson:"amount"`
	ProductID   string `json:"productId" bson:"productId"`
	ProductName string `json:"productName" bson:"productName"`
}

// PeriodSales doanh thu gộp theo một bucket thời gian (ngày / tuần ISO / tháng)
type PeriodSales struct {
	BucketKey string `json:"bucketKey" bson:"bucketKey"`
	Amount    Money  `json:"amount" bson:"amount"`
	Count     int64  `json:"count" bson:"count"`
}

// SalesByPeriod doanh thu theo ba chu kỳ, mỗi chu kỳ tăng dần theo bucket key
type SalesByPeriod struct {
	Daily   []PeriodSales `json:"daily" bson:"daily"`
	Weekly  []PeriodSales `json:"weekly" bson:"weekly"`
	Monthly []PeriodSales `json:"monthly" bson:"monthly"`
}

// DashboardKey giá trị trường key của document snapshot duy nhất
const DashboardKey = "main"

// Dashboard là document snapshot tổng hợp duy nhất của hệ thống báo cáo.
// Tạo ra ở lần truy cập đầu tiên, ghi đè tại chỗ mỗi lần refresh, không bao giờ xóa.
type Dashboard struct {
	Key                    string                       `json:"-" bson:"key" index:"unique"`
	TotalRevenue           Money                        `json:"totalRevenue" bson:"totalRevenue"`
	TotalOrders            int64                        `json:"totalOrders" bson:"totalOrders"`
	TotalProducts          int64                        `json:"totalProducts" bson:"totalProducts"`
	TotalCustomers         int64                        `json:"totalCustomers" bson:"totalCustomers"`
	InventoryValue         Money                        `json:"inventoryValue" bson:"inventoryValue"`
	OrdersByStatus         map[string]int64             `json:"ordersByStatus" bson:"ordersByStatus"`
	TopProducts            []TopProduct                 `json:"topProducts" bson:"topProducts"`
	SalesByCategory        []CategorySales              `json:"salesByCategory" bson:"salesByCategory"`
	LowStockProducts       []LowStockProduct            `json:"lowStockProducts" bson:"lowStockProducts"`
	PaymentMethodStats     map[string]PaymentMethodStat `json:"paymentMethodStats" bson:"paymentMethodStats"`
	RecentSales            []RecentSale                 `json:"recentSales" bson:"recentSales"`
	SalesByPeriod          SalesByPeriod                `json:"salesByPeriod" bson:"salesByPeriod"`
	CurrencyConversionRate float64                      `json:"currencyConversionRate" bson:"currencyConversionRate"`
	LastUpdated            int64                        `json:"lastUpdated" bson:"lastUpdated"`
}

// DashboardSummary phần tổng quan gọn của snapshot, cho widget đầu trang dashboard
type DashboardSummary struct {
	TotalRevenue   Money            `json:"totalRevenue"`
	TotalOrders    int64            `json:"totalOrders"`
	TotalProducts  int64            `json:"totalProducts"`
	TotalCustomers int64            `json:"totalCustomers"`
	InventoryValue Money            `json:"inventoryValue"`
	OrdersByStatus map[string]int64 `json:"ordersByStatus"`
	LastUpdated    int64            `json:"lastUpdated"`
}

// CascadeResult kết quả lan truyền tỷ giá vào giá LRD của toàn bộ sản phẩm.
// Thành công một phần là kết quả bình thường: UpdatedCount < TotalProducts
// khi có sản phẩm cập nhật lỗi (đã log, không retry, không rollback).
type CascadeResult struct {
	Rate          float64 `json:"rate"`
	TotalProducts int64   `json:"totalProducts"`
	UpdatedCount  int64   `json:"updatedCount"`
	FailedCount   int64   `json:"failedCount"`
}
