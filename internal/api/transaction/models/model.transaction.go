// Package models - model giao dịch bán hàng (Transaction) thuộc domain transaction.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các phương thức thanh toán được thống kê trên dashboard
const (
	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodMobileMoney  = "mobile_money"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodOther        = "other"
)

// Các trạng thái giao dịch; chỉ completed được tính vào doanh thu
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
	TransactionStatusRefunded  = "refunded"
)

// KnownPaymentMethods danh sách phương thức thanh toán hợp lệ theo thứ tự hiển thị
var KnownPaymentMethods = []string{
	PaymentMethodCash,
	PaymentMethodCard,
	PaymentMethodMobileMoney,
	PaymentMethodBankTransfer,
	PaymentMethodOther,
}

// IsKnownPaymentMethod kiểm tra phương thức thanh toán có thuộc danh sách hợp lệ không
func IsKnownPaymentMethod(method string) bool {
	for _, m := range KnownPaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Transaction định nghĩa bản ghi bán hàng, nguồn dữ liệu doanh thu duy nhất của dashboard.
// ProductName và Category được denormalize tại thời điểm bán để báo cáo không phụ thuộc
// vào sản phẩm còn tồn tại hay đã đổi tên.
type Transaction struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderID           primitive.ObjectID `json:"orderId,omitempty" bson:"orderId,omitempty" index:"single"`
	UserID            primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty" index:"single"`
	ProductID         primitive.ObjectID `json:"productId" bson:"productId" index:"single"`
	ProductName       string             `json:"productName" bson:"productName"`
	Category          string             `json:"category,omitempty" bson:"category,omitempty"`
	QuantityBought    int64              `json:"quantityBought" bson:"quantityBought"`
	TotalBoughtUSD    float64            `json:"totalBoughtUSD" bson:"totalBoughtUSD"`
	TotalBoughtLRD    float64            `json:"totalBoughtLRD" bson:"totalBoughtLRD"`
	PaymentMethod     string             `json:"paymentMethod" bson:"paymentMethod"`
	TransactionStatus string             `json:"transactionStatus" bson:"transactionStatus" index:"single"`
	TransactionDate   int64              `json:"transactionDate" bson:"transactionDate" index:"single"`
	CreatedAt         int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`
}
