// Package models - model giỏ hàng (Cart) thuộc domain cart.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái giỏ hàng theo vòng đời mua sắm
const (
	CartStatusPending   = "pending"
	CartStatusPaid      = "paid"
	CartStatusProcessing = "processing"
	CartStatusShipped   = "shipped"
	CartStatusDelivered = "delivered"
	CartStatusCancelled = "cancelled"
)

// Trạng thái thanh toán của giỏ, độc lập với phương thức thanh toán
const (
	PaymentStatusUnpaid        = "unpaid"
	PaymentStatusPartiallyPaid = "partially_paid"
	PaymentStatusPaid          = "paid"
)

// AllowedNextStatuses ánh xạ trạng thái hiện tại sang các trạng thái được phép chuyển tiếp
var AllowedNextStatuses = map[string][]string{
	CartStatusPending:    {CartStatusPaid, CartStatusCancelled},
	CartStatusPaid:       {CartStatusProcessing, CartStatusCancelled},
	CartStatusProcessing: {CartStatusShipped, CartStatusCancelled},
	CartStatusShipped:    {CartStatusDelivered},
	CartStatusDelivered:  {},
	CartStatusCancelled:  {},
}

// CanTransition kiểm tra việc chuyển trạng thái có hợp lệ không
func CanTransition(from, to string) bool {
	for _, next := range AllowedNextStatuses[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CartItem một dòng hàng trong giỏ; giá được chốt tại thời điểm thêm vào giỏ
type CartItem struct {
	ProductID   primitive.ObjectID `json:"productId" bson:"productId"`
	ProductName string             `json:"productName" bson:"productName"`
	Quantity    int64              `json:"quantity" bson:"quantity"`
	PriceUSD    float64            `json:"priceUSD" bson:"priceUSD"`
	PriceLRD    float64            `json:"priceLRD" bson:"priceLRD"`
}

// Cart định nghĩa giỏ hàng của một người dùng. Mỗi người dùng có tối đa một giỏ
// đang ở trạng thái pending; các giỏ đã checkout giữ lại làm lịch sử.
type Cart struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId" index:"single"`
	Items         []CartItem         `json:"items" bson:"items"`
	TotalUSD      float64            `json:"totalUSD" bson:"totalUSD"`
	TotalLRD      float64            `json:"totalLRD" bson:"totalLRD"`
	Status        string             `json:"status" bson:"status" index:"single"`
	PaymentMethod string             `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	PaymentStatus string             `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}

// RecalcTotals tính lại tổng tiền hai loại tiền tệ từ các dòng hàng
func (c *Cart) RecalcTotals() {
	var totalUSD, totalLRD float64
	for _, item := range c.Items {
		totalUSD += item.PriceUSD * float64(item.Quantity)
		totalLRD += item.PriceLRD * float64(item.Quantity)
	}
	c.TotalUSD = totalUSD
	c.TotalLRD = totalLRD
}
