// Package models - model đơn hàng (Order) thuộc domain order.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	cartmodels "liberty_commerce/internal/api/cart/models"
)

// Các trạng thái đơn hàng được thống kê trên dashboard
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// KnownOrderStatuses danh sách trạng thái đơn hàng hợp lệ theo thứ tự vòng đời
var KnownOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// AllowedNextStatuses ánh xạ trạng thái hiện tại sang các trạng thái được phép chuyển tiếp
var AllowedNextStatuses = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
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

// Order định nghĩa đơn hàng, tạo từ giỏ hàng đã thanh toán.
// PaymentProofs chứa đường dẫn ảnh chứng từ thanh toán do khách upload.
type Order struct {
	ID            primitive.ObjectID    `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        primitive.ObjectID    `json:"userId" bson:"userId" index:"single"`
	CartID        primitive.ObjectID    `json:"cartId,omitempty" bson:"cartId,omitempty"`
	Items         []cartmodels.CartItem `json:"items" bson:"items"`
	TotalUSD      float64               `json:"totalUSD" bson:"totalUSD"`
	TotalLRD      float64               `json:"totalLRD" bson:"totalLRD"`
	Status        string                `json:"status" bson:"status" index:"single"`
	PaymentMethod string                `json:"paymentMethod" bson:"paymentMethod"`
	PaymentProofs []string              `json:"paymentProofs,omitempty" bson:"paymentProofs,omitempty"`
	Notes         string                `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     int64                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64                 `json:"updatedAt" bson:"updatedAt"`
}
