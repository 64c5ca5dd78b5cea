// Package models - model sản phẩm (Product) thuộc domain product.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ngưỡng tồn kho thấp dùng chung cho sản phẩm và dashboard
const LowStockThreshold = 5

// Product định nghĩa mô hình sản phẩm với giá song song hai loại tiền tệ (USD / LRD).
// TotalValueUSD / TotalValueLRD là giá trị tồn kho (giá × số lượng) được tính lại
// mỗi lần tạo / cập nhật sản phẩm hoặc khi tỷ giá thay đổi.
type Product struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name" index:"text"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	Category        string             `json:"category" bson:"category" index:"single"`
	PriceUSD        float64            `json:"priceUSD" bson:"priceUSD"`
	PriceLRD        float64            `json:"priceLRD" bson:"priceLRD"`
	QuantityInStock int64              `json:"quantityInStock" bson:"quantityInStock" index:"single"`
	TotalValueUSD   float64            `json:"totalValueUSD" bson:"totalValueUSD"`
	TotalValueLRD   float64            `json:"totalValueLRD" bson:"totalValueLRD"`
	Images          []string           `json:"images,omitempty" bson:"images,omitempty"`
	IsActive        bool               `json:"isActive" bson:"isActive"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}

// RecalcTotals tính lại giá trị tồn kho theo giá và số lượng hiện tại
func (p *Product) RecalcTotals() {
	p.TotalValueUSD = p.PriceUSD * float64(p.QuantityInStock)
	p.TotalValueLRD = p.PriceLRD * float64(p.QuantityInStock)
}
