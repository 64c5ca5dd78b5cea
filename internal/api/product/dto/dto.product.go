package productdto

// ProductCreateInput đầu vào tạo sản phẩm.
type ProductCreateInput struct {
	Name            string   `json:"name" bson:"name" validate:"required"`
	Description     string   `json:"description" bson:"description"`
	Category        string   `json:"category" bson:"category" validate:"required"`
	PriceUSD        float64  `json:"priceUSD" bson:"priceUSD" validate:"gte=0"`
	PriceLRD        float64  `json:"priceLRD" bson:"priceLRD" validate:"gte=0"`
	QuantityInStock int64    `json:"quantityInStock" bson:"quantityInStock" validate:"gte=0"`
	Images          []string `json:"images" bson:"images"`
	IsActive        *bool    `json:"isActive" bson:"isActive"`
}

// ProductUpdateInput đầu vào cập nhật sản phẩm. Con trỏ để phân biệt "không gửi" và "gửi giá trị zero".
type ProductUpdateInput struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	PriceUSD        *float64 `json:"priceUSD" validate:"omitempty,gte=0"`
	PriceLRD        *float64 `json:"priceLRD" validate:"omitempty,gte=0"`
	QuantityInStock *int64   `json:"quantityInStock" validate:"omitempty,gte=0"`
	Images          []string `json:"images"`
	IsActive        *bool    `json:"isActive"`
}

// AdjustStockInput đầu vào tăng / giảm tồn kho (delta âm là xuất kho).
type AdjustStockInput struct {
	Delta int64 `json:"delta" validate:"required"`
}
