package orderdto

// OrderCreateInput đầu vào tạo đơn hàng từ giỏ đã thanh toán.
type OrderCreateInput struct {
	CartID string `json:"cartId" validate:"required"`
	Notes  string `json:"notes"`
}

// OrderStatusInput đầu vào chuyển trạng thái đơn hàng.
type OrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}

// OrderPaymentProofInput đầu vào gắn ảnh chứng từ thanh toán.
type OrderPaymentProofInput struct {
	ImageURL string `json:"imageUrl" validate:"required,url"`
}
