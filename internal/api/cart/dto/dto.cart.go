package cartdto

// CartAddItemInput đầu vào thêm sản phẩm vào giỏ.
type CartAddItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// CartUpdateItemInput đầu vào đổi số lượng một dòng hàng (quantity = 0 là xóa dòng).
type CartUpdateItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"gte=0"`
}

// CartCheckoutInput đầu vào checkout giỏ hàng.
type CartCheckoutInput struct {
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=cash bank_transfer mobile_money other"`
}

// CartStatusInput đầu vào chuyển trạng thái giỏ hàng (quản trị).
type CartStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending paid processing shipped delivered cancelled"`
}
