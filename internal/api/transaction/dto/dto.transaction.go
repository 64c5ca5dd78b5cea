package transactiondto

// TransactionCreateInput đầu vào tạo giao dịch thủ công (bán tại quầy, không qua order).
type TransactionCreateInput struct {
	ProductID         string  `json:"productId" bson:"productId" validate:"required"`
	Quantity          int64   `json:"quantity" bson:"quantity" validate:"required,gt=0"`
	PaymentMethod     string  `json:"paymentMethod" bson:"paymentMethod" validate:"required,oneof=cash card mobile_money bank_transfer other"`
	TransactionStatus string  `json:"transactionStatus" bson:"transactionStatus" validate:"omitempty,oneof=pending completed cancelled refunded"`
	TransactionDate   int64   `json:"transactionDate" bson:"transactionDate"`
	UserID            string  `json:"userId" bson:"userId"`
}

// TransactionUpdateInput đầu vào cập nhật trạng thái giao dịch.
type TransactionUpdateInput struct {
	TransactionStatus string `json:"transactionStatus" validate:"required,oneof=pending completed cancelled refunded"`
}
